package request

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghazalrb98/sep/pkg/constants"
	"github.com/ghazalrb98/sep/pkg/serrors"
)

type CreateDTO struct {
	Title          string `json:"title" validate:"required,max=200"`
	Description    string `json:"description" validate:"max=2000"`
	BudgetEstimate int64  `json:"budgetEstimate" validate:"gte=0"`
}

func (d *CreateDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	return validateStruct(d)
}

type UpdateDTO struct {
	Title          string `json:"title" validate:"required,max=200"`
	Description    string `json:"description" validate:"max=2000"`
	BudgetEstimate int64  `json:"budgetEstimate" validate:"gte=0"`
}

func (d *UpdateDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
}

func (d *UpdateDTO) Ok() (serrors.ValidationErrors, bool) {
	d.Normalize()
	return validateStruct(d)
}

type SetBudgetDTO struct {
	Amount int64 `json:"amount" validate:"gte=0"`
}

func (d *SetBudgetDTO) Ok() (serrors.ValidationErrors, bool) {
	return validateStruct(d)
}

func validateStruct(v interface{}) (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(v)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	return serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors)), false
}
