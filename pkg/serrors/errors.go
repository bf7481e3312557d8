package serrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BaseError is a coded error surfaced through the API layer. Code is a
// machine-readable identifier, Message is safe to show to a caller.
type BaseError struct {
	Code    string
	Message string
}

func (e *BaseError) Error() string {
	return e.Message
}

func NewError(code, message string) *BaseError {
	return &BaseError{Code: code, Message: message}
}

func NewFieldRequiredError(field string) *BaseError {
	return &BaseError{
		Code:    "FIELD_REQUIRED",
		Message: fmt.Sprintf("%s is required", field),
	}
}

// ValidationErrors maps struct field names to human-readable messages.
type ValidationErrors map[string]string

// ProcessValidatorErrors converts go-playground validator errors into
// per-field messages.
func ProcessValidatorErrors(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, err := range errs {
		out[err.Field()] = messageForTag(err)
	}
	return out
}

func messageForTag(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "enter a valid email"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "min":
		return fmt.Sprintf("%s is too short (minimum %s)", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s is too long (maximum %s)", err.Field(), err.Param())
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}
