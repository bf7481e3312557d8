package internet

import (
	"github.com/ghazalrb98/sep/pkg/constants"
	"github.com/ghazalrb98/sep/pkg/serrors"
)

var ErrInvalidEmail = serrors.NewError("INVALID_EMAIL", "enter a valid email")

type Email struct {
	value string
}

func NewEmail(v string) (Email, error) {
	if err := constants.Validate.Var(v, "required,email"); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func MustParseEmail(v string) Email {
	e, err := NewEmail(v)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Email) Value() string {
	return e.value
}
