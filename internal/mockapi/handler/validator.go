package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/movaro/console/pkg/validate"
)

// echoValidator adapts go-playground/validator to the echo.Validator
// interface, flattening failures through the shared message formatter.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns the validator to assign to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		return validate.Message(err)
	}
	return nil
}
