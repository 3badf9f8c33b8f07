// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "gia/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request payloads against struct tags.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates the validator echo will call for every c.Validate invocation.
func New() *RequestValidator {
	return &RequestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures map onto the validation error
// of the domain taxonomy so the central error handler renders them as 400.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
