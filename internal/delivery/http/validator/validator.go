// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	domainerrors "its/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator checks the struct tags of bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Failures surface as VALIDATION_FAILED.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
