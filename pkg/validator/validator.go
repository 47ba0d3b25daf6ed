package validator

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator over go-playground's
// struct validation, driving the `validate:` tags on request DTOs.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator ready to be set as echo's Validator
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks a bound request struct against its validate tags
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}
