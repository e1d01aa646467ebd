package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wires go-playground/validator into Echo so request
// DTO tags are checked on c.Validate.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the validator used by the server and the handler tests.
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validator.New()}
}

// Validate checks struct tags; failures bubble to the central HTTP
// error handler as validator.ValidationErrors.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
