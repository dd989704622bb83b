// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"net/http"

	validatorLib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps a go-playground validator instance.
type echoValidator struct {
	validate *validatorLib.Validate
}

// New builds the validator echo uses for c.Validate calls.
func New() echo.Validator {
	return &echoValidator{validate: validatorLib.New()}
}

// Validate runs struct validation and converts failures into an echo
// HTTPError so the central error handler renders them as 400s.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
