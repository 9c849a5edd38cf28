package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echo.Validator adapter ครอบ go-playground/validator
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		fields := map[string]string{}
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{
			"error":  "VALIDATION_FAILED",
			"fields": fields,
		})
	}
	return nil
}
