// Package validator adapts go-playground/validator to echo.
package validator

import (
	"skillswap/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator with the project's custom tags registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// location_category accepts the known saved-place categories.
	_ = v.RegisterValidation("location_category", func(fl validator.FieldLevel) bool {
		return entity.Category(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate validates a struct based on its tags.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
