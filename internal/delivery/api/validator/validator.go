// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates bound request structs using `validate` tags.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator with the project-specific rules registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "HH:MM" clock time used by geofence active windows
	_ = v.RegisterValidation("clock", validateClock)

	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return errors.New(formatValidationErrors(validationErrs))
		}

		return errors.WithStack(err)
	}

	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		msg := fieldErr.Field() + " failed on '" + fieldErr.Tag() + "'"
		if fieldErr.Param() != "" {
			msg += " (" + fieldErr.Param() + ")"
		}
		messages = append(messages, msg)
	}

	return strings.Join(messages, "; ")
}

func validateClock(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 5 || value[2] != ':' {
		return false
	}
	for _, idx := range []int{0, 1, 3, 4} {
		if value[idx] < '0' || value[idx] > '9' {
			return false
		}
	}
	hour := int(value[0]-'0')*10 + int(value[1]-'0')
	minute := int(value[3]-'0')*10 + int(value[4]-'0')

	return hour < 24 && minute < 60
}
