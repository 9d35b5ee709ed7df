package api

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// Pakistani CNIC, 42101-1234567-8
	cnicRegex = regexp.MustCompile(`^\d{5}-\d{7}-\d{1}$`)
	// loose phone check matching the booking form's
	phoneRegex = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("cnic", func(fl validator.FieldLevel) bool {
		return cnicRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	return v
}
