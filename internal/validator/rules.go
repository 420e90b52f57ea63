package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// E.164-ish: optional +, 7 to 15 digits, no leading zero.
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

func registerCustomRules(v *validator.Validate) {
	// "phone" validates numbers the SMS provider will accept.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
}
