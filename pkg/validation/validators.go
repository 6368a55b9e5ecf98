package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Same pattern the frontend applies before submitting: something
	// before the @, something after, and at least one dot in the domain.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// E164-like phone: optional +, digits 7-15 length
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("form_email", FormEmail)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
}

// FormEmail validates the submitter email the same way the site's form does
func FormEmail(fl validator.FieldLevel) bool {
	return ValidEmail(fl.Field().String())
}

// ValidEmail reports whether the address passes the form email pattern
func ValidEmail(val string) bool {
	return emailRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}
