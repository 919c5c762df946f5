package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// passwordSymbols is the set a password must draw at least one symbol from.
const passwordSymbols = `!@#$%^&*()_+}{":;'?/\><,`

// newValidator returns a validator that knows the password rule tags and
// reports fields by their JSON names. Digit and letter classes are ASCII only.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	rules := map[string]func(rune) bool{
		"pwdigit":  func(r rune) bool { return r >= '0' && r <= '9' },
		"pwlower":  func(r rune) bool { return r >= 'a' && r <= 'z' },
		"pwupper":  func(r rune) bool { return r >= 'A' && r <= 'Z' },
		"pwsymbol": func(r rune) bool { return strings.ContainsRune(passwordSymbols, r) },
	}
	for tag, match := range rules {
		// Registration only fails on an empty tag, which cannot happen here.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return strings.IndexFunc(fl.Field().String(), match) >= 0
		})
	}
	_ = v.RegisterValidation("pwnospace", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsSpace) < 0
	})
	return v
}

// firstViolation renders the first failed rule of a validation error as a client message.
func firstViolation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	e := verrs[0]
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s format is invalid", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "pwdigit":
		return fmt.Sprintf("%s must contain at least one digit", field)
	case "pwlower":
		return fmt.Sprintf("%s must contain at least one lowercase letter", field)
	case "pwupper":
		return fmt.Sprintf("%s must contain at least one uppercase letter", field)
	case "pwsymbol":
		return fmt.Sprintf("%s must contain at least one symbol of %s", field, passwordSymbols)
	case "pwnospace":
		return fmt.Sprintf("%s must not contain whitespace", field)
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, e.Tag())
	}
}
