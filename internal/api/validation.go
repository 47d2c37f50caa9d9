package api

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// RequestValidationError reports the first constraint violated by an
// inbound payload or parameter. The message is field-prefixed so clients
// can tell which field failed.
type RequestValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *RequestValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// passwordRuleMessage describes the password-strength rule.
const passwordRuleMessage = "Password must have at least 6 characters, " +
	"including at least one lowercase letter, " +
	"one uppercase letter, one digit."

// validate is the process-wide validator. Field names in error messages
// come from json tags, and the custom password rule is registered once.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Password strength: at least one uppercase letter, one lowercase
	// letter, and one digit. Length is covered by min/max tags.
	if err := v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		var hasUpper, hasLower, hasDigit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsDigit(r):
				hasDigit = true
			}
		}
		return hasUpper && hasLower && hasDigit
	}); err != nil {
		panic(err)
	}

	return v
}

// ValidateRequest validates the struct and converts the first violation
// into a RequestValidationError. Later violations are not aggregated:
// validation halts at the first failing field's first failed rule.
func ValidateRequest(v interface{}) *RequestValidationError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &RequestValidationError{Message: "invalid request"}
	}

	fe := errs[0]
	return &RequestValidationError{
		Field:   fe.Field(),
		Message: constraintMessage(fe),
	}
}

// constraintMessage maps a failed validation tag to its client-facing text.
func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return fmt.Sprintf("ensure this value has at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("ensure this value has at most %s characters", fe.Param())
	case "email":
		return "value is not a valid email address"
	case "password":
		return passwordRuleMessage
	default:
		return "invalid value"
	}
}
