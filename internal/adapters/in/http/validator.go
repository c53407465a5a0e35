package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator checks bound request bodies against their validate tags.
// It implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator reporting fields by their JSON names.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (rv *RequestValidator) Validate(i any) error {
	return rv.validate.Struct(i)
}

func describeFieldError(fe validator.FieldError) FieldError {
	var message string
	switch fe.Tag() {
	case "required":
		message = "field required"
	case "gt":
		message = "must be greater than " + fe.Param()
	case "oneof":
		message = "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		message = "failed on the '" + fe.Tag() + "' rule"
	}

	return FieldError{Field: fe.Field(), Message: message}
}
