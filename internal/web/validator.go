package web

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single validation failure.
type FieldError struct {
	// Field is the form field name, taken from the `form` tag.
	Field string

	// Message is the user-facing error message.
	Message string
}

// ValidationErrors is the collection of validation failures for one bind.
// A nil/empty collection means the input was valid.
type ValidationErrors []FieldError

// Has reports whether the named field failed validation.
func (ve ValidationErrors) Has(field string) bool {
	return ve.First(field) != ""
}

// First returns the first error message for the named field, or "".
func (ve ValidationErrors) First(field string) string {
	for _, fe := range ve {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// ByField groups messages by field name for template rendering.
func (ve ValidationErrors) ByField() map[string]string {
	if len(ve) == 0 {
		return nil
	}
	m := make(map[string]string, len(ve))
	for _, fe := range ve {
		if _, ok := m[fe.Field]; !ok {
			m[fe.Field] = fe.Message
		}
	}
	return m
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validateStruct validates v against its `validate` tags. Rule failures are
// returned as ValidationErrors; anything else (bad tag, non-struct) as error.
func validateStruct(v any) (ValidationErrors, error) {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report errors under the form field name, not the Go field name.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.Split(fld.Tag.Get("form"), ",")[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})

	err := validate.Struct(v)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("validate: %w", err)
	}

	ve := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		ve = append(ve, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return ve, nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "eqfield":
		return "Passwords do not match"
	default:
		return "Invalid value"
	}
}
