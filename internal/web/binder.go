package web

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/hrassist/pkg/sanitizer"
)

// bindForm populates struct fields tagged `form:"name"` from the request's
// form data. ParseForm merges the URL query and the request body, so the
// same struct binds GET and POST forms alike. Supported field kinds:
// string, *string, bool, int.
func bindForm(r *http.Request, v any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind target must be a non-nil struct pointer, got %T", v)
	}

	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name := field.Tag.Get("form")
		if name == "" || name == "-" {
			continue
		}
		name = strings.Split(name, ",")[0]

		if !r.Form.Has(name) {
			// Unchecked checkboxes are absent from the form entirely.
			if rv.Field(i).Kind() == reflect.Bool {
				rv.Field(i).SetBool(false)
			}
			continue
		}
		raw := r.Form.Get(name)

		fv := rv.Field(i)
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(raw)
		case reflect.Bool:
			fv.SetBool(raw == "on" || raw == "true" || raw == "1")
		case reflect.Int, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}
			fv.SetInt(n)
		case reflect.Pointer:
			if fv.Type().Elem().Kind() == reflect.String {
				s := raw
				fv.Set(reflect.ValueOf(&s))
			}
		}
	}

	return nil
}

// sanitizeStruct applies sanitization to fields tagged `sanitize`.
// Supported directives: "trim" (whitespace only) and "text" (strip HTML
// and trim). Password fields carry no sanitize tag and pass through as-is.
func sanitizeStruct(v any) {
	rv := reflect.ValueOf(v).Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		directive := rt.Field(i).Tag.Get("sanitize")
		if directive == "" {
			continue
		}

		fv := rv.Field(i)
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(applySanitize(fv.String(), directive))
		case reflect.Pointer:
			if fv.Type().Elem().Kind() == reflect.String && !fv.IsNil() {
				s := applySanitize(fv.Elem().String(), directive)
				fv.Set(reflect.ValueOf(&s))
			}
		}
	}
}

func applySanitize(s, directive string) string {
	switch directive {
	case "text":
		return sanitizer.SanitizeText(s)
	case "trim":
		return strings.TrimSpace(s)
	default:
		return s
	}
}
