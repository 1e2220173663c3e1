// Package forms turns untyped form payloads into validated Form Records.
//
// The constraint table of every variant lives in its validate struct tags
// (see internal/models). Decode applies them with a single validator
// instance and reports every violated field at once.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/coinsguard/coinsguard-api/internal/models"
	apperrors "github.com/coinsguard/coinsguard-api/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names instead of Go field names
	v.RegisterTagNameFunc(jsonName)
	return v
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Decode validates payload against the constraint table of kind.
// String values are trimmed; optional fields that are absent, null or blank
// all decode to nil. Non-string values in string fields are rejected
// without coercion.
func Decode(kind models.FormKind, payload map[string]any) (models.FormRecord, error) {
	rec, err := models.NewRecord(kind)
	if err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(rec).Elem()
	rt := rv.Type()

	order := make(map[string]int, rt.NumField())
	wrongType := make(map[string]bool)
	var violations []Violation

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name := jsonName(field)
		order[name] = i

		raw, present := payload[name]
		if !present || raw == nil {
			continue
		}

		s, ok := raw.(string)
		if !ok {
			wrongType[name] = true
			violations = append(violations, Violation{
				Field:   name,
				Kind:    ViolationWrongType,
				Message: messageFor(name, ViolationWrongType, ""),
			})
			continue
		}
		s = strings.TrimSpace(s)

		fv := rv.Field(i)
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(s)
		case reflect.Pointer:
			if s != "" {
				fv.Set(reflect.ValueOf(&s))
			}
		default:
			return nil, apperrors.InternalError(fmt.Sprintf("field %s of %s has unsupported type %s", name, kind, fv.Type()))
		}
	}

	if err := validate.Struct(rec); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("validate %s: %w", kind, err)
		}
		for _, fe := range fieldErrs {
			if wrongType[fe.Field()] {
				continue
			}
			violations = append(violations, fromFieldError(fe))
		}
	}

	if len(violations) > 0 {
		sort.SliceStable(violations, func(i, j int) bool {
			return order[violations[i].Field] < order[violations[j].Field]
		})
		return nil, &ValidationError{Form: kind, Violations: violations}
	}

	return rec, nil
}

// Validate re-checks an already typed record, e.g. one built in code rather
// than decoded from a payload
func Validate(rec models.FormRecord) error {
	if rec == nil {
		return apperrors.InvalidInputError("record", "must not be nil")
	}
	if err := validate.Struct(rec); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate %s: %w", rec.Kind(), err)
		}
		violations := make([]Violation, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			violations = append(violations, fromFieldError(fe))
		}
		return &ValidationError{Form: rec.Kind(), Violations: violations}
	}
	return nil
}
