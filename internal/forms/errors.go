package forms

import (
	"strings"

	"github.com/coinsguard/coinsguard-api/internal/models"
	apperrors "github.com/coinsguard/coinsguard-api/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// ViolationKind classifies why a field was rejected
type ViolationKind string

const (
	ViolationMissing      ViolationKind = "missing"
	ViolationWrongType    ViolationKind = "wrong_type"
	ViolationTooShort     ViolationKind = "too_short"
	ViolationInvalidEmail ViolationKind = "invalid_email"
	ViolationInvalid      ViolationKind = "invalid"
)

// Violation describes a single rejected field
type Violation struct {
	Field   string        `json:"field" example:"name"`
	Kind    ViolationKind `json:"kind" example:"too_short"`
	Message string        `json:"message" example:"name must be at least 2 characters"`
}

// ValidationError lists every violation found in one payload
type ValidationError struct {
	Form       models.FormKind
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+string(v.Kind))
	}
	return string(e.Form) + " validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match the failure with errors.Is(err, ErrValidationFailed)
func (e *ValidationError) Unwrap() error {
	return apperrors.ErrValidationFailed
}

// Has reports whether field was rejected with kind
func (e *ValidationError) Has(field string, kind ViolationKind) bool {
	for _, v := range e.Violations {
		if v.Field == field && v.Kind == kind {
			return true
		}
	}
	return false
}

func fromFieldError(fe validator.FieldError) Violation {
	kind := kindFor(fe.Tag())
	return Violation{
		Field:   fe.Field(),
		Kind:    kind,
		Message: messageFor(fe.Field(), kind, fe.Param()),
	}
}

func kindFor(tag string) ViolationKind {
	switch tag {
	case "required":
		return ViolationMissing
	case "min":
		return ViolationTooShort
	case "email":
		return ViolationInvalidEmail
	default:
		return ViolationInvalid
	}
}

func messageFor(field string, kind ViolationKind, param string) string {
	switch kind {
	case ViolationMissing:
		return field + " is required"
	case ViolationWrongType:
		return field + " must be a string"
	case ViolationTooShort:
		return field + " must be at least " + param + " characters"
	case ViolationInvalidEmail:
		return "Invalid email format"
	default:
		return field + " is invalid"
	}
}
