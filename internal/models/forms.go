package models

import (
	"fmt"
	"strings"
)

// FormKind tags a Form Record variant
type FormKind string

const (
	FormKindRecoveryRequest FormKind = "RecoveryRequest"
	FormKindContactMessage  FormKind = "ContactMessage"
)

// collections maps every form variant to its target collection. The name is
// the lowercase variant name and must never change once data exists.
var collections = map[FormKind]string{
	FormKindRecoveryRequest: "recoveryrequest",
	FormKindContactMessage:  "contactmessage",
}

// aliases are the short names accepted by the CLI and routes
var aliases = map[FormKind]string{
	FormKindRecoveryRequest: "recovery",
	FormKindContactMessage:  "contact",
}

// FormKinds lists every known variant in a stable order
func FormKinds() []FormKind {
	return []FormKind{FormKindRecoveryRequest, FormKindContactMessage}
}

// Collection returns the collection name for k
func (k FormKind) Collection() (string, error) {
	name, ok := collections[k]
	if !ok {
		return "", fmt.Errorf("unknown form kind %q", string(k))
	}
	return name, nil
}

// Alias returns the short name of k used by the CLI and routes
func (k FormKind) Alias() string {
	return aliases[k]
}

// Valid reports whether k is a known variant
func (k FormKind) Valid() bool {
	_, ok := collections[k]
	return ok
}

// ParseFormKind resolves a CLI or route alias ("recovery", "contact") or a
// collection name to its variant
func ParseFormKind(s string) (FormKind, error) {
	s = strings.TrimSpace(s)
	for _, k := range FormKinds() {
		if s == k.Alias() || s == collections[k] || s == string(k) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown form kind %q", s)
}

// FormRecord is a validated, typed representation of one submitted form
type FormRecord interface {
	Kind() FormKind
	// Fields returns the stored representation keyed by JSON field name.
	// Absent optional values are nil.
	Fields() map[string]any
}

// RecoveryRequest is a request to help recover lost crypto assets.
// IncidentType is intentionally open; the frontend offers Phishing,
// Seed verloren, Betrug, Technischer Fehler and Sonstiges.
type RecoveryRequest struct {
	Name              string  `json:"name" bson:"name" validate:"required,min=2"`
	Email             string  `json:"email" bson:"email" validate:"required,email"`
	WalletType        string  `json:"wallet_type" bson:"wallet_type" validate:"required"`
	Asset             string  `json:"asset" bson:"asset" validate:"required"`
	Amount            *string `json:"amount" bson:"amount"`
	IncidentType      string  `json:"incident_type" bson:"incident_type" validate:"required"`
	Details           string  `json:"details" bson:"details" validate:"required,min=10"`
	ContactPreference *string `json:"contact_preference" bson:"contact_preference"`
}

// Kind implements FormRecord
func (RecoveryRequest) Kind() FormKind { return FormKindRecoveryRequest }

// Fields implements FormRecord
func (r RecoveryRequest) Fields() map[string]any {
	return map[string]any{
		"name":               r.Name,
		"email":              r.Email,
		"wallet_type":        r.WalletType,
		"asset":              r.Asset,
		"amount":             optional(r.Amount),
		"incident_type":      r.IncidentType,
		"details":            r.Details,
		"contact_preference": optional(r.ContactPreference),
	}
}

// ContactMessage is a general message sent through the contact form
type ContactMessage struct {
	Name    string `json:"name" bson:"name" validate:"required,min=2"`
	Email   string `json:"email" bson:"email" validate:"required,email"`
	Message string `json:"message" bson:"message" validate:"required,min=5"`
}

// Kind implements FormRecord
func (ContactMessage) Kind() FormKind { return FormKindContactMessage }

// Fields implements FormRecord
func (m ContactMessage) Fields() map[string]any {
	return map[string]any{
		"name":    m.Name,
		"email":   m.Email,
		"message": m.Message,
	}
}

func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// NewRecord returns an empty record for k, ready to be populated
func NewRecord(k FormKind) (FormRecord, error) {
	switch k {
	case FormKindRecoveryRequest:
		return &RecoveryRequest{}, nil
	case FormKindContactMessage:
		return &ContactMessage{}, nil
	default:
		return nil, fmt.Errorf("unknown form kind %q", string(k))
	}
}
