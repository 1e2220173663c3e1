package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormKind_Collection(t *testing.T) {
	tests := []struct {
		kind     FormKind
		expected string
	}{
		{FormKindRecoveryRequest, "recoveryrequest"},
		{FormKindContactMessage, "contactmessage"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			for i := 0; i < 3; i++ {
				got, err := tt.kind.Collection()
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestFormKind_CollectionIsLowercaseTypeName(t *testing.T) {
	for _, k := range FormKinds() {
		got, err := k.Collection()
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(string(k)), got)
	}
}

func TestFormKind_EveryKindHasRecordAndCollection(t *testing.T) {
	assert.Len(t, FormKinds(), len(collections))

	for _, k := range FormKinds() {
		assert.True(t, k.Valid())

		rec, err := NewRecord(k)
		require.NoError(t, err)
		assert.Equal(t, k, rec.Kind())
	}
}

func TestFormKind_Unknown(t *testing.T) {
	k := FormKind("Newsletter")
	assert.False(t, k.Valid())

	_, err := k.Collection()
	assert.Error(t, err)

	_, err = NewRecord(k)
	assert.Error(t, err)
}

func TestParseFormKind(t *testing.T) {
	for _, alias := range []string{"recovery", "recoveryrequest", "RecoveryRequest"} {
		k, err := ParseFormKind(alias)
		require.NoError(t, err)
		assert.Equal(t, FormKindRecoveryRequest, k)
	}
	for _, alias := range []string{"contact", "contactmessage", "ContactMessage"} {
		k, err := ParseFormKind(alias)
		require.NoError(t, err)
		assert.Equal(t, FormKindContactMessage, k)
	}

	_, err := ParseFormKind("feedback")
	assert.Error(t, err)

	for _, k := range FormKinds() {
		got, err := ParseFormKind(" " + k.Alias() + " ")
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestDocument_ID(t *testing.T) {
	assert.Equal(t, "abc", Document{IDField: "abc"}.ID())
	assert.Equal(t, "", Document{}.ID())
	assert.Equal(t, "", Document{IDField: 42}.ID())
}

func TestRecoveryRequest_Fields(t *testing.T) {
	amount := "0.5"
	req := RecoveryRequest{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		WalletType:   "Ledger",
		Asset:        "BTC",
		Amount:       &amount,
		IncidentType: "Phishing",
		Details:      "Clicked a fake support link.",
	}

	fields := req.Fields()
	assert.Len(t, fields, 8)
	assert.Equal(t, "0.5", fields["amount"])
	assert.Nil(t, fields["contact_preference"])
	assert.Contains(t, fields, "contact_preference")
	assert.Equal(t, "Phishing", fields["incident_type"])
}

func TestContactMessage_Fields(t *testing.T) {
	fields := ContactMessage{Name: "Anna", Email: "anna@example.com", Message: "Hallo"}.Fields()
	assert.Equal(t, map[string]any{"name": "Anna", "email": "anna@example.com", "message": "Hallo"}, fields)
}
