package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		kind      Kind
		raw       string
		valid     bool
		formatted string
	}{
		{name: "TIN plain", kind: KindTIN, raw: "123456789", valid: true, formatted: "123456789"},
		{name: "TIN with separators", kind: KindTIN, raw: "123-456-789", valid: true, formatted: "123456789"},
		{name: "TIN too short", kind: KindTIN, raw: "12345678", valid: false},
		{name: "TIN with letters", kind: KindTIN, raw: "12345678X", valid: false},

		{name: "NIS plain", kind: KindNIS, raw: "12345678", valid: true, formatted: "12345678"},
		{name: "NIS with card prefix", kind: KindNIS, raw: "A12345678", valid: true, formatted: "12345678"},
		{name: "NIS too long", kind: KindNIS, raw: "123456789", valid: false},

		{name: "VAT plain", kind: KindVAT, raw: "987654321", valid: true, formatted: "987654321"},
		{name: "VAT with prefix", kind: KindVAT, raw: "VAT-987654321", valid: true, formatted: "987654321"},
		{name: "VAT lowercase prefix", kind: KindVAT, raw: "vat987654321", valid: true, formatted: "987654321"},
		{name: "VAT wrong length", kind: KindVAT, raw: "98765432", valid: false},

		{name: "phone international", kind: KindPhone, raw: "+592 623 4567", valid: true, formatted: "+5926234567"},
		{name: "phone country code no plus", kind: KindPhone, raw: "5926234567", valid: true, formatted: "+5926234567"},
		{name: "phone trunk zero", kind: KindPhone, raw: "0623-4567", valid: true, formatted: "+5926234567"},
		{name: "phone bare subscriber", kind: KindPhone, raw: "623 4567", valid: true, formatted: "+5926234567"},
		{name: "phone bad leading digit", kind: KindPhone, raw: "123 4567", valid: false},
		{name: "phone too short", kind: KindPhone, raw: "62345", valid: false},
		{name: "phone foreign", kind: KindPhone, raw: "+44 20 7946 0000", valid: false},

		{name: "national ID", kind: KindNationalID, raw: "456789123", valid: true, formatted: "456789123"},
		{name: "national ID short", kind: KindNationalID, raw: "45678912", valid: false},

		{name: "passport upper", kind: KindPassport, raw: "R1234567", valid: true, formatted: "R1234567"},
		{name: "passport lower", kind: KindPassport, raw: "r1234567", valid: true, formatted: "R1234567"},
		{name: "passport wrong letter", kind: KindPassport, raw: "G1234567", valid: false},
		{name: "passport wrong length", kind: KindPassport, raw: "R123456", valid: false},

		{name: "empty value", kind: KindTIN, raw: "   ", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.kind, tt.raw)
			assert.Equal(t, tt.valid, res.Valid, "err: %s", res.Err)
			if tt.valid {
				assert.Equal(t, tt.formatted, res.Formatted)
				assert.Empty(t, res.Err)
			} else {
				assert.NotEmpty(t, res.Err)
				assert.Empty(t, res.Formatted)
			}
		})
	}
}

func TestFormattingIsIdempotent(t *testing.T) {
	// Validating an already-canonical value returns the identical string.
	samples := map[Kind]string{
		KindTIN:        "123-456-789",
		KindNIS:        "A 1234 5678",
		KindVAT:        "VAT-987654321",
		KindPhone:      "0623 4567",
		KindNationalID: "456 789 123",
		KindPassport:   "r1234567",
	}

	for kind, raw := range samples {
		first := Validate(kind, raw)
		require.True(t, first.Valid, "%s: %s", kind, first.Err)

		second := Validate(kind, first.Formatted)
		require.True(t, second.Valid, "%s: %s", kind, second.Err)
		assert.Equal(t, first.Formatted, second.Formatted, "kind %s not idempotent", kind)
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds {
		parsed, err := ParseKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseKind("driver_licence")
	assert.Error(t, err)
}

func TestValidateNeverPanics(t *testing.T) {
	hostile := []string{"", "\x00", "٩٩٩٩٩٩٩٩٩", "++592", "VAT-", "R", "😀😀😀😀😀😀😀"}
	for _, kind := range Kinds {
		for _, raw := range hostile {
			assert.NotPanics(t, func() { Validate(kind, raw) }, "kind %s raw %q", kind, raw)
		}
	}
}
