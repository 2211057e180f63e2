// Package identifier validates and canonicalizes Guyana-specific identifiers:
// TINs, NIS numbers, VAT registrations, phone numbers, national IDs and
// passports. Validation never fails with a Go error; malformed input produces
// a structured result suitable for in-form display.
package identifier

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind names an identifier type.
type Kind string

const (
	KindTIN        Kind = "tin"
	KindNIS        Kind = "nis"
	KindVAT        Kind = "vat"
	KindPhone      Kind = "phone"
	KindNationalID Kind = "national_id"
	KindPassport   Kind = "passport"
)

// Kinds lists every supported identifier kind.
var Kinds = []Kind{KindTIN, KindNIS, KindVAT, KindPhone, KindNationalID, KindPassport}

// ParseKind parses an identifier kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown identifier kind %q", s)
}

// Result is the outcome of a validation. When Valid, Formatted holds the
// canonical representation; formatting an already-canonical value returns it
// unchanged. When invalid, Err holds a per-field message.
type Result struct {
	Valid     bool
	Err       string
	Formatted string
}

func invalid(format string, args ...any) Result {
	return Result{Err: fmt.Sprintf(format, args...)}
}

func valid(formatted string) Result {
	return Result{Valid: true, Formatted: formatted}
}

var (
	tinPattern        = regexp.MustCompile(`^\d{9}$`)
	nisPattern        = regexp.MustCompile(`^[A-Za-z]?(\d{8})$`)
	vatPattern        = regexp.MustCompile(`^(?:VAT-?)?(\d{9})$`)
	nationalIDPattern = regexp.MustCompile(`^\d{9}$`)
	passportPattern   = regexp.MustCompile(`^[Rr](\d{7})$`)
	subscriberPattern = regexp.MustCompile(`^[2-9]\d{6}$`)
	separators        = regexp.MustCompile(`[\s\-.()/]`)
)

// Validate checks raw against the canonical format for kind.
func Validate(kind Kind, raw string) Result {
	value := strings.TrimSpace(raw)
	if value == "" {
		return invalid("value is required")
	}
	switch kind {
	case KindTIN:
		return validateTIN(value)
	case KindNIS:
		return validateNIS(value)
	case KindVAT:
		return validateVAT(value)
	case KindPhone:
		return validatePhone(value)
	case KindNationalID:
		return validateNationalID(value)
	case KindPassport:
		return validatePassport(value)
	}
	return invalid("unknown identifier kind %q", kind)
}

func validateTIN(value string) Result {
	cleaned := separators.ReplaceAllString(value, "")
	if !tinPattern.MatchString(cleaned) {
		return invalid("TIN must be exactly 9 digits")
	}
	return valid(cleaned)
}

// validateNIS accepts the legacy card prefix (a single letter) but the
// canonical form is the bare 8-digit registration number.
func validateNIS(value string) Result {
	cleaned := separators.ReplaceAllString(value, "")
	m := nisPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return invalid("NIS number must be 8 digits, optionally prefixed with a letter")
	}
	return valid(m[1])
}

func validateVAT(value string) Result {
	cleaned := separators.ReplaceAllString(strings.ToUpper(value), "")
	m := vatPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return invalid("VAT registration must be 9 digits")
	}
	return valid(m[1])
}

// validatePhone normalizes a Guyana number to +592 followed by the 7-digit
// subscriber number. Accepted inputs: +592XXXXXXX, 592XXXXXXX, 0XXXXXXX and
// the bare subscriber number, with any spacing or punctuation.
func validatePhone(value string) Result {
	cleaned := separators.ReplaceAllString(value, "")
	switch {
	case strings.HasPrefix(cleaned, "+592"):
		cleaned = cleaned[4:]
	case strings.HasPrefix(cleaned, "592") && len(cleaned) == 10:
		cleaned = cleaned[3:]
	case strings.HasPrefix(cleaned, "0") && len(cleaned) == 8:
		cleaned = cleaned[1:]
	}
	if !subscriberPattern.MatchString(cleaned) {
		return invalid("phone must be a 7-digit Guyana number, optionally prefixed with +592, 592 or 0")
	}
	return valid("+592" + cleaned)
}

func validateNationalID(value string) Result {
	cleaned := separators.ReplaceAllString(value, "")
	if !nationalIDPattern.MatchString(cleaned) {
		return invalid("national ID must be exactly 9 digits")
	}
	return valid(cleaned)
}

func validatePassport(value string) Result {
	cleaned := separators.ReplaceAllString(value, "")
	m := passportPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return invalid("passport must be the letter R followed by 7 digits")
	}
	return valid("R" + m[1])
}
