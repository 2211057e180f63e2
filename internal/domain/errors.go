package domain

import (
	"fmt"
	"time"
)

// ValidationError reports a malformed or out-of-range user input. It is
// recoverable: callers surface it per-field and let the user correct the
// value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a single input field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// UnsupportedPeriodError reports that no rate table covers the requested
// effective date. Computing with no applicable rates is unsafe, so this is a
// hard failure rather than a per-field input problem.
type UnsupportedPeriodError struct {
	Date time.Time
}

func (e *UnsupportedPeriodError) Error() string {
	return fmt.Sprintf("no rate table covers %s", e.Date.Format("2006-01-02"))
}

// ConfigurationError reports malformed rate-table data: overlapping periods,
// gapped brackets, negative rates. It indicates a systemic data problem and is
// detected at load time, never per calculation.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "rate table configuration: " + e.Reason
}

// NewConfigurationError creates a configuration error.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
