package domain

import "fmt"

// ConfigurationError is the only error class that aborts a compile: unknown
// cadence, missing identifiers, or a domain outside the contracted set.
// Everything else degrades into the output structure itself.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// NewConfigurationError builds a ConfigurationError for the given field.
func NewConfigurationError(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
