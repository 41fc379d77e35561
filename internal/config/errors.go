package config

import (
	"fmt"
	"strings"
)

// ConfigError is a single problem found while loading or validating the
// configuration.
type ConfigError struct {
	FilePath   string // empty for flag-only configuration
	Field      string // yaml key, empty for file-level errors
	Message    string
	Suggestion string
}

// Error implements the error interface
func (e ConfigError) Error() string {
	var b strings.Builder
	if e.FilePath != "" {
		b.WriteString(e.FilePath)
		b.WriteString(": ")
	}
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

// DetailedError returns the message with the suggestion, if any.
func (e ConfigError) DetailedError() string {
	if e.Suggestion == "" {
		return e.Error()
	}
	return e.Error() + "\n  Suggestion: " + e.Suggestion
}

// ValidationErrors holds every problem found by Validate.
type ValidationErrors []ConfigError

// Error implements the error interface for the collection
func (v ValidationErrors) Error() string {
	switch len(v) {
	case 0:
		return "no configuration errors"
	case 1:
		return v[0].Error()
	default:
		return fmt.Sprintf("%d configuration errors: %s (and %d more)", len(v), v[0].Error(), len(v)-1)
	}
}

// DetailedError lists every error with its suggestion.
func (v ValidationErrors) DetailedError() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, "- "+e.DetailedError())
	}
	return strings.Join(parts, "\n")
}
