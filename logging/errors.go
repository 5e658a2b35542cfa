package logging

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison using errors.Is().
// These are generic errors that can be wrapped with additional context.
var (
	// Configuration errors
	ErrConfigLoad           = errors.New("logging configuration could not be loaded")
	ErrInvalidLevel         = errors.New("invalid log level")
	ErrMissingConfiguration = errors.New("missing required logging configuration")

	// Path resolution errors
	ErrProjectRootNotFound = errors.New("project root not found")
)

// Error provides structured error information with context.
// It implements the error interface and supports error wrapping.
type Error struct {
	Op      string // Operation that failed (e.g., "logging.GetLogger")
	Kind    string // Error kind (e.g., "config", "path", "filesystem")
	Message string // Human-readable message
	Err     error  // Underlying error for wrapping
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Op != "" && e.Err != nil {
		if e.Message != "" {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s error", e.Kind)
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsConfigurationError checks if an error is configuration-related.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfigLoad) ||
		errors.Is(err, ErrInvalidLevel) ||
		errors.Is(err, ErrMissingConfiguration)
}
