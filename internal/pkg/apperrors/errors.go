package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrValidationFailed is the base error every ValidationError unwraps to.
	ErrValidationFailed = errors.New("validation failed")

	// ErrEmailAlreadyExists surfaces the students.email uniqueness constraint.
	// It is an error, never an empty result, so callers can tell it apart
	// from a not-found outcome.
	ErrEmailAlreadyExists = errors.New("student with this email already exists")
)

// ValidationError reports which field failed validation. It is always raised
// before any persistence call, so observing one means no side effect occurred.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s", e.Field)
}

// Unwrap makes every ValidationError match ErrValidationFailed with errors.Is
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidation reports whether err is a validation failure of any field
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}
