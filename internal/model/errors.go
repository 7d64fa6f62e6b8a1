package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidPlayer  = errors.New("invalid player")

	// ErrInvalidField matches every *FieldError via errors.Is
	ErrInvalidField = errors.New("invalid field")
)

// FieldError reports a single attribute that failed its constraint
type FieldError struct {
	Field  string
	Reason string
}

// NewFieldError creates a FieldError for the named field
func NewFieldError(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

// Error implements error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidField) true for any FieldError
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}
