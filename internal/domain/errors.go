package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	// Message optionally overrides the summary returned to clients.
	Message string
	Fields  map[string]string
}

// NewFieldError returns a ValidationError for a single field.
func NewFieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, field := range names {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports that the entity with the given ID does not exist.
// Message is the client-facing text, already resolved from the message catalog.
type NotFoundError struct {
	ID      int64
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("entity %d %s", e.ID, ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
