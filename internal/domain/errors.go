package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound signals a missing device record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID signals an identifier that is not a valid shape for the store.
	ErrInvalidID = errors.New("invalid id format")
	// ErrStoreUnavailable signals that the document store is not configured or reachable.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// FieldError describes a single failed validation constraint.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError wraps per-field validation failures on an incoming record.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
