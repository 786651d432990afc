// Package apperr holds the error kinds shared by every bounded context.
// Domain packages keep their own sentinel errors and wrap one of these kinds
// so transports can map them to a status without knowing every sentinel.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnauthenticated means the credential is missing, invalid or expired.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden means the caller is authenticated but not permitted.
	ErrForbidden = errors.New("not permitted")
	// ErrNotFound means the addressed entity does not exist or is not visible.
	ErrNotFound = errors.New("not found")
	// ErrConflict means the write collides with existing state (duplicate email, license).
	ErrConflict = errors.New("conflict")
)

// Kind wraps a domain sentinel with one of the kinds above while keeping
// both reachable through errors.Is.
func Kind(kind, err error) error {
	return &kindError{kind: kind, err: err}
}

type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }

func (e *kindError) Unwrap() []error { return []error{e.err, e.kind} }

// ValidationError collects per-field messages for malformed or out-of-range input.
type ValidationError struct {
	Fields map[string]string
}

// NewValidation creates an empty ValidationError.
func NewValidation() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Invalid returns a ValidationError for a single field.
func Invalid(field, message string) *ValidationError {
	v := NewValidation()
	v.Add(field, message)
	return v
}

// Add records a message for field. The first message per field wins.
func (v *ValidationError) Add(field, message string) {
	if _, exists := v.Fields[field]; !exists {
		v.Fields[field] = message
	}
}

// Merge copies the fields of other into v.
func (v *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for f, m := range other.Fields {
		v.Add(f, m)
	}
}

// HasErrors reports whether any field failed.
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// OrNil returns v as an error when it holds failures, nil otherwise.
func (v *ValidationError) OrNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation extracts a ValidationError from err.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
