// Package ocrerr defines the tagged error taxonomy shared by every pipeline
// stage: configuration errors, input-validation errors, and inference
// errors.
package ocrerr

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// Config marks a fatal error in pipeline/component construction:
	// a missing inference capability, model buffer, or dictionary.
	Config Kind = iota
	// Input marks a fatal per-call validation error: bad channel count,
	// out-of-bounds crop, a resize call missing both dimensions, etc.
	Input
	// Inference marks a failure attributable to the inference engine or an
	// incompatible model (e.g. a missing output tensor the caller required).
	Inference
)

func (k Kind) String() string {
	switch k {
	case Config:
		return "config"
	case Input:
		return "input"
	case Inference:
		return "inference"
	default:
		return "unknown"
	}
}

// Error is a tagged error carrying the operation that failed and the
// underlying cause.
type Error struct {
	Kind      Kind
	Operation string
	Err       error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s error in %s", e.Kind, e.Operation)
	}
	return fmt.Sprintf("%s error in %s: %v", e.Kind, e.Operation, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs a tagged error.
func New(kind Kind, operation, message string) *Error {
	return &Error{Kind: kind, Operation: operation, Err: errors.New(message)}
}

// Wrap constructs a tagged error around an existing cause.
func Wrap(kind Kind, operation string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Operation: operation, Err: err}
}

// Wrapf constructs a tagged error with a formatted cause.
func Wrapf(kind Kind, operation, format string, args ...any) *Error {
	return &Error{Kind: kind, Operation: operation, Err: fmt.Errorf(format, args...)}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
