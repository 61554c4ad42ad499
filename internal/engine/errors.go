package engine

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes validation failures.
type ErrorKind string

const (
	// KindInvalidSpan indicates a non-positive beam length.
	KindInvalidSpan ErrorKind = "INVALID_SPAN"

	// KindOutOfBounds indicates a load position or range outside [0, L].
	KindOutOfBounds ErrorKind = "OUT_OF_BOUNDS"

	// KindDegenerateRange indicates a distributed load whose start
	// equals its end.
	KindDegenerateRange ErrorKind = "DEGENERATE_RANGE"

	// KindDegenerateSupportSpan indicates a simply supported beam
	// whose two supports coincide.
	KindDegenerateSupportSpan ErrorKind = "DEGENERATE_SUPPORT_SPAN"

	// KindInvalidInput indicates a field that could not be
	// interpreted as a number or an unrecognized tag.
	KindInvalidInput ErrorKind = "INVALID_INPUT"
)

// ValidationError is a rejected input. It is always recoverable: the
// caller declines the offending value and reports the message.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(kind ErrorKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of a (possibly wrapped) ValidationError,
// or the empty string when err is not a validation error.
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}
