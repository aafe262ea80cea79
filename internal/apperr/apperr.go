// Package apperr defines the error taxonomy shared by the service layer
// and the HTTP handlers. Each kind maps to exactly one response shape.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	// KindNotFound means a referenced entity does not exist.
	KindNotFound Kind = iota
	// KindValidation means a request field is missing or malformed.
	KindValidation
	// KindConflict means the request collides with existing state.
	KindConflict
	// KindStorage means the storage layer rejected an operation; the
	// underlying driver error text is passed through to the caller.
	KindStorage
	// KindInternal covers anything unanticipated.
	KindInternal
)

// Error is a classified service error.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NotFound reports a missing entity.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation reports a missing or malformed input field.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a collision with existing state.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Storage wraps a storage-layer rejection, keeping the driver detail.
func Storage(cause error) *Error {
	return &Error{Kind: KindStorage, Message: "Database error", Cause: cause}
}

// Internal wraps an unanticipated failure.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Cause: cause}
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
