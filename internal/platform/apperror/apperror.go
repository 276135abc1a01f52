// Package apperror defines the error taxonomy shared by every feature and
// converts errors into the uniform {"error": ...} HTTP response.
package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error for the transport layer.
type Kind string

const (
	KindInternal        Kind = "INTERNAL"
	KindValidation      Kind = "VALIDATION"
	KindDuplicate       Kind = "DUPLICATE"
	KindConflict        Kind = "CONFLICT"
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindForbidden       Kind = "FORBIDDEN"
	KindNotFound        Kind = "NOT_FOUND"
	KindRateLimited     Kind = "RATE_LIMITED"
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindDuplicate, KindConflict:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified error. Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error with the same kind and message, so sentinel
// values keep working after Wrap.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// New creates a classified error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a classified error carrying an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Validation is a shorthand for a 400 with a client message.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// NotFound is a shorthand for a 404 with a client message.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Forbidden is a shorthand for a 403 with a client message.
func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

// KindOf reports the kind of err, KindInternal when err is not classified.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// FromBinding classifies a request binding failure. Validator errors pass
// through so their field details reach the client; anything else (malformed
// JSON, wrong types, empty body) becomes a 400 with message.
func FromBinding(err error, message string) error {
	if err == nil {
		return nil
	}
	if isValidationErrors(err) {
		return err
	}
	return Wrap(KindValidation, message, err)
}
