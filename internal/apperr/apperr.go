// Package apperr defines the error kinds surfaced by the API and their
// HTTP status codes.
package apperr

import (
	"errors"
	"net/http"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindInvalidCredentials
	KindUnauthenticated
	KindBadRequest
)

// InternalMessage is the only message returned for unexpected failures.
const InternalMessage = "Server Error"

// Error is an error with a public message. The wrapped cause is for logs
// and is never written to a response.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same kind and message, so wrapped copies
// of a sentinel still satisfy errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Wrap returns a copy of e carrying err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{Kind: e.Kind, Msg: e.Msg, Err: err}
}

var (
	ErrProductNotFound    = New(KindNotFound, "Product not found")
	ErrUserExists         = New(KindConflict, "User already exists")
	ErrInvalidCredentials = New(KindInvalidCredentials, "Invalid credentials")
	ErrNoToken            = New(KindUnauthenticated, "Not authorized, no token")
	ErrTokenFailed        = New(KindUnauthenticated, "Not authorized, token failed")
	ErrMissingCredentials = New(KindBadRequest, "Email and password are required")
	ErrInvalidBody        = New(KindBadRequest, "Invalid request body")
)

func StatusForKind(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindInvalidCredentials, KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Resolve returns the status code and public message for err. Errors that
// are not an *Error anywhere in the chain resolve to 500 "Server Error".
func Resolve(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return StatusForKind(appErr.Kind), appErr.Msg
	}
	return http.StatusInternalServerError, InternalMessage
}
