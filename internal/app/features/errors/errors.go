// internal/app/features/errors/errors.go
package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/dalemusser/coursehub/internal/app/store/docstore"
)

// Kind classifies a failure for the client.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindForbidden
	KindBadRequest
	KindUnavailable
	KindTooManyRequests
)

// Status returns the HTTP status for k. Conflict answers 400 to stay
// compatible with existing clients of the registration endpoint.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindBadRequest:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is a client-visible failure. Msg goes to the client; Err stays in logs.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Msg: msg} }
func Forbidden(msg string) *Error  { return &Error{Kind: KindForbidden, Msg: msg} }
func BadRequest(msg string) *Error { return &Error{Kind: KindBadRequest, Msg: msg} }

func TooManyRequests(msg string) *Error { return &Error{Kind: KindTooManyRequests, Msg: msg} }

// Unavailable wraps a store failure.
func Unavailable(err error) *Error {
	return &Error{Kind: KindUnavailable, Msg: "Database not available", Err: err}
}

// Internal wraps an unexpected failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "Internal server error", Err: err}
}

// As extracts an *Error from err, treating anything else as internal.
func As(err error) *Error {
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return Internal(err)
}

// FromStore maps a store failure: an unreachable or unconfigured store is
// Unavailable, anything else is Internal.
func FromStore(err error) *Error {
	if stderrors.Is(err, docstore.ErrUnavailable) {
		return Unavailable(err)
	}
	return Internal(err)
}
