// Package apperr defines the application error kinds shared by the services
// and the HTTP layer. Services return *Error; handlers turn it into a status
// code and the {"error": "..."} envelope.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindBackend
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// Status maps a kind to its HTTP status. Conflicts are reported as 422 to
// match the rest of the client-input errors.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindConflict:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string, cause error) *Error {
	return &Error{Kind: KindConflict, Message: msg, Err: cause}
}

// Backend wraps a gateway failure. The raw cause text is the message so it
// reaches the response body.
func Backend(err error) *Error {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &Error{Kind: KindBackend, Message: msg, Err: err}
}

// From returns err as an *Error, treating anything unclassified as a
// backend failure.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Backend(err)
}
