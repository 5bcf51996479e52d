// Package apperr carries the domain error taxonomy shared by services and the
// HTTP layer.
package apperr

import "errors"

type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindUnauthorized
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a domain failure with a message that is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches any *Error of the same kind, so callers can write
// errors.Is(err, apperr.ErrNotFound).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrBadRequest   = &Error{Kind: KindBadRequest, Message: "bad request"}
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrNotFound     = &Error{Kind: KindNotFound, Message: "not found"}
	ErrConflict     = &Error{Kind: KindConflict, Message: "conflict"}
)

func BadRequest(msg string) error   { return &Error{Kind: KindBadRequest, Message: msg} }
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Message: msg} }
func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) error     { return &Error{Kind: KindConflict, Message: msg} }

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// MessageOf returns the client message of the first *Error in err's chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
