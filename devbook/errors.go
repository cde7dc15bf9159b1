package devbook

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrInvalidInput   ErrorKind = "invalid_input"
	ErrIndexRange     ErrorKind = "index_out_of_range"
	ErrNotFound       ErrorKind = "not_found"
	ErrMalformedField ErrorKind = "malformed_field"
	ErrIO             ErrorKind = "io"
)

type Error struct {
	Kind    ErrorKind
	Message string
	Field   string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	base := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Field != "" {
		base = fmt.Sprintf("%s (field=%s)", base, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", base, e.Cause)
	}
	return base
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

func InvalidInputError(msg string) *Error {
	return &Error{Kind: ErrInvalidInput, Message: msg}
}

func IndexRangeError(index, length int) *Error {
	return &Error{Kind: ErrIndexRange, Message: fmt.Sprintf("index %d out of range (have %d fields)", index, length)}
}

func NotFoundError(id int) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("record %d not found", id)}
}

func MalformedFieldError(msg string) *Error {
	return &Error{Kind: ErrMalformedField, Message: msg}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
