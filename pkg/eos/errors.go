package eos

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by this package wraps one of these.
var (
	ErrSyntax             = errors.New("malformed fluid descriptor")
	ErrUnknownFluid       = errors.New("unknown fluid")
	ErrUnsupportedBackend = errors.New("unsupported backend")
	ErrComposition        = errors.New("invalid composition")
	ErrOutOfRange         = errors.New("state out of range")
	ErrUnsupportedInput   = errors.New("unsupported property")
	ErrNoSolution         = errors.New("no physical solution")
)

// Error is a property evaluation failure with a readable diagnostic.
type Error struct {
	Kind       error
	Descriptor string
	Detail     string
}

func (e *Error) Error() string {
	if e.Descriptor == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%v: %s (fluid %q)", e.Kind, e.Detail, e.Descriptor)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, descriptor, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Descriptor: descriptor, Detail: fmt.Sprintf(format, args...)}
}
