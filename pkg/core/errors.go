package core

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can react without parsing messages.
type Kind string

const (
	KindConnection Kind = "connection"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindExists     Kind = "exists"
	KindInvalid    Kind = "invalid"
	KindLocalIO    Kind = "local_io"
	KindRemote     Kind = "remote"
)

// Common errors.
var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
	ErrAuth     = errors.New("authentication failed")
	ErrInvalid  = errors.New("invalid argument")
)

// Error is the single failure type returned by every Service operation.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrExists:
		return e.Kind == KindExists
	case ErrAuth:
		return e.Kind == KindAuth
	case ErrInvalid:
		return e.Kind == KindInvalid
	}
	return false
}

// NewError builds an *Error. Adapters use it to report classified failures.
func NewError(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// KindOf reports the kind of err. Unclassified errors are KindRemote.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindRemote
}

// wrap attaches op and path to err, preserving any kind an adapter already assigned.
func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		inner := e.Err
		if inner == nil {
			inner = errors.New(string(e.Kind))
		}
		return &Error{Kind: e.Kind, Op: op, Path: path, Err: inner}
	}
	return &Error{Kind: KindRemote, Op: op, Path: path, Err: err}
}

func invalidf(op, format string, args ...any) error {
	return &Error{Kind: KindInvalid, Op: op, Err: fmt.Errorf(format, args...)}
}
