package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for exit-code mapping.
type Kind int

const (
	KindConfig Kind = iota + 1
	KindEncoding
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindEncoding:
		return "encoding"
	case KindIO:
		return "io"
	}
	return "unknown"
}

// Error carries a kind alongside the message and an optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Config reports invalid options, caught before any generation work begins.
func Config(format string, args ...interface{}) error {
	return &Error{Kind: KindConfig, Msg: fmt.Sprintf(format, args...)}
}

// Encoding wraps a failure to render a payload as a QR symbol.
func Encoding(err error, format string, args ...interface{}) error {
	return &Error{Kind: KindEncoding, Msg: fmt.Sprintf(format, args...), Err: err}
}

// IO wraps a filesystem or document-write failure.
func IO(err error, format string, args ...interface{}) error {
	return &Error{Kind: KindIO, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of err, or 0 if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
