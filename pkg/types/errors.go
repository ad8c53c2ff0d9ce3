// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrorKind names one class of the error taxonomy shared by all tools.
type ErrorKind string

const (
	KindInvalidParameter ErrorKind = "InvalidParameter"
	KindTimeout          ErrorKind = "TimeoutError"
	KindHTTP             ErrorKind = "HTTPError"
	KindNetwork          ErrorKind = "NetworkError"
	KindMalformedFeed    ErrorKind = "MalformedFeed"
	KindPaperNotFound    ErrorKind = "PaperNotFound"
)

// Sentinels for errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrInvalidParameter = &Error{Kind: KindInvalidParameter}
	ErrTimeout          = &Error{Kind: KindTimeout}
	ErrHTTP             = &Error{Kind: KindHTTP}
	ErrNetwork          = &Error{Kind: KindNetwork}
	ErrMalformedFeed    = &Error{Kind: KindMalformedFeed}
	ErrPaperNotFound    = &Error{Kind: KindPaperNotFound}
)

// Error is the typed error returned by every stage. StatusCode is set for
// KindHTTP only.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same Kind, so callers can test against the
// package sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// InvalidParameter returns a KindInvalidParameter error with a formatted message.
func InvalidParameter(format string, args ...any) error {
	return &Error{Kind: KindInvalidParameter, Message: fmt.Sprintf(format, args...)}
}

// PaperNotFound returns a KindPaperNotFound error for id.
func PaperNotFound(id string) error {
	return &Error{Kind: KindPaperNotFound, Message: fmt.Sprintf("no paper with id %q", id)}
}

// MalformedFeed wraps a decoding failure.
func MalformedFeed(err error) error {
	return &Error{Kind: KindMalformedFeed, Message: fmt.Sprintf("decoding feed: %v", err), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" when
// err carries none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsTransport reports whether err is a timeout, HTTP or network failure.
func IsTransport(err error) bool {
	switch KindOf(err) {
	case KindTimeout, KindHTTP, KindNetwork:
		return true
	}
	return false
}
