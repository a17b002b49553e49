// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error
// kinds and human-friendly messages, so that callers can react to a category
// (retry, surface, abort) without matching on error strings.
//
// The package supports wrapping underlying errors while maintaining error kind
// information, making it easier to handle different types of failures appropriately.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// ConnectionTimeout indicates the connection handshake exceeded its bound.
	ConnectionTimeout Kind = "connection_timeout"
	// ConnectionError indicates a transport-level failure.
	ConnectionError Kind = "connection_error"
	// MalformedFrame indicates a frame without a header delimiter or with an
	// unparsable header.
	MalformedFrame Kind = "malformed_frame"
	// ProtocolError indicates the server sent a frame kind this client does not know.
	ProtocolError Kind = "protocol_error"
	// RequestError indicates the server failed a specific request; the message
	// carries the frame body.
	RequestError Kind = "request_error"
	// SessionError indicates a session-level fault addressed to all consumers.
	SessionError Kind = "session_error"
	// Closed indicates use of a session after Close.
	Closed Kind = "closed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Is reports whether err (or anything it wraps) carries the given kind.
func Is(err error, kind Kind) bool {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
