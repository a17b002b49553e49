// Package wire implements the framing used on the Superchain websocket: each
// message is a UTF-8 JSON header line terminated by a newline, followed by an
// opaque binary body. The body is never interpreted here; its encoding is
// whatever the originating request asked for.
package wire

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"

	cerr "superchain/client/internal/errors"
)

// Kind enumerates the response frame kinds the server may send.
type Kind string

const (
	// KindStart acknowledges that the server accepted a request. Carries no data.
	KindStart Kind = "Start"
	// KindContinue carries a chunk of response data, and possibly a new cursor.
	KindContinue Kind = "Continue"
	// KindContinueWithError carries data alongside a partial, recoverable error.
	KindContinueWithError Kind = "ContinueWithError"
	// KindEnd terminates a stream normally.
	KindEnd Kind = "End"
	// KindError terminates a stream with a failure; the body is the message.
	KindError Kind = "Error"
)

// Known reports whether k is a frame kind this client understands.
// Unknown kinds are surfaced as protocol errors naming the offending value.
func (k Kind) Known() bool {
	switch k {
	case KindStart, KindContinue, KindContinueWithError, KindEnd, KindError:
		return true
	}
	return false
}

// Header is the JSON line preceding every response body.
// Counter and Epoch are sent by the server but not consumed by this client.
type Header struct {
	ID      uuid.UUID `json:"id"`
	Kind    Kind      `json:"kind"`
	Cursor  *string   `json:"cursor,omitempty"`
	Counter uint64    `json:"counter,omitempty"`
	Epoch   *uint64   `json:"epoch,omitempty"`
}

// SessionFault reports whether this header signals a session-level fatal
// error: an Error frame addressed to the reserved nil id rather than to any
// one request.
func (h *Header) SessionFault() bool {
	return h.Kind == KindError && h.ID == uuid.Nil
}

// ErrIncompleteFrame is returned by ParseFrame when the chunk contains no
// header delimiter yet. The transport may deliver partial frames; callers
// should buffer and retry with more bytes rather than fail the stream.
var ErrIncompleteFrame = cerr.New(cerr.MalformedFrame, "frame missing header delimiter")

// ParseFrame splits a raw chunk into its header and body. Bytes before the
// first newline are decoded as the JSON header; everything after it is the
// body, preserved verbatim.
func ParseFrame(chunk []byte) (*Header, []byte, error) {
	i := bytes.IndexByte(chunk, '\n')
	if i < 0 {
		return nil, nil, ErrIncompleteFrame
	}
	var h Header
	if err := json.Unmarshal(chunk[:i], &h); err != nil {
		return nil, nil, cerr.Wrap(cerr.MalformedFrame, "unparsable frame header", err)
	}
	return &h, chunk[i+1:], nil
}
