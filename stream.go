// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"superchain/client/internal/session"
	"superchain/client/query"
)

// Stream is one logical query's response stream. Bodies arrive in the format
// the request asked for; the stream survives reconnects, resuming from the
// last acknowledged cursor.
type Stream struct {
	inner *session.Stream
}

// ID returns the correlation id of the underlying request.
func (st *Stream) ID() uuid.UUID { return st.inner.ID() }

// Recv returns the next response body. io.EOF marks a normal end of stream.
// A body together with a non-nil error is a partial failure: the server
// reported a recoverable problem but the stream continues.
func (st *Stream) Recv(ctx context.Context) ([]byte, error) {
	return st.inner.Recv(ctx)
}

// Close abandons the stream and releases its subscription entry.
func (st *Stream) Close() { st.inner.Close() }

// collectStatusLines drains the stream to completion and decodes each JSON
// Lines document as a status entry. Partial-failure chunks contribute their
// data; an error is surfaced only when the stream ends without a normal EOF.
func collectStatusLines(ctx context.Context, st *Stream) ([]query.Status, error) {
	var out []query.Status
	for {
		body, err := st.Recv(ctx)
		if err == io.EOF {
			return out, nil
		}
		if err != nil && body == nil {
			return out, err
		}
		for _, line := range bytes.Split(body, []byte("\n")) {
			line = bytes.TrimSpace(line)
			if len(line) == 0 {
				continue
			}
			var s query.Status
			if derr := json.Unmarshal(line, &s); derr != nil {
				return out, derr
			}
			out = append(out, s)
		}
	}
}
