// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gorilla/websocket"

	cerr "superchain/client/internal/errors"
	"superchain/client/internal/metrics"
	"superchain/client/internal/wire"
)

// newRequest builds the outgoing request for IssueQuery.
func newRequest(operation string, params map[string]any, opts QueryOptions) *wire.Request {
	return wire.NewRequest(operation).
		Format(opts.Format).
		Deltas(opts.Deltas).
		Cursor(opts.Cursor).
		Options(opts.Options).
		Params(params).
		Build()
}

// readLoop is the single background reader for one connection. Every frame
// is routed from here; consumers never touch the transport. On read failure
// the loop flips the session to disconnected and hands off to the reconnect
// path, unless the session was closed or a newer connection took over.
func (s *Session) readLoop(conn *websocket.Conn, gen uint64) {
	var pending []byte
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.handleReadError(conn, gen, err)
			return
		}

		// The transport may deliver a frame in pieces; an incomplete chunk is
		// buffered until the header delimiter arrives.
		if pending != nil {
			data = append(pending, data...)
		}
		h, body, perr := wire.ParseFrame(data)
		if perr != nil {
			if errors.Is(perr, wire.ErrIncompleteFrame) {
				pending = data
				continue
			}
			s.log.Warn().Err(perr).Msg("dropping malformed frame")
			pending = nil
			continue
		}
		pending = nil
		s.handleFrame(h, body)
	}
}

func (s *Session) handleReadError(conn *websocket.Conn, gen uint64, err error) {
	_ = conn.Close()

	s.mu.Lock()
	stale := s.closed || s.gen != gen
	if !stale {
		s.state = StateDisconnected
		s.conn = nil
		s.cond.Broadcast()
	}
	s.mu.Unlock()
	if stale {
		return
	}

	s.log.Warn().Err(err).Msg("connection lost, reconnecting")
	go func() {
		// Recovered locally: indefinite backoff plus resubscribe. Consumers
		// keep their streams; they just see a gap while the replay catches up.
		_ = s.reconnectWithBackoff(context.Background())
	}()
}

// handleFrame routes one decoded frame to its consumer.
func (s *Session) handleFrame(h *wire.Header, body []byte) {
	metrics.FramesTotal.WithLabelValues(string(h.Kind)).Inc()

	if h.SessionFault() {
		s.log.Error().Str("body", string(body)).Msg("session-level error from server")
		s.failAll(cerr.New(cerr.SessionError, string(body)))
		return
	}

	st := s.lookupStream(h.ID)
	if st == nil {
		// Likely a request that already completed or was abandoned.
		metrics.DroppedFramesTotal.Inc()
		s.log.Debug().Str("id", h.ID.String()).Str("kind", string(h.Kind)).Msg("dropping frame without consumer")
		return
	}

	if !h.Kind.Known() {
		s.removeStream(h.ID)
		s.evict(h.ID)
		st.finish(cerr.New(cerr.ProtocolError, fmt.Sprintf("unexpected frame kind %q", h.Kind)))
		return
	}

	switch h.Kind {
	case wire.KindStart:
		// Acknowledgement only; never yields a body.

	case wire.KindContinue, wire.KindContinueWithError:
		if h.Cursor != nil {
			s.table.updateCursor(h.ID, *h.Cursor)
		}
		var perr error
		if h.Kind == wire.KindContinueWithError {
			perr = partialError(body)
		}
		st.deliver(body, perr)

	case wire.KindEnd:
		s.removeStream(h.ID)
		s.evict(h.ID)
		st.finish(io.EOF)

	case wire.KindError:
		s.removeStream(h.ID)
		s.evict(h.ID)
		st.finish(requestError(body))
	}
}

// serverError is the structured error body some endpoints produce.
type serverError struct {
	Status uint16 `json:"status"`
	Error  string `json:"error"`
}

// requestError turns an Error frame body into the terminal stream error.
// Bodies that look like the structured {status, error} shape keep both
// fields; anything else is passed through as the message.
func requestError(body []byte) error {
	if len(body) > 0 && body[0] == '{' {
		var se serverError
		if err := json.Unmarshal(body, &se); err == nil && se.Error != "" {
			return cerr.New(cerr.RequestError, fmt.Sprintf("request failed with (%d): %s", se.Status, se.Error))
		}
	}
	return cerr.New(cerr.RequestError, string(body))
}

// partialError marks a ContinueWithError chunk. The body still carries data
// and is yielded; the caller decides whether to keep consuming.
func partialError(body []byte) error {
	if len(body) > 0 && body[0] == '{' {
		var se serverError
		if err := json.Unmarshal(body, &se); err == nil && se.Error != "" {
			return cerr.New(cerr.RequestError, fmt.Sprintf("partial failure (%d): %s", se.Status, se.Error))
		}
	}
	return cerr.New(cerr.RequestError, "server reported a recoverable error for this chunk")
}
