// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"encoding/base64"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	cerr "superchain/client/internal/errors"
	"superchain/client/internal/metrics"
)

// State is the connection lifecycle position. Transitions are owned by the
// session; no other component opens or closes the transport.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateOpen
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	}
	return "unknown"
}

// connect performs one connection attempt, bounded by the handshake timeout.
// Concurrent callers coalesce: whoever finds the state Disconnected dials,
// everyone else waits for that attempt to resolve. Before the connection is
// published as open, every subscription-table entry is replayed with its
// latest cursor, so callers never observe an open connection with dangling
// subscriptions.
func (s *Session) connect(ctx context.Context) error {
	s.mu.Lock()
	for {
		if s.closed {
			s.mu.Unlock()
			return cerr.New(cerr.Closed, "session closed")
		}
		if s.state == StateOpen {
			s.mu.Unlock()
			return nil
		}
		if s.state != StateConnecting {
			break
		}
		s.cond.Wait()
	}
	s.state = StateConnecting
	s.cond.Broadcast()
	s.mu.Unlock()

	conn, err := s.dial(ctx)
	if err == nil {
		err = s.resubscribe(conn)
	}

	s.mu.Lock()
	if err != nil {
		s.state = StateDisconnected
		s.cond.Broadcast()
		s.mu.Unlock()
		return err
	}
	if s.closed {
		s.mu.Unlock()
		_ = conn.Close()
		return cerr.New(cerr.Closed, "session closed")
	}
	s.conn = conn
	s.gen++
	gen := s.gen
	s.state = StateOpen
	s.cond.Broadcast()
	s.mu.Unlock()

	metrics.ConnectsTotal.Inc()
	s.log.Info().Str("endpoint", s.cfg.URL.Host).Msg("connected")

	go s.readLoop(conn, gen)
	go s.keepalive(conn, gen)
	return nil
}

// dial opens the websocket. Credentials in the URL userinfo are promoted to a
// basic auth header; the URL sent on the wire carries no userinfo.
func (s *Session) dial(ctx context.Context) (*websocket.Conn, error) {
	u := *s.cfg.URL
	var hdr http.Header
	if u.User != nil {
		pass, _ := u.User.Password()
		token := base64.StdEncoding.EncodeToString([]byte(u.User.Username() + ":" + pass))
		hdr = http.Header{"Authorization": []string{"Basic " + token}}
		u.User = nil
	}

	dialer := websocket.Dialer{HandshakeTimeout: s.cfg.HandshakeTimeout}
	dctx, cancel := context.WithTimeout(ctx, s.cfg.HandshakeTimeout)
	defer cancel()

	conn, resp, err := dialer.DialContext(dctx, u.String(), hdr)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		return nil, classifyDialError(err)
	}
	return conn, nil
}

func classifyDialError(err error) error {
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return cerr.Wrap(cerr.ConnectionTimeout, "websocket handshake timed out", err)
	}
	return cerr.Wrap(cerr.ConnectionError, "websocket dial failed", err)
}

// resubscribe re-issues every table entry on a fresh connection, before the
// connection is made visible to senders. Write access needs no lock here:
// the connection is not yet published.
func (s *Session) resubscribe(conn *websocket.Conn) error {
	payloads := s.table.replayPayloads(s.log)
	for _, payload := range payloads {
		if err := conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
			_ = conn.Close()
			return cerr.Wrap(cerr.ConnectionError, "resubscribe write failed", err)
		}
		metrics.ResubscribesTotal.Inc()
	}
	if n := len(payloads); n > 0 {
		s.log.Info().Int("subscriptions", n).Msg("resubscribed after reconnect")
	}
	return nil
}

// ensureConnected returns once the connection is open: immediately when it
// already is, after the in-flight attempt when one is connecting, and via
// reconnect-with-backoff otherwise.
func (s *Session) ensureConnected(ctx context.Context) error {
	s.mu.Lock()
	for {
		if s.closed {
			s.mu.Unlock()
			return cerr.New(cerr.Closed, "session closed")
		}
		switch s.state {
		case StateOpen:
			s.mu.Unlock()
			return nil
		case StateConnecting:
			s.cond.Wait()
		default:
			s.mu.Unlock()
			return s.reconnectWithBackoff(ctx)
		}
	}
}

// reconnectWithBackoff retries connect with exponential delays, starting at
// BackoffMin, doubling per failure, capped at BackoffMax, indefinitely.
// There is deliberately no retry ceiling: this is a long-lived streaming
// client. A success resets the schedule because each invocation starts fresh
// and only one runs at a time.
func (s *Session) reconnectWithBackoff(ctx context.Context) error {
	delay := s.cfg.BackoffMin
	for attempt := 1; ; attempt++ {
		err := s.connect(ctx)
		if err == nil {
			metrics.ReconnectAttemptsTotal.WithLabelValues("success").Inc()
			return nil
		}
		if cerr.Is(err, cerr.Closed) {
			return err
		}
		metrics.ReconnectAttemptsTotal.WithLabelValues("failed").Inc()
		s.log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", delay).Msg("reconnect attempt failed")

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return cerr.Wrap(cerr.ConnectionError, "reconnect aborted", ctx.Err())
		}
		delay = nextDelay(delay, s.cfg.BackoffMax)
	}
}

// nextDelay doubles the backoff delay up to the cap.
func nextDelay(cur, max time.Duration) time.Duration {
	cur *= 2
	if cur > max {
		return max
	}
	return cur
}

// keepalive pings the server periodically so half-dead connections are
// noticed between frames. The server expects client pings roughly every 30s.
func (s *Session) keepalive(conn *websocket.Conn, gen uint64) {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()
	for range ticker.C {
		s.mu.Lock()
		stale := s.closed || s.gen != gen || s.state != StateOpen
		s.mu.Unlock()
		if stale {
			return
		}
		s.writeMu.Lock()
		err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second))
		s.writeMu.Unlock()
		if err != nil {
			s.log.Debug().Err(err).Msg("keepalive ping failed")
			return
		}
	}
}

// Endpoint assembles the websocket URL for an endpoint host, optionally with
// credentials embedded as userinfo.
func Endpoint(host string, secure bool, username, password string) *url.URL {
	scheme := "ws"
	if secure {
		scheme = "wss"
	}
	u := &url.URL{Scheme: scheme, Host: host, Path: WSPath}
	if username != "" || password != "" {
		u.User = url.UserPassword(username, password)
	}
	return u
}
