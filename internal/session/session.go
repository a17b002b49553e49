// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session implements the websocket session at the core of the client:
// one multiplexed duplex connection carrying any number of logical query
// streams. It owns frame dispatch by correlation id, subscription and cursor
// bookkeeping for resumable streams, and automatic reconnect with
// resubscribe on connection loss.
//
// Response bodies flow through untouched; decoding them is the caller's
// concern, selected by the format the request asked for.
package session

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	cerr "superchain/client/internal/errors"
	"superchain/client/internal/metrics"
)

// WSPath is the websocket endpoint path on the server.
const WSPath = "/v1/websocket"

const (
	defaultHandshakeTimeout = 5 * time.Second
	defaultPingInterval     = 30 * time.Second
	defaultStreamBuffer     = 1024
	defaultBackoffMin       = 1 * time.Second
	defaultBackoffMax       = 60 * time.Second
)

// Config carries session construction parameters. Zero durations and sizes
// take the defaults above.
type Config struct {
	// URL is the full websocket endpoint, ws(s) scheme. Credentials, when
	// present, ride in the URL userinfo and are sent as basic auth during the
	// handshake.
	URL *url.URL

	HandshakeTimeout time.Duration
	PingInterval     time.Duration

	// StreamBuffer bounds each per-request delivery queue.
	StreamBuffer int

	// BackoffMin/BackoffMax shape the reconnect schedule: BackoffMin doubling
	// per failed attempt, capped at BackoffMax, indefinitely.
	BackoffMin time.Duration
	BackoffMax time.Duration

	// RetainCompleted keeps subscription entries after their stream
	// terminates instead of purging them. Matches the historical behavior of
	// retaining entries indefinitely; costs memory on long-lived processes.
	RetainCompleted bool

	Logger zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = defaultHandshakeTimeout
	}
	if c.PingInterval <= 0 {
		c.PingInterval = defaultPingInterval
	}
	if c.StreamBuffer <= 0 {
		c.StreamBuffer = defaultStreamBuffer
	}
	if c.BackoffMin <= 0 {
		c.BackoffMin = defaultBackoffMin
	}
	if c.BackoffMax <= 0 {
		c.BackoffMax = defaultBackoffMax
	}
	return c
}

// QueryOptions are the non-operation-specific parts of a query.
type QueryOptions struct {
	// Format names the output encoding the server should use for bodies.
	Format string
	// Deltas asks for delta records instead of full ones, where supported.
	Deltas bool
	// Cursor resumes a stream from a previously observed position.
	Cursor string
	// Options carries extra wire fields; operation params override them on
	// key conflicts.
	Options map[string]any
}

// Session is a single multiplexed connection to the server. All methods are
// safe for concurrent use; any number of streams may be drained concurrently.
type Session struct {
	cfg Config
	log zerolog.Logger

	mu    sync.Mutex
	cond  *sync.Cond // broadcast on every state transition
	state State
	conn  *websocket.Conn
	gen   uint64 // bumped per established connection; stale loops exit
	closed bool

	writeMu sync.Mutex // gorilla allows one concurrent writer

	table *subTable

	smu     sync.Mutex
	streams map[uuid.UUID]*Stream
}

// Dial creates a session and establishes its connection, waiting up to the
// handshake timeout. The initial connect failure is surfaced to the caller;
// later connection loss is recovered internally with backoff and resubscribe.
func Dial(ctx context.Context, cfg Config) (*Session, error) {
	s := New(cfg)
	if err := s.connect(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// New creates a session without connecting. The first IssueQuery will
// connect on demand.
func New(cfg Config) *Session {
	cfg = cfg.withDefaults()
	s := &Session{
		cfg:     cfg,
		log:     cfg.Logger.With().Str("component", "session").Logger(),
		table:   newSubTable(),
		streams: make(map[uuid.UUID]*Stream),
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Ready reports whether the connection is currently open.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateOpen
}

// Subscriptions returns the number of entries in the subscription table.
func (s *Session) Subscriptions() int { return s.table.len() }

// IssueQuery sends a named query and returns the stream of response bodies
// for it. The request is registered for replay-on-reconnect before it is
// sent, so a connection loss at any point resumes rather than restarts the
// stream.
func (s *Session) IssueQuery(ctx context.Context, operation string, params map[string]any, opts QueryOptions) (*Stream, error) {
	// Build with explicit precedence: reserved fields over params over options.
	req := newRequest(operation, params, opts)

	// A fresh id has no stored cursor; this lookup only matters when a caller
	// replays an id it obtained from an earlier session of this process.
	if cur, ok := s.table.cursor(req.ID); ok {
		req.Cursor = cur
	}
	s.table.register(req.ID, req)

	st := newStream(req.ID, s.cfg.StreamBuffer, s)
	s.smu.Lock()
	s.streams[req.ID] = st
	s.smu.Unlock()
	metrics.ActiveStreams.Inc()

	payload, err := req.Encode()
	if err != nil {
		s.dropStream(req.ID)
		return nil, err
	}
	if err := s.ensureConnected(ctx); err != nil {
		s.dropStream(req.ID)
		return nil, err
	}
	if werr := s.write(payload); werr != nil {
		if !cerr.Is(werr, cerr.ConnectionError) {
			s.dropStream(req.ID)
			return nil, werr
		}
		// The connection dropped between the readiness check and the write.
		// The entry is already registered, so the reconnect replays it with
		// its cursor; the caller gets the stream once the session is open
		// again instead of a transport error.
		s.log.Debug().Str("id", req.ID.String()).Err(werr).Msg("write raced a connection loss, deferring to resubscribe")
		if err := s.ensureConnected(ctx); err != nil {
			s.dropStream(req.ID)
			return nil, err
		}
	}
	s.log.Debug().Str("id", req.ID.String()).Str("operation", operation).Msg("query issued")
	return st, nil
}

// Close tears the session down: the transport is closed, every live stream
// fails with a closed error, and no reconnect is attempted. Idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.state = StateClosing
	conn := s.conn
	s.conn = nil
	s.cond.Broadcast()
	s.mu.Unlock()

	if conn != nil {
		s.writeMu.Lock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		s.writeMu.Unlock()
		_ = conn.Close()
	}

	s.failAll(cerr.New(cerr.Closed, "session closed"))

	s.mu.Lock()
	s.state = StateDisconnected
	s.cond.Broadcast()
	s.mu.Unlock()
	return nil
}

// write sends one payload on the current connection, serializing writers.
func (s *Session) write(payload []byte) error {
	s.mu.Lock()
	conn := s.conn
	open := s.state == StateOpen
	s.mu.Unlock()
	if !open || conn == nil {
		return cerr.New(cerr.ConnectionError, "connection is not open")
	}

	s.writeMu.Lock()
	err := conn.WriteMessage(websocket.BinaryMessage, payload)
	s.writeMu.Unlock()
	if err != nil {
		return cerr.Wrap(cerr.ConnectionError, "websocket write failed", err)
	}
	return nil
}

// lookupStream returns the live consumer for id, if any.
func (s *Session) lookupStream(id uuid.UUID) *Stream {
	s.smu.Lock()
	defer s.smu.Unlock()
	return s.streams[id]
}

// removeStream forgets the consumer for id. Returns whether it was present,
// so the active-streams gauge moves exactly once per stream.
func (s *Session) removeStream(id uuid.UUID) bool {
	s.smu.Lock()
	_, ok := s.streams[id]
	delete(s.streams, id)
	s.smu.Unlock()
	if ok {
		metrics.ActiveStreams.Dec()
	}
	return ok
}

// dropStream is the abandoned-consumer cleanup path: consumer and
// subscription entry both go away, without touching the eviction policy.
func (s *Session) dropStream(id uuid.UUID) {
	s.removeStream(id)
	s.table.remove(id)
}

// evict applies the configured completion policy for a terminated stream.
func (s *Session) evict(id uuid.UUID) {
	if !s.cfg.RetainCompleted {
		s.table.remove(id)
	}
}

// failAll terminates every live stream with err. Used for session-level
// faults and for Close.
func (s *Session) failAll(err error) {
	s.smu.Lock()
	streams := make([]*Stream, 0, len(s.streams))
	for _, st := range s.streams {
		streams = append(streams, st)
	}
	s.streams = make(map[uuid.UUID]*Stream)
	s.smu.Unlock()

	for _, st := range streams {
		metrics.ActiveStreams.Dec()
		s.evict(st.id)
		st.finish(err)
	}
}
