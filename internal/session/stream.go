// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
)

// item is one delivery from the dispatcher to a consumer. err is set for
// ContinueWithError frames, where the server reports a recoverable problem
// alongside the data.
type item struct {
	body []byte
	err  error
}

// Stream is the consumer side of one multiplexed query. The dispatcher feeds
// it from the shared read loop through a bounded queue; callers drain it with
// Recv. A stream ends when the server sends End (io.EOF) or Error (a
// request_error), or when the caller abandons it with Close.
type Stream struct {
	id    uuid.UUID
	sess  *Session
	items chan item

	// done is closed by Close so a blocked dispatcher delivery can bail out
	// instead of stalling the shared read loop on an abandoned consumer.
	done      chan struct{}
	closeOnce sync.Once

	// finished is closed by finish. items itself is never closed: finish can
	// run on the caller's goroutine (session teardown) while the dispatcher
	// is blocked sending into a full queue, and closing the channel under a
	// pending send would panic the dispatcher.
	finished   chan struct{}
	finishOnce sync.Once
	mu         sync.Mutex
	final      error
}

func newStream(id uuid.UUID, buffer int, sess *Session) *Stream {
	return &Stream{
		id:       id,
		sess:     sess,
		items:    make(chan item, buffer),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// ID returns the request id this stream is correlated with.
func (st *Stream) ID() uuid.UUID { return st.id }

// Recv returns the next response body. For partial failures
// (ContinueWithError) both the body and a request_error are returned and the
// caller decides whether to keep consuming. io.EOF marks normal end of
// stream; any other error with a nil body is terminal.
func (st *Stream) Recv(ctx context.Context) ([]byte, error) {
	// Items queued before termination stay readable, so drain before looking
	// at the finished signal.
	select {
	case it := <-st.items:
		return it.body, it.err
	default:
	}
	select {
	case it := <-st.items:
		return it.body, it.err
	case <-st.finished:
		select {
		case it := <-st.items:
			return it.body, it.err
		default:
		}
		return nil, st.finalError()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close abandons the stream: its subscription entry is dropped and any frame
// still in flight for this id is discarded. Safe to call more than once and
// after the stream already terminated.
func (st *Stream) Close() {
	st.closeOnce.Do(func() {
		close(st.done)
	})
	st.sess.dropStream(st.id)
}

// deliver hands one item to the consumer. Called only from the dispatcher.
// Blocks when the queue is full (backpressure) but never on an abandoned or
// terminated stream.
func (st *Stream) deliver(body []byte, err error) {
	select {
	case st.items <- item{body: body, err: err}:
	case <-st.done:
	case <-st.finished:
	}
}

// finish terminates the stream. Buffered items remain readable; once drained,
// Recv reports err (io.EOF for a normal end). Called from the dispatcher or
// from session teardown, possibly while a delivery is in flight.
func (st *Stream) finish(err error) {
	st.finishOnce.Do(func() {
		st.mu.Lock()
		st.final = err
		st.mu.Unlock()
		close(st.finished)
	})
}

func (st *Stream) finalError() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.final == nil {
		return io.EOF
	}
	return st.final
}
