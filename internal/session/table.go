// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"superchain/client/internal/wire"
)

// subEntry pairs a registered request with the most recent cursor the server
// acknowledged for it. The request is owned by this entry; only its cursor is
// rewritten after registration.
type subEntry struct {
	req    *wire.Request
	cursor string
}

// subTable tracks every in-flight request by id so that interrupted streams
// can be replayed with their latest cursor after a reconnect.
type subTable struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*subEntry
}

func newSubTable() *subTable {
	return &subTable{entries: make(map[uuid.UUID]*subEntry)}
}

// register inserts the request, keeping whatever cursor it already carries.
// Ids are fresh UUIDs, so an existing entry under the same id means a caller
// bug; the entry is replaced.
func (t *subTable) register(id uuid.UUID, req *wire.Request) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[id] = &subEntry{req: req, cursor: req.Cursor}
}

// updateCursor overwrites the stored cursor, only if the entry still exists.
func (t *subTable) updateCursor(id uuid.UUID, cursor string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[id]; ok {
		e.cursor = cursor
	}
}

// cursor returns the last acknowledged cursor for id, if any.
func (t *subTable) cursor(id uuid.UUID) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[id]
	if !ok || e.cursor == "" {
		return "", false
	}
	return e.cursor, true
}

func (t *subTable) remove(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, id)
}

func (t *subTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// replayPayloads encodes every entry's request with its latest cursor, for
// re-issue after a reconnect. Encoding happens under the table lock so a
// concurrent cursor update cannot tear a request, and the returned payloads
// are detached from the table, so sending them cannot race a re-register.
func (t *subTable) replayPayloads(log zerolog.Logger) [][]byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	payloads := make([][]byte, 0, len(t.entries))
	for id, e := range t.entries {
		e.req.Cursor = e.cursor
		payload, err := e.req.Encode()
		if err != nil {
			log.Error().Err(err).Str("id", id.String()).Msg("skipping resubscribe: request failed to serialize")
			continue
		}
		payloads = append(payloads, payload)
	}
	return payloads
}
