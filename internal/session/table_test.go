package session

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"superchain/client/internal/wire"
)

func TestSubTableCursorLifecycle(t *testing.T) {
	tbl := newSubTable()
	req := wire.NewRequest("getBlocks").Build()

	if _, ok := tbl.cursor(req.ID); ok {
		t.Fatal("cursor() reported a hit before register")
	}

	tbl.register(req.ID, req)
	if _, ok := tbl.cursor(req.ID); ok {
		t.Error("cursor() reported a hit with no cursor acknowledged yet")
	}

	tbl.updateCursor(req.ID, "C1")
	if cur, ok := tbl.cursor(req.ID); !ok || cur != "C1" {
		t.Errorf("cursor() = %q, %v, want C1, true", cur, ok)
	}

	tbl.updateCursor(req.ID, "C2")
	if cur, _ := tbl.cursor(req.ID); cur != "C2" {
		t.Errorf("cursor() = %q, want C2", cur)
	}

	tbl.remove(req.ID)
	if _, ok := tbl.cursor(req.ID); ok {
		t.Error("cursor() reported a hit after remove")
	}
	if tbl.len() != 0 {
		t.Errorf("len() = %d, want 0", tbl.len())
	}
}

func TestSubTableUpdateCursorIgnoresUnknownID(t *testing.T) {
	tbl := newSubTable()
	tbl.updateCursor(uuid.New(), "C1")
	if tbl.len() != 0 {
		t.Errorf("len() = %d, want 0", tbl.len())
	}
}

func TestSubTableRegisterKeepsInitialCursor(t *testing.T) {
	tbl := newSubTable()
	req := wire.NewRequest("getLogs").Cursor("resume-here").Build()
	tbl.register(req.ID, req)
	if cur, ok := tbl.cursor(req.ID); !ok || cur != "resume-here" {
		t.Errorf("cursor() = %q, %v, want resume-here, true", cur, ok)
	}
}

func TestReplayPayloadsCarryLatestCursor(t *testing.T) {
	tbl := newSubTable()
	req := wire.NewRequest("getBlocks").Params(map[string]any{"chains": "ETH"}).Build()
	tbl.register(req.ID, req)
	tbl.updateCursor(req.ID, "C7")

	payloads := tbl.replayPayloads(zerolog.Nop())
	if len(payloads) != 1 {
		t.Fatalf("replayPayloads() returned %d payloads, want 1", len(payloads))
	}

	var decoded map[string]any
	if err := json.Unmarshal(payloads[0], &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if decoded["id"] != req.ID.String() {
		t.Errorf("id = %v, want %v", decoded["id"], req.ID)
	}
	if decoded["operation"] != "getBlocks" {
		t.Errorf("operation = %v, want getBlocks", decoded["operation"])
	}
	if decoded["cursor"] != "C7" {
		t.Errorf("cursor = %v, want C7", decoded["cursor"])
	}
	if decoded["chains"] != "ETH" {
		t.Errorf("chains = %v, want ETH", decoded["chains"])
	}
}

func TestReplayPayloadsEmptyTable(t *testing.T) {
	tbl := newSubTable()
	if got := tbl.replayPayloads(zerolog.Nop()); len(got) != 0 {
		t.Errorf("replayPayloads() = %d payloads, want 0", len(got))
	}
}
