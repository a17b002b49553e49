package wire

import (
	"encoding/json"
	"testing"
)

func decodeRequest(t *testing.T, r *Request) map[string]any {
	t.Helper()
	data, err := r.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return obj
}

func TestBuilderPrecedence(t *testing.T) {
	req := NewRequest("getBlocks").
		Options(map[string]any{"chains": "ETH", "from_block": "latest"}).
		Params(map[string]any{"chains": "ETH,BSC"}).
		Format("json_stream").
		Build()

	obj := decodeRequest(t, req)

	if obj["chains"] != "ETH,BSC" {
		t.Errorf("params must override options: chains = %v", obj["chains"])
	}
	if obj["from_block"] != "latest" {
		t.Errorf("options not carried: from_block = %v", obj["from_block"])
	}
	if obj["operation"] != "getBlocks" {
		t.Errorf("operation = %v", obj["operation"])
	}
	if obj["format"] != "json_stream" {
		t.Errorf("format = %v", obj["format"])
	}
}

func TestBuilderReservedFieldsWin(t *testing.T) {
	req := NewRequest("getLogs").
		Params(map[string]any{"operation": "spoofed", "id": "not-a-uuid", "deltas": true}).
		Build()

	obj := decodeRequest(t, req)

	if obj["operation"] != "getLogs" {
		t.Errorf("operation = %v, want getLogs", obj["operation"])
	}
	if obj["id"] != req.ID.String() {
		t.Errorf("id = %v, want %v", obj["id"], req.ID)
	}
	if obj["deltas"] != false {
		t.Errorf("deltas = %v, want false", obj["deltas"])
	}
}

func TestBuilderFreshIDs(t *testing.T) {
	a := NewRequest("getStatus").Build()
	b := NewRequest("getStatus").Build()
	if a.ID == b.ID {
		t.Error("consecutive builds must allocate distinct ids")
	}
}

func TestRequestCursorSerialized(t *testing.T) {
	req := NewRequest("getBlocks").Cursor("C9").Build()
	obj := decodeRequest(t, req)
	if obj["cursor"] != "C9" {
		t.Errorf("cursor = %v, want C9", obj["cursor"])
	}

	// Absent cursor still serializes, as an empty string.
	req = NewRequest("getBlocks").Build()
	obj = decodeRequest(t, req)
	if obj["cursor"] != "" {
		t.Errorf("cursor = %v, want empty", obj["cursor"])
	}
}
