package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	cerr "superchain/client/internal/errors"
)

func TestParseFrame(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		chunk    []byte
		wantKind Kind
		wantBody []byte
		wantErr  error
	}{
		{
			name:     "continue with cursor and body",
			chunk:    []byte(`{"kind":"Continue","id":"` + id.String() + `","counter":1,"cursor":"C1"}` + "\n" + "payload"),
			wantKind: KindContinue,
			wantBody: []byte("payload"),
		},
		{
			name:     "start with empty body",
			chunk:    []byte(`{"kind":"Start","id":"` + id.String() + `"}` + "\n"),
			wantKind: KindStart,
			wantBody: []byte{},
		},
		{
			name:     "binary body preserved verbatim",
			chunk:    append([]byte(`{"kind":"Continue","id":"`+id.String()+`"}`+"\n"), 0x00, 0xff, 0x10),
			wantKind: KindContinue,
			wantBody: []byte{0x00, 0xff, 0x10},
		},
		{
			name:    "no delimiter yet",
			chunk:   []byte(`{"kind":"Continue","id":"`),
			wantErr: ErrIncompleteFrame,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, body, err := ParseFrame(tt.chunk)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseFrame() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFrame() error = %v", err)
			}
			if h.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", h.Kind, tt.wantKind)
			}
			if h.ID != id {
				t.Errorf("ID = %v, want %v", h.ID, id)
			}
			if !bytes.Equal(body, tt.wantBody) {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseFrameMalformedHeader(t *testing.T) {
	_, _, err := ParseFrame([]byte("not json\nbody"))
	if !cerr.Is(err, cerr.MalformedFrame) {
		t.Fatalf("error kind = %v, want malformed_frame", err)
	}
	if errors.Is(err, ErrIncompleteFrame) {
		t.Fatal("unparsable header must not be reported as incomplete")
	}
}

func TestHeaderSessionFault(t *testing.T) {
	tests := []struct {
		name string
		h    Header
		want bool
	}{
		{"nil id error", Header{ID: uuid.Nil, Kind: KindError}, true},
		{"nil id continue", Header{ID: uuid.Nil, Kind: KindContinue}, false},
		{"request error", Header{ID: uuid.New(), Kind: KindError}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.SessionFault(); got != tt.want {
				t.Errorf("SessionFault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindKnown(t *testing.T) {
	for _, k := range []Kind{KindStart, KindContinue, KindContinueWithError, KindEnd, KindError} {
		if !k.Known() {
			t.Errorf("Known(%s) = false", k)
		}
	}
	if Kind("Bogus").Known() {
		t.Error("Known(Bogus) = true")
	}
}

// Encoding a request and decoding the server's echoed header for that id must
// recover the same id.
func TestRequestHeaderRoundTrip(t *testing.T) {
	req := NewRequest("getBlocks").Format("json_stream").Build()

	payload, err := req.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	// Echo the id back the way the server frames responses.
	var sent struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(payload, &sent); err != nil {
		t.Fatalf("unmarshal request: %v", err)
	}
	echo := []byte(`{"kind":"Start","id":"` + sent.ID.String() + `"}` + "\n")

	h, _, err := ParseFrame(echo)
	if err != nil {
		t.Fatalf("ParseFrame() error = %v", err)
	}
	if h.ID != req.ID {
		t.Errorf("round-tripped id = %v, want %v", h.ID, req.ID)
	}
}
