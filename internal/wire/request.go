package wire

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Request is an outgoing query frame. The reserved fields always win over
// anything carried in Options or Params; between those two, Params wins.
// A Request is owned by the subscription entry registered under its ID, and
// only its Cursor changes after construction (refreshed from server
// acknowledgements so that replays resume where the stream left off).
type Request struct {
	ID        uuid.UUID
	Operation string
	Cursor    string
	Format    string
	Deltas    bool

	// Options carries caller-supplied defaults, Params the operation-specific
	// fields. Merged flat into the outgoing JSON object.
	Options map[string]any
	Params  map[string]any
}

// MarshalJSON flattens the request into a single JSON object:
// options first, params on top, reserved fields last.
func (r *Request) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(r.Options)+len(r.Params)+5)
	for k, v := range r.Options {
		obj[k] = v
	}
	for k, v := range r.Params {
		obj[k] = v
	}
	obj["id"] = r.ID.String()
	obj["operation"] = r.Operation
	obj["cursor"] = r.Cursor
	obj["format"] = r.Format
	obj["deltas"] = r.Deltas
	return json.Marshal(obj)
}

// Encode serializes the request for the wire.
func (r *Request) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// Builder assembles a Request with explicit precedence instead of an untyped
// merge: reserved fields > params > options.
type Builder struct {
	operation string
	format    string
	deltas    bool
	cursor    string
	options   map[string]any
	params    map[string]any
}

// NewRequest starts a builder for the named operation.
func NewRequest(operation string) *Builder {
	return &Builder{operation: operation}
}

func (b *Builder) Format(format string) *Builder {
	b.format = format
	return b
}

func (b *Builder) Deltas(deltas bool) *Builder {
	b.deltas = deltas
	return b
}

func (b *Builder) Cursor(cursor string) *Builder {
	b.cursor = cursor
	return b
}

// Options sets caller-supplied defaults. Keys also present in Params are
// overridden by the Params values.
func (b *Builder) Options(options map[string]any) *Builder {
	b.options = options
	return b
}

// Params sets the operation-specific fields.
func (b *Builder) Params(params map[string]any) *Builder {
	b.params = params
	return b
}

// Build allocates a fresh id and produces the request.
func (b *Builder) Build() *Request {
	return &Request{
		ID:        uuid.New(),
		Operation: b.operation,
		Cursor:    b.cursor,
		Format:    b.format,
		Deltas:    b.deltas,
		Options:   b.options,
		Params:    b.params,
	}
}
