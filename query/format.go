// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

// Format names the encoding of response bodies.
type Format string

const (
	// FormatJSON is one plain JSON document.
	FormatJSON Format = "json"
	// FormatJSONStream is JSON Lines, one document per line.
	// https://jsonlines.org/
	FormatJSONStream Format = "json_stream"
	// FormatArrow is the Arrow IPC file format.
	FormatArrow Format = "arrow"
	// FormatArrowStream is the Arrow IPC streaming format.
	FormatArrowStream Format = "arrow_stream"
)

// DefaultFormat is used when a request does not name one.
const DefaultFormat = FormatJSONStream

func (f Format) String() string { return string(f) }

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatJSONStream, FormatArrow, FormatArrowStream:
		return true
	}
	return false
}
