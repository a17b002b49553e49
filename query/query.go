// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package query defines the typed request vocabulary of the data service:
// block range bounds, chain selectors, output formats and the per-operation
// request structs. Request structs marshal into the flat parameter maps the
// wire protocol expects, with list filters joined comma-separated.
package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type boundKind int

const (
	boundLatest boundKind = iota
	boundNone
	boundExact
	boundFromLatest
)

// Bound is one end of a block range. The zero value is Latest. A None upper
// bound keeps the range open: the stream follows new blocks in real time.
type Bound struct {
	kind  boundKind
	block int64
}

// Latest bounds the range at the newest block known to the server.
func Latest() Bound { return Bound{kind: boundLatest} }

// None leaves the bound open for real-time subscription.
func None() Bound { return Bound{kind: boundNone} }

// Exact bounds the range at a block height. Lower bounds are inclusive,
// upper bounds exclusive.
func Exact(block int64) Bound { return Bound{kind: boundExact, block: block} }

// FromLatest bounds the range n blocks back from the newest block.
func FromLatest(n uint64) Bound { return Bound{kind: boundFromLatest, block: int64(n)} }

func (b Bound) String() string {
	switch b.kind {
	case boundNone:
		return "none"
	case boundExact:
		return strconv.FormatInt(b.block, 10)
	case boundFromLatest:
		return strconv.FormatInt(-b.block, 10)
	}
	return "latest"
}

// MarshalJSON encodes exact heights as positive numbers, from-latest offsets
// as negative numbers, and the symbolic bounds as strings.
func (b Bound) MarshalJSON() ([]byte, error) {
	switch b.kind {
	case boundNone:
		return []byte(`"none"`), nil
	case boundExact:
		return []byte(strconv.FormatInt(b.block, 10)), nil
	case boundFromLatest:
		return []byte(strconv.FormatInt(-b.block, 10)), nil
	}
	return []byte(`"latest"`), nil
}

var fromLatestRe = regexp.MustCompile(`^latest\s*-\s*(\d+)$`)

// UnmarshalJSON accepts the symbolic strings, "latest - N" offsets, and plain
// numbers (negative meaning from-latest).
func (b *Bound) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid bound %s", s)
		}
		s = unquoted
	}

	switch s {
	case "latest":
		*b = Latest()
		return nil
	case "none":
		*b = None()
		return nil
	}

	if m := fromLatestRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseUint(m[1], 10, 64)
		if err == nil && n > 0 {
			*b = FromLatest(n)
			return nil
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid bound %q", s)
	}
	if n < 0 {
		*b = FromLatest(uint64(-n))
	} else {
		*b = Exact(n)
	}
	return nil
}

// List is a set-valued filter. It marshals to the comma-separated form the
// server expects; an empty list should be tagged omitempty so the filter is
// not sent at all.
type List []string

func (l List) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strings.Join(l, ","))), nil
}

func (l *List) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	if s == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(s, ",")
	return nil
}

// Uints is a set-valued numeric filter, comma-separated on the wire.
type Uints []uint64

func (u Uints) MarshalJSON() ([]byte, error) {
	parts := make([]string, len(u))
	for i, v := range u {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return []byte(strconv.Quote(strings.Join(parts, ","))), nil
}

func (u *Uints) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	if s == "" {
		*u = nil
		return nil
	}
	parts := strings.Split(s, ",")
	out := make(Uints, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*u = out
	return nil
}
