// Package ast defines the GraphQL abstract syntax tree: immutable source
// text, token stream, and the typed node model produced by pkg/astparser.
package ast

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Source is an immutable text buffer with an optional logical name, as
// described in spec.md §3 ("Source").
type Source struct {
	Body []byte
	Name string

	// positions memoizes offset -> Position lookups. Location computation is
	// O(offset) per spec.md §4.1 ("may be memoized").
	positions *lru.Cache[int, Position]
}

// NewSource wraps body/name into a Source ready for lexing.
func NewSource(body []byte, name string) *Source {
	if name == "" {
		name = "GraphQL request"
	}
	cache, _ := lru.New[int, Position](256)
	return &Source{Body: body, Name: name, positions: cache}
}

// Position is a 1-based line/column pair.
type Position struct {
	Line   int
	Column int
}

// Position computes the 1-based line/column for a byte offset into s.Body.
//
// Line terminators are \n, \r, and \r\n (counted as a single line break).
// The leading UTF-8 byte-order mark, if present, occupies source position 1
// like any other byte and is not special-cased beyond that (spec.md §4.1).
func (s *Source) Position(offset int) Position {
	if s.positions != nil {
		if p, ok := s.positions.Get(offset); ok {
			return p
		}
	}

	line, col := 1, 1
	body := s.Body
	if offset > len(body) {
		offset = len(body)
	}

	i := 0
	for i < offset {
		switch body[i] {
		case '\r':
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
			line++
			col = 1
		case '\n':
			line++
			col = 1
		default:
			col++
		}
		i++
	}

	pos := Position{Line: line, Column: col}
	if s.positions != nil {
		s.positions.Add(offset, pos)
	}
	return pos
}
