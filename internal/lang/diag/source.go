// File: source.go
// Title: Source Units
// Description: A named source text split into lines, used to turn token
//              positions into diagnostic locations with the offending line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package diag

import (
	"unicode/utf8"

	"github.com/msto63/peregrine/internal/lang/token"
	"github.com/msto63/peregrine/internal/utils/stringx"
)

// Source is a named source text
type Source struct {
	Filename string
	Text     string
	lines    []string
}

// NewSource creates a source unit
func NewSource(filename, text string) *Source {
	return &Source{
		Filename: filename,
		Text:     text,
		lines:    stringx.SplitLines(text),
	}
}

// LineCount returns the number of lines
func (s *Source) LineCount() int {
	return len(s.lines)
}

// Line returns the 1-based line n without its terminator, or "" when out
// of range
func (s *Source) Line(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}
	return s.lines[n-1]
}

// Locate resolves a position to a location including the line text
func (s *Source) Locate(pos token.Position) Location {
	return Location{
		Filename: s.Filename,
		Line:     pos.Line,
		Column:   pos.Column,
		Index:    pos.Index,
		Source:   s.Line(pos.Line),
	}
}

// LocateToken resolves the start of tok
func (s *Source) LocateToken(tok token.Token) Location {
	return s.Locate(tok.Pos())
}

// End returns the position just past the last character of the last
// non-empty line
func (s *Source) End() token.Position {
	if len(s.lines) == 0 {
		return token.Position{Index: len(s.Text), Line: 1, Column: 1}
	}
	n := len(s.lines)
	for n > 1 && s.lines[n-1] == "" {
		n--
	}
	return token.Position{
		Index:  len(s.Text),
		Line:   n,
		Column: utf8.RuneCountInString(s.lines[n-1]) + 1,
	}
}
