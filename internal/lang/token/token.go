// File: token.go
// Title: Token Model
// Description: Token values produced by the tokenizer. Every token records
//              its byte offset, line and column; INDENT and DEDENT also
//              carry the indentation depth they lead to.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package token

import (
	"fmt"
	"strconv"
)

// Position is a location in a source text
type Position struct {
	Index  int // zero-based byte offset
	Line   int // 1-based line
	Column int // 1-based rune column
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Token is a single lexical unit
type Token struct {
	Type    Type
	Keyword string // lexeme or decoded payload; empty for structural markers
	Index   int
	Line    int
	Column  int
	Level   int // indentation depth after an INDENT or DEDENT
}

// Pos returns the start position of the token
func (t Token) Pos() Position {
	return Position{Index: t.Index, Line: t.Line, Column: t.Column}
}

// String returns a compact form used in debugging output
func (t Token) String() string {
	switch t.Type {
	case Indent, Dedent:
		return fmt.Sprintf("%s(%d)", t.Type, t.Level)
	case Newline:
		return t.Type.String()
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Keyword)
	}
}

// Describe renders the token for diagnostic messages, e.g. `')'`,
// `identifier 'x'` or `end of line`.
func (t Token) Describe() string {
	switch t.Type {
	case Newline:
		return "end of line"
	case Indent:
		return "indentation"
	case Dedent:
		return "end of block"
	case Identifier:
		return "identifier '" + t.Keyword + "'"
	case Integer, Decimal:
		return "number " + t.Keyword
	case String:
		return "string " + strconv.Quote(t.Keyword)
	case Raw:
		return "raw string prefix"
	case Format:
		return "format string prefix"
	}
	if text := t.Type.Text(); text != "" {
		return "'" + text + "'"
	}
	return t.Type.String()
}
