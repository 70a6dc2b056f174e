// File: code.go
// Title: Diagnostic Codes
// Description: Stable diagnostic codes with their class, default severity
//              and default title. Lexical codes live in E00xx, syntactic
//              codes in E01xx.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package diag

// Code identifies a kind of diagnostic, e.g. "E0101"
type Code string

const (
	UnrecognizedCharacter Code = "E0001"
	UnterminatedString    Code = "E0002"
	IndentationMismatch   Code = "E0003"

	UnexpectedToken  Code = "E0101"
	MissingToken     Code = "E0102"
	UnexpectedEnd    Code = "E0103"
	UnexpectedIndent Code = "E0104"
	Unsupported      Code = "E0105"
)

// Class separates tokenizer diagnostics from parser diagnostics
type Class int

const (
	Lexical Class = iota
	Syntactic
)

// String returns the class name
func (c Class) String() string {
	if c == Lexical {
		return "lexical"
	}
	return "syntactic"
}

// Severity says whether processing could continue after the diagnostic
type Severity int

const (
	// Error is recoverable; processing continues to find more problems
	Error Severity = iota
	// Fatal stops the tokenizer; the parser does not run
	Fatal
)

// String returns the severity name
func (s Severity) String() string {
	if s == Fatal {
		return "fatal"
	}
	return "error"
}

type codeInfo struct {
	class    Class
	severity Severity
	title    string
}

var codeTable = map[Code]codeInfo{
	UnrecognizedCharacter: {Lexical, Error, "unrecognized character"},
	UnterminatedString:    {Lexical, Fatal, "unterminated string"},
	IndentationMismatch:   {Lexical, Fatal, "indentation mismatch"},

	UnexpectedToken:  {Syntactic, Error, "unexpected token"},
	MissingToken:     {Syntactic, Error, "missing expected token"},
	UnexpectedEnd:    {Syntactic, Error, "unexpected end of input"},
	UnexpectedIndent: {Syntactic, Error, "unexpected indent"},
	Unsupported:      {Syntactic, Error, "unsupported grammar"},
}

// Class returns the class of the code; unknown codes count as syntactic
func (c Code) Class() Class {
	if info, ok := codeTable[c]; ok {
		return info.class
	}
	return Syntactic
}

// Severity returns the default severity of the code
func (c Code) Severity() Severity {
	return codeTable[c].severity
}

// Title returns the default one-line title of the code
func (c Code) Title() string {
	if info, ok := codeTable[c]; ok {
		return info.title
	}
	return "error"
}

// Known reports whether c is a registered code
func (c Code) Known() bool {
	_, ok := codeTable[c]
	return ok
}
