// File: diagnostic.go
// Title: Diagnostic Records
// Description: A diagnostic describes one problem found in a source unit:
//              where it is, what class and code it has, a title, a message
//              and an optional hint.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package diag

import (
	"fmt"
)

// Location points at a character in a named source unit. Source holds the
// verbatim text of the line for rendering.
type Location struct {
	Filename string
	Line     int
	Column   int
	Index    int
	Source   string
}

// String returns "file:line:column"
func (l Location) String() string {
	name := l.Filename
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d", name, l.Line, l.Column)
}

// Diagnostic is a single reported problem
type Diagnostic struct {
	Location Location
	Code     Code
	Class    Class
	Severity Severity
	Title    string
	Message  string
	Hint     string
}

// New creates a diagnostic. Class and severity follow from the code; an
// empty title falls back to the code's default title.
func New(loc Location, title, message, hint string, code Code) Diagnostic {
	if title == "" {
		title = code.Title()
	}
	return Diagnostic{
		Location: loc,
		Code:     code,
		Class:    code.Class(),
		Severity: code.Severity(),
		Title:    title,
		Message:  message,
		Hint:     hint,
	}
}

// Newf creates a diagnostic with the default title and a formatted message
func Newf(loc Location, code Code, hint string, format string, args ...interface{}) Diagnostic {
	return New(loc, "", fmt.Sprintf(format, args...), hint, code)
}

// IsFatal reports whether the diagnostic stops tokenization
func (d Diagnostic) IsFatal() bool {
	return d.Severity == Fatal
}

// String returns a one-line form: "file:3:9: error[E0101]: title: message"
func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s: %s[%s]: %s", d.Location, d.Severity, d.Code, d.Title)
	if d.Message != "" {
		s += ": " + d.Message
	}
	return s
}
