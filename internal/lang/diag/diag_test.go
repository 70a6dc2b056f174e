// File: diag_test.go
// Title: Diagnostics Tests
// Description: Tests for diagnostic construction, the collector, source
//              location mapping, failures and plain-text rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test implementation

package diag

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/msto63/peregrine/internal/lang/token"
)

func TestNewDerivesClassAndSeverity(t *testing.T) {
	tests := []struct {
		code     Code
		class    Class
		severity Severity
	}{
		{UnrecognizedCharacter, Lexical, Error},
		{UnterminatedString, Lexical, Fatal},
		{IndentationMismatch, Lexical, Fatal},
		{UnexpectedToken, Syntactic, Error},
		{Unsupported, Syntactic, Error},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			d := New(Location{Line: 1, Column: 1}, "", "msg", "", tt.code)
			if d.Class != tt.class {
				t.Errorf("Class = %v, want %v", d.Class, tt.class)
			}
			if d.Severity != tt.severity {
				t.Errorf("Severity = %v, want %v", d.Severity, tt.severity)
			}
			if d.Title != tt.code.Title() {
				t.Errorf("Title = %q, want default %q", d.Title, tt.code.Title())
			}
		})
	}

	custom := New(Location{}, "custom title", "", "", UnexpectedToken)
	if custom.Title != "custom title" {
		t.Errorf("Title = %q, want custom title", custom.Title)
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Newf(Location{Filename: "main.pe", Line: 3, Column: 9}, UnexpectedToken, "", "unexpected %s", "')'")
	want := "main.pe:3:9: error[E0101]: unexpected token: unexpected ')'"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCollector(t *testing.T) {
	c := NewCollector(0)
	if c.HasErrors() {
		t.Fatal("new collector should be empty")
	}

	c.Report(New(Location{Line: 1}, "", "a", "", UnrecognizedCharacter))
	c.Report(New(Location{Line: 2}, "", "b", "", UnexpectedToken))

	if c.Len() != 2 || !c.HasErrors() {
		t.Errorf("Len() = %d, HasErrors() = %v", c.Len(), c.HasErrors())
	}
	if c.Halted() {
		t.Error("recoverable diagnostics should not halt")
	}

	c.Report(New(Location{Line: 3}, "", "c", "", UnterminatedString))
	if !c.Halted() {
		t.Error("fatal diagnostic should halt")
	}

	snapshot := c.Diagnostics()
	snapshot[0].Message = "changed"
	if c.Diagnostics()[0].Message != "a" {
		t.Error("Diagnostics() should return a copy")
	}

	drained := c.Drain()
	if len(drained) != 3 {
		t.Fatalf("Drain() returned %d diagnostics, want 3", len(drained))
	}
	for i, want := range []string{"a", "b", "c"} {
		if drained[i].Message != want {
			t.Errorf("drained[%d] = %q, want %q", i, drained[i].Message, want)
		}
	}
	if c.Len() != 0 || c.Halted() || c.HasErrors() {
		t.Error("Drain() should reset the collector")
	}
}

func TestCollectorLimit(t *testing.T) {
	c := NewCollector(2)
	for i := 0; i < 5; i++ {
		c.Report(Newf(Location{Line: i + 1}, UnexpectedToken, "", "error %d", i))
	}

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if c.Suppressed() != 3 {
		t.Errorf("Suppressed() = %d, want 3", c.Suppressed())
	}

	f := c.Failure("x.pe")
	if f == nil {
		t.Fatal("Failure() should not be nil")
	}
	if f.Count() != 5 {
		t.Errorf("Count() = %d, want 5", f.Count())
	}
	if c.Failure("x.pe") != nil {
		t.Error("Failure() should drain the collector")
	}
}

func TestSourceLocate(t *testing.T) {
	src := NewSource("main.pe", "int x = 1\n\tx = )\n")

	loc := src.Locate(token.Position{Index: 15, Line: 2, Column: 6})
	if loc.Source != "\tx = )" {
		t.Errorf("Source = %q, want %q", loc.Source, "\tx = )")
	}
	if loc.String() != "main.pe:2:6" {
		t.Errorf("String() = %q, want main.pe:2:6", loc.String())
	}

	if got := src.Line(9); got != "" {
		t.Errorf("Line(9) = %q, want empty", got)
	}

	end := src.End()
	if end.Line != 2 || end.Column != 7 {
		t.Errorf("End() = %v, want 2:7", end)
	}

	empty := NewSource("", "")
	if got := empty.End(); got.Line != 1 || got.Column != 1 {
		t.Errorf("End() of empty source = %v, want 1:1", got)
	}
}

func TestFailure(t *testing.T) {
	f := &Failure{
		Filename: "main.pe",
		Diagnostics: []Diagnostic{
			New(Location{Filename: "main.pe", Line: 1, Column: 5}, "", "", "", UnrecognizedCharacter),
			New(Location{Filename: "main.pe", Line: 2, Column: 1}, "", "", "", UnexpectedEnd),
		},
	}

	if !strings.HasPrefix(f.Error(), "main.pe: 2 diagnostics, first: main.pe:1:5") {
		t.Errorf("Error() = %q", f.Error())
	}
	if codes := f.Codes(); len(codes) != 2 || codes[0] != UnrecognizedCharacter || codes[1] != UnexpectedEnd {
		t.Errorf("Codes() = %v", codes)
	}
	if !f.HasClass(Lexical) || !f.HasClass(Syntactic) {
		t.Error("HasClass() should find both classes")
	}

	wrapped := fmt.Errorf("check: %w", f)
	got, ok := AsFailure(wrapped)
	if !ok || got != f {
		t.Error("AsFailure() should unwrap the failure")
	}
	if _, ok := AsFailure(errors.New("plain")); ok {
		t.Error("AsFailure() should reject plain errors")
	}
}

func TestRenderPlain(t *testing.T) {
	src := NewSource("main.pe", "int y = 1\nint z = 2\nint x = )\n")
	d := New(src.Locate(token.Position{Line: 3, Column: 9, Index: 28}), "",
		"unexpected ')' in expression", "remove the ')'", UnexpectedToken)

	r := NewRenderer(&bytes.Buffer{}, ColorNever, 4)
	want := strings.Join([]string{
		"error[E0101]: unexpected token",
		"  --> main.pe:3:9",
		"   |",
		" 3 | int x = )",
		"   |         ^",
		"   = unexpected ')' in expression",
		"   = hint: remove the ')'",
		"",
	}, "\n")

	if got := r.Render(d); got != want {
		t.Errorf("Render() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderExpandsTabs(t *testing.T) {
	src := NewSource("t.pe", "\tx = @\n")
	d := New(src.Locate(token.Position{Line: 1, Column: 6}), "", "", "", UnrecognizedCharacter)

	out := NewRenderer(&bytes.Buffer{}, ColorNever, 4).Render(d)
	lines := strings.Split(out, "\n")
	if len(lines) < 5 {
		t.Fatalf("unexpected output %q", out)
	}
	if lines[3] != " 1 |     x = @" {
		t.Errorf("source line = %q", lines[3])
	}
	if lines[4] != "   |         ^" {
		t.Errorf("caret line = %q", lines[4])
	}
}

func TestPrintFailure(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, ColorNever, 4)

	f := &Failure{
		Filename:    "a.pe",
		Diagnostics: []Diagnostic{New(Location{Filename: "a.pe", Line: 1, Column: 1}, "", "", "", UnexpectedIndent)},
		Suppressed:  2,
	}
	if err := r.PrintFailure(f); err != nil {
		t.Fatalf("PrintFailure() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "error[E0104]: unexpected indent") {
		t.Errorf("missing header in %q", out)
	}
	if !strings.HasSuffix(out, "a.pe: 3 errors (2 not shown)\n") {
		t.Errorf("missing summary in %q", out)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{"never", ColorNever, false},
		{"", ColorAuto, false},
		{"rainbow", ColorAuto, true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, %v", tt.input, got, err)
		}
	}
}
