// File: lexer_test.go
// Title: Tokenizer Tests
// Description: Tests for operators, literals, strings, comments,
//              indentation blocks, implicit line joining and the lexical
//              diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test implementation

package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/peregrine/internal/lang/diag"
	"github.com/msto63/peregrine/internal/lang/token"
)

func tokenize(t *testing.T, text string, tabWidth int) ([]token.Token, *diag.Collector) {
	t.Helper()
	c := diag.NewCollector(0)
	toks := Tokenize(diag.NewSource("test.pe", text), c, Options{TabWidth: tabWidth})
	return toks, c
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

// lexemes returns Type and Keyword only, dropping positions
func lexemes(toks []token.Token) []token.Token {
	out := make([]token.Token, len(toks))
	for i, tok := range toks {
		out[i] = token.Token{Type: tok.Type, Keyword: tok.Keyword, Level: tok.Level}
	}
	return out
}

func TestDeclaration(t *testing.T) {
	toks, c := tokenize(t, "int x = 5", 0)
	if c.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics())
	}

	want := []token.Token{
		{Type: token.Int, Keyword: "int"},
		{Type: token.Identifier, Keyword: "x"},
		{Type: token.Assign, Keyword: "="},
		{Type: token.Integer, Keyword: "5"},
		{Type: token.Newline},
	}
	if diff := cmp.Diff(want, lexemes(toks)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestPositions(t *testing.T) {
	toks, _ := tokenize(t, "int x = 5\nyy += 1", 0)

	want := []token.Position{
		{Index: 0, Line: 1, Column: 1},
		{Index: 4, Line: 1, Column: 5},
		{Index: 6, Line: 1, Column: 7},
		{Index: 8, Line: 1, Column: 9},
		{Index: 9, Line: 1, Column: 10},
		{Index: 10, Line: 2, Column: 1},
		{Index: 13, Line: 2, Column: 4},
		{Index: 16, Line: 2, Column: 7},
		{Index: 17, Line: 2, Column: 8},
	}
	got := make([]token.Position, len(toks))
	for i, tok := range toks {
		got[i] = tok.Pos()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestUnicodeColumns(t *testing.T) {
	toks, c := tokenize(t, "größe = 1", 0)
	if c.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics())
	}
	if toks[0].Type != token.Identifier || toks[0].Keyword != "größe" {
		t.Fatalf("Expected identifier größe, got %v", toks[0])
	}
	if toks[1].Column != 7 {
		t.Errorf("'=' column = %d, want 7", toks[1].Column)
	}
	if toks[1].Index != 8 {
		t.Errorf("'=' index = %d, want 8", toks[1].Index)
	}
}

func TestOperatorsLongestMatch(t *testing.T) {
	toks, c := tokenize(t, "a //= b ** c -> d >>= e != f // g <= h ++ --", 0)
	if c.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics())
	}

	want := []token.Type{
		token.Identifier, token.FloorDivAssign, token.Identifier, token.Power,
		token.Identifier, token.Arrow, token.Identifier, token.ShiftRightAssign,
		token.Identifier, token.NotEqual, token.Identifier, token.FloorDiv,
		token.Identifier, token.LessEqual, token.Identifier, token.Increment,
		token.Decrement, token.Newline,
	}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	toks, _ := tokenize(t, "if If Cppcode cppcode none", 0)
	want := []token.Type{token.If, token.Identifier, token.CppCode, token.Identifier, token.None, token.Newline}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestNumbers(t *testing.T) {
	toks, _ := tokenize(t, "42 3.14 1. .5", 0)
	want := []token.Token{
		{Type: token.Integer, Keyword: "42"},
		{Type: token.Decimal, Keyword: "3.14"},
		{Type: token.Integer, Keyword: "1"},
		{Type: token.Dot, Keyword: "."},
		{Type: token.Dot, Keyword: "."},
		{Type: token.Integer, Keyword: "5"},
		{Type: token.Newline},
	}
	if diff := cmp.Diff(want, lexemes(toks)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			name:  "double quoted with escapes",
			input: `"a\n\t\"b\\"`,
			want:  []token.Token{{Type: token.String, Keyword: "a\n\t\"b\\"}},
		},
		{
			name:  "single quoted",
			input: `'it\'s'`,
			want:  []token.Token{{Type: token.String, Keyword: "it's"}},
		},
		{
			name:  "unknown escape kept",
			input: `"\q"`,
			want:  []token.Token{{Type: token.String, Keyword: `\q`}},
		},
		{
			name:  "raw string",
			input: `r"C:\new\"x"`,
			want: []token.Token{
				{Type: token.Raw, Keyword: "r"},
				{Type: token.String, Keyword: `C:\new\"x`},
			},
		},
		{
			name:  "format string",
			input: `F'{x}\n'`,
			want: []token.Token{
				{Type: token.Format, Keyword: "F"},
				{Type: token.String, Keyword: "{x}\n"},
			},
		},
		{
			name:  "identifier r is not a prefix",
			input: `r + "x"`,
			want: []token.Token{
				{Type: token.Identifier, Keyword: "r"},
				{Type: token.Plus, Keyword: "+"},
				{Type: token.String, Keyword: "x"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, c := tokenize(t, tt.input, 0)
			if c.HasErrors() {
				t.Fatalf("unexpected diagnostics: %v", c.Diagnostics())
			}
			want := append(tt.want, token.Token{Type: token.Newline})
			if diff := cmp.Diff(want, lexemes(toks)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnterminatedStringIsFatal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		col   int
	}{
		{"end of input", `x = "abc`, 1, 5},
		{"end of line", "x = 1\ny = 'ab\nz = 2", 2, 5},
		{"trailing backslash", `s = "abc\`, 1, 5},
		{"raw", `s = r"abc`, 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := tokenize(t, tt.input, 0)
			if !c.Halted() {
				t.Fatal("Expected the tokenizer to halt")
			}
			ds := c.Diagnostics()
			if len(ds) != 1 || ds[0].Code != diag.UnterminatedString {
				t.Fatalf("Expected one E0002, got %v", ds)
			}
			if ds[0].Location.Line != tt.line || ds[0].Location.Column != tt.col {
				t.Errorf("location = %d:%d, want %d:%d", ds[0].Location.Line, ds[0].Location.Column, tt.line, tt.col)
			}
		})
	}
}

func TestUnrecognizedCharacterContinues(t *testing.T) {
	toks, c := tokenize(t, "x = 1 @ 2 $", 0)

	ds := c.Diagnostics()
	if len(ds) != 2 {
		t.Fatalf("Expected 2 diagnostics, got %d: %v", len(ds), ds)
	}
	for _, d := range ds {
		if d.Code != diag.UnrecognizedCharacter || d.Class != diag.Lexical {
			t.Errorf("unexpected diagnostic %v", d)
		}
	}
	if ds[0].Location.Column != 7 {
		t.Errorf("column = %d, want 7", ds[0].Location.Column)
	}
	if c.Halted() {
		t.Error("unrecognized characters should not halt")
	}

	want := []token.Type{token.Identifier, token.Assign, token.Integer, token.Integer, token.Newline}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestCommentsAreDiscarded(t *testing.T) {
	toks, _ := tokenize(t, "# header\nx = 1 # trailing\n# footer", 0)
	want := []token.Type{token.Identifier, token.Assign, token.Integer, token.Newline}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestIndentationBlock(t *testing.T) {
	src := "a\n    b\n    c\n    d\ne\n"
	toks, c := tokenize(t, src, 0)
	if c.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics())
	}

	want := []token.Token{
		{Type: token.Identifier, Keyword: "a"},
		{Type: token.Newline},
		{Type: token.Indent, Level: 1},
		{Type: token.Identifier, Keyword: "b"},
		{Type: token.Newline},
		{Type: token.Identifier, Keyword: "c"},
		{Type: token.Newline},
		{Type: token.Identifier, Keyword: "d"},
		{Type: token.Newline},
		{Type: token.Dedent, Level: 0},
		{Type: token.Identifier, Keyword: "e"},
		{Type: token.Newline},
	}
	if diff := cmp.Diff(want, lexemes(toks)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestOneIndentPerBlockRegardlessOfLength(t *testing.T) {
	for _, lines := range []int{1, 2, 10} {
		src := "head\n"
		for i := 0; i < lines; i++ {
			src += "  body\n"
		}
		src += "tail\n"

		toks, _ := tokenize(t, src, 0)
		indents, dedents := 0, 0
		for _, tok := range toks {
			switch tok.Type {
			case token.Indent:
				indents++
			case token.Dedent:
				dedents++
			}
		}
		if indents != 1 || dedents != 1 {
			t.Errorf("%d body lines: indents = %d, dedents = %d, want 1 and 1", lines, indents, dedents)
		}
	}
}

func TestNestedBlocksCloseAtEndOfInput(t *testing.T) {
	toks, c := tokenize(t, "a\n  b\n    c", 0)
	if c.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics())
	}

	want := []token.Token{
		{Type: token.Identifier, Keyword: "a"},
		{Type: token.Newline},
		{Type: token.Indent, Level: 1},
		{Type: token.Identifier, Keyword: "b"},
		{Type: token.Newline},
		{Type: token.Indent, Level: 2},
		{Type: token.Identifier, Keyword: "c"},
		{Type: token.Newline},
		{Type: token.Dedent, Level: 1},
		{Type: token.Dedent, Level: 0},
	}
	if diff := cmp.Diff(want, lexemes(toks)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiLevelDedent(t *testing.T) {
	toks, _ := tokenize(t, "a\n  b\n    c\nd\n", 0)

	var dedents []int
	for _, tok := range toks {
		if tok.Type == token.Dedent {
			dedents = append(dedents, tok.Level)
		}
	}
	if diff := cmp.Diff([]int{1, 0}, dedents); diff != "" {
		t.Errorf("dedent levels mismatch (-want +got):\n%s", diff)
	}
}

func TestBadDedent(t *testing.T) {
	toks, c := tokenize(t, "a\n    b\n  c\n", 0)

	if !c.Halted() {
		t.Fatal("Expected indentation mismatch to halt the tokenizer")
	}
	ds := c.Diagnostics()
	if len(ds) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %v", ds)
	}
	if ds[0].Code != diag.IndentationMismatch || ds[0].Class != diag.Lexical {
		t.Errorf("unexpected diagnostic %v", ds[0])
	}
	if ds[0].Location.Line != 3 || ds[0].Location.Column != 3 {
		t.Errorf("location = %d:%d, want 3:3", ds[0].Location.Line, ds[0].Location.Column)
	}
	for _, tok := range toks {
		if tok.Keyword == "c" {
			t.Error("tokenizer should stop before the mismatched line")
		}
	}
}

func TestBlankAndCommentLinesKeepIndentation(t *testing.T) {
	toks, c := tokenize(t, "a\n\n        # deep comment\n  \t\nb\n", 0)
	if c.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics())
	}
	want := []token.Type{token.Identifier, token.Newline, token.Identifier, token.Newline}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestImplicitLineJoining(t *testing.T) {
	toks, c := tokenize(t, "x = (1 +\n        2)\ny = [3,\n4]\n", 0)
	if c.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics())
	}

	want := []token.Type{
		token.Identifier, token.Assign, token.LParen, token.Integer, token.Plus,
		token.Integer, token.RParen, token.Newline,
		token.Identifier, token.Assign, token.LBracket, token.Integer, token.Comma,
		token.Integer, token.RBracket, token.Newline,
	}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestTabWidth(t *testing.T) {
	src := "a\n\tb\n    c\n"

	toks, c := tokenize(t, src, 4)
	if c.HasErrors() {
		t.Fatalf("tab width 4: unexpected diagnostics: %v", c.Diagnostics())
	}
	want := []token.Type{
		token.Identifier, token.Newline, token.Indent, token.Identifier, token.Newline,
		token.Identifier, token.Newline, token.Dedent,
	}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Errorf("tab width 4: types mismatch (-want +got):\n%s", diff)
	}

	_, c = tokenize(t, src, 8)
	if !c.Halted() || c.Diagnostics()[0].Code != diag.IndentationMismatch {
		t.Errorf("tab width 8: expected indentation mismatch, got %v", c.Diagnostics())
	}
}

func TestLineEndings(t *testing.T) {
	toks, c := tokenize(t, "a\r\n  b\r\nc", 0)
	if c.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics())
	}
	want := []token.Type{
		token.Identifier, token.Newline, token.Indent, token.Identifier, token.Newline,
		token.Dedent, token.Identifier, token.Newline,
	}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
	if toks[len(toks)-2].Line != 3 {
		t.Errorf("last identifier line = %d, want 3", toks[len(toks)-2].Line)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, src := range []string{"", "\n\n", "   ", "# only a comment"} {
		toks, c := tokenize(t, src, 0)
		if len(toks) != 0 || c.HasErrors() {
			t.Errorf("Tokenize(%q) = %v, %v; want no tokens", src, toks, c.Diagnostics())
		}
	}
}

func TestStructuralTokensHaveNoPayload(t *testing.T) {
	toks, _ := tokenize(t, "a\n  b\n", 0)
	for _, tok := range toks {
		if tok.Type.IsStructural() && tok.Keyword != "" {
			t.Errorf("%v carries payload %q", tok.Type, tok.Keyword)
		}
	}
}
