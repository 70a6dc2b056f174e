// File: lexer.go
// Title: Peregrine Tokenizer
// Description: Converts source text into a token stream. Indentation at
//              the start of each logical line is turned into INDENT and
//              DEDENT tokens, logical line ends into NEWLINE tokens.
//              Newlines inside (), [] and {} join lines implicitly.
//              Unrecognized characters are reported and skipped; an
//              unterminated string or an indentation mismatch stops the
//              tokenizer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial tokenizer implementation
// - 2026-10-14 v0.1.0: Raw and format string prefixes, configurable tab width

package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/peregrine/internal/core/log"
	"github.com/msto63/peregrine/internal/lang/diag"
	"github.com/msto63/peregrine/internal/lang/token"
)

// DefaultTabWidth is used when Options.TabWidth is not positive
const DefaultTabWidth = 4

// Options configures the tokenizer
type Options struct {
	TabWidth int         // a tab advances to the next multiple of TabWidth
	Logger   *log.Logger // nil disables logging
}

// Lexer holds the state of one tokenizer run
type Lexer struct {
	src       *diag.Source
	diags     *diag.Collector
	tabWidth  int
	logger    *log.Logger
	tokens    []token.Token
	indents   []int // indentation widths; indents[0] is always 0
	pos       int   // byte offset of the next rune
	line      int
	col       int
	nesting   int  // open brackets
	lineStart bool // at the start of a logical line
	lineUsed  bool // the current logical line produced a token
	stopped   bool // a fatal diagnostic was reported
}

// New creates a tokenizer for src reporting into diags
func New(src *diag.Source, diags *diag.Collector, opts Options) *Lexer {
	tabWidth := opts.TabWidth
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}

	text := strings.TrimPrefix(src.Text, "\uFEFF")
	return &Lexer{
		src:       src,
		diags:     diags,
		tabWidth:  tabWidth,
		logger:    logger.WithName("lexer"),
		indents:   []int{0},
		pos:       len(src.Text) - len(text),
		line:      1,
		col:       1,
		lineStart: true,
	}
}

// Tokenize runs the tokenizer over src and returns all tokens
func Tokenize(src *diag.Source, diags *diag.Collector, opts Options) []token.Token {
	return New(src, diags, opts).Run()
}

// Run tokenizes the whole input. After a fatal diagnostic the tokens
// produced so far are returned.
func (l *Lexer) Run() []token.Token {
	timer := l.logger.StartTimer("tokenize").WithField("file", l.src.Filename)
	before := l.diags.Len()

	for !l.stopped && l.pos < len(l.src.Text) {
		if l.lineStart && l.nesting == 0 {
			l.indentation()
			continue
		}
		l.scan()
	}

	if !l.stopped {
		l.finish()
	}

	if l.logger.IsLevelEnabled(log.LevelTrace) {
		for _, tok := range l.tokens {
			l.logger.Trace("token", log.Fields{"token": tok.String(), "pos": tok.Pos().String()})
		}
	}
	timer.WithField("tokens", len(l.tokens)).
		WithField("diagnostics", l.diags.Len()-before).
		Stop()

	return l.tokens
}

// scan consumes one lexical element
func (l *Lexer) scan() {
	r := l.peek()
	switch {
	case r == '\n' || r == '\r':
		l.newline()
	case r == ' ' || r == '\t' || r == '\f':
		l.next()
	case r == '#':
		l.comment()
	case r == '_' || unicode.IsLetter(r):
		l.word()
	case isDigit(r):
		l.number()
	case r == '"' || r == '\'':
		l.str(l.position(), false)
	default:
		l.operator()
	}
}

// indentation measures the leading whitespace of a logical line and emits
// INDENT or DEDENT tokens. Blank and comment-only lines leave the stack alone.
func (l *Lexer) indentation() {
	l.lineStart = false

	width := 0
measure:
	for l.pos < len(l.src.Text) {
		switch l.peek() {
		case ' ':
			width++
		case '\t':
			width += l.tabWidth - width%l.tabWidth
		case '\f':
			width = 0
		default:
			break measure
		}
		l.next()
	}

	if l.pos >= len(l.src.Text) {
		return
	}
	if r := l.peek(); r == '\n' || r == '\r' || r == '#' {
		return
	}

	pos := l.position()
	top := l.indents[len(l.indents)-1]

	switch {
	case width > top:
		l.indents = append(l.indents, width)
		l.emitAt(token.Token{Type: token.Indent, Level: len(l.indents) - 1}, pos)

	case width < top:
		for len(l.indents) > 1 && l.indents[len(l.indents)-1] > width {
			l.indents = l.indents[:len(l.indents)-1]
			l.emitAt(token.Token{Type: token.Dedent, Level: len(l.indents) - 1}, pos)
		}
		if l.indents[len(l.indents)-1] != width {
			l.fatal(pos, diag.IndentationMismatch,
				"indentation does not match any enclosing block",
				fmt.Sprintf("dedent to one of the enclosing indentation widths: %s", l.widths()))
		}
	}
}

func (l *Lexer) widths() string {
	parts := make([]string, len(l.indents))
	for i, w := range l.indents {
		parts[i] = fmt.Sprint(w)
	}
	return strings.Join(parts, ", ")
}

// newline ends a physical line; inside brackets it is an implicit join
func (l *Lexer) newline() {
	pos := l.position()
	if l.peek() == '\r' {
		l.next()
		if l.peek() == '\n' {
			l.next()
		}
	} else {
		l.next()
	}

	if l.nesting == 0 {
		if l.lineUsed {
			l.emitAt(token.Token{Type: token.Newline}, pos)
		}
		l.lineUsed = false
		l.lineStart = true
	}

	l.line++
	l.col = 1
}

func (l *Lexer) comment() {
	for l.pos < len(l.src.Text) {
		if r := l.peek(); r == '\n' || r == '\r' {
			return
		}
		l.next()
	}
}

// word scans an identifier or keyword. A single r/R/f/F directly followed
// by a quote is a string prefix.
func (l *Lexer) word() {
	pos := l.position()
	start := l.pos
	for l.pos < len(l.src.Text) {
		r := l.peek()
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.next()
	}
	text := l.src.Text[start:l.pos]

	if q := l.peek(); (q == '"' || q == '\'') && len(text) == 1 {
		switch text {
		case "r", "R":
			l.emitAt(token.Token{Type: token.Raw, Keyword: text}, pos)
			l.str(l.position(), true)
			return
		case "f", "F":
			l.emitAt(token.Token{Type: token.Format, Keyword: text}, pos)
			l.str(l.position(), false)
			return
		}
	}

	l.emitAt(token.Token{Type: token.Lookup(text), Keyword: text}, pos)
}

// number scans an INTEGER, or a DECIMAL when a dot and digits follow
func (l *Lexer) number() {
	pos := l.position()
	start := l.pos
	typ := token.Integer

	l.digits()
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.next()
		l.digits()
		typ = token.Decimal
	}

	l.emitAt(token.Token{Type: typ, Keyword: l.src.Text[start:l.pos]}, pos)
}

func (l *Lexer) digits() {
	for isDigit(l.peek()) {
		l.next()
	}
}

// str scans a quoted string starting at the opening quote. Raw strings keep
// backslashes verbatim; other strings decode \n \t \r \0 \\ \" \' and keep
// unknown escapes as written.
func (l *Lexer) str(open token.Position, raw bool) {
	quote := l.next()
	var b strings.Builder

	for {
		if l.pos >= len(l.src.Text) {
			l.unterminated(open, quote, "end of input")
			return
		}

		r := l.peek()
		switch {
		case r == '\n' || r == '\r':
			l.unterminated(open, quote, "end of line")
			return

		case r == quote:
			l.next()
			l.emitAt(token.Token{Type: token.String, Keyword: b.String()}, open)
			return

		case r == '\\':
			l.next()
			if l.pos >= len(l.src.Text) {
				continue
			}
			e := l.peek()
			if e == '\n' || e == '\r' {
				b.WriteRune('\\')
				continue
			}
			l.next()
			if raw {
				b.WriteRune('\\')
				b.WriteRune(e)
				continue
			}
			if decoded, ok := escapes[e]; ok {
				b.WriteRune(decoded)
			} else {
				b.WriteRune('\\')
				b.WriteRune(e)
			}

		default:
			b.WriteRune(l.next())
		}
	}
}

var escapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'0':  0,
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

func (l *Lexer) unterminated(open token.Position, quote rune, where string) {
	l.fatal(open, diag.UnterminatedString,
		fmt.Sprintf("string starting here reaches %s without a closing %c", where, quote),
		fmt.Sprintf("add a closing %c on the same line", quote))
}

// operator scans the longest operator at the current position
func (l *Lexer) operator() {
	pos := l.position()

	for n := token.MaxOperatorLen; n > 0; n-- {
		if l.pos+n > len(l.src.Text) {
			continue
		}
		typ, ok := token.LookupOperator(l.src.Text[l.pos : l.pos+n])
		if !ok {
			continue
		}
		text := l.src.Text[l.pos : l.pos+n]
		for i := 0; i < n; i++ {
			l.next()
		}

		switch typ {
		case token.LParen, token.LBracket, token.LBrace:
			l.nesting++
		case token.RParen, token.RBracket, token.RBrace:
			if l.nesting > 0 {
				l.nesting--
			}
		}
		l.emitAt(token.Token{Type: typ, Keyword: text}, pos)
		return
	}

	r := l.next()
	l.diags.Report(diag.Newf(l.src.Locate(pos), diag.UnrecognizedCharacter,
		"remove the character or put it inside a string",
		"character %q is not part of the language", r))
}

// finish emits the pending NEWLINE and closes all open blocks
func (l *Lexer) finish() {
	pos := l.position()
	if l.lineUsed {
		l.emitAt(token.Token{Type: token.Newline}, pos)
		l.lineUsed = false
	}
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.emitAt(token.Token{Type: token.Dedent, Level: len(l.indents) - 1}, pos)
	}
}

func (l *Lexer) fatal(pos token.Position, code diag.Code, message, hint string) {
	l.diags.Report(diag.New(l.src.Locate(pos), "", message, hint, code))
	l.stopped = true
}

func (l *Lexer) emitAt(tok token.Token, pos token.Position) {
	tok.Index = pos.Index
	tok.Line = pos.Line
	tok.Column = pos.Column
	if !tok.Type.IsStructural() {
		l.lineUsed = true
	}
	l.tokens = append(l.tokens, tok)
}

func (l *Lexer) position() token.Position {
	return token.Position{Index: l.pos, Line: l.line, Column: l.col}
}

func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

// peekAt looks ahead n runes without consuming; 0 at end of input
func (l *Lexer) peekAt(n int) rune {
	i := l.pos
	for ; n > 0 && i < len(l.src.Text); n-- {
		_, size := utf8.DecodeRuneInString(l.src.Text[i:])
		i += size
	}
	if i >= len(l.src.Text) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src.Text[i:])
	return r
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.src.Text) {
		return 0
	}
	r, size := utf8.DecodeRuneInString(l.src.Text[l.pos:])
	l.pos += size
	l.col++
	return r
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
