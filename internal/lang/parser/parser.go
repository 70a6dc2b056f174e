// File: parser.go
// Title: Peregrine Statement Parser
// Description: Turns a token stream into a Program. Statements are
//              dispatched on their leading token: declarations, variable
//              reassignments and expression statements are parsed;
//              reserved constructs are reported and skipped. A syntax error
//              produces one diagnostic and resynchronises at the next line,
//              so independent errors are all reported in one run.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strings"

	pgerror "github.com/msto63/peregrine/internal/core/error"
	"github.com/msto63/peregrine/internal/core/log"
	"github.com/msto63/peregrine/internal/lang/ast"
	"github.com/msto63/peregrine/internal/lang/diag"
	"github.com/msto63/peregrine/internal/lang/token"
)

// errSyntax is returned internally after a diagnostic has been reported
var errSyntax = pgerror.New("syntax error").WithCode(pgerror.CodeSyntaxError)

// Options configures the parser
type Options struct {
	Logger *log.Logger // nil disables logging
}

// Parser holds the state of one parse run. The token slice is borrowed
// and never modified.
type Parser struct {
	src     *diag.Source
	tokens  []token.Token
	diags   *diag.Collector
	logger  *log.Logger
	pos     int // index of current; len(tokens) once exhausted
	current token.Token
}

// New creates a parser over tokens produced from src
func New(src *diag.Source, tokens []token.Token, diags *diag.Collector, opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	return &Parser{
		src:    src,
		tokens: tokens,
		diags:  diags,
		logger: logger.WithName("parser"),
		pos:    -1,
	}
}

// Parse is a shortcut for New(...).Parse()
func Parse(src *diag.Source, tokens []token.Token, diags *diag.Collector, opts Options) (*ast.Program, error) {
	return New(src, tokens, diags, opts).Parse()
}

// Parse consumes the whole token stream. When any diagnostic was reported,
// including ones already in the collector from tokenizing, it returns nil
// and a *diag.Failure holding all of them.
func (p *Parser) Parse() (*ast.Program, error) {
	timer := p.logger.StartTimer("parse").WithField("file", p.src.Filename)

	program := &ast.Program{Pos: token.Position{Line: 1, Column: 1}}
	if len(p.tokens) > 0 {
		program.Pos = p.tokens[0].Pos()
	}

	p.advance()
	for !p.atEnd() {
		if node := p.parseStatement(); node != nil {
			program.Nodes = append(program.Nodes, node)
		}
	}

	if failure := p.diags.Failure(p.src.Filename); failure != nil {
		timer.WithField("diagnostics", failure.Count()).Stop()
		return nil, failure
	}

	timer.WithField("statements", len(program.Nodes)).Stop()
	return program, nil
}

// Cursor

// advance moves onto the next token. At the end it leaves the cursor
// exhausted and returns false.
func (p *Parser) advance() bool {
	if p.pos+1 >= len(p.tokens) {
		p.pos = len(p.tokens)
		p.current = token.Token{}
		return false
	}
	p.pos++
	p.current = p.tokens[p.pos]
	return true
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the token after current without consuming it
func (p *Parser) peek() (token.Token, bool) {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1], true
	}
	return token.Token{}, false
}

func (p *Parser) peekIs(t token.Type) bool {
	next, ok := p.peek()
	return ok && next.Type == t
}

// expect advances onto the next token, which must be of type t
func (p *Parser) expect(t token.Type) error {
	if !p.advance() {
		return p.errorAtEnd(fmt.Sprintf("insert %s", expected(t)),
			"expected %s, found end of input", expected(t))
	}
	if p.current.Type != t {
		return p.errorAt(p.current, diag.MissingToken, "",
			"expected %s, found %s", expected(t), p.current.Describe())
	}
	return nil
}

// Statements

// parseStatement parses one statement starting at current and leaves the
// cursor on the first token of the next one
func (p *Parser) parseStatement() ast.Node {
	tok := p.current

	switch {
	case tok.Type == token.Newline || tok.Type == token.Dedent:
		p.advance()
		return nil

	case tok.Type == token.Indent:
		p.errorAt(tok, diag.UnexpectedIndent,
			"remove the indentation; only block statements are followed by an indented block",
			"unexpected indentation")
		p.advance()
		return nil

	case tok.Type.IsReserved():
		p.unsupported()
		return nil
	}

	node, err := p.statement()
	if err != nil {
		p.synchronize()
		return nil
	}
	if !p.endStatement() {
		return nil
	}

	if p.logger.IsLevelEnabled(log.LevelTrace) {
		p.logger.Trace("statement", log.Fields{"node": ast.Kind(node), "pos": node.Position().String()})
	}
	return node
}

func (p *Parser) statement() (ast.Node, error) {
	switch tok := p.current; {
	case tok.Type == token.Identifier:
		if next, ok := p.peek(); ok && next.Type.IsAssignment() {
			return p.parseReassignment()
		}
		return p.parseExpressionStatement()

	case tok.Type.IsTypeKeyword():
		return p.parseDeclaration()

	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() (ast.Node, error) {
	expr, err := p.parseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// parseDeclaration parses `type name` or `type name = expr`
func (p *Parser) parseDeclaration() (ast.Node, error) {
	typ := p.current
	if err := p.expect(token.Identifier); err != nil {
		return nil, err
	}

	decl := &ast.VariableDeclaration{Type: typ, Name: p.current.Keyword, Pos: typ.Pos()}
	if !p.peekIs(token.Assign) {
		return decl, nil
	}

	p.advance()
	value, err := p.parseOperand(Lowest)
	if err != nil {
		return nil, err
	}
	decl.Value = value
	return decl, nil
}

// parseReassignment parses `name op expr` where op is = or a compound
// assignment
func (p *Parser) parseReassignment() (ast.Node, error) {
	name := p.current
	p.advance()
	op := p.current

	value, err := p.parseOperand(Lowest)
	if err != nil {
		return nil, err
	}
	return &ast.VariableReassignment{Name: name.Keyword, Operator: op, Value: value, Pos: name.Pos()}, nil
}

// endStatement requires the statement to be followed by NEWLINE or the end
// of input
func (p *Parser) endStatement() bool {
	if !p.advance() {
		return true
	}
	if p.current.Type == token.Newline {
		p.advance()
		return true
	}

	p.errorAt(p.current, diag.UnexpectedToken, trailingHint(p.current.Type),
		"unexpected %s after statement", p.current.Describe())
	p.synchronize()
	return false
}

func trailingHint(t token.Type) string {
	switch t {
	case token.LParen:
		return "function calls are not supported yet"
	case token.Dot:
		return "attribute access is not supported yet"
	case token.LBracket:
		return "indexing is not supported yet"
	case token.Assign:
		return "only a plain name can be assigned to"
	default:
		return "put each statement on its own line"
	}
}

// synchronize skips to the end of the current line
func (p *Parser) synchronize() {
	for !p.atEnd() && p.current.Type != token.Newline {
		p.advance()
	}
	p.advance()
}

// unsupported reports a reserved construct and skips it together with its
// block and any elif/else continuation
func (p *Parser) unsupported() {
	tok := p.current
	p.errorAt(tok, diag.Unsupported, "the construct is skipped",
		"'%s' %s not supported yet", tok.Keyword, constructName(tok.Type))

	p.skipConstruct()
	if !continuable(tok.Type) {
		return
	}
	for !p.atEnd() && (p.current.Type == token.Elif || p.current.Type == token.Else) {
		p.skipConstruct()
	}
}

func continuable(t token.Type) bool {
	switch t {
	case token.If, token.Elif, token.While, token.For:
		return true
	default:
		return false
	}
}

func constructName(t token.Type) string {
	switch t {
	case token.If, token.Elif, token.Else, token.While, token.For, token.Match,
		token.Case, token.Default:
		return "blocks are"
	case token.Def, token.Class, token.Struct, token.Extern:
		return "definitions are"
	case token.Import, token.CppImport, token.HImport, token.CppCode:
		return "imports are"
	case token.Const:
		return "constants are"
	default:
		return "statements are"
	}
}

// skipConstruct skips the rest of the line and an indented block that
// directly follows it
func (p *Parser) skipConstruct() {
	p.synchronize()
	if p.atEnd() || p.current.Type != token.Indent {
		return
	}

	depth := 0
	for !p.atEnd() {
		switch p.current.Type {
		case token.Indent:
			depth++
		case token.Dedent:
			depth--
		}
		p.advance()
		if depth == 0 {
			return
		}
	}
}

// Diagnostics

func (p *Parser) errorAt(tok token.Token, code diag.Code, hint, format string, args ...interface{}) error {
	p.diags.Report(diag.Newf(p.src.LocateToken(tok), code, hint, format, args...))
	return errSyntax
}

func (p *Parser) errorAtEnd(hint, format string, args ...interface{}) error {
	p.diags.Report(diag.Newf(p.src.Locate(p.src.End()), diag.UnexpectedEnd, hint, format, args...))
	return errSyntax
}

// expected describes a token type the parser was looking for
func expected(t token.Type) string {
	if text := t.Text(); text != "" {
		return "'" + text + "'"
	}
	return strings.ToLower(t.String())
}
