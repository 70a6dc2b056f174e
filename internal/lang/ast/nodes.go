// File: nodes.go
// Title: Peregrine AST Node Definitions
// Description: Node types produced by the parser: the program root,
//              literals, identifiers, binary and prefix operations,
//              variable declarations and reassignments. Every node knows
//              its start position and has a deterministic rendering that
//              parses back to the same tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial AST node definitions
// - 2026-10-14 v0.1.0: Decimal and none literals, compound reassignment

package ast

import (
	"fmt"
	"strings"

	"github.com/msto63/peregrine/internal/lang/token"
	"github.com/msto63/peregrine/internal/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the canonical rendering of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the start position of the node
	Position() token.Position

	// Validate checks the structural invariants of the node
	Validate() error
}

// Expr is a node that produces a value
type Expr interface {
	Node
	exprNode()
}

// Program is the root of a parsed source unit
type Program struct {
	Nodes []Node
	Pos   token.Position
}

// IntegerLiteral is a whole number as written
type IntegerLiteral struct {
	Value string
	Pos   token.Position
}

// DecimalLiteral is a number with a fractional part as written
type DecimalLiteral struct {
	Value string
	Pos   token.Position
}

// StringLiteral is a quoted string. Value is decoded unless Raw is set.
type StringLiteral struct {
	Value     string
	Raw       bool
	Formatted bool
	Pos       token.Position
}

// BoolLiteral is true or false
type BoolLiteral struct {
	Value bool
	Pos   token.Position
}

// NoneLiteral is the none value
type NoneLiteral struct {
	Pos token.Position
}

// Identifier is a reference to a name
type Identifier struct {
	Name string
	Pos  token.Position
}

// BinaryOperation applies an infix operator to two operands
type BinaryOperation struct {
	Left     Expr
	Operator token.Token
	Right    Expr
	Pos      token.Position
}

// PrefixExpression applies a prefix operator (- + ~ not) to one operand
type PrefixExpression struct {
	Operator token.Token
	Operand  Expr
	Pos      token.Position
}

// VariableDeclaration introduces a typed variable, optionally initialised.
// Value is nil for an uninitialised declaration.
type VariableDeclaration struct {
	Type  token.Token
	Name  string
	Value Expr
	Pos   token.Position
}

// VariableReassignment assigns to an existing name with = or a compound
// assignment operator
type VariableReassignment struct {
	Name     string
	Operator token.Token
	Value    Expr
	Pos      token.Position
}

func (*IntegerLiteral) exprNode()   {}
func (*DecimalLiteral) exprNode()   {}
func (*StringLiteral) exprNode()    {}
func (*BoolLiteral) exprNode()      {}
func (*NoneLiteral) exprNode()      {}
func (*Identifier) exprNode()       {}
func (*BinaryOperation) exprNode()  {}
func (*PrefixExpression) exprNode() {}

// String methods

func (p *Program) String() string {
	parts := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, "\n")
}

func (n *IntegerLiteral) String() string { return n.Value }
func (n *DecimalLiteral) String() string { return n.Value }
func (n *NoneLiteral) String() string    { return "none" }
func (n *Identifier) String() string     { return n.Name }

func (n *BoolLiteral) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}

func (n *StringLiteral) String() string {
	switch {
	case n.Raw:
		return "r" + quoteRaw(n.Value)
	case n.Formatted:
		return "f" + quote(n.Value)
	default:
		return quote(n.Value)
	}
}

func (n *BinaryOperation) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, operatorText(n.Operator), n.Right)
}

func (n *PrefixExpression) String() string {
	op := operatorText(n.Operator)
	if n.Operator.Type.IsKeyword() {
		return fmt.Sprintf("(%s %s)", op, n.Operand)
	}
	return fmt.Sprintf("(%s%s)", op, n.Operand)
}

func (n *VariableDeclaration) String() string {
	if n.Value == nil {
		return fmt.Sprintf("%s %s", n.Type.Keyword, n.Name)
	}
	return fmt.Sprintf("%s %s = %s", n.Type.Keyword, n.Name, n.Value)
}

func (n *VariableReassignment) String() string {
	return fmt.Sprintf("%s %s %s", n.Name, operatorText(n.Operator), n.Value)
}

// operatorText prefers the canonical spelling over the lexeme
func operatorText(tok token.Token) string {
	if text := tok.Type.Text(); text != "" {
		return text
	}
	return tok.Keyword
}

// quote renders a decoded string using only the escapes the tokenizer
// understands
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// quoteRaw wraps an undecoded payload in the quote that cannot end it early
func quoteRaw(s string) string {
	if hasBareQuote(s, '"') {
		return "'" + s + "'"
	}
	return `"` + s + `"`
}

// hasBareQuote reports whether q appears in s without a preceding backslash
func hasBareQuote(s string, q rune) bool {
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == q:
			return true
		}
	}
	return false
}

// Position methods

func (p *Program) Position() token.Position              { return p.Pos }
func (n *IntegerLiteral) Position() token.Position       { return n.Pos }
func (n *DecimalLiteral) Position() token.Position       { return n.Pos }
func (n *StringLiteral) Position() token.Position        { return n.Pos }
func (n *BoolLiteral) Position() token.Position          { return n.Pos }
func (n *NoneLiteral) Position() token.Position          { return n.Pos }
func (n *Identifier) Position() token.Position           { return n.Pos }
func (n *BinaryOperation) Position() token.Position      { return n.Pos }
func (n *PrefixExpression) Position() token.Position     { return n.Pos }
func (n *VariableDeclaration) Position() token.Position  { return n.Pos }
func (n *VariableReassignment) Position() token.Position { return n.Pos }

// Validate methods

func (p *Program) Validate() error {
	for i, n := range p.Nodes {
		if n == nil {
			return fmt.Errorf("program node %d is nil", i)
		}
		if err := n.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (n *IntegerLiteral) Validate() error {
	if n.Value == "" || strings.Trim(n.Value, "0123456789") != "" {
		return fmt.Errorf("%s: invalid integer literal %q", n.Pos, n.Value)
	}
	return nil
}

func (n *DecimalLiteral) Validate() error {
	whole, frac, ok := strings.Cut(n.Value, ".")
	if !ok || whole == "" || frac == "" ||
		strings.Trim(whole, "0123456789") != "" || strings.Trim(frac, "0123456789") != "" {
		return fmt.Errorf("%s: invalid decimal literal %q", n.Pos, n.Value)
	}
	return nil
}

func (n *StringLiteral) Validate() error {
	if n.Raw && n.Formatted {
		return fmt.Errorf("%s: string cannot be both raw and formatted", n.Pos)
	}
	return nil
}

func (n *BoolLiteral) Validate() error { return nil }
func (n *NoneLiteral) Validate() error { return nil }

func (n *Identifier) Validate() error {
	if stringx.IsBlank(n.Name) {
		return fmt.Errorf("%s: identifier name is required", n.Pos)
	}
	return nil
}

func (n *BinaryOperation) Validate() error {
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("%s: binary operation needs two operands", n.Pos)
	}
	if !n.Operator.Type.IsOperator() && !n.Operator.Type.IsKeyword() {
		return fmt.Errorf("%s: %v is not an operator", n.Pos, n.Operator.Type)
	}
	if err := n.Left.Validate(); err != nil {
		return err
	}
	return n.Right.Validate()
}

func (n *PrefixExpression) Validate() error {
	if n.Operand == nil {
		return fmt.Errorf("%s: prefix operation needs an operand", n.Pos)
	}
	switch n.Operator.Type {
	case token.Minus, token.Plus, token.Tilde, token.Not:
	default:
		return fmt.Errorf("%s: %v is not a prefix operator", n.Pos, n.Operator.Type)
	}
	return n.Operand.Validate()
}

func (n *VariableDeclaration) Validate() error {
	if !n.Type.Type.IsTypeKeyword() {
		return fmt.Errorf("%s: %v is not a type", n.Pos, n.Type.Type)
	}
	if stringx.IsBlank(n.Name) {
		return fmt.Errorf("%s: variable name is required", n.Pos)
	}
	if n.Value != nil {
		return n.Value.Validate()
	}
	return nil
}

func (n *VariableReassignment) Validate() error {
	if stringx.IsBlank(n.Name) {
		return fmt.Errorf("%s: variable name is required", n.Pos)
	}
	if !n.Operator.Type.IsAssignment() {
		return fmt.Errorf("%s: %v is not an assignment operator", n.Pos, n.Operator.Type)
	}
	if n.Value == nil {
		return fmt.Errorf("%s: reassignment needs a value", n.Pos)
	}
	return n.Value.Validate()
}
