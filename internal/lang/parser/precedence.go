// File: precedence.go
// Title: Operator Precedence Table
// Description: Binding power of every operator token. Tokens missing from
//              the infix table bind at Lowest and therefore never continue
//              an expression.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial precedence table

package parser

import (
	"github.com/msto63/peregrine/internal/lang/token"
)

// Precedence is the binding power of an operator
type Precedence int

const (
	Lowest     Precedence = iota
	Logical               // and or
	Not                   // prefix not
	Comparison            // == != < > <= >= is in
	BitOr                 // |
	BitXor                // ^
	BitAnd                // &
	Shift                 // << >>
	Sum                   // + -
	Product               // * / // %
	Prefix                // unary - + ~
	Power                 // **
)

var precedenceNames = [...]string{
	Lowest:     "lowest",
	Logical:    "logical",
	Not:        "not",
	Comparison: "comparison",
	BitOr:      "bit-or",
	BitXor:     "bit-xor",
	BitAnd:     "bit-and",
	Shift:      "shift",
	Sum:        "sum",
	Product:    "product",
	Prefix:     "prefix",
	Power:      "power",
}

func (p Precedence) String() string {
	if p >= 0 && int(p) < len(precedenceNames) {
		return precedenceNames[p]
	}
	return "unknown"
}

var infix = map[token.Type]Precedence{
	token.And: Logical,
	token.Or:  Logical,

	token.Equal:        Comparison,
	token.NotEqual:     Comparison,
	token.Less:         Comparison,
	token.Greater:      Comparison,
	token.LessEqual:    Comparison,
	token.GreaterEqual: Comparison,
	token.Is:           Comparison,
	token.In:           Comparison,

	token.Pipe:      BitOr,
	token.Caret:     BitXor,
	token.Ampersand: BitAnd,

	token.ShiftLeft:  Shift,
	token.ShiftRight: Shift,

	token.Plus:  Sum,
	token.Minus: Sum,

	token.Star:     Product,
	token.Slash:    Product,
	token.FloorDiv: Product,
	token.Percent:  Product,

	token.Power: Power,
}

// InfixPrecedence returns the binding power of t in infix position
func InfixPrecedence(t token.Type) Precedence {
	if p, ok := infix[t]; ok {
		return p
	}
	return Lowest
}

// IsRightAssociative reports whether a chain of t groups to the right
func IsRightAssociative(t token.Type) bool {
	return t == token.Power
}

// prefixPrecedence returns the level a prefix operator parses its operand at
func prefixPrecedence(t token.Type) (Precedence, bool) {
	switch t {
	case token.Minus, token.Plus, token.Tilde:
		return Prefix, true
	case token.Not:
		return Not, true
	default:
		return Lowest, false
	}
}
