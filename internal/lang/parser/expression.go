// File: expression.go
// Title: Expression Parsing
// Description: Precedence climbing over the table in precedence.go.
//              Primaries are literals, names, parenthesised expressions
//              and prefix operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial expression parser

package parser

import (
	"github.com/msto63/peregrine/internal/lang/ast"
	"github.com/msto63/peregrine/internal/lang/diag"
	"github.com/msto63/peregrine/internal/lang/token"
)

// parseExpression parses an expression starting at current. Infix
// operators are consumed while they bind tighter than minPrec; the cursor is
// left on the last token of the expression.
func (p *Parser) parseExpression(minPrec Precedence) (ast.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		next, ok := p.peek()
		if !ok {
			return left, nil
		}
		prec := InfixPrecedence(next.Type)
		if prec <= minPrec {
			return left, nil
		}

		p.advance()
		op := p.current

		rightMin := prec
		if IsRightAssociative(op.Type) {
			rightMin = prec - 1
		}
		right, err := p.parseOperand(rightMin)
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryOperation{Left: left, Operator: op, Right: right, Pos: left.Position()}
	}
}

// parseOperand advances past current and parses the expression after it
func (p *Parser) parseOperand(minPrec Precedence) (ast.Expr, error) {
	if !p.advance() {
		return nil, p.errorAtEnd("complete the expression", "expected an expression, found end of input")
	}
	return p.parseExpression(minPrec)
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.current

	switch tok.Type {
	case token.Integer:
		return &ast.IntegerLiteral{Value: tok.Keyword, Pos: tok.Pos()}, nil

	case token.Decimal:
		return &ast.DecimalLiteral{Value: tok.Keyword, Pos: tok.Pos()}, nil

	case token.String:
		return &ast.StringLiteral{Value: tok.Keyword, Pos: tok.Pos()}, nil

	case token.Raw, token.Format:
		if err := p.expect(token.String); err != nil {
			return nil, err
		}
		return &ast.StringLiteral{
			Value:     p.current.Keyword,
			Raw:       tok.Type == token.Raw,
			Formatted: tok.Type == token.Format,
			Pos:       tok.Pos(),
		}, nil

	case token.True, token.False:
		return &ast.BoolLiteral{Value: tok.Type == token.True, Pos: tok.Pos()}, nil

	case token.None:
		return &ast.NoneLiteral{Pos: tok.Pos()}, nil

	case token.Identifier:
		return &ast.Identifier{Name: tok.Keyword, Pos: tok.Pos()}, nil

	case token.LParen:
		inner, err := p.parseOperand(Lowest)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return inner, nil

	case token.Minus, token.Plus, token.Tilde, token.Not:
		prec, _ := prefixPrecedence(tok.Type)
		operand, err := p.parseOperand(prec)
		if err != nil {
			return nil, err
		}
		return &ast.PrefixExpression{Operator: tok, Operand: operand, Pos: tok.Pos()}, nil

	case token.Newline:
		return nil, p.errorAt(tok, diag.UnexpectedEnd, "complete the expression",
			"expected an expression, found end of line")

	case token.Bang:
		return nil, p.errorAt(tok, diag.UnexpectedToken, "use 'not' for logical negation",
			"unexpected %s in expression", tok.Describe())

	default:
		return nil, p.errorAt(tok, diag.UnexpectedToken, "",
			"unexpected %s in expression", tok.Describe())
	}
}
