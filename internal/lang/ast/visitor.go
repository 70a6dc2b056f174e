// File: visitor.go
// Title: AST Visitor Pattern
// Description: Visitor interface with one method per node type, and the
//              Accept implementations dispatching to it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial visitor implementation

package ast

// Visitor interface for processing AST nodes
type Visitor interface {
	VisitProgram(p *Program) interface{}
	VisitIntegerLiteral(n *IntegerLiteral) interface{}
	VisitDecimalLiteral(n *DecimalLiteral) interface{}
	VisitStringLiteral(n *StringLiteral) interface{}
	VisitBoolLiteral(n *BoolLiteral) interface{}
	VisitNoneLiteral(n *NoneLiteral) interface{}
	VisitIdentifier(n *Identifier) interface{}
	VisitBinaryOperation(n *BinaryOperation) interface{}
	VisitPrefixExpression(n *PrefixExpression) interface{}
	VisitVariableDeclaration(n *VariableDeclaration) interface{}
	VisitVariableReassignment(n *VariableReassignment) interface{}
}

func (p *Program) Accept(v Visitor) interface{}         { return v.VisitProgram(p) }
func (n *IntegerLiteral) Accept(v Visitor) interface{}  { return v.VisitIntegerLiteral(n) }
func (n *DecimalLiteral) Accept(v Visitor) interface{}  { return v.VisitDecimalLiteral(n) }
func (n *StringLiteral) Accept(v Visitor) interface{}   { return v.VisitStringLiteral(n) }
func (n *BoolLiteral) Accept(v Visitor) interface{}     { return v.VisitBoolLiteral(n) }
func (n *NoneLiteral) Accept(v Visitor) interface{}     { return v.VisitNoneLiteral(n) }
func (n *Identifier) Accept(v Visitor) interface{}      { return v.VisitIdentifier(n) }
func (n *BinaryOperation) Accept(v Visitor) interface{} { return v.VisitBinaryOperation(n) }

func (n *PrefixExpression) Accept(v Visitor) interface{} {
	return v.VisitPrefixExpression(n)
}

func (n *VariableDeclaration) Accept(v Visitor) interface{} {
	return v.VisitVariableDeclaration(n)
}

func (n *VariableReassignment) Accept(v Visitor) interface{} {
	return v.VisitVariableReassignment(n)
}
