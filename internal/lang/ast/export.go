// File: export.go
// Title: AST Export
// Description: Converts a tree into plain maps and slices so it can be
//              serialised as YAML or JSON.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package ast

import (
	"github.com/msto63/peregrine/internal/lang/token"
)

// Export returns n as nested map[string]interface{} values
func Export(n Node) map[string]interface{} {
	if n == nil {
		return nil
	}
	out, _ := n.Accept(exporter{}).(map[string]interface{})
	return out
}

type exporter struct{}

func record(kind string, pos token.Position) map[string]interface{} {
	return map[string]interface{}{
		"kind":   kind,
		"line":   pos.Line,
		"column": pos.Column,
	}
}

func (e exporter) VisitProgram(p *Program) interface{} {
	m := record("Program", p.Pos)
	nodes := make([]interface{}, len(p.Nodes))
	for i, n := range p.Nodes {
		nodes[i] = n.Accept(e)
	}
	m["nodes"] = nodes
	return m
}

func (e exporter) VisitIntegerLiteral(n *IntegerLiteral) interface{} {
	m := record("IntegerLiteral", n.Pos)
	m["value"] = n.Value
	return m
}

func (e exporter) VisitDecimalLiteral(n *DecimalLiteral) interface{} {
	m := record("DecimalLiteral", n.Pos)
	m["value"] = n.Value
	return m
}

func (e exporter) VisitStringLiteral(n *StringLiteral) interface{} {
	m := record("StringLiteral", n.Pos)
	m["value"] = n.Value
	if n.Raw {
		m["raw"] = true
	}
	if n.Formatted {
		m["formatted"] = true
	}
	return m
}

func (e exporter) VisitBoolLiteral(n *BoolLiteral) interface{} {
	m := record("BoolLiteral", n.Pos)
	m["value"] = n.Value
	return m
}

func (e exporter) VisitNoneLiteral(n *NoneLiteral) interface{} {
	return record("NoneLiteral", n.Pos)
}

func (e exporter) VisitIdentifier(n *Identifier) interface{} {
	m := record("Identifier", n.Pos)
	m["name"] = n.Name
	return m
}

func (e exporter) VisitBinaryOperation(n *BinaryOperation) interface{} {
	m := record("BinaryOperation", n.Pos)
	m["operator"] = operatorText(n.Operator)
	m["left"] = n.Left.Accept(e)
	m["right"] = n.Right.Accept(e)
	return m
}

func (e exporter) VisitPrefixExpression(n *PrefixExpression) interface{} {
	m := record("PrefixExpression", n.Pos)
	m["operator"] = operatorText(n.Operator)
	m["operand"] = n.Operand.Accept(e)
	return m
}

func (e exporter) VisitVariableDeclaration(n *VariableDeclaration) interface{} {
	m := record("VariableDeclaration", n.Pos)
	m["type"] = n.Type.Keyword
	m["name"] = n.Name
	if n.Value != nil {
		m["value"] = n.Value.Accept(e)
	}
	return m
}

func (e exporter) VisitVariableReassignment(n *VariableReassignment) interface{} {
	m := record("VariableReassignment", n.Pos)
	m["name"] = n.Name
	m["operator"] = operatorText(n.Operator)
	m["value"] = n.Value.Accept(e)
	return m
}
