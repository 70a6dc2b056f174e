// File: dump.go
// Title: AST Tree Printer
// Description: Renders a tree as indented lines, one node per line with
//              its kind, its own attributes and its start position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump returns an indented tree rendering of n
func Dump(n Node) string {
	var b strings.Builder
	Walk(n, func(node Node, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(Kind(node))
		if detail := describe(node); detail != "" {
			b.WriteString(" " + detail)
		}
		if pos := node.Position(); pos.IsValid() {
			fmt.Fprintf(&b, " @%s", pos)
		}
		b.WriteByte('\n')
	})
	return b.String()
}

// Kind returns the node type name, e.g. "BinaryOperation"
func Kind(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *IntegerLiteral:
		return "IntegerLiteral"
	case *DecimalLiteral:
		return "DecimalLiteral"
	case *StringLiteral:
		return "StringLiteral"
	case *BoolLiteral:
		return "BoolLiteral"
	case *NoneLiteral:
		return "NoneLiteral"
	case *Identifier:
		return "Identifier"
	case *BinaryOperation:
		return "BinaryOperation"
	case *PrefixExpression:
		return "PrefixExpression"
	case *VariableDeclaration:
		return "VariableDeclaration"
	case *VariableReassignment:
		return "VariableReassignment"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// describe returns the attributes of n that are not child nodes
func describe(n Node) string {
	switch n := n.(type) {
	case *IntegerLiteral:
		return n.Value
	case *DecimalLiteral:
		return n.Value
	case *StringLiteral:
		return n.String()
	case *BoolLiteral:
		return strconv.FormatBool(n.Value)
	case *Identifier:
		return n.Name
	case *BinaryOperation:
		return operatorText(n.Operator)
	case *PrefixExpression:
		return operatorText(n.Operator)
	case *VariableDeclaration:
		return n.Type.Keyword + " " + n.Name
	case *VariableReassignment:
		return n.Name + " " + operatorText(n.Operator)
	default:
		return ""
	}
}
