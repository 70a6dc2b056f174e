// File: walk.go
// Title: AST Traversal
// Description: Depth-first traversal helpers. Children lists the direct
//              children of a node in source order; Inspect and Walk visit
//              a whole subtree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package ast

// Children returns the direct children of n in source order
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Program:
		return n.Nodes
	case *BinaryOperation:
		return []Node{n.Left, n.Right}
	case *PrefixExpression:
		return []Node{n.Operand}
	case *VariableDeclaration:
		if n.Value == nil {
			return nil
		}
		return []Node{n.Value}
	case *VariableReassignment:
		return []Node{n.Value}
	default:
		return nil
	}
}

// Inspect traverses the tree rooted at n depth-first, calling f for each
// node. Children are skipped when f returns false.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, child := range Children(n) {
		Inspect(child, f)
	}
}

// Walk calls f for every node with its depth below n (n itself is 0)
func Walk(n Node, f func(node Node, depth int)) {
	walk(n, 0, f)
}

func walk(n Node, depth int, f func(Node, int)) {
	if n == nil {
		return
	}
	f(n, depth)
	for _, child := range Children(n) {
		walk(child, depth+1, f)
	}
}

// Count returns the number of nodes in the tree rooted at n
func Count(n Node) int {
	count := 0
	Inspect(n, func(Node) bool {
		count++
		return true
	})
	return count
}
