package ast

import (
	"fmt"

	"github.com/arr-ai/ebnf/gotree"
)

// BuildTreeView renders g as an indented tree, one line per node.
func BuildTreeView(g Grammar) string {
	root := gotree.New("grammar")
	for _, e := range g.Expressions {
		tree := root.Add(e.LHS)
		tree.AddTree(fromNode(e.RHS))
	}
	return root.Print()
}

func fromNode(n Node) gotree.Tree {
	var label string
	switch n := n.(type) {
	case StringLiteral, RegexLiteral, Terminal:
		label = fmt.Sprintf("%s %s", Kind(n), n)
	case RegexExt:
		label = fmt.Sprintf("%s %s", Kind(n), n.Kind)
	case Symbol:
		label = fmt.Sprintf("%s %s", Kind(n), n.Kind)
	default:
		label = Kind(n)
	}
	tree := gotree.New(label)
	for _, child := range Children(n) {
		tree.AddTree(fromNode(child))
	}
	return tree
}
