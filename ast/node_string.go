package ast

import (
	"strings"
)

// The String methods render nodes back to grammar text. Parsing the text of a
// tree produced by the parser gives back the same tree.

func (n StringLiteral) String() string {
	return quote("", string(n))
}

func (n RegexLiteral) String() string {
	return quote("#", string(n))
}

func (n Terminal) String() string {
	return string(n)
}

func (n Group) String() string {
	return "(" + str(n.Node) + ")"
}

func (n Optional) String() string {
	return "[" + str(n.Node) + "]"
}

func (n Repeat) String() string {
	return "{" + str(n.Node) + "}"
}

func (n RegexExt) String() string {
	return str(n.Node) + n.Kind.Operator()
}

func (n Multiple) String() string {
	var sb strings.Builder
	for i, child := range n {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(str(child))
	}
	return sb.String()
}

func (n Symbol) String() string {
	switch n.Kind {
	case Concatenation:
		return str(n.Left) + ", " + str(n.Right)
	default:
		return str(n.Left) + " " + n.Kind.Operator() + " " + str(n.Right)
	}
}

func (Unknown) String() string {
	return "<unknown>"
}

func str(n Node) string {
	if n == nil {
		return Unknown{}.String()
	}
	return n.String()
}
