// Package ast holds the parsed form of an EBNF grammar.
//
// A Grammar is an ordered list of Expressions, one per production rule. Each
// right-hand side is a tree of Node values. Every Node type is a plain value,
// so trees can be compared with reflect.DeepEqual and are safe to share once
// built; nothing in this package mutates a tree.
package ast

import (
	"fmt"

	"github.com/arr-ai/ebnf/errors"
)

// Node is one of StringLiteral, RegexLiteral, Terminal, Group, Optional,
// Repeat, RegexExt, Multiple, Symbol or Unknown.
type Node interface {
	fmt.Stringer
	isNode()
}

// StringLiteral is terminal text, stored exactly as written between the
// quotes. Escape sequences are kept undecoded.
type StringLiteral string

// RegexLiteral is a #'...' pattern, stored undecoded. Interpreting it is up to
// the consumer.
type RegexLiteral string

// Terminal is a reference to a rule by name. It is not resolved.
type Terminal string

// Group is a parenthesised sub-expression.
type Group struct {
	Node Node
}

// Optional is the bracket form [ ... ] of zero-or-one.
type Optional struct {
	Node Node
}

// Repeat is the brace form { ... } of zero-or-more.
type Repeat struct {
	Node Node
}

// RegexExt is a node followed by a postfix *, + or ?.
type RegexExt struct {
	Node Node
	Kind RegexExtKind
}

// Multiple is implicit concatenation: two or more nodes written side by side.
type Multiple []Node

// Symbol is an explicit binary combination with , or |.
type Symbol struct {
	Left  Node
	Kind  SymbolKind
	Right Node
}

// Unknown is a placeholder. The parser never produces it.
type Unknown struct{}

func (StringLiteral) isNode() {}
func (RegexLiteral) isNode()  {}
func (Terminal) isNode()      {}
func (Group) isNode()         {}
func (Optional) isNode()      {}
func (Repeat) isNode()        {}
func (RegexExt) isNode()      {}
func (Multiple) isNode()      {}
func (Symbol) isNode()        {}
func (Unknown) isNode()       {}

var (
	_ Node = StringLiteral("")
	_ Node = RegexLiteral("")
	_ Node = Terminal("")
	_ Node = Group{}
	_ Node = Optional{}
	_ Node = Repeat{}
	_ Node = RegexExt{}
	_ Node = Multiple{}
	_ Node = Symbol{}
	_ Node = Unknown{}
)

type SymbolKind int

const (
	Concatenation SymbolKind = iota
	Alternation
)

func (k SymbolKind) String() string {
	switch k {
	case Concatenation:
		return "Concatenation"
	case Alternation:
		return "Alternation"
	}
	panic(errors.Inconceivable)
}

// Operator is the character that introduces k in grammar text.
func (k SymbolKind) Operator() string {
	switch k {
	case Concatenation:
		return ","
	case Alternation:
		return "|"
	}
	panic(errors.Inconceivable)
}

type RegexExtKind int

const (
	ZeroOrMore RegexExtKind = iota
	OneOrMore
	// ZeroOrOne is spelt Optional in diagnostics; the Go name avoids
	// colliding with the Optional node type.
	ZeroOrOne
)

func (k RegexExtKind) String() string {
	switch k {
	case ZeroOrMore:
		return "ZeroOrMore"
	case OneOrMore:
		return "OneOrMore"
	case ZeroOrOne:
		return "Optional"
	}
	panic(errors.Inconceivable)
}

// Operator is the postfix character for k.
func (k RegexExtKind) Operator() string {
	switch k {
	case ZeroOrMore:
		return "*"
	case OneOrMore:
		return "+"
	case ZeroOrOne:
		return "?"
	}
	panic(errors.Inconceivable)
}

// Kind names the variant of n. A nil node is reported as Unknown.
func Kind(n Node) string {
	switch n.(type) {
	case StringLiteral:
		return "StringLiteral"
	case RegexLiteral:
		return "RegexLiteral"
	case Terminal:
		return "Terminal"
	case Group:
		return "Group"
	case Optional:
		return "Optional"
	case Repeat:
		return "Repeat"
	case RegexExt:
		return "RegexExt"
	case Multiple:
		return "Multiple"
	case Symbol:
		return "Symbol"
	case Unknown, nil:
		return "Unknown"
	}
	panic(errors.Inconceivable)
}

// Children returns the direct children of n in order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case Group:
		return []Node{n.Node}
	case Optional:
		return []Node{n.Node}
	case Repeat:
		return []Node{n.Node}
	case RegexExt:
		return []Node{n.Node}
	case Multiple:
		return n
	case Symbol:
		return []Node{n.Left, n.Right}
	}
	return nil
}

// Walk visits n and its descendants in pre-order. Returning false from visit
// skips the children of the node just visited.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, child := range Children(n) {
		Walk(child, visit)
	}
}
