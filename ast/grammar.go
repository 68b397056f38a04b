package ast

import (
	"strings"

	"github.com/arr-ai/frozen"
)

// Grammar is the ordered list of rules in a grammar source. Names need not be
// unique.
type Grammar struct {
	Expressions []Expression
}

// Expression is a single production rule, LHS ::= RHS;.
type Expression struct {
	LHS string
	RHS Node
}

func (e Expression) String() string {
	return e.LHS + " ::= " + str(e.RHS) + ";"
}

func (g Grammar) String() string {
	var sb strings.Builder
	for _, e := range g.Expressions {
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Rules returns the expressions whose LHS is name, in source order.
func (g Grammar) Rules(name string) []Expression {
	var out []Expression
	for _, e := range g.Expressions {
		if e.LHS == name {
			out = append(out, e)
		}
	}
	return out
}

// RuleNames is the set of names defined by the grammar.
func (g Grammar) RuleNames() frozen.Set[string] {
	names := frozen.NewSet[string]()
	for _, e := range g.Expressions {
		names = names.With(e.LHS)
	}
	return names
}

// References is the set of names used by Terminal nodes anywhere in the
// grammar. Whether they are defined is not checked.
func (g Grammar) References() frozen.Set[string] {
	refs := frozen.NewSet[string]()
	for _, e := range g.Expressions {
		refs = refs.Union(References(e.RHS))
	}
	return refs
}

// Undefined is the set of referenced names that no rule defines.
func (g Grammar) Undefined() frozen.Set[string] {
	return g.References().Difference(g.RuleNames())
}

// References is the set of names used by Terminal nodes under n.
func References(n Node) frozen.Set[string] {
	refs := frozen.NewSet[string]()
	Walk(n, func(n Node) bool {
		if t, ok := n.(Terminal); ok {
			refs = refs.With(string(t))
		}
		return true
	})
	return refs
}

// Sorted returns the elements of s in lexical order.
func Sorted(s frozen.Set[string]) []string {
	return s.OrderedElements(func(a, b string) bool { return a < b })
}
