package ast

import (
	"encoding/json"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/arr-ai/ebnf/errors"
)

// Encoding
//
// Each node encodes as an object whose "kind" is the snake_case variant name:
//
//	{"kind": "string_literal", "value": "x"}
//	{"kind": "regex_ext", "node": {...}, "op": "zero_or_more"}
//	{"kind": "multiple", "nodes": [...]}
//	{"kind": "symbol", "left": {...}, "op": "alternation", "right": {...}}
//
// A Grammar encodes as {"expressions": [{"lhs": "name", "rhs": {...}}, ...]}.

// Encode converts n into maps, slices and strings ready for a generic
// marshaller.
func Encode(n Node) map[string]interface{} {
	out := map[string]interface{}{"kind": strcase.ToSnake(Kind(n))}
	switch n := n.(type) {
	case StringLiteral:
		out["value"] = string(n)
	case RegexLiteral:
		out["value"] = string(n)
	case Terminal:
		out["name"] = string(n)
	case Group:
		out["node"] = Encode(n.Node)
	case Optional:
		out["node"] = Encode(n.Node)
	case Repeat:
		out["node"] = Encode(n.Node)
	case RegexExt:
		out["node"] = Encode(n.Node)
		out["op"] = strcase.ToSnake(n.Kind.String())
	case Multiple:
		nodes := make([]interface{}, 0, len(n))
		for _, child := range n {
			nodes = append(nodes, Encode(child))
		}
		out["nodes"] = nodes
	case Symbol:
		out["left"] = Encode(n.Left)
		out["op"] = strcase.ToSnake(n.Kind.String())
		out["right"] = Encode(n.Right)
	case Unknown, nil:
	default:
		panic(errors.Inconceivable)
	}
	return out
}

func (e Expression) encode() map[string]interface{} {
	return map[string]interface{}{
		"lhs": e.LHS,
		"rhs": Encode(e.RHS),
	}
}

func (g Grammar) encode() map[string]interface{} {
	exprs := make([]interface{}, 0, len(g.Expressions))
	for _, e := range g.Expressions {
		exprs = append(exprs, e.encode())
	}
	return map[string]interface{}{"expressions": exprs}
}

func (e Expression) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.encode())
}

func (g Grammar) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.encode())
}

func (e Expression) MarshalYAML() (interface{}, error) {
	return e.encode(), nil
}

func (g Grammar) MarshalYAML() (interface{}, error) {
	return g.encode(), nil
}

var (
	_ json.Marshaler = Grammar{}
	_ yaml.Marshaler = Grammar{}
)
