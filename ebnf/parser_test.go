package ebnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/ebnf/ast"
	"github.com/arr-ai/ebnf/parse"
)

var (
	a = ast.StringLiteral("a")
	b = ast.StringLiteral("b")
	c = ast.StringLiteral("c")
	d = ast.StringLiteral("d")
)

func alt(l, r ast.Node) ast.Node { return ast.Symbol{Left: l, Kind: ast.Alternation, Right: r} }
func cat(l, r ast.Node) ast.Node { return ast.Symbol{Left: l, Kind: ast.Concatenation, Right: r} }
func ext(n ast.Node, k ast.RegexExtKind) ast.Node {
	return ast.RegexExt{Node: n, Kind: k}
}

func TestParseAtom(t *testing.T) {
	for _, test := range []data{
		{name: "group", input: "('a')", expected: ast.Group{Node: a}},
		{name: "optional", input: "[ 'a' ] x", expected: ast.Optional{Node: a}, rest: " x"},
		{name: "repeat", input: "{'a' 'b'}", expected: ast.Repeat{Node: ast.Multiple{a, b}}},
		{name: "string", input: "'a'", expected: a},
		{name: "regex", input: "#'a'", expected: ast.RegexLiteral("a")},
		{name: "terminal", input: "name;", expected: ast.Terminal("name"), rest: ";"},
		{name: "nested-kinds", input: "([{x}])", expected: ast.Group{Node: ast.Optional{Node: ast.Repeat{Node: ast.Terminal("x")}}}},
		{name: "group-with-alternation", input: "( 'a' | 'b' )", expected: ast.Group{Node: alt(a, b)}},
		{name: "empty-group", input: "()"},
		{name: "junk-in-group", input: "( 'a' ] )"},
		{name: "operator", input: "| 'a'"},
		{name: "semicolon", input: ";"},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			testRecognizer(t, parseAtom, test)
		})
	}
}

func TestParseTerm(t *testing.T) {
	for _, test := range []data{
		{name: "star", input: "'a'*", expected: ext(a, ast.ZeroOrMore)},
		{name: "plus", input: "'a'+", expected: ext(a, ast.OneOrMore)},
		{name: "question", input: "'a'?", expected: ext(a, ast.ZeroOrOne)},
		{name: "spaced", input: "  'a' \n * ;", expected: ext(a, ast.ZeroOrMore), rest: " ;"},
		{name: "group-star", input: "('a' 'b')*", expected: ext(ast.Group{Node: ast.Multiple{a, b}}, ast.ZeroOrMore)},
		{name: "only-one-postfix", input: "'a'*?", expected: ext(a, ast.ZeroOrMore), rest: "?"},
		{name: "no-postfix", input: "'a' 'b'", expected: a, rest: " 'b'"},
		{name: "no-atom", input: "*"},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			testRecognizer(t, parseTerm, test)
		})
	}
}

func TestParseNode(t *testing.T) {
	for _, test := range []data{
		{name: "single", input: "'a'", expected: a},
		{name: "alternation", input: "'a' | 'b'", expected: alt(a, b)},
		{name: "concatenation", input: "'a','b'", expected: cat(a, b)},
		{name: "right-assoc", input: "'a' | 'b' | 'c'", expected: alt(a, alt(b, c))},
		{name: "stops-at-juxtaposition", input: "'a' | 'b' 'c'", expected: alt(a, b), rest: " 'c'"},
		{name: "postfix-binds-tighter", input: "'a'* | 'b'?", expected: alt(ext(a, ast.ZeroOrMore), ext(b, ast.ZeroOrOne))},
		{name: "dangling-operator-left-in-input", input: "'a' | ;", expected: a, rest: " | ;"},
		{name: "dangling-comma", input: "'a' ,", expected: a, rest: " ,"},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			testRecognizer(t, parseNode, test)
		})
	}
}

func TestParseMultiple(t *testing.T) {
	for _, test := range []data{
		{name: "single", input: "'a';", expected: a, rest: ";"},
		{name: "pair", input: "'a' 'b';", expected: ast.Multiple{a, b}, rest: ";"},
		{name: "mixed", input: "'a' | 'b' 'c' , 'd'", expected: ast.Multiple{alt(a, b), cat(c, d)}},
		{name: "no-spaces", input: "'a''b'", expected: ast.Multiple{a, b}},
		{name: "empty", input: ";"},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			testRecognizer(t, parseMultiple, test)
		})
	}
}

func TestParseMultipleUnbalancedIsFatal(t *testing.T) {
	scanner := parse.NewScanner("'a' ( 'b' ;")
	node, err := parseMultiple(scanner)
	require.NotNil(t, err)
	assert.Nil(t, node)
	assert.Equal(t, UnbalancedDelimiter, err.Kind)
	assert.Equal(t, "'a' ( 'b' ;", scanner.String())
}

func TestParseNodeUnbalancedOperandIsFatal(t *testing.T) {
	_, err := parseNode(parse.NewScanner("'a' | [ 'b'"))
	require.NotNil(t, err)
	assert.Equal(t, UnbalancedDelimiter, err.Kind)
	assert.Equal(t, "right operand of |", err.Frames[0].Context)
}
