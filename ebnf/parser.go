package ebnf

import (
	"github.com/arr-ai/ebnf/ast"
	"github.com/arr-ai/ebnf/parse"
)

// Every recognizer takes the cursor by pointer and advances it only when it
// succeeds. Backtracking is copying the Scanner before an attempt.
type recognizer func(input *parse.Scanner) (ast.Node, *ParseError)

// oneof tries each alternative from the same starting point and commits to
// the first that matches. If all fail, the failure that got furthest into
// the input is reported. A fatal failure stops the search.
func oneof(context string, input *parse.Scanner, alternatives ...recognizer) (ast.Node, *ParseError) {
	var furthest *ParseError
	for _, alt := range alternatives {
		start := *input
		node, err := alt(&start)
		if err == nil {
			*input = start
			return node, nil
		}
		if err.Fatal() {
			return nil, err.within(context, *input)
		}
		if furthest == nil || err.Offset() > furthest.Offset() {
			furthest = err
		}
	}
	return nil, furthest.within(context, *input)
}

// atomAlternatives is filled in by init since the bracketed forms recurse
// back into parseAtom.
var atomAlternatives []recognizer

func init() {
	atomAlternatives = []recognizer{
		bracketed('(', ')', "group", func(n ast.Node) ast.Node { return ast.Group{Node: n} }),
		bracketed('[', ']', "optional", func(n ast.Node) ast.Node { return ast.Optional{Node: n} }),
		bracketed('{', '}', "repeat", func(n ast.Node) ast.Node { return ast.Repeat{Node: n} }),
		parseStringLiteral,
		parseRegexLiteral,
		parseTerminal,
	}
}

func parseAtom(input *parse.Scanner) (ast.Node, *ParseError) {
	return oneof("atom", input, atomAlternatives...)
}

// bracketed recognizes open ... close and parses the inside as a complete
// right-hand side.
func bracketed(open, close byte, context string, wrap func(ast.Node) ast.Node) recognizer {
	return func(input *parse.Scanner) (node ast.Node, err *ParseError) {
		defer enterf("%s %v", context, lookahead(*input)).exitf(&node, &err)

		s := *input
		inner, err := extractDelimited(&s, open, close)
		if err != nil {
			return nil, err.within(context, *input)
		}
		body, err := parseMultiple(inner)
		if err != nil {
			return nil, err.within(context, *input)
		}
		if !inner.EatSpace().IsEmpty() {
			return nil, newParseError(RecognitionFailure, "unconsumed input in "+context, *inner).
				within(context, *input)
		}
		*input = s
		return wrap(body), nil
	}
}

var postfixKinds = []ast.RegexExtKind{ast.ZeroOrMore, ast.OneOrMore, ast.ZeroOrOne}

// parseTerm recognizes an atom and an optional postfix operator. The postfix
// is applied here, before any binary operator is seen, so it binds tighter.
func parseTerm(input *parse.Scanner) (node ast.Node, err *ParseError) {
	s := *input
	s.EatSpace()
	if node, err = parseAtom(&s); err != nil {
		return nil, err
	}

	after := s
	after.EatSpace()
	var eaten parse.Scanner
	for _, kind := range postfixKinds {
		if after.EatString(kind.Operator(), &eaten) {
			node = ast.RegexExt{Node: node, Kind: kind}
			s = after
			break
		}
	}
	*input = s
	return node, nil
}

var symbolKinds = []ast.SymbolKind{ast.Concatenation, ast.Alternation}

// parseNode recognizes a term optionally followed by `,` or `|` and a right
// operand. The right operand is parsed by parseNode itself, so operator chains
// nest to the right and both operators share one precedence level:
//
//	a | b , c  =>  Symbol(a, |, Symbol(b, ,, c))
//
// If the operand can't be parsed, the operator is left in the input.
func parseNode(input *parse.Scanner) (node ast.Node, err *ParseError) {
	defer enterf("node %v", lookahead(*input)).exitf(&node, &err)

	s := *input
	left, err := parseTerm(&s)
	if err != nil {
		return nil, err
	}

	op := s
	op.EatSpace()
	var eaten parse.Scanner
	for _, kind := range symbolKinds {
		if !op.EatString(kind.Operator(), &eaten) {
			continue
		}
		right, err := parseNode(&op)
		if err != nil {
			if err.Fatal() {
				return nil, err.within("right operand of "+kind.Operator(), s)
			}
			break
		}
		*input = op
		return ast.Symbol{Left: left, Kind: kind, Right: right}, nil
	}
	*input = s
	return left, nil
}

// parseMultiple collects nodes until no more can be parsed. Nodes written side
// by side with no operator between them become a Multiple; a lone node is
// returned as is.
func parseMultiple(input *parse.Scanner) (node ast.Node, err *ParseError) {
	defer enterf("sequence %v", lookahead(*input)).exitf(&node, &err)

	s := *input
	var nodes []ast.Node
	for {
		n, err := parseNode(&s)
		if err != nil {
			if err.Fatal() || len(nodes) == 0 {
				return nil, err.within("sequence", *input)
			}
			break
		}
		nodes = append(nodes, n)
	}
	*input = s
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return ast.Multiple(nodes), nil
}
