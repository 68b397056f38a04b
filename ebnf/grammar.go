// Package ebnf parses EBNF grammar text into an ast.Grammar.
//
// The accepted form is
//
//	grammar := rule*
//	rule    := identifier ("::=" | "=") rhs ";"
//	rhs     := node+
//	node    := term (("," | "|") node)?
//	term    := atom ("*" | "+" | "?")?
//	atom    := "(" rhs ")" | "[" rhs "]" | "{" rhs "}"
//	         | string | "#" string | identifier
//
// where a string is '...' or "..." and may contain the escapes \t \b \n \r
// \f \/ and an escaped quote. No other backslash is allowed, not even \\.
// Identifiers start with a letter or _ and continue with letters, digits
// and _; letters and digits are Unicode. Whitespace may appear between any
// two tokens.
//
// Note that `,` and `|` have the same precedence and chain to the right, and
// that side-by-side nodes collect into a Multiple only after each has
// absorbed any operator chain that follows it. So
//
//	f ::= 'a' | 'b' , 'c';   // Symbol(a, |, Symbol(b, ,, c))
//	f ::= 'a' | 'b' 'c';     // Multiple(Symbol(a, |, b), c)
//
// Parsing is a pure function of the source text. Parse may be called
// concurrently.
package ebnf

import (
	"fmt"

	"github.com/arr-ai/ebnf/ast"
	"github.com/arr-ai/ebnf/parse"
)

var definedAs = []string{"::=", "="}

// Parse parses a complete grammar. On failure the error is a *ParseError and
// no partial grammar is returned.
func Parse(source string) (ast.Grammar, error) {
	return parseGrammar(parse.NewScanner(source))
}

// ParseWithFilename is Parse with filename included in error positions.
func ParseWithFilename(source, filename string) (ast.Grammar, error) {
	return parseGrammar(parse.NewScannerWithFilename(source, filename))
}

// MustParse is Parse for sources known to be valid. It panics on error.
func MustParse(source string) ast.Grammar {
	g, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return g
}

func parseGrammar(input *parse.Scanner) (ast.Grammar, error) {
	start := *input
	var exprs []ast.Expression
	for input.EatSpace(); !input.IsEmpty(); input.EatSpace() {
		expr, err := parseRule(input)
		if err != nil {
			if !err.Fatal() {
				err = err.as(MalformedRule)
			}
			return ast.Grammar{}, err.within("grammar", start)
		}
		exprs = append(exprs, expr)
	}
	return ast.Grammar{Expressions: exprs}, nil
}

// parseRule recognizes `name ::= rhs ;` or `name = rhs ;`.
func parseRule(input *parse.Scanner) (expr ast.Expression, err *ParseError) {
	var rhs ast.Node
	defer enterf("rule %v", lookahead(*input)).exitf(&rhs, &err)

	s := *input
	s.EatSpace()
	lhs, err := parseIdentifier(&s)
	if err != nil {
		return ast.Expression{}, err.within("rule", *input)
	}
	context := fmt.Sprintf("rule %s", lhs)

	s.EatSpace()
	if !eatAny(&s, definedAs...) {
		return ast.Expression{}, newParseError(RecognitionFailure, "'::=' or '='", s).within(context, *input)
	}

	if rhs, err = parseMultiple(&s); err != nil {
		return ast.Expression{}, err.within(context, *input)
	}

	s.EatSpace()
	if !eatAny(&s, ";") {
		return ast.Expression{}, newParseError(RecognitionFailure, "';'", s).within(context, *input)
	}

	*input = s
	return ast.Expression{LHS: lhs, RHS: rhs}, nil
}

func eatAny(input *parse.Scanner, strs ...string) bool {
	var eaten parse.Scanner
	for _, str := range strs {
		if input.EatString(str, &eaten) {
			return true
		}
	}
	return false
}
