package ebnf

import (
	"regexp"
	"strings"

	"github.com/arr-ai/ebnf/ast"
	"github.com/arr-ai/ebnf/parse"
)

// The lexical recognizers. Each leaves input untouched on failure and
// consumes no surrounding whitespace.

var identRE = regexp.MustCompile(`\A[\p{L}_][\p{L}\p{N}_]*`)

func parseIdentifier(input *parse.Scanner) (string, *ParseError) {
	var match parse.Scanner
	if !input.EatRegexp(identRE, &match) {
		return "", newParseError(RecognitionFailure, "identifier", *input)
	}
	return strings.Clone(match.String()), nil
}

func parseTerminal(input *parse.Scanner) (ast.Node, *ParseError) {
	name, err := parseIdentifier(input)
	if err != nil {
		return nil, err
	}
	return ast.Terminal(name), nil
}

func parseStringLiteral(input *parse.Scanner) (ast.Node, *ParseError) {
	raw, err := parseQuoted(input, "", "string literal")
	if err != nil {
		return nil, err
	}
	return ast.StringLiteral(raw), nil
}

func parseRegexLiteral(input *parse.Scanner) (ast.Node, *ParseError) {
	raw, err := parseQuoted(input, "#", "regex literal")
	if err != nil {
		return nil, err
	}
	return ast.RegexLiteral(raw), nil
}

// parseQuoted recognizes prefix followed by a '...' or "..." literal and
// returns the raw text between the quotes.
func parseQuoted(input *parse.Scanner, prefix, context string) (string, *ParseError) {
	s := *input
	var eaten parse.Scanner
	if !s.EatString(prefix, &eaten) || s.IsEmpty() {
		return "", newParseError(RecognitionFailure, context, *input)
	}
	text := s.String()
	quote := text[0]
	if quote != '\'' && quote != '"' {
		return "", newParseError(RecognitionFailure, context, *input)
	}
	n, ok := ast.LiteralBodyLen(text[1:], quote)
	if !ok {
		return "", newParseError(RecognitionFailure, context, *input)
	}
	s.Eat(n+2, &eaten)
	*input = s
	return strings.Clone(text[1 : n+1]), nil
}
