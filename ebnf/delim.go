package ebnf

import (
	"github.com/arr-ai/ebnf/parse"
)

const incompleteDelimitedNode = "incomplete delimited node"

// extractDelimited expects input to start with open. It returns the text
// strictly between open and its matching close, skipping nested pairs of the
// same kind, and advances input past the close. An open preceded by a
// backslash doesn't count towards the depth; every close does.
//
// The inner scanner shares the original source, so positions reported from
// inside it are absolute.
func extractDelimited(input *parse.Scanner, open, close byte) (*parse.Scanner, *ParseError) {
	text := input.String()
	if text == "" || text[0] != open {
		return nil, newParseError(RecognitionFailure, string(open), *input)
	}
	depth := 1
	for i := 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			if i+1 < len(text) && text[i+1] == open {
				i++
			}
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				inner := input.Slice(1, i)
				*input = *input.Skip(i + 1)
				return inner, nil
			}
		}
	}
	return nil, newParseError(UnbalancedDelimiter, incompleteDelimitedNode, *input)
}
