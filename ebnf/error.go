package ebnf

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arr-ai/ebnf/errors"
	"github.com/arr-ai/ebnf/gotree"
	"github.com/arr-ai/ebnf/parse"
)

type ErrorKind int

const (
	// RecognitionFailure means the leading pattern of a recognizer didn't
	// match. Ordered choice moves on to the next alternative.
	RecognitionFailure ErrorKind = iota

	// UnbalancedDelimiter means a bracket was never closed. No alternative
	// can reinterpret it, so it is never retried.
	UnbalancedDelimiter

	// MalformedRule means the text at the cursor isn't `name ::= ... ;`.
	MalformedRule
)

func (k ErrorKind) String() string {
	switch k {
	case RecognitionFailure:
		return "recognition failure"
	case UnbalancedDelimiter:
		return "unbalanced delimiter"
	case MalformedRule:
		return "malformed rule"
	}
	panic(errors.Inconceivable)
}

// Frame records what was being attempted, and where, as a failure unwound.
type Frame struct {
	Context string
	At      parse.Scanner // the input remaining when the attempt began
}

const previewLen = 32

func (f Frame) String() string {
	line, col := f.At.Position()
	pos := fmt.Sprintf("%d:%d", line, col)
	if name := f.At.Filename(); name != "" {
		pos = name + ":" + pos
	}
	return fmt.Sprintf("%s @ %s %q", f.Context, pos, f.At.Preview(previewLen))
}

// ParseError is returned for any input that isn't a valid grammar.
type ParseError struct {
	Kind ErrorKind

	// Frames runs from the outermost attempt to the innermost.
	Frames []Frame
}

func newParseError(kind ErrorKind, context string, at parse.Scanner) *ParseError {
	return &ParseError{Kind: kind, Frames: []Frame{{Context: context, At: at}}}
}

// within returns a copy of p with an outer frame added.
func (p *ParseError) within(context string, at parse.Scanner) *ParseError {
	frames := make([]Frame, 0, len(p.Frames)+1)
	frames = append(frames, Frame{Context: context, At: at})
	return &ParseError{Kind: p.Kind, Frames: append(frames, p.Frames...)}
}

func (p *ParseError) as(kind ErrorKind) *ParseError {
	return &ParseError{Kind: kind, Frames: p.Frames}
}

// Fatal reports whether ordered choice must give up instead of trying the
// next alternative.
func (p *ParseError) Fatal() bool {
	return p.Kind == UnbalancedDelimiter
}

func (p *ParseError) innermost() Frame {
	return p.Frames[len(p.Frames)-1]
}

// Offset is the byte offset into the source where the innermost attempt
// failed.
func (p *ParseError) Offset() int {
	return p.innermost().At.Offset()
}

// Position is the 1-indexed line and column of the innermost failure.
func (p *ParseError) Position() (line, col int) {
	return p.innermost().At.Position()
}

// Context highlights the failure point within its surrounding source.
func (p *ParseError) Context() string {
	at := p.innermost().At
	if at.Len() > 0 {
		_, size := utf8.DecodeRuneInString(at.String())
		at = *at.Slice(0, size)
	}
	return at.Context(parse.DefaultLimit)
}

func (p *ParseError) Error() string {
	root := gotree.New("parse failed: " + p.Kind.String())
	parent := root
	for _, f := range p.Frames {
		parent = parent.Add(f.String())
	}
	return strings.TrimSuffix(root.Print(), "\n")
}
