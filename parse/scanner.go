// Package parse provides the cursor that the grammar parser reads through.
package parse

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner is a window [start, start+n) onto a source string. Copying a
// Scanner is cheap and the copy shares the source, so backtracking is a matter
// of keeping the old value around. The zero Scanner is empty.
type Scanner struct {
	src   *source
	start int
	n     int
}

type source struct {
	text     string
	filename string
}

func NewScanner(str string) *Scanner {
	return NewScannerWithFilename(str, "")
}

func NewScannerWithFilename(str, filename string) *Scanner {
	return &Scanner{src: &source{text: str, filename: filename}, n: len(str)}
}

// Filename is the name the source was loaded from, if any.
func (s Scanner) Filename() string {
	if s.src == nil {
		return ""
	}
	return s.src.filename
}

func (s Scanner) String() string {
	if s.src == nil {
		return ""
	}
	return s.src.text[s.start : s.start+s.n]
}

// Offset is the byte offset of the window within the whole source.
func (s Scanner) Offset() int {
	return s.start
}

func (s Scanner) Len() int {
	return s.n
}

func (s Scanner) IsEmpty() bool {
	return s.n == 0
}

// Position is the 1-indexed line and column of the start of the window.
func (s Scanner) Position() (line, col int) {
	if s.src == nil {
		return 1, 1
	}
	before := s.src.text[:s.start]
	return strings.Count(before, "\n") + 1, s.start - strings.LastIndexByte(before, '\n')
}

// Preview returns up to n bytes of the window, stopping early at a newline and
// marking any truncation.
func (s Scanner) Preview(n int) string {
	text := s.String()
	if i := strings.IndexByte(text, '\n'); i >= 0 && i < n {
		return text[:i] + " ..."
	}
	if len(text) > n {
		for n > 0 && !utf8.RuneStart(text[n]) {
			n--
		}
		return text[:n] + " ..."
	}
	return text
}

// DefaultLimit is the number of lines of source Context shows before the
// window.
var DefaultLimit = 1

// Context renders the window highlighted in red within the lines around it,
// preceded by a file:line:col header.
func (s Scanner) Context(limitLines int) string {
	if s.src == nil {
		return ""
	}
	line, col := s.Position()
	text := s.src.text
	end := s.start + s.n

	from := s.start
	for i := 0; i <= limitLines; i++ {
		nl := strings.LastIndexByte(text[:from], '\n')
		if nl < 0 {
			from = 0
			break
		}
		from = nl
		if i < limitLines {
			continue
		}
		from++
	}
	to := len(text)
	if nl := strings.IndexByte(text[end:], '\n'); nl >= 0 {
		to = end + nl
	}

	return fmt.Sprintf("\n\033[1;37m%s:%d:%d:\033[0m\n%s\033[1;31m%s\033[0m%s",
		s.Filename(), line, col, text[from:s.start], text[s.start:end], text[end:to])
}

// Slice returns the window [a, b) relative to s.
func (s Scanner) Slice(a, b int) *Scanner {
	return &Scanner{src: s.src, start: s.start + a, n: b - a}
}

// Skip returns s without its first i bytes.
func (s Scanner) Skip(i int) *Scanner {
	return s.Slice(i, s.n)
}

func (s Scanner) HasPrefix(str string) bool {
	return strings.HasPrefix(s.String(), str)
}

// Eat sets eaten to the next i bytes and advances s past them.
func (s *Scanner) Eat(i int, eaten *Scanner) *Scanner {
	*eaten = *s.Slice(0, i)
	*s = *s.Skip(i)
	return s
}

// EatString eats str if s starts with it.
func (s *Scanner) EatString(str string, eaten *Scanner) bool {
	if !s.HasPrefix(str) {
		return false
	}
	s.Eat(len(str), eaten)
	return true
}

// EatSpace advances s past any leading whitespace, including newlines.
func (s *Scanner) EatSpace() *Scanner {
	text := s.String()
	*s = *s.Skip(len(text) - len(strings.TrimLeftFunc(text, unicode.IsSpace)))
	return s
}

// EatRegexp eats the match of re, which must be \A-anchored, and sets match
// (if not nil) to it.
func (s *Scanner) EatRegexp(re *regexp.Regexp, match *Scanner) bool {
	loc := re.FindStringIndex(s.String())
	if loc == nil {
		return false
	}
	if loc[0] != 0 {
		panic(`re not \A-anchored`)
	}
	var eaten Scanner
	s.Eat(loc[1], &eaten)
	if match != nil {
		*match = eaten
	}
	return true
}
