package parse

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerLineColumn(t *testing.T) {
	scanner := NewScanner("one\ntwo\nthree\nfour")

	// test the scanner starts at position 1,1
	assertLineColumn(t, scanner, 1, 1)

	// eat within the same line:
	// test the eaten scanner is left at the existing position
	// test the scanner is advanced within the line
	eaten := Scanner{}
	scanner.Eat(1, &eaten)
	assertLineColumn(t, &eaten, 1, 1)
	assertLineColumn(t, scanner, 1, 2)

	// eat a line
	scanner.Eat(3, &eaten)
	assertLineColumn(t, &eaten, 1, 2)
	assertLineColumn(t, scanner, 2, 1)

	// eat multiple lines and into a column
	scanner.Eat(12, &eaten)
	assertLineColumn(t, &eaten, 2, 1)
	assertLineColumn(t, scanner, 4, 3)
}

func TestScannerCopyIsIndependent(t *testing.T) {
	scanner := NewScanner("abc def")
	saved := *scanner

	var eaten Scanner
	require.True(t, scanner.EatString("abc", &eaten))
	assert.Equal(t, "abc", eaten.String())
	assert.Equal(t, " def", scanner.String())
	assert.Equal(t, "abc def", saved.String())

	assert.False(t, scanner.EatString("def", &eaten))
	assert.Equal(t, " def", scanner.String())
}

func TestScannerEatSpace(t *testing.T) {
	scanner := NewScanner(" \t\r\n  x ")
	scanner.EatSpace()
	assert.Equal(t, "x ", scanner.String())
	assertLineColumn(t, scanner, 2, 3)

	empty := NewScanner("   ")
	assert.True(t, empty.EatSpace().IsEmpty())
}

func TestScannerEatRegexp(t *testing.T) {
	re := regexp.MustCompile(`\A[a-z]+\d*`)
	scanner := NewScanner("abc12;")

	var match Scanner
	require.True(t, scanner.EatRegexp(re, &match))
	assert.Equal(t, "abc12", match.String())
	assert.Equal(t, 0, match.Offset())
	assert.Equal(t, ";", scanner.String())

	assert.False(t, scanner.EatRegexp(re, nil))
	assert.Equal(t, ";", scanner.String())

	assert.Panics(t, func() { NewScanner("1a").EatRegexp(regexp.MustCompile(`[a-z]`), nil) })
}

func TestScannerContext(t *testing.T) {
	scanner := NewScannerWithFilename("one\ntwo\nthree x four\nfive", "g.ebnf")
	at := scanner.Skip(14).Slice(0, 1)
	require.Equal(t, "x", at.String())

	assert.Equal(t,
		"\n\033[1;37mg.ebnf:3:7:\033[0m\ntwo\nthree \033[1;31mx\033[0m four",
		at.Context(DefaultLimit))
	assert.Equal(t,
		"\n\033[1;37mg.ebnf:3:7:\033[0m\nthree \033[1;31mx\033[0m four",
		at.Context(0))
	assert.Equal(t,
		"\n\033[1;37mg.ebnf:3:7:\033[0m\none\ntwo\nthree \033[1;31mx\033[0m four",
		at.Context(5))
	assert.Empty(t, Scanner{}.Context(DefaultLimit))
}

func TestScannerSliceKeepsOffsets(t *testing.T) {
	scanner := NewScannerWithFilename("a\n(bc)", "g.ebnf")
	inner := scanner.Slice(3, 5)
	assert.Equal(t, "bc", inner.String())
	assert.Equal(t, 3, inner.Offset())
	assert.Equal(t, 2, inner.Len())
	assert.Equal(t, "g.ebnf", inner.Filename())
	assertLineColumn(t, inner, 2, 2)
}

func TestScannerPreview(t *testing.T) {
	assert.Equal(t, "short", NewScanner("short").Preview(10))
	assert.Equal(t, "abcd ...", NewScanner("abcdefgh").Preview(4))
	assert.Equal(t, "ab ...", NewScanner("ab\ncd").Preview(10))
	assert.Equal(t, "", Scanner{}.Preview(10))
}

func assertLineColumn(t *testing.T, scanner *Scanner, line, column int) {
	l, c := scanner.Position()
	assert.Equal(t, line, l)
	assert.Equal(t, column, c)
}
