package ast

import "strings"

// literalEscapes may follow a backslash in a quoted literal. The literal's own
// quote character may too.
const literalEscapes = `tbnrf/`

// LiteralBodyLen scans a literal body at the start of s, up to the unescaped
// quote that closes it, and returns the length of the body. ok is false if s
// ends first or a backslash is followed by anything outside the escape set.
func LiteralBodyLen(s string, quote byte) (n int, ok bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case quote:
			return i, true
		case '\\':
			i++
			if i == len(s) {
				return 0, false
			}
			if c := s[i]; c != quote && strings.IndexByte(literalEscapes, c) < 0 {
				return 0, false
			}
		}
	}
	return 0, false
}

// quoteFor picks a delimiter under which raw reads back as itself.
func quoteFor(raw string) byte {
	for _, q := range []byte{'\'', '"'} {
		if n, ok := LiteralBodyLen(raw+string(q), q); ok && n == len(raw) {
			return q
		}
	}
	return '\''
}

func quote(prefix, raw string) string {
	q := string(quoteFor(raw))
	return prefix + q + raw + q
}
