package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTreeView(t *testing.T) {
	assert.Equal(t, `grammar
├── f
│   └── Symbol Alternation
│       ├── StringLiteral 'a'
│       └── RegexExt ZeroOrMore
│           └── Terminal x
├── x
│   └── Multiple
│       ├── Terminal y
│       └── Optional
│           └── Terminal x
└── f
    └── RegexLiteral #'[a-z]+'
`, BuildTreeView(testGrammar()))
}

func TestBuildTreeViewEmpty(t *testing.T) {
	assert.Equal(t, "grammar\n", BuildTreeView(Grammar{}))
}
