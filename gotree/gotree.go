// Package gotree builds and prints text trees.
package gotree

import (
	"strings"
)

const (
	newLine      = "\n"
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

// Tree is a labelled node with ordered children.
type Tree interface {
	Add(text string) Tree
	AddTree(tree Tree)
	Items() []Tree
	Text() string
	Print() string
}

type tree struct {
	text  string
	items []Tree
}

// New returns a tree with a single root labelled text.
func New(text string) Tree {
	return &tree{text: text}
}

// Add appends a new leaf labelled text and returns it.
func (t *tree) Add(text string) Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

// AddTree appends an existing tree as the last child.
func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

func (t *tree) Text() string {
	return t.text
}

func (t *tree) Items() []Tree {
	return t.items
}

// Print renders the tree, one line per node, with box-drawing guides.
func (t *tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.Text())
	sb.WriteString(newLine)
	printItems(&sb, t.Items(), nil)
	return sb.String()
}

func printItems(sb *strings.Builder, items []Tree, spaces []bool) {
	for i, item := range items {
		last := i == len(items)-1
		printText(sb, item.Text(), spaces, last)
		if children := item.Items(); len(children) > 0 {
			printItems(sb, children, append(spaces[:len(spaces):len(spaces)], last))
		}
	}
}

func printText(sb *strings.Builder, text string, spaces []bool, last bool) {
	var indent strings.Builder
	for _, space := range spaces {
		if space {
			indent.WriteString(emptySpace)
		} else {
			indent.WriteString(continueItem)
		}
	}

	indicator := middleItem
	if last {
		indicator = lastItem
	}
	for i, line := range strings.Split(text, newLine) {
		if i == 1 {
			// continuation lines of a multi-line label hang under the first
			if last {
				indicator = emptySpace
			} else {
				indicator = continueItem
			}
		}
		sb.WriteString(indent.String())
		sb.WriteString(indicator)
		sb.WriteString(line)
		sb.WriteString(newLine)
	}
}
