// Package report renders grammars and their FIRST sets as text trees.
package report

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

type (
	tree struct {
		text  string
		items []Tree
	}

	// Tree is a node with a line of text and ordered children.
	Tree interface {
		Add(text string) Tree
		AddTree(tree Tree)
		Items() []Tree
		Text() string
		Print() string
	}
)

// NewTree returns a tree with no children.
func NewTree(text string) Tree {
	return &tree{
		text:  text,
		items: []Tree{},
	}
}

// Add adds a child node and returns it.
func (t *tree) Add(text string) Tree {
	n := NewTree(text)
	t.items = append(t.items, n)
	return n
}

func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

func (t *tree) Text() string {
	return t.text
}

func (t *tree) Items() []Tree {
	return t.items
}

// Print returns the tree drawn with box-drawing characters, one line per
// line of node text.
func (t *tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.Text())
	sb.WriteString(newLine)
	printItems(&sb, t.Items(), nil)
	return sb.String()
}

func printText(sb *strings.Builder, text string, spaces []bool, last bool) {
	var prefix string
	for _, space := range spaces {
		if space {
			prefix += emptySpace
		} else {
			prefix += continueItem
		}
	}

	indicator := middleItem
	if last {
		indicator = lastItem
	}

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			if last {
				indicator = emptySpace
			} else {
				indicator = continueItem
			}
		}
		sb.WriteString(prefix + indicator + line + newLine)
	}
}

func printItems(sb *strings.Builder, items []Tree, spaces []bool) {
	for i, item := range items {
		last := i == len(items)-1
		printText(sb, item.Text(), spaces, last)
		if len(item.Items()) > 0 {
			child := append(append([]bool{}, spaces...), last)
			printItems(sb, item.Items(), child)
		}
	}
}
