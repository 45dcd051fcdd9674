package parse

import (
	"fmt"
)

// Item is one atomic piece of grammar source: a name, a punctuation mark, a
// backtick literal block or a square-bracket range block.
type Item struct {
	Text   string
	Line   int // 1-indexed
	Column int // 1-indexed
}

// NewItem returns an item that has not been located in any source.
func NewItem(text string) Item {
	return Item{Text: text}
}

func (i Item) String() string {
	return i.Text
}

// The 1-indexed line and column number of the start of the item.
func (i Item) Position() (int, int) {
	return i.Line, i.Column
}

func (i Item) Format(state fmt.State, c rune) {
	switch c {
	case 'q':
		_, _ = fmt.Fprintf(state, "%q", i.Text)
	case 'v':
		if state.Flag('+') {
			_, _ = fmt.Fprintf(state, "%s (%d:%d)", i.Text, i.Line, i.Column)
			return
		}
		fallthrough
	default:
		_, _ = state.Write([]byte(i.Text))
	}
}

// Is reports whether the item is exactly the one-character mark c.
func (i Item) Is(c byte) bool {
	return len(i.Text) == 1 && i.Text[0] == c
}

func (i Item) IsLiteral() bool {
	return len(i.Text) > 0 && i.Text[0] == '`'
}

func (i Item) IsRangeBlock() bool {
	return len(i.Text) > 0 && i.Text[0] == '['
}

// Literal returns the text between the backticks of a literal block. ok is
// false if the item is not a literal or its closing backtick is missing.
func (i Item) Literal() (content string, ok bool) {
	n := len(i.Text)
	if n < 2 || i.Text[0] != '`' || i.Text[n-1] != '`' {
		return "", false
	}
	return i.Text[1 : n-1], true
}

// RangeBlock returns the text between the brackets of a range block.
func (i Item) RangeBlock() (content string, ok bool) {
	n := len(i.Text)
	if n < 2 || i.Text[0] != '[' || i.Text[n-1] != ']' {
		return "", false
	}
	return i.Text[1 : n-1], true
}
