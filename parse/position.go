package parse

import (
	"strings"
)

type cursor struct {
	line, col int
}

func (c *cursor) advance(s string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
	}
}

// Positions sets Line and Column of every item by locating each one, in
// order, in src. It returns false if an item cannot be found after the
// previous one.
func Positions(src string, items []Item) bool {
	c := cursor{line: 1, col: 1}
	for i := range items {
		text := items[i].Text
		start := strings.Index(src, text)
		if start < 0 {
			return false
		}
		c.advance(src[:start])
		items[i].Line, items[i].Column = c.line, c.col

		c.advance(text)
		src = src[start+len(text):]
	}
	return true
}

// The 1-indexed line and column number of the given position within the given string.
func lineColumn(str string, pos int) (line, col int) {
	prefix := str[:pos]
	line = strings.Count(prefix, "\n") + 1
	col = pos - strings.LastIndex(prefix, "\n")
	return
}
