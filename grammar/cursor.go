package grammar

import "github.com/arr-ai/lldef/parse"

// Cursor walks a list of extracted items.
type Cursor struct {
	items   []parse.Item
	current int
}

func NewCursor(items []parse.Item) *Cursor {
	return &Cursor{items: items}
}

func (c *Cursor) More() bool {
	return c.current < len(c.items)
}

// Next returns the current item and advances. ok is false at the end.
func (c *Cursor) Next() (item parse.Item, ok bool) {
	if !c.More() {
		return parse.Item{}, false
	}
	item = c.items[c.current]
	c.current++
	return item, true
}

// Peek returns the current item without advancing.
func (c *Cursor) Peek() (parse.Item, bool) {
	if !c.More() {
		return parse.Item{}, false
	}
	return c.items[c.current], true
}
