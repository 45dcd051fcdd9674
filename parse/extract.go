package parse

import (
	"fmt"
	"strings"

	"github.com/arr-ai/lldef/errors"
)

// Delimiters are split off the items they are glued to.
const Delimiters = "+|?*;="

type piece struct {
	text   string
	atomic bool // a literal or range block, never split
}

// Extract splits a grammar source into positioned items.
//
// Backtick literal blocks are kept verbatim, whitespace included. Everything
// else is split on whitespace, then on Delimiters.
func Extract(src []byte) ([]Item, error) {
	text := string(src)

	var pieces []piece
	rest, offset := text, 0
	for rest != "" {
		start := strings.IndexByte(rest, '`')
		if start < 0 {
			pieces = appendWords(pieces, rest)
			break
		}
		end := strings.IndexByte(rest[start+1:], '`')
		if end < 0 {
			line, col := lineColumn(text, offset+start)
			open := rest[start:]
			if nl := strings.IndexByte(open, '\n'); nl >= 0 {
				open = open[:nl]
			}
			return nil, errors.Error{
				Kind:   errors.StringBlockMissingEnd,
				Item:   open,
				Line:   line,
				Column: col,
			}
		}
		end += start + 2
		pieces = appendWords(pieces, rest[:start])
		pieces = append(pieces, piece{text: rest[start:end], atomic: true})
		offset += end
		rest = rest[end:]
	}

	raw := splitDelimiters(pieces)
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		items = append(items, NewItem(r))
	}
	if !Positions(text, items) {
		return nil, fmt.Errorf("cannot locate every item in the grammar source")
	}
	return items, nil
}

// appendWords splits s on whitespace runs. Range blocks closed before the
// next ';' are kept whole so that whitespace between their pairs survives.
func appendWords(pieces []piece, s string) []piece {
	words := func(s string) {
		for _, word := range strings.Fields(s) {
			pieces = append(pieces, piece{text: word})
		}
	}
	for s != "" {
		open := strings.IndexByte(s, '[')
		if open < 0 {
			break
		}
		end := strings.IndexByte(s[open:], ']')
		stop := strings.IndexByte(s[open:], ';')
		if end < 0 || (stop >= 0 && stop < end) {
			if stop < 0 {
				break
			}
			cut := open + stop + 1
			words(s[:cut])
			s = s[cut:]
			continue
		}
		end += open + 1
		words(s[:open])
		pieces = append(pieces, piece{text: s[open:end], atomic: true})
		s = s[end:]
	}
	words(s)
	return pieces
}

// splitDelimiters builds a fresh list in which every delimiter embedded in a
// longer item is an item of its own, in source order. A leading delimiter
// stays a one-character item; one-character items are left alone.
func splitDelimiters(pieces []piece) []string {
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p.atomic {
			out = append(out, p.text)
			continue
		}
		text := p.text
		for len(text) > 1 {
			i := strings.IndexAny(text, Delimiters)
			if i < 0 {
				break
			}
			if i == 0 {
				i = 1
			}
			out = append(out, text[:i])
			text = text[i:]
		}
		out = append(out, text)
	}
	return out
}
