// Package first computes FIRST sets over a resolved grammar: the terminals
// that can begin a match of each alternative and rule.
package first

import (
	"strings"

	"github.com/arr-ai/lldef/grammar"
)

// ParserItem is one terminal that can start a match: either a literal string
// or an array of character ranges.
type ParserItem struct {
	Literal string
	Ranges  []grammar.CharRange
}

func Literal(s string) ParserItem {
	return ParserItem{Literal: s}
}

func Ranges(ranges []grammar.CharRange) ParserItem {
	return ParserItem{Ranges: ranges}
}

func (p ParserItem) IsRange() bool {
	return p.Ranges != nil
}

// Key is the same for two items iff they are equal: same literal, or the
// same ranges in the same order.
func (p ParserItem) Key() string {
	return p.String()
}

func (p ParserItem) Equal(other ParserItem) bool {
	return p.Key() == other.Key()
}

func (p ParserItem) String() string {
	if !p.IsRange() {
		return "`" + p.Literal + "`"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for _, r := range p.Ranges {
		sb.WriteString(r.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
