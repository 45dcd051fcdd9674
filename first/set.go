package first

import (
	"sort"
	"strings"

	"github.com/arr-ai/frozen"
)

// Set is an immutable set of parser items.
type Set struct {
	m frozen.Map[string, ParserItem]
}

func NewSet(items ...ParserItem) Set {
	s := Set{m: frozen.NewMap[string, ParserItem]()}
	for _, item := range items {
		s = s.With(item)
	}
	return s
}

func (s Set) With(item ParserItem) Set {
	return Set{m: s.m.With(item.Key(), item)}
}

func (s Set) Union(other Set) Set {
	if s.m.Count() < other.m.Count() {
		s, other = other, s
	}
	for i := other.m.Range(); i.Next(); {
		s = s.With(i.Value())
	}
	return s
}

func (s Set) Has(item ParserItem) bool {
	return s.m.Has(item.Key())
}

func (s Set) Count() int {
	return s.m.Count()
}

func (s Set) IsEmpty() bool {
	return s.m.Count() == 0
}

// Items returns the members ordered by key.
func (s Set) Items() []ParserItem {
	out := make([]ParserItem, 0, s.m.Count())
	for i := s.m.Range(); i.Next(); {
		out = append(out, i.Value())
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].Key() < out[b].Key()
	})
	return out
}

func (s Set) Equal(other Set) bool {
	if s.Count() != other.Count() {
		return false
	}
	for i := s.m.Range(); i.Next(); {
		if !other.m.Has(i.Key()) {
			return false
		}
	}
	return true
}

func (s Set) String() string {
	items := s.Items()
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
