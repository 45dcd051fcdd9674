package first

import (
	"github.com/arr-ai/lldef/errors"
	"github.com/arr-ai/lldef/grammar"
)

// Engine computes FIRST sets, remembering the result for every alternative
// it has seen. An Engine is not safe for concurrent use.
type Engine struct {
	memo map[*grammar.Alternative]Set
}

func NewEngine() *Engine {
	return &Engine{memo: map[*grammar.Alternative]Set{}}
}

// Alternative returns the FIRST set of alt: the union of its items' sets up
// to and including the first item that cannot match nothing.
//
// An empty entry is recorded for alt before its items are walked, so a
// recursive path back into alt sees an empty set instead of looping.
func (e *Engine) Alternative(alt *grammar.Alternative) Set {
	if s, has := e.memo[alt]; has {
		return s
	}
	e.memo[alt] = NewSet()

	result := NewSet()
	for _, item := range alt.Items {
		s, optional := e.Item(item)
		result = result.Union(s)
		if !optional {
			break
		}
	}
	e.memo[alt] = result
	return result
}

// Item returns what item contributes to the FIRST set of its alternative,
// and whether the walk must carry on past it.
func (e *Engine) Item(item *grammar.ProductionItem) (s Set, optional bool) {
	switch item.Kind {
	case grammar.LiteralItem:
		return NewSet(Literal(item.Literal)), false
	case grammar.TokenItem:
		return tokenFirst(item.Token), item.Optional()
	case grammar.RuleItem:
		return e.Rule(item.Rule), false
	}
	panic(errors.Inconceivable)
}

// Rule returns the union of the FIRST sets of every alternative of rule.
func (e *Engine) Rule(rule *grammar.Rule) Set {
	result := NewSet()
	if rule == nil {
		return result
	}
	for _, alt := range rule.Alternatives {
		result = result.Union(e.Alternative(alt))
	}
	return result
}

func tokenFirst(token *grammar.Token) Set {
	terminal := token.Terminal()
	if terminal == nil {
		return NewSet()
	}
	switch terminal.Kind {
	case grammar.LiteralToken:
		return NewSet(Literal(terminal.Literal))
	case grammar.RangeToken:
		return NewSet(Ranges(terminal.Ranges))
	}
	panic(errors.Inconceivable)
}
