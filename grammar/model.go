// Package grammar holds the model of a grammar description, builds it from
// extracted items and links its symbolic references.
package grammar

import (
	"sort"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/lldef/errors"
	"github.com/arr-ai/lldef/parse"
)

type Quantifier int

const (
	None Quantifier = iota
	OneOrMore
	ZeroOrOne
	ZeroOrMore
)

func (q Quantifier) String() string {
	switch q {
	case None:
		return ""
	case OneOrMore:
		return "+"
	case ZeroOrOne:
		return "?"
	case ZeroOrMore:
		return "*"
	}
	panic(errors.Inconceivable)
}

func quantifierOf(item parse.Item) (Quantifier, bool) {
	switch {
	case item.Is('+'):
		return OneOrMore, true
	case item.Is('?'):
		return ZeroOrOne, true
	case item.Is('*'):
		return ZeroOrMore, true
	}
	return None, false
}

type TokenKind int

const (
	LiteralToken TokenKind = iota
	RangeToken
	RefToken
)

func (k TokenKind) String() string {
	switch k {
	case LiteralToken:
		return "literal"
	case RangeToken:
		return "range"
	case RefToken:
		return "ref"
	}
	panic(errors.Inconceivable)
}

// Token is a terminal declaration. Exactly one of Literal, Ranges or Ref is
// meaningful, according to Kind.
type Token struct {
	Name       string
	Kind       TokenKind
	Quantifier Quantifier
	Literal    string
	Ranges     []CharRange
	Ref        parse.Item // unresolved target name
	Target     *Token     // set by Resolve
	Item       parse.Item // declaration name
}

// Terminal follows the reference chain from t to the first literal or range
// token. It returns nil on an unresolved link or a cycle.
func (t *Token) Terminal() *Token {
	seen := frozen.NewSet[string]()
	for t != nil && t.Kind == RefToken {
		if seen.Has(t.Name) {
			return nil
		}
		seen = seen.With(t.Name)
		t = t.Target
	}
	return t
}

type ItemKind int

const (
	RuleItem ItemKind = iota
	TokenItem
	LiteralItem
)

func (k ItemKind) String() string {
	switch k {
	case RuleItem:
		return "rule"
	case TokenItem:
		return "token"
	case LiteralItem:
		return "literal"
	}
	panic(errors.Inconceivable)
}

// ProductionItem is one element of an alternative. Rule and Token are
// non-owning links filled in by Resolve.
type ProductionItem struct {
	Kind    ItemKind
	Symbol  parse.Item
	Literal string
	Rule    *Rule
	Token   *Token
}

// Optional reports whether the item may match nothing: only a reference to a
// zero-or-more token is optional.
func (p *ProductionItem) Optional() bool {
	return p.Kind == TokenItem && p.Token != nil && p.Token.Quantifier == ZeroOrMore
}

// Alternative is one ordered sequence of production items. Its address is
// its identity.
type Alternative struct {
	Items []*ProductionItem
}

type Rule struct {
	Name         string
	Alternatives []*Alternative
	Item         parse.Item // declaration name
}

// Grammar is the set of token and rule declarations read from one source.
type Grammar struct {
	tokens frozen.Map[string, *Token]
	rules  frozen.Map[string, *Rule]
	entry  *Rule
}

func New() *Grammar {
	return &Grammar{
		tokens: frozen.NewMap[string, *Token](),
		rules:  frozen.NewMap[string, *Rule](),
	}
}

func (g *Grammar) Token(name string) (*Token, bool) {
	return g.tokens.Get(name)
}

func (g *Grammar) Rule(name string) (*Rule, bool) {
	return g.rules.Get(name)
}

// Entry is the first rule that was declared, or nil.
func (g *Grammar) Entry() *Rule {
	return g.entry
}

func (g *Grammar) TokenCount() int {
	return g.tokens.Count()
}

func (g *Grammar) RuleCount() int {
	return g.rules.Count()
}

// Tokens returns every token in declaration order.
func (g *Grammar) Tokens() []*Token {
	out := make([]*Token, 0, g.tokens.Count())
	for i := g.tokens.Range(); i.Next(); {
		out = append(out, i.Value())
	}
	sort.Slice(out, func(a, b int) bool {
		return before(out[a].Item, out[b].Item)
	})
	return out
}

// Rules returns every rule in declaration order.
func (g *Grammar) Rules() []*Rule {
	out := make([]*Rule, 0, g.rules.Count())
	for i := g.rules.Range(); i.Next(); {
		out = append(out, i.Value())
	}
	sort.Slice(out, func(a, b int) bool {
		return before(out[a].Item, out[b].Item)
	})
	return out
}

func before(a, b parse.Item) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	if a.Column != b.Column {
		return a.Column < b.Column
	}
	return a.Text < b.Text
}
