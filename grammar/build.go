package grammar

import (
	"github.com/arr-ai/lldef/errors"
	"github.com/arr-ai/lldef/parse"
)

// Build constructs a grammar from extracted items. References are left
// unresolved; see Resolve.
func Build(items []parse.Item) (*Grammar, error) {
	g := New()
	if err := g.Add(items); err != nil {
		return nil, err
	}
	return g, nil
}

// Add reads declarations from items into g, stopping at the first error.
// Declarations completed before the error remain in g.
func (g *Grammar) Add(items []parse.Item) error {
	c := NewCursor(items)
	for c.More() {
		item, _ := c.Next()
		if len(item.Text) < 2 || item.Text[0] != '%' || !isLetter(item.Text[1]) {
			return errors.At(errors.UnknownItem, item)
		}

		if isUpper(item.Text[1]) {
			token, err := buildToken(item, c)
			if err != nil {
				return err
			}
			if _, has := g.tokens.Get(token.Name); has {
				return errors.At(errors.TokenExists, item)
			}
			g.tokens = g.tokens.With(token.Name, token)
			continue
		}

		rule, err := buildRule(item, c)
		if err != nil {
			return err
		}
		if _, has := g.rules.Get(rule.Name); has {
			return errors.At(errors.RuleExists, item)
		}
		g.rules = g.rules.With(rule.Name, rule)
		if g.entry == nil {
			g.entry = rule
		}
	}
	return nil
}

// buildToken reads `= value [quantifier] ;` after the token name.
func buildToken(name parse.Item, c *Cursor) (*Token, error) {
	if eq, ok := c.Next(); !ok || !eq.Is('=') {
		return nil, errors.At(errors.TokenInvalid, name)
	}

	value, ok := c.Next()
	if !ok || value.Is(';') {
		return nil, errors.At(errors.TokenMissingValue, name)
	}

	token := &Token{Name: name.Text[1:], Item: name}
	switch {
	case value.IsLiteral():
		content, ok := value.Literal()
		if !ok {
			return nil, errors.At(errors.StringBlockMissingEnd, name)
		}
		token.Kind = LiteralToken
		token.Literal = content
	case value.IsRangeBlock():
		content, ok := value.RangeBlock()
		if !ok {
			return nil, errors.At(errors.TokenInvalidValue, name)
		}
		ranges, err := ParseRanges(content)
		if err != nil {
			return nil, errors.At(errors.KindOf(err), name)
		}
		if len(ranges) == 0 {
			return nil, errors.At(errors.TokenInvalidValue, name)
		}
		token.Kind = RangeToken
		token.Ranges = ranges
	case isUpper(value.Text[0]):
		if value.Text == token.Name {
			return nil, errors.At(errors.TokenSelfRef, name)
		}
		token.Kind = RefToken
		token.Ref = value
	default:
		return nil, errors.At(errors.TokenUnknownValueType, name)
	}

	end, ok := c.Next()
	if !ok {
		return nil, errors.At(errors.TokenMissingEnd, name)
	}
	if q, isQuant := quantifierOf(end); isQuant {
		token.Quantifier = q
		if end, ok = c.Next(); !ok {
			return nil, errors.At(errors.TokenMissingEnd, name)
		}
	}
	if !end.Is(';') {
		return nil, errors.At(errors.TokenMissingEnd, name)
	}
	return token, nil
}

// buildRule reads `= alt ( | alt )* ;` after the rule name. The rule is
// returned only once complete.
func buildRule(name parse.Item, c *Cursor) (*Rule, error) {
	if eq, ok := c.Next(); !ok || !eq.Is('=') {
		return nil, errors.At(errors.RuleInvalid, name)
	}

	first, ok := c.Peek()
	if !ok {
		return nil, errors.At(errors.RuleMissingValue, name)
	}
	if first.Is(';') {
		c.Next()
		return nil, errors.At(errors.RuleEmpty, name)
	}

	rule := &Rule{Name: name.Text[1:], Item: name}
	alt := &Alternative{}
	for {
		item, ok := c.Next()
		if !ok {
			return nil, errors.At(errors.RuleMissingEnd, name)
		}

		switch {
		case item.Is('|'), item.Is(';'):
			if len(alt.Items) == 0 {
				return nil, errors.At(errors.ProductionRuleEmpty, item)
			}
			rule.Alternatives = append(rule.Alternatives, alt)
			if item.Is(';') {
				return rule, nil
			}
			alt = &Alternative{}
		case item.IsLiteral():
			content, ok := item.Literal()
			if !ok {
				return nil, errors.At(errors.StringBlockMissingEnd, item)
			}
			if content == "" {
				return nil, errors.At(errors.StringBlockEmpty, item)
			}
			alt.Items = append(alt.Items, &ProductionItem{Kind: LiteralItem, Symbol: item, Literal: content})
		case isLetter(item.Text[0]):
			kind := RuleItem
			if isUpper(item.Text[0]) {
				kind = TokenItem
			}
			alt.Items = append(alt.Items, &ProductionItem{Kind: kind, Symbol: item})
		default:
			return nil, errors.At(errors.ProductionItemUnknownType, item)
		}
	}
}
