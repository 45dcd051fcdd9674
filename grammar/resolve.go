package grammar

import (
	"github.com/arr-ai/lldef/errors"
)

// Resolve links every symbolic reference in g to its declaration: token
// references first, then the items of every rule. Declarations are visited
// in source order, so the error returned is the first one in the text.
// Rules may refer to themselves, directly or not.
func (g *Grammar) Resolve() error {
	r := resolver{g: g}
	return r.Resolve()
}

type resolver struct {
	g *Grammar
}

func (r *resolver) Resolve() error {
	for _, token := range r.g.Tokens() {
		if err := r.resolveToken(token); err != nil {
			return err
		}
	}
	for _, rule := range r.g.Rules() {
		for _, alt := range rule.Alternatives {
			if err := r.resolveAlternative(alt); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *resolver) resolveToken(token *Token) error {
	if token.Kind != RefToken {
		return nil
	}
	target, has := r.g.tokens.Get(token.Ref.Text)
	if !has {
		return errors.At(errors.UnknownToken, token.Ref)
	}
	token.Target = target
	return nil
}

func (r *resolver) resolveAlternative(alt *Alternative) error {
	for _, item := range alt.Items {
		switch item.Kind {
		case RuleItem:
			rule, has := r.g.rules.Get(item.Symbol.Text)
			if !has {
				return errors.At(errors.UnknownRule, item.Symbol)
			}
			item.Rule = rule
		case TokenItem:
			token, has := r.g.tokens.Get(item.Symbol.Text)
			if !has {
				return errors.At(errors.UnknownToken, item.Symbol)
			}
			item.Token = token
		case LiteralItem:
		default:
			panic(errors.Inconceivable)
		}
	}
	return nil
}
