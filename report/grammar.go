package report

import (
	"fmt"
	"strings"

	"github.com/arr-ai/lldef/first"
	"github.com/arr-ai/lldef/grammar"
)

// Grammar lists the tokens and rules of g in declaration order.
func Grammar(g *grammar.Grammar) Tree {
	title := "grammar"
	if entry := g.Entry(); entry != nil {
		title = fmt.Sprintf("grammar (entry: %s)", entry.Name)
	}
	root := NewTree(title)

	tokens := root.Add(fmt.Sprintf("tokens (%d)", g.TokenCount()))
	for _, token := range g.Tokens() {
		tokens.Add(Token(token))
	}

	rules := root.Add(fmt.Sprintf("rules (%d)", g.RuleCount()))
	for _, rule := range g.Rules() {
		node := rules.Add(rule.Name)
		for _, alt := range rule.Alternatives {
			node.Add(Alternative(alt))
		}
	}
	return root
}

// First lists the FIRST set of every rule named, or of every rule of g if
// none is, followed by the sets of its alternatives.
func First(g *grammar.Grammar, e *first.Engine, names ...string) (Tree, error) {
	var rules []*grammar.Rule
	if len(names) == 0 {
		rules = g.Rules()
	}
	for _, name := range names {
		rule, has := g.Rule(name)
		if !has {
			return nil, fmt.Errorf("no rule named %q", name)
		}
		rules = append(rules, rule)
	}

	root := NewTree("first")
	for _, rule := range rules {
		node := root.Add(fmt.Sprintf("%s %s", rule.Name, e.Rule(rule)))
		for _, alt := range rule.Alternatives {
			node.Add(fmt.Sprintf("%s %s", Alternative(alt), e.Alternative(alt)))
		}
	}
	return root, nil
}

// Token renders a token declaration on one line.
func Token(t *grammar.Token) string {
	var value string
	switch t.Kind {
	case grammar.LiteralToken:
		value = "`" + t.Literal + "`"
	case grammar.RangeToken:
		var sb strings.Builder
		for _, r := range t.Ranges {
			sb.WriteString(r.String())
		}
		value = "[" + sb.String() + "]"
	case grammar.RefToken:
		value = t.Ref.Text
	}
	return fmt.Sprintf("%s %s %s%s", t.Name, t.Kind, value, t.Quantifier)
}

// Alternative renders the items of alt separated by spaces.
func Alternative(alt *grammar.Alternative) string {
	parts := make([]string, 0, len(alt.Items))
	for _, item := range alt.Items {
		parts = append(parts, item.Symbol.Text)
	}
	return strings.Join(parts, " ")
}
