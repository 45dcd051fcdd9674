package grammar

import (
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/lldef/parse"
)

// Load extracts, builds and resolves the grammar described by src.
func Load(src []byte) (*Grammar, error) {
	items, err := parse.Extract(src)
	if err != nil {
		return nil, err
	}
	logrus.WithField("items", len(items)).Debug("extracted grammar items")

	g, err := Build(items)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"tokens": g.TokenCount(),
		"rules":  g.RuleCount(),
	}).Debug("built grammar")

	if err := g.Resolve(); err != nil {
		return nil, err
	}
	if entry := g.Entry(); entry != nil {
		logrus.WithField("entry", entry.Name).Debug("resolved grammar symbols")
	}
	return g, nil
}
