package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/lldef/first"
	"github.com/arr-ai/lldef/grammar"
)

func TestTreePrint(t *testing.T) {
	root := NewTree("root")
	a := root.Add("a")
	a.Add("a1")
	a.Add("a2\ncontinued")
	root.AddTree(NewTree("b"))

	assert.Equal(t, `root
├── a
│   ├── a1
│   └── a2
│       continued
└── b
`, root.Print())
}

const opGrammar = "%op = NUMBER | SUB NUMBER;\n%NUMBER = [0-9]+;\n%SUB = `-`;"

func TestGrammar(t *testing.T) {
	g, err := grammar.Load([]byte(opGrammar))
	require.NoError(t, err)

	assert.Equal(t, `grammar (entry: op)
├── tokens (2)
│   ├── NUMBER range [0-9]+
│   └── SUB literal `+"`-`"+`
└── rules (1)
    └── op
        ├── NUMBER
        └── SUB NUMBER
`, Grammar(g).Print())
}

func TestFirst(t *testing.T) {
	g, err := grammar.Load([]byte(opGrammar))
	require.NoError(t, err)

	tree, err := First(g, first.NewEngine())
	require.NoError(t, err)
	assert.Equal(t, `first
└── op {[0-9], `+"`-`"+`}
    ├── NUMBER {[0-9]}
    └── SUB NUMBER {`+"`-`"+`}
`, tree.Print())

	_, err = First(g, first.NewEngine(), "missing")
	assert.EqualError(t, err, `no rule named "missing"`)
}

func TestToken(t *testing.T) {
	g, err := grammar.Load([]byte("%A = B?; %B = [a-zA-Z];"))
	require.NoError(t, err)

	a, _ := g.Token("A")
	b, _ := g.Token("B")
	assert.Equal(t, "A ref B?", Token(a))
	assert.Equal(t, "B range [a-zA-Z]", Token(b))
}
