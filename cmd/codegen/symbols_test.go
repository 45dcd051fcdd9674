package codegen

import (
	"bytes"
	"go/parser"
	"go/token"
	"testing"

	"github.com/arr-ai/frozen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/lldef/grammar"
)

func TestMakeTemplateData(t *testing.T) {
	g, err := grammar.Load([]byte("%op = NUMBER | SUB NUMBER | sub_expr;\n%sub_expr = SUB;\n%NUMBER = [0-9]+;\n%SUB = `-`;"))
	require.NoError(t, err)

	data := MakeTemplateData(g, "ops", "--pkg ops")
	assert.Equal(t, []Symbol{{"TokenNumber", "NUMBER"}, {"TokenSub", "SUB"}}, data.Tokens)
	assert.Equal(t, []Symbol{{"RuleOp", "op"}, {"RuleSubExpr", "sub_expr"}}, data.Rules)
	assert.Equal(t, []Literal{{"TokenSub", "-"}}, data.Literals)
	assert.Equal(t, "RuleOp", data.Entry)
}

func TestMakeTemplateDataCollisions(t *testing.T) {
	g, err := grammar.Load([]byte("%r = A_B A_b; %A_B = `x`; %A_b = `y`; %a_b = r; %aB = r;"))
	require.NoError(t, err)

	data := MakeTemplateData(g, "p", "")
	assert.Equal(t, []Symbol{{"TokenAB", "A_B"}, {"TokenAB2", "A_b"}}, data.Tokens)
	assert.Equal(t, []Symbol{{"RuleR", "r"}, {"RuleAB", "a_b"}, {"RuleAB2", "aB"}}, data.Rules)

	g, err = grammar.Load([]byte("%r = `x`; %R = `y`;"))
	require.NoError(t, err)
	data = MakeTemplateData(g, "p", "")
	assert.Equal(t, []Symbol{{"TokenR", "R"}}, data.Tokens)
	assert.Equal(t, []Symbol{{"RuleR", "r"}}, data.Rules)
}

func TestUniqueIdent(t *testing.T) {
	ident, used := uniqueIdent("Rule", "x", frozen.NewSet[string]("RuleX"))
	assert.Equal(t, "RuleX2", ident)
	assert.True(t, used.Has("RuleX2"))
}

func TestWrite(t *testing.T) {
	g, err := grammar.Load([]byte("%op = NUMBER | SUB NUMBER;\n%NUMBER = [0-9]+;\n%SUB = `-`;\n%QUOTE = `\"`;"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, MakeTemplateData(g, "ops", "--pkg ops")))
	src := buf.String()

	_, err = parser.ParseFile(token.NewFileSet(), "symbols.go", src, 0)
	require.NoError(t, err, src)

	assert.Contains(t, src, `// Code generated by "lldef gen --pkg ops"; DO NOT EDIT.`)
	assert.Contains(t, src, "package ops\n")
	assert.Contains(t, src, "\tTokenNumber\n")
	assert.Contains(t, src, `"\""`)
	assert.Contains(t, src, "const EntryRule = RuleOp\n")
}

func TestWriteEmptyGrammar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, MakeTemplateData(grammar.New(), "empty", "")))
	assert.Contains(t, buf.String(), "const EntryRule = RuleNone\n")

	_, err := parser.ParseFile(token.NewFileSet(), "symbols.go", buf.String(), 0)
	assert.NoError(t, err)
}
