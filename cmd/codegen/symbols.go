// Package codegen writes Go source declaring the symbols of a grammar.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/arr-ai/frozen"
	"github.com/iancoleman/strcase"

	"github.com/arr-ai/lldef/grammar"
)

type Symbol struct {
	Ident string // Go constant name
	Name  string // name in the grammar
}

type Literal struct {
	Ident string
	Text  string
}

type TemplateData struct {
	CommandLine string
	PackageName string
	Tokens      []Symbol
	Rules       []Symbol
	Literals    []Literal
	Entry       string
}

// MakeTemplateData collects the symbols of g in declaration order.
func MakeTemplateData(g *grammar.Grammar, pkg, commandLine string) TemplateData {
	data := TemplateData{
		CommandLine: commandLine,
		PackageName: pkg,
		Entry:       "RuleNone",
	}

	used := frozen.NewSet[string]("TokenNone", "RuleNone")
	for _, token := range g.Tokens() {
		var ident string
		ident, used = uniqueIdent("Token", strings.ToLower(token.Name), used)
		data.Tokens = append(data.Tokens, Symbol{Ident: ident, Name: token.Name})
		if token.Kind == grammar.LiteralToken {
			data.Literals = append(data.Literals, Literal{Ident: ident, Text: token.Literal})
		}
	}

	for _, rule := range g.Rules() {
		var ident string
		ident, used = uniqueIdent("Rule", rule.Name, used)
		data.Rules = append(data.Rules, Symbol{Ident: ident, Name: rule.Name})
		if rule == g.Entry() {
			data.Entry = ident
		}
	}
	return data
}

// GoName converts a grammar name to an exported Go identifier fragment.
func GoName(name string) string {
	return strcase.ToCamel(name)
}

func uniqueIdent(prefix, name string, used frozen.Set[string]) (string, frozen.Set[string]) {
	base := prefix + GoName(name)
	ident := base
	for i := 2; used.Has(ident); i++ {
		ident = fmt.Sprintf("%s%d", base, i)
	}
	return ident, used.With(ident)
}

var symbolsTemplate = template.Must(template.New("symbols").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`// Code generated by "lldef gen {{.CommandLine}}"; DO NOT EDIT.

package {{.PackageName}}

type TokenKind int

const (
	TokenNone TokenKind = iota
{{- range .Tokens}}
	{{.Ident}}
{{- end}}
)

var tokenNames = map[TokenKind]string{
{{- range .Tokens}}
	{{.Ident}}: {{quote .Name}},
{{- end}}
}

func (k TokenKind) String() string {
	return tokenNames[k]
}

type RuleKind int

const (
	RuleNone RuleKind = iota
{{- range .Rules}}
	{{.Ident}}
{{- end}}
)

var ruleNames = map[RuleKind]string{
{{- range .Rules}}
	{{.Ident}}: {{quote .Name}},
{{- end}}
}

func (k RuleKind) String() string {
	return ruleNames[k]
}

// Literals holds the text of every literal token.
var Literals = map[TokenKind]string{
{{- range .Literals}}
	{{.Ident}}: {{quote .Text}},
{{- end}}
}

// EntryRule is the first rule of the grammar.
const EntryRule = {{.Entry}}
`))

// Write renders data as gofmt-formatted Go source.
func Write(w io.Writer, data TemplateData) error {
	var buf bytes.Buffer
	if err := symbolsTemplate.Execute(&buf, data); err != nil {
		return err
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
