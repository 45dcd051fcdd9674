package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/arr-ai/lldef/first"
	"github.com/arr-ai/lldef/report"
)

var ruleName string
var firstCommand = cli.Command{
	Name:    "first",
	Aliases: []string{"f"},
	Usage:   "Print the FIRST sets of the rules of a grammar",
	Action:  firstSets,
	Flags: []cli.Flag{
		grammarFlag,
		commandVerboseFlag,
		cli.StringFlag{
			Name:        "rule",
			Usage:       "only print this rule",
			Required:    false,
			TakesFile:   false,
			Destination: &ruleName,
		},
	},
}

func firstSets(c *cli.Context) error {
	g, err := loadGrammar(c)
	if err != nil {
		return err
	}

	var names []string
	if ruleName != "" {
		names = append(names, ruleName)
	}
	tree, err := report.First(g, first.NewEngine(), names...)
	if err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, tree.Print())
	return nil
}
