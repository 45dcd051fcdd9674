package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/arr-ai/lldef/report"
)

var dumpCommand = cli.Command{
	Name:    "dump",
	Aliases: []string{"d"},
	Usage:   "Print the tokens and rules of a grammar",
	Action:  dump,
	Flags:   []cli.Flag{grammarFlag, commandVerboseFlag},
}

func dump(c *cli.Context) error {
	g, err := loadGrammar(c)
	if err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, report.Grammar(g).Print())
	return nil
}
