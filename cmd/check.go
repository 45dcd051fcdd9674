package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

var checkCommand = cli.Command{
	Name:    "check",
	Aliases: []string{"c"},
	Usage:   "Check a grammar description",
	Action:  check,
	Flags:   []cli.Flag{grammarFlag, commandVerboseFlag},
}

func check(c *cli.Context) error {
	g, err := loadGrammar(c)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "tokens: %d, rules: %d\n", g.TokenCount(), g.RuleCount())
	return nil
}
