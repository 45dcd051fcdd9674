package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

var itemsCommand = cli.Command{
	Name:    "items",
	Aliases: []string{"i"},
	Usage:   "Print the items extracted from a grammar description",
	Action:  listItems,
	Flags:   []cli.Flag{grammarFlag, commandVerboseFlag},
}

func listItems(c *cli.Context) error {
	items, err := loadItems(c)
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Fprintf(c.App.Writer, "%+v\n", item)
	}
	return nil
}
