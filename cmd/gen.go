package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/lldef/cmd/codegen"
)

var pkgName string
var outFile string
var genCommand = cli.Command{
	Name:    "gen",
	Aliases: []string{"g"},
	Usage:   "Generate Go symbols for a grammar",
	Action:  gen,
	Flags: []cli.Flag{
		grammarFlag,
		commandVerboseFlag,
		cli.StringFlag{
			Name:        "pkg",
			Usage:       "name of the generated package",
			Required:    true,
			TakesFile:   false,
			Destination: &pkgName,
		},
		cli.StringFlag{
			Name:        "output",
			Usage:       "filename to write the output to",
			Required:    false,
			TakesFile:   true,
			Destination: &outFile,
		},
	},
}

func gen(c *cli.Context) error {
	g, err := loadGrammar(c)
	if err != nil {
		return err
	}
	data := codegen.MakeTemplateData(g, pkgName, strings.Join(os.Args[1:], " "))

	switch outFile {
	case "", "-":
		return codegen.Write(c.App.Writer, data)
	default:
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		logrus.WithField("output", outFile).Debug("writing symbols")
		if err := codegen.Write(f, data); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
}
