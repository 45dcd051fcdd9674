package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/lldef/errors"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

// grammarFlag and verboseFlag are shared by the app and every command, so
// they are read through the context.
var grammarFlag = cli.StringFlag{
	Name:      "grammar",
	Usage:     "input grammar file, - or empty for stdin",
	Required:  false,
	TakesFile: true,
}

var verboseFlag = cli.BoolFlag{
	Name:  "verbose",
	Usage: "verbose logging",
}

// commandVerboseFlag adds -v, which the app reserves for --version.
var commandVerboseFlag = cli.BoolFlag{
	Name:  "verbose, v",
	Usage: "verbose logging",
}

func NewApp(info VersionTags) *cli.App {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "lldef"
	app.Usage = "check grammar descriptions and compute their FIRST sets"
	app.Version = info.Version

	app.Flags = []cli.Flag{grammarFlag, verboseFlag}

	app.Action = check
	app.Commands = []cli.Command{checkCommand, itemsCommand, firstCommand, dumpCommand, genCommand}
	return app
}

func grammarPath(c *cli.Context) string {
	if path := c.String("grammar"); path != "" {
		return path
	}
	return c.GlobalString("grammar")
}

func setVerbosity(c *cli.Context) {
	if c.Bool("verbose") || c.GlobalBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func Main(info VersionTags) {
	err := NewApp(info).Run(os.Args)
	if err == nil {
		return
	}
	if errors.KindOf(err) != errors.NoError {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logrus.Fatal(err)
}
