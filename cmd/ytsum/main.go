// ytsum fetches and summarizes YouTube transcripts from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var (
	info    = color.New(color.FgCyan)
	failure = color.New(color.FgRed, color.Bold)
)

func main() {
	// Missing .env is fine for a CLI.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "ytsum",
		Usage: "fetch and summarize YouTube transcripts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				EnvVars: []string{"SUMMARIZER_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "preferred transcript language",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log pipeline progress to stderr",
			},
		},
		Commands: []*cli.Command{
			transcriptCommand(),
			summarizeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		failure.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func logf(format string, args ...any) {
	info.Fprintf(os.Stderr, "→ "+format+"\n", args...)
}

func usageError(c *cli.Context) error {
	return fmt.Errorf("expected exactly one video URL, got %d arguments", c.NArg())
}
