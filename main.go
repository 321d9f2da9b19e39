package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dtnitsch/spyglass/internal/generate"
	"github.com/dtnitsch/spyglass/internal/runs"
	"github.com/dtnitsch/spyglass/internal/updtime"
	"github.com/dtnitsch/spyglass/pkg/db"
	"github.com/dtnitsch/spyglass/pkg/help"
	"github.com/urfave/cli/v2"
)

const version = "2.1"

func main() {
	app := &cli.App{
		Name:    "spyglass",
		Usage:   "Generate NationStates region update timesheets",
		Version: version,
		Description: "If run without a nation, Spyglass asks for its settings interactively and " +
			"writes the timesheet to the working directory.",
		Flags:  generate.Flags(),
		Action: generate.GenerateAction,
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "Build a timesheet from the latest data dump",
				Flags:  generate.Flags(),
				Action: generate.GenerateAction,
			},
			{
				Name:  "updtime",
				Usage: "Measure yesterday's minor and major update lengths from the happenings feed",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "nation",
						Aliases:  []string{"n"},
						Usage:    "Nation to identify yourself by",
						Required: true,
					},
				},
				Action: updtime.UpdTimeAction,
			},
			{
				Name:  "runs",
				Usage: "List recent timesheet runs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Value: db.DefaultDBName,
						Usage: "Run ledger database path",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "Maximum number of runs to show (0 for all)",
					},
				},
				Action: runs.RunsAction,
			},
			{
				Name:  "coldstart",
				Usage: "Print a quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
