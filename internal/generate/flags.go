package generate

import (
	"github.com/dtnitsch/spyglass/models"
	"github.com/dtnitsch/spyglass/pkg/db"
	"github.com/urfave/cli/v2"
)

// Flags are shared by the app (default action) and the generate command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "nation",
			Aliases: []string{"n"},
			Usage:   "Nation to identify yourself by (API rules require your own nation)",
		},
		&cli.StringFlag{
			Name:    "out-file",
			Aliases: []string{"o"},
			Usage:   "Timesheet path; .yaml or .yml writes YAML (default: SpyglassSheet<Y-M-D>.xlsx)",
		},
		&cli.BoolFlag{
			Name:    "minimize",
			Aliases: []string{"m"},
			Usage:   "Leave out embassies, WFE and officers",
		},
		&cli.Int64Flag{
			Name:  "minor-speed",
			Value: models.DefaultMinorSeconds,
			Usage: "Minor update length in seconds",
		},
		&cli.Int64Flag{
			Name:  "major-speed",
			Usage: "Major update length in seconds (default: taken from the dump's update times)",
		},
		&cli.BoolFlag{
			Name:  "stale",
			Usage: "Reuse the cached data dump whatever its age",
		},
		&cli.DurationFlag{
			Name:  "max-age",
			Usage: "Reuse the cached data dump if it is younger than this (e.g. 12h)",
		},
		&cli.StringFlag{
			Name:    "logging-file",
			Aliases: []string{"l"},
			Value:   models.DefaultLogPath,
			Usage:   "Debug log path",
		},
		&cli.BoolFlag{
			Name:    "suppress-logging",
			Aliases: []string{"s"},
			Usage:   "Do not write a debug log file",
		},
		&cli.BoolFlag{
			Name:  "silent",
			Usage: "Do not log to the console",
		},
		&cli.StringFlag{
			Name:  "config",
			Value: models.DefaultConfigPath,
			Usage: "Optional YAML file with default settings",
		},
		&cli.StringFlag{
			Name:  "dump-path",
			Value: models.DefaultDumpPath,
			Usage: "Where the regions data dump is cached",
		},
		&cli.StringFlag{
			Name:  "db",
			Value: db.DefaultDBName,
			Usage: "Run ledger database path",
		},
		&cli.BoolFlag{
			Name:  "no-ledger",
			Usage: "Do not record the run in the ledger",
		},
	}
}
