package generate

import (
	"fmt"
	"time"

	"github.com/dtnitsch/spyglass/internal/prompt"
	"github.com/dtnitsch/spyglass/models"
	"github.com/dtnitsch/spyglass/pkg/fetcher"
	"github.com/urfave/cli/v2"
)

// DefaultOutFile names the timesheet after the local date, without zero
// padding.
func DefaultOutFile(now time.Time) string {
	return fmt.Sprintf("SpyglassSheet%d-%d-%d.xlsx", now.Year(), int(now.Month()), now.Day())
}

// buildConfig resolves the run settings. Precedence is command-line flag,
// then defaults file, then flag default. When no nation is known and asker is
// non-nil, the interactive questions fill in the rest.
func buildConfig(c *cli.Context, defaults models.Defaults, asker prompt.Asker, dumpExists func(string) bool, now time.Time) (models.RunConfig, error) {
	cfg := models.RunConfig{
		Nation:       pick(c, "nation", defaults.Nation),
		OutputPath:   pick(c, "out-file", defaults.OutFile),
		DumpPath:     pick(c, "dump-path", defaults.DumpPath),
		MinorSeconds: c.Int64("minor-speed"),
		Silent:       c.Bool("silent"),
		RefreshDump:  true,
		DumpMaxAge:   -1,
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutFile(now)
	}

	if !c.IsSet("minor-speed") && defaults.MinorSeconds > 0 {
		cfg.MinorSeconds = defaults.MinorSeconds
	}
	switch {
	case c.IsSet("major-speed"):
		major := c.Int64("major-speed")
		cfg.MajorSeconds = &major
	case defaults.MajorSeconds != nil:
		major := *defaults.MajorSeconds
		cfg.MajorSeconds = &major
	}

	switch {
	case c.Bool("stale"):
		cfg.RefreshDump = false
	case c.IsSet("max-age"):
		cfg.RefreshDump = false
		cfg.DumpMaxAge = c.Duration("max-age")
	}

	if !c.Bool("suppress-logging") {
		cfg.LogPath = pick(c, "logging-file", defaults.LogFile)
	}

	minimize := c.Bool("minimize") || defaults.Minimize
	cfg.Embassies, cfg.WFE, cfg.Officers = !minimize, !minimize, !minimize

	if cfg.Nation != "" {
		return cfg, nil
	}
	if asker == nil {
		return cfg, fmt.Errorf("%w: no nation given; use --nation when not running in a terminal", fetcher.ErrInvalidNation)
	}

	ans, err := prompt.Interview(asker, dumpExists(cfg.DumpPath))
	if err != nil {
		return cfg, err
	}
	cfg.Nation = ans.Nation
	cfg.Embassies = ans.Embassies && !minimize
	cfg.WFE = ans.Embassies && !minimize
	cfg.Officers = ans.Officers && !minimize
	if ans.Manual {
		minor, major := ans.Minor, ans.Major
		cfg.MinorSeconds = minor
		cfg.MajorSeconds = &major
	}
	if !ans.Redownload {
		cfg.RefreshDump = false
		cfg.DumpMaxAge = -1
	}
	return cfg, nil
}

// pick returns the flag when given on the command line, else the file value,
// else the flag default.
func pick(c *cli.Context, name, fromFile string) string {
	if c.IsSet(name) || fromFile == "" {
		return c.String(name)
	}
	return fromFile
}
