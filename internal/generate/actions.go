package generate

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dtnitsch/spyglass/internal/logging"
	"github.com/dtnitsch/spyglass/internal/prompt"
	"github.com/dtnitsch/spyglass/models"
	"github.com/dtnitsch/spyglass/pkg/caching"
	"github.com/dtnitsch/spyglass/pkg/db"
	"github.com/dtnitsch/spyglass/pkg/fetcher"
	"github.com/dtnitsch/spyglass/pkg/storage"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func GenerateAction(c *cli.Context) error {
	defaults, err := models.LoadDefaults(c.String("config"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: failed to load config: %v", err), 2)
	}

	var asker prompt.Asker
	if term.IsTerminal(int(os.Stdin.Fd())) {
		asker = prompt.TUI{}
	}

	store := &storage.Storage{}
	cfg, err := buildConfig(c, defaults, asker, store.HasFile, time.Now())
	if err != nil {
		return exitError(err)
	}

	logger, cleanup, err := logging.Setup(cfg.LogPath, cfg.Silent, slog.LevelInfo)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}
	defer func() { _ = cleanup() }()

	cache, err := caching.NewDumpCache(cfg.DumpPath, cfg.DumpMaxAge)
	if err != nil {
		logger.Debug("failed to initialize dump cache", "error", err)
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}

	var ledger *db.DB
	if !c.Bool("no-ledger") {
		ledger, err = db.Open(c.String("db"))
		if err != nil {
			logger.Warn("run ledger unavailable, continuing without it", "error", err)
			ledger = nil
		} else {
			defer ledger.Close()
		}
	}

	res, err := Run(c.Context, cfg, Deps{
		Client:  fetcher.NewClient(c.App.Version, cfg.Nation),
		Cache:   cache,
		Store:   store,
		Ledger:  ledger,
		Logger:  logger,
		Version: c.App.Version,
	})
	if err != nil {
		return exitError(err)
	}

	fmt.Printf("Saved %d regions to %s\n", len(res.Report.Rows), cfg.OutputPath)
	return nil
}

// exitError turns a run failure into the process exit status.
func exitError(err error) error {
	switch {
	case errors.Is(err, fetcher.ErrInvalidNation):
		return cli.Exit(fmt.Sprintf("Nation not found. Be sure to input the name of a nation that actually exists. (%v)", err), 1)
	case errors.Is(err, prompt.ErrCancelled):
		return cli.Exit("Cancelled.", 1)
	default:
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
}
