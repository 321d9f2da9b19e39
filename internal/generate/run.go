package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtnitsch/spyglass/models"
	"github.com/dtnitsch/spyglass/pkg/caching"
	"github.com/dtnitsch/spyglass/pkg/classify"
	"github.com/dtnitsch/spyglass/pkg/db"
	"github.com/dtnitsch/spyglass/pkg/dump"
	"github.com/dtnitsch/spyglass/pkg/estimate"
	"github.com/dtnitsch/spyglass/pkg/fetcher"
	"github.com/dtnitsch/spyglass/pkg/report"
	"github.com/dtnitsch/spyglass/pkg/sheet"
	"github.com/dtnitsch/spyglass/pkg/storage"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// Deps are the collaborators of a run.
type Deps struct {
	Client  *fetcher.Client
	Cache   *caching.DumpCache
	Store   *storage.Storage
	Ledger  *db.DB // nil disables the run ledger
	Logger  *slog.Logger
	Version string
	Now     func() time.Time
}

// Result describes a finished run.
type Result struct {
	RunID     string
	Report    *models.Report
	DumpBytes int64
}

// Run fetches the inputs, builds the timesheet and writes it to
// cfg.OutputPath.
func Run(ctx context.Context, cfg models.RunConfig, d Deps) (*Result, error) {
	logger := d.Logger
	now := d.Now
	if now == nil {
		now = time.Now
	}

	logger.Info("Spyglass started",
		"version", d.Version,
		"nation", cfg.Nation,
		"out_file", cfg.OutputPath,
		"dump_path", cfg.DumpPath,
		"embassies", cfg.Embassies,
		"wfe", cfg.WFE,
		"officers", cfg.Officers,
	)

	res := &Result{}
	if d.Ledger != nil {
		runID, err := d.Ledger.StartRun(cfg.Nation, cfg.OutputPath, now())
		if err != nil {
			logger.Warn("failed to record run", "error", err)
		}
		res.RunID = runID
	}

	err := run(ctx, cfg, d, logger, now, res)

	if d.Ledger != nil && res.RunID != "" {
		if ferr := d.Ledger.FinishRun(res.RunID, outcome(cfg, res, now(), err)); ferr != nil {
			logger.Warn("failed to close run", "run_id", res.RunID, "error", ferr)
		}
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func run(ctx context.Context, cfg models.RunConfig, d Deps, logger *slog.Logger, now func() time.Time, res *Result) error {
	if err := d.Client.ValidateNation(ctx); err != nil {
		logger.Debug("nation check failed", "nation", cfg.Nation, "error", err)
		return err
	}

	logger.Info("Minor length", "seconds", cfg.MinorSeconds)
	if cfg.MajorOverride() {
		logger.Info("Major length", "seconds", *cfg.MajorSeconds)
	} else {
		logger.Info("Major length", "source", "dump update times")
	}

	unlocked, ownerless, dumpBytes, err := fetchInputs(ctx, cfg, d, logger)
	if err != nil {
		return err
	}
	res.DumpBytes = dumpBytes

	logger.Info("Processing data")
	regions, err := readDump(d.Cache)
	if err != nil {
		logger.Debug("failed to read data dump", "path", d.Cache.Path(), "error", err)
		return err
	}

	tags := classify.Classify(regions, classify.NewMembership(ownerless, unlocked))

	est, err := estimate.Estimate(regions, estimate.Durations{Minor: cfg.MinorSeconds, Major: cfg.MajorSeconds})
	if err != nil {
		logger.Debug("failed to estimate update times", "regions", len(regions), "error", err)
		return err
	}

	rep, err := report.Assemble(regions, tags, est, report.Options{
		Embassies: cfg.Embassies,
		WFE:       cfg.WFE,
		Officers:  cfg.Officers,
		Version:   d.Version,
		Generated: now(),
	})
	if err != nil {
		return err
	}
	res.Report = rep

	logger.Info("Saving timesheet", "path", cfg.OutputPath, "rows", len(rep.Rows))
	if err := sheet.Save(d.Store, cfg.OutputPath, rep); err != nil {
		logger.Debug("failed to save timesheet", "path", cfg.OutputPath, "error", err)
		return err
	}
	logger.Info("Saved timesheet", "path", cfg.OutputPath, "nations", est.Total)
	return nil
}

// fetchInputs downloads the dump (when the cache can't be reused) on a
// separate goroutine while the two membership lists are fetched here.
// The first failure cancels the rest.
func fetchInputs(ctx context.Context, cfg models.RunConfig, d Deps, logger *slog.Logger) (unlocked, ownerless []string, dumpBytes int64, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	logger.Info("Searching for data dump", "path", d.Cache.Path())
	if d.Cache.Usable(cfg.RefreshDump) {
		logger.Info("Using data dump already present", "path", d.Cache.Path())
	} else {
		if d.Cache.Exists() {
			logger.Info("Found data dump, but re-downloading the latest")
		} else {
			logger.Info("No usable data dump found, downloading latest")
		}
		g.Go(func() error {
			n, err := d.Cache.Fill(gctx, d.Client.DownloadDump)
			if err != nil {
				return fmt.Errorf("failed to download data dump: %w", err)
			}
			dumpBytes = n
			logger.Info("Download complete", "size", humanize.Bytes(uint64(n)))
			return nil
		})
	}

	listErr := func() error {
		var err error
		if unlocked, err = d.Client.RegionsByTag(gctx, "-password"); err != nil {
			return fmt.Errorf("failed to fetch unlocked regions: %w", err)
		}
		if ownerless, err = d.Client.RegionsByTag(gctx, "founderless"); err != nil {
			return fmt.Errorf("failed to fetch founderless regions: %w", err)
		}
		return nil
	}()
	if listErr != nil {
		cancel()
	}

	waitErr := g.Wait()
	switch {
	case listErr == nil:
		err = waitErr
	case waitErr != nil && errors.Is(context.Cause(gctx), waitErr):
		// the download failed first and cancelled the list fetch
		err = waitErr
	default:
		err = listErr
	}
	if err != nil {
		logger.Debug("failed to fetch inputs", "error", err)
		return nil, nil, 0, err
	}
	logger.Info("Fetched region tags", "unlocked", len(unlocked), "founderless", len(ownerless))
	return unlocked, ownerless, dumpBytes, nil
}

func readDump(cache *caching.DumpCache) ([]models.Region, error) {
	f, err := cache.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := dump.Decompress(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dump.ErrMalformedSnapshot, err)
	}
	defer zr.Close()

	return dump.Parse(zr)
}

func outcome(cfg models.RunConfig, res *Result, finished time.Time, err error) db.Outcome {
	o := db.Outcome{
		FinishedAt:   finished,
		DumpBytes:    res.DumpBytes,
		MinorSeconds: cfg.MinorSeconds,
		MajorMode:    db.ModeObserved,
		Err:          err,
	}
	if cfg.MajorOverride() {
		o.MajorMode = db.ModeOverride
		o.MajorSeconds = *cfg.MajorSeconds
	}
	if res.Report != nil {
		o.RegionCount = len(res.Report.Rows)
		o.TotalNations = res.Report.Summary.Nations
		o.MajorSeconds = res.Report.Summary.MajorSeconds
	}
	return o
}
