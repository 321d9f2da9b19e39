package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailed  = "failed"

	ModeObserved = "observed"
	ModeOverride = "override"
)

// ErrRunNotFound is returned when no run has the requested id
var ErrRunNotFound = errors.New("run not found")

// Run is one ledger entry
type Run struct {
	RunID        string
	StartedAt    time.Time
	FinishedAt   sql.NullTime
	Nation       string
	OutputPath   string
	RegionCount  int
	TotalNations int64
	DumpBytes    int64
	MinorSeconds int64
	MajorSeconds int64
	MajorMode    string
	Status       string
	Error        string
}

// Outcome is what a finished run reports back to the ledger
type Outcome struct {
	FinishedAt   time.Time
	RegionCount  int
	TotalNations int64
	DumpBytes    int64
	MinorSeconds int64
	MajorSeconds int64
	MajorMode    string
	Err          error
}

// StartRun records a run in the running state and returns its id
func (db *DB) StartRun(nation, outputPath string, startedAt time.Time) (string, error) {
	runID := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO runs (run_id, started_at, nation, output_path, status)
		VALUES (?, ?, ?, ?, ?)
	`, runID, startedAt.UTC(), nation, outputPath, StatusRunning)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}
	return runID, nil
}

// FinishRun closes a run. A non-nil Outcome.Err marks it failed.
func (db *DB) FinishRun(runID string, o Outcome) error {
	status := StatusSuccess
	var errText sql.NullString
	if o.Err != nil {
		status = StatusFailed
		errText = sql.NullString{String: o.Err.Error(), Valid: true}
	}

	result, err := db.Exec(`
		UPDATE runs
		SET finished_at = ?, region_count = ?, total_nations = ?, dump_bytes = ?,
		    minor_seconds = ?, major_seconds = ?, major_mode = ?, status = ?, error = ?
		WHERE run_id = ?
	`, o.FinishedAt.UTC(), o.RegionCount, o.TotalNations, o.DumpBytes,
		o.MinorSeconds, o.MajorSeconds, o.MajorMode, status, errText, runID)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}

const runColumns = `run_id, started_at, finished_at, nation, output_path, region_count,
	total_nations, dump_bytes, minor_seconds, major_seconds, COALESCE(major_mode, ''),
	status, COALESCE(error, '')`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var r Run
	err := s.Scan(&r.RunID, &r.StartedAt, &r.FinishedAt, &r.Nation, &r.OutputPath, &r.RegionCount,
		&r.TotalNations, &r.DumpBytes, &r.MinorSeconds, &r.MajorSeconds, &r.MajorMode,
		&r.Status, &r.Error)
	return r, err
}

// GetRun retrieves a single run
func (db *DB) GetRun(runID string) (*Run, error) {
	row := db.QueryRow("SELECT "+runColumns+" FROM runs WHERE run_id = ?", runID)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// ListRuns retrieves runs ordered by most recent first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := "SELECT " + runColumns + " FROM runs ORDER BY started_at DESC, rowid DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}
