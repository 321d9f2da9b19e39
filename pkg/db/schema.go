package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

-- One row per generate run
CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    started_at TIMESTAMP NOT NULL,
    finished_at TIMESTAMP,
    nation TEXT NOT NULL,
    output_path TEXT NOT NULL,

    region_count INTEGER DEFAULT 0,
    total_nations INTEGER DEFAULT 0,
    dump_bytes INTEGER DEFAULT 0,

    minor_seconds INTEGER DEFAULT 0,
    major_seconds INTEGER DEFAULT 0,
    major_mode TEXT,              -- observed, override

    status TEXT NOT NULL,         -- running, success, failed
    error TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
`
