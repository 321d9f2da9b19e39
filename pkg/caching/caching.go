package caching

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dtnitsch/spyglass/pkg/storage"
)

// DumpCache keeps the last downloaded dump on disk and decides when it can be
// reused.
type DumpCache struct {
	path   string
	maxAge time.Duration
	store  *storage.Storage
}

// NewDumpCache creates a cache for the dump at path.
// A negative maxAge reuses a cached dump of any age.
// The parent directory is created if it doesn't exist.
func NewDumpCache(path string, maxAge time.Duration) (*DumpCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &DumpCache{
		path:   path,
		maxAge: maxAge,
		store:  &storage.Storage{},
	}, nil
}

func (c *DumpCache) Path() string {
	return c.path
}

// Exists reports whether a dump file is present.
func (c *DumpCache) Exists() bool {
	return c.store.HasFile(c.path)
}

// Usable reports whether the cached dump can be used instead of downloading.
// refresh forces a download.
func (c *DumpCache) Usable(refresh bool) bool {
	if refresh {
		return false
	}
	stats, err := c.store.GetFileStats(c.path)
	if err != nil {
		return false // Cache miss
	}
	if c.maxAge < 0 {
		return true
	}
	return time.Since(stats.ModTime) <= c.maxAge
}

// Fill replaces the cached dump with what download writes. The previous dump
// survives a failed download.
func (c *DumpCache) Fill(ctx context.Context, download func(context.Context, io.Writer) (int64, error)) (int64, error) {
	var n int64
	err := c.store.WriteAtomic(c.path, func(w io.Writer) error {
		var err error
		n, err = download(ctx, w)
		return err
	})
	if err != nil {
		return n, fmt.Errorf("failed to write to cache: %w", err)
	}
	return n, nil
}

// Open returns a reader over the cached dump.
func (c *DumpCache) Open() (io.ReadCloser, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cached dump: %w", err)
	}
	return f, nil
}
