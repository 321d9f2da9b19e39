// Package logging builds the run logger: text to stderr plus an appended
// debug log file, either of which can be switched off. Failure details go
// to the file at debug level; the console gets them once, from the exit
// message.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Setup creates the run logger. An empty logFile disables the file output
// and silent disables stderr. Returns the logger and a cleanup function to
// close the file.
func Setup(logFile string, silent bool, level slog.Level) (*slog.Logger, func() error, error) {
	var stderr io.Writer
	if !silent {
		stderr = os.Stderr
	}

	if logFile == "" {
		return SetupWithWriters(stderr, nil, level), func() error { return nil }, nil
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", logFile, err)
	}

	cleanup := func() error {
		return file.Close()
	}
	return SetupWithWriters(stderr, file, level), cleanup, nil
}

// SetupWithWriters creates a logger over custom writers (for testing).
// Nil writers are skipped. level applies to stderr; the file always takes
// debug records.
func SetupWithWriters(stderr, file io.Writer, level slog.Level) *slog.Logger {
	var handlers []slog.Handler
	if stderr != nil {
		handlers = append(handlers, slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	}
	if file != nil {
		handlers = append(handlers, slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slogmulti.Fanout(handlers...))
}
