package logging

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWithWriters(t *testing.T) {
	tests := []struct {
		name       string
		useStderr  bool
		useFile    bool
		wantStderr bool
		wantFile   bool
	}{
		{name: "both outputs", useStderr: true, useFile: true, wantStderr: true, wantFile: true},
		{name: "silent", useFile: true, wantFile: true},
		{name: "suppressed file", useStderr: true, wantStderr: true},
		{name: "nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderrBuf, fileBuf bytes.Buffer
			var stderr, file *bytes.Buffer
			if tt.useStderr {
				stderr = &stderrBuf
			}
			if tt.useFile {
				file = &fileBuf
			}

			logger := SetupWithWriters(writerOrNil(stderr), writerOrNil(file), slog.LevelInfo)
			logger.Info("Searching for data dump", "path", "regions.xml.gz")
			logger.Debug("failure detail")

			if got := strings.Contains(stderrBuf.String(), "Searching for data dump"); got != tt.wantStderr {
				t.Errorf("stderr output present = %v, want %v", got, tt.wantStderr)
			}
			if got := strings.Contains(fileBuf.String(), "path=regions.xml.gz"); got != tt.wantFile {
				t.Errorf("file output present = %v, want %v", got, tt.wantFile)
			}
			if strings.Contains(stderrBuf.String(), "failure detail") {
				t.Error("debug record written to stderr at info level")
			}
			if got := strings.Contains(fileBuf.String(), "failure detail"); got != tt.wantFile {
				t.Errorf("file debug record present = %v, want %v", got, tt.wantFile)
			}
		})
	}
}

func TestSetup_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := os.WriteFile(path, []byte("previous run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	logger, cleanup, err := Setup(path, true, slog.LevelInfo)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	logger.Info("Saved timesheet")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "previous run\n") {
		t.Errorf("log file was truncated: %q", data)
	}
	if !strings.Contains(string(data), "Saved timesheet") {
		t.Errorf("log file missing record: %q", data)
	}
}

func TestSetup_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "debug.log")
	if _, _, err := Setup(path, true, slog.LevelInfo); err == nil {
		t.Error("Setup() expected error for unwritable path")
	}
}

// writerOrNil avoids handing a typed nil *bytes.Buffer through io.Writer.
func writerOrNil(b *bytes.Buffer) io.Writer {
	if b == nil {
		return nil
	}
	return b
}
