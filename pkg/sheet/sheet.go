// Package sheet renders an assembled report into a persisted artifact.
package sheet

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/spyglass/models"
	"github.com/dtnitsch/spyglass/pkg/storage"
)

// Sink renders a report into w.
type Sink interface {
	Render(w io.Writer, rep *models.Report) error
}

// ForPath picks a sink from the output file extension. Anything that is not
// .yaml or .yml is written as a spreadsheet.
func ForPath(path string) Sink {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML{}
	default:
		return XLSX{}
	}
}

// Save renders rep with the sink matching path and writes it atomically, so a
// failed run never leaves a partial timesheet behind.
func Save(s *storage.Storage, path string, rep *models.Report) error {
	sink := ForPath(path)
	if err := s.WriteAtomic(path, func(w io.Writer) error {
		return sink.Render(w, rep)
	}); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
