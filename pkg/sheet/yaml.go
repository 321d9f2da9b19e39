package sheet

import (
	"fmt"
	"io"

	"github.com/dtnitsch/spyglass/models"
	"gopkg.in/yaml.v3"
)

// YAML writes the report as a single YAML document. A row's highlight name
// stands in for its cell fill.
type YAML struct{}

func (YAML) Render(w io.Writer, rep *models.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("error marshalling report: %w", err)
	}
	return enc.Close()
}
