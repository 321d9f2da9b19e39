package help

import (
	"testing"

	"github.com/dtnitsch/spyglass/models"
	"gopkg.in/yaml.v3"
)

func TestColdstartYAML(t *testing.T) {
	var doc struct {
		Commands     map[string]string `yaml:"commands"`
		Columns      map[string]string `yaml:"columns"`
		DefaultsFile string            `yaml:"defaults_file"`
	}
	if err := yaml.Unmarshal([]byte(ColdstartYAML), &doc); err != nil {
		t.Fatalf("ColdstartYAML is not valid YAML: %v", err)
	}
	if len(doc.Commands) == 0 || len(doc.Columns) == 0 {
		t.Fatal("ColdstartYAML is missing commands or columns")
	}

	// the embedded example must load as a defaults file
	var d models.Defaults
	if err := yaml.Unmarshal([]byte(doc.DefaultsFile), &d); err != nil {
		t.Fatalf("defaults_file example does not parse: %v", err)
	}
	if d.Nation != "Testlandia" || d.MajorSeconds == nil || *d.MajorSeconds != models.DefaultMajorSeconds {
		t.Errorf("defaults_file example = %+v", d)
	}
}
