// Package models defines data structures for configuration and reporting.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMinorSeconds = 3550
	DefaultMajorSeconds = 5350
	DefaultDumpPath     = "regions.xml.gz"
	DefaultLogPath      = "debug.log"
	DefaultConfigPath   = "spyglass.yaml"
)

// RunConfig holds the settings for a single generate run.
// It is built once from CLI flags, the defaults file and prompts, then passed
// by value into every component.
type RunConfig struct {
	Nation     string
	OutputPath string
	DumpPath   string

	Embassies bool
	WFE       bool
	Officers  bool

	MinorSeconds int64
	// MajorSeconds is nil when the major length is taken from the dump's
	// LASTUPDATE timestamps instead of an override.
	MajorSeconds *int64

	RefreshDump bool
	// DumpMaxAge is only consulted when RefreshDump is false. Negative means
	// any cached dump is reused regardless of age.
	DumpMaxAge time.Duration

	LogPath string // empty disables the debug log file
	Silent  bool
}

// Minimized reports whether all optional columns are suppressed.
func (c RunConfig) Minimized() bool {
	return !c.Embassies && !c.WFE && !c.Officers
}

// MajorOverride reports whether the major length was supplied by the caller.
func (c RunConfig) MajorOverride() bool {
	return c.MajorSeconds != nil
}

// Defaults mirrors the optional spyglass.yaml file. Zero values mean
// "not set" and leave the CLI defaults in place.
type Defaults struct {
	Nation       string `yaml:"nation"`
	OutFile      string `yaml:"out_file"`
	MinorSeconds int64  `yaml:"minor_seconds"`
	MajorSeconds *int64 `yaml:"major_seconds"`
	Minimize     bool   `yaml:"minimize"`
	DumpPath     string `yaml:"dump_path"`
	LogFile      string `yaml:"log_file"`
}

// LoadDefaults reads the defaults file at path.
// Returns an empty Defaults (not an error) if the file does not exist.
func LoadDefaults(path string) (Defaults, error) {
	var d Defaults
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return d, nil
	}
	if err != nil {
		return d, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return d, nil
}
