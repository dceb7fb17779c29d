// Package config holds the run configuration. Defaults reproduce the
// built-in analysis; a YAML file and command-line flags may override them.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"rnaseqde/internal/annotate"
	"rnaseqde/internal/output"
	"rnaseqde/internal/report"
	"rnaseqde/internal/simulate"
)

// Config holds all settings for one analysis run.
type Config struct {
	// Simulation
	Genes      []string `yaml:"genes"`
	RateA      float64  `yaml:"rate_a"`
	RateB      float64  `yaml:"rate_b"`
	Replicates int      `yaml:"replicates"`
	Seed       uint64   `yaml:"seed"`

	// Statistics
	Alpha    float64 `yaml:"alpha"`
	EqualVar bool    `yaml:"equal_var"` // pooled-variance Student test instead of Welch

	// Outputs
	Output      string `yaml:"output"`
	Table       string `yaml:"table"`        // optional export of the full table
	TableFormat string `yaml:"table_format"` // tsv | json
	MetricsFile string `yaml:"metrics_file"` // optional Prometheus textfile

	Annotations annotate.Lookup `yaml:"annotations"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Genes:       []string{"Gene1", "Gene2", "Gene3", "Gene4"},
		RateA:       100,
		RateB:       80,
		Replicates:  10,
		Seed:        42,
		Alpha:       0.05,
		Output:      report.DefaultPath,
		TableFormat: output.FormatTSV,
		Annotations: annotate.DefaultLookup(),
	}
}

// Load reads a YAML file over the defaults. An annotations block in the file
// replaces the default mapping rather than merging with it.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()

	cfg.Annotations = nil
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Annotations == nil {
		cfg.Annotations = annotate.DefaultLookup()
	}
	return cfg, nil
}

// Params returns the simulation parameters.
func (c Config) Params() simulate.Params {
	return simulate.Params{
		Genes:      c.Genes,
		RateA:      c.RateA,
		RateB:      c.RateB,
		Replicates: c.Replicates,
	}
}

// Validate applies the invariants every run depends on.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if !(c.Alpha > 0 && c.Alpha <= 1) {
		return fmt.Errorf("alpha must be in (0, 1], got %v", c.Alpha)
	}
	for _, g := range c.Genes {
		if !printable(g) {
			return fmt.Errorf("gene %q contains a tab or line break", g)
		}
	}
	for id, terms := range c.Annotations {
		if !printable(id) || !printable(terms) {
			return fmt.Errorf("annotation for %q contains a tab or line break", id)
		}
	}
	if c.Output == "" {
		return errors.New("output path is required")
	}
	if c.Table != "" {
		switch c.TableFormat {
		case output.FormatTSV, output.FormatJSON:
		default:
			return fmt.Errorf("invalid table format %q", c.TableFormat)
		}
	}
	return nil
}

// printable reports whether s is safe inside a report row or TSV cell.
func printable(s string) bool {
	return !strings.ContainsAny(s, "\t\n\r")
}
