package config

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gopak/csv2nfo/internal/catalog"
	"github.com/gopak/csv2nfo/internal/match"
)

type Search struct {
	Mode      string `mapstructure:"mode" yaml:"mode" json:"mode"`
	Column    string `mapstructure:"column" yaml:"column" json:"column,omitempty"`
	Dedupe    string `mapstructure:"dedupe" yaml:"dedupe" json:"dedupe,omitempty"`
	ExactOnly bool   `mapstructure:"exact_only" yaml:"exact_only" json:"exact_only,omitempty"`
}

type Dataset struct {
	Kind   string `mapstructure:"kind" yaml:"kind" json:"kind"`
	File   string `mapstructure:"file" yaml:"file" json:"file,omitempty"`
	Search Search `mapstructure:"search" yaml:"search" json:"search"`
}

type Config struct {
	CSVDir      string    `mapstructure:"csv_dir" yaml:"csv_dir" json:"csv_dir,omitempty"`
	OutputDir   string    `mapstructure:"output_dir" yaml:"output_dir" json:"output_dir,omitempty"`
	Sanitize    *bool     `mapstructure:"sanitize" yaml:"sanitize" json:"sanitize,omitempty"`
	LogFile     string    `mapstructure:"log_file" yaml:"log_file" json:"log_file,omitempty"`
	MetricsFile string    `mapstructure:"metrics_file" yaml:"metrics_file" json:"metrics_file,omitempty"`
	Datasets    []Dataset `mapstructure:"datasets" yaml:"datasets" json:"datasets,omitempty"`
}

// UnmarshalYAML accepts either a bare mode ("whole_row") or a mapping.
func (s *Search) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*s = Search{Mode: value.Value}
		return nil
	case yaml.MappingNode:
		type plain Search
		var aux plain
		if err := value.Decode(&aux); err != nil {
			return err
		}
		*s = Search(aux)
		return nil
	default:
		return fmt.Errorf("invalid search node kind: %d", value.Kind)
	}
}

// Options converts the YAML search block into matcher options.
func (s Search) Options() match.Options {
	d := match.Dedupe(s.Dedupe)
	if d == "" {
		d = match.DedupeNone
	}
	return match.Options{
		Mode:      match.Mode(s.Mode),
		Column:    s.Column,
		Dedupe:    d,
		ExactOnly: s.ExactOnly,
	}
}

// SanitizeNames reports whether filenames are sanitized; on unless disabled.
func (c Config) SanitizeNames() bool { return c.Sanitize == nil || *c.Sanitize }

// Dataset returns the dataset configured for kind.
func (c Config) Dataset(kind catalog.Kind) (Dataset, bool) {
	for _, d := range c.Datasets {
		if d.Kind == string(kind) {
			return d, true
		}
	}
	return Dataset{}, false
}

// DatasetPath resolves d.File against CSVDir unless it is absolute.
func (c Config) DatasetPath(d Dataset) string {
	if filepath.IsAbs(d.File) {
		return d.File
	}
	return filepath.Join(c.CSVDir, d.File)
}
