package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gopak/csv2nfo/internal/catalog"
)

var current Config

func Get() Config { return current }

// LoadDefaultsAndFiles merges files over the embedded defaults. Scalars in a
// later file replace earlier ones; datasets are merged by kind.
func LoadDefaultsAndFiles(defaultsYAML []byte, files []string) (Config, error) {
	var base Config
	if len(defaultsYAML) > 0 {
		if err := yaml.Unmarshal(defaultsYAML, &base); err != nil {
			return Config{}, fmt.Errorf("defaults: %w", err)
		}
		if err := checkDatasetDuplicates(base, "defaults"); err != nil {
			return Config{}, err
		}
	}
	merged := base
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		var part Config
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		if err := checkDatasetDuplicates(part, f); err != nil {
			return Config{}, err
		}
		merged = mergeConfig(merged, part)
	}
	if err := Validate(merged); err != nil {
		return Config{}, err
	}
	current = merged
	return merged, nil
}

// Validate checks what the JSON schema cannot express.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.CSVDir) == "" {
		return fmt.Errorf("csv_dir must not be empty")
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	seen := map[string]struct{}{}
	for _, d := range cfg.Datasets {
		if _, err := catalog.ParseKind(d.Kind); err != nil {
			return err
		}
		if _, ok := seen[d.Kind]; ok {
			return fmt.Errorf("duplicate dataset kind: %s", d.Kind)
		}
		seen[d.Kind] = struct{}{}
		if strings.TrimSpace(d.File) == "" {
			return fmt.Errorf("dataset %s: file must not be empty", d.Kind)
		}
		if err := d.Search.Options().Validate(); err != nil {
			return fmt.Errorf("dataset %s: %w", d.Kind, err)
		}
	}
	return nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func mergeConfig(base, overlay Config) Config {
	out := base
	if overlay.CSVDir != "" {
		out.CSVDir = overlay.CSVDir
	}
	if overlay.OutputDir != "" {
		out.OutputDir = overlay.OutputDir
	}
	if overlay.Sanitize != nil {
		out.Sanitize = overlay.Sanitize
	}
	if overlay.LogFile != "" {
		out.LogFile = overlay.LogFile
	}
	if overlay.MetricsFile != "" {
		out.MetricsFile = overlay.MetricsFile
	}

	byKind := map[string]Dataset{}
	for _, d := range base.Datasets {
		byKind[d.Kind] = d
	}
	for _, d := range overlay.Datasets {
		if prev, ok := byKind[d.Kind]; ok {
			byKind[d.Kind] = mergeDataset(prev, d)
		} else {
			byKind[d.Kind] = d
		}
	}
	datasets := make([]Dataset, 0, len(byKind))
	for _, d := range byKind {
		datasets = append(datasets, d)
	}
	sort.Slice(datasets, func(i, j int) bool { return kindRank(datasets[i].Kind) < kindRank(datasets[j].Kind) })
	out.Datasets = datasets
	return out
}

func mergeDataset(a, b Dataset) Dataset {
	out := a
	if b.File != "" {
		out.File = b.File
	}
	if b.Search.Mode != "" {
		out.Search = b.Search
	}
	return out
}

func kindRank(kind string) int {
	for i, k := range catalog.Kinds {
		if string(k) == kind {
			return i
		}
	}
	return len(catalog.Kinds)
}

func checkDatasetDuplicates(part Config, file string) error {
	local := map[string]struct{}{}
	for _, d := range part.Datasets {
		if _, ok := local[d.Kind]; ok {
			return fmt.Errorf("duplicate dataset '%s' found in %s", d.Kind, file)
		}
		local[d.Kind] = struct{}{}
	}
	return nil
}
