// Package config loads kindlemint.yaml and applies defaults for anything
// the file leaves out.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
)

const FileName = "kindlemint.yaml"

type yamlRange struct {
	Min *int `yaml:"min"`
	Max *int `yaml:"max"`
}

type yamlConfig struct {
	Kindlemint struct {
		Sudoku struct {
			ClueRanges map[string]yamlRange `yaml:"clue_ranges"`
		} `yaml:"sudoku"`
		PDF struct {
			MinImageBytes      *int64   `yaml:"min_image_bytes"`
			MinImageWidth      *int     `yaml:"min_image_width"`
			MinImageHeight     *int     `yaml:"min_image_height"`
			CoverageThreshold  *float64 `yaml:"coverage_threshold"`
			PageCountTolerance *int     `yaml:"page_count_tolerance"`
		} `yaml:"pdf"`
		Paths struct {
			ReportsDir string `yaml:"reports_dir"`
		} `yaml:"paths"`
	} `yaml:"kindlemint"`
}

// Load reads the config file at path and overlays it on DefaultConfig.
// The defaults are returned alongside the error when the file is missing or
// malformed, so callers can choose to proceed.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrNotFound, err),
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err),
		}
	}

	for name, r := range y.Kindlemint.Sudoku.ClueRanges {
		d := domain.Difficulty(name)
		if !d.Valid() {
			continue
		}
		rng := cfg.Sudoku.ClueRanges[d]
		if r.Min != nil {
			rng.Min = *r.Min
		}
		if r.Max != nil {
			rng.Max = *r.Max
		}
		cfg.Sudoku.ClueRanges[d] = rng
	}

	pdf := y.Kindlemint.PDF
	if pdf.MinImageBytes != nil {
		cfg.PDF.MinImageBytes = *pdf.MinImageBytes
	}
	if pdf.MinImageWidth != nil {
		cfg.PDF.MinImageWidth = *pdf.MinImageWidth
	}
	if pdf.MinImageHeight != nil {
		cfg.PDF.MinImageHeight = *pdf.MinImageHeight
	}
	if pdf.CoverageThreshold != nil {
		cfg.PDF.CoverageThreshold = *pdf.CoverageThreshold
	}
	if pdf.PageCountTolerance != nil {
		cfg.PDF.PageCountTolerance = *pdf.PageCountTolerance
	}

	if y.Kindlemint.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.Kindlemint.Paths.ReportsDir
	}

	return cfg, nil
}

// Find walks from startDir toward the filesystem root looking for the
// config file. It returns "" (not an error) when none exists; defaults
// apply in that case.
func Find(startDir string) string {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	cur := filepath.Clean(abs)
	for {
		candidate := filepath.Join(cur, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return ""
		}
		cur = parent
	}
}
