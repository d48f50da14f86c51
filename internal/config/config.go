// =============================================================================
// Cable Label Generator - Configuration Module
// =============================================================================
//
// This module loads and manages the run configuration. All geometric
// constants (canvas size, label footprints, grid spacing) live here so that
// a shop with different tag stock can override them from a YAML file without
// code changes.
//
// The configuration is resolved once at startup (file, then defaults for
// anything unset, then validation) and is passed around as an immutable
// value for the rest of the run.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config path used when --config is not given.
// A missing file at this path is not an error; the built-in defaults apply.
const DefaultConfigFile = "cablelabel.yaml"

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// LabelSize is a label footprint in millimeters.
type LabelSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Config holds the full run configuration.
type Config struct {
	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputDir is the directory where generated DXF files are placed.
	// Created if missing. Default: "output"
	OutputDir string `yaml:"output_dir"`

	// =========================================================================
	// SHEET SETTINGS
	// =========================================================================

	// CanvasWidth and CanvasHeight describe the cutting bed in millimeters.
	// The sheet batch capacity is derived from these.
	// Defaults: 600 x 300
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`

	// SheetLabel is the footprint of one label on a combined sheet.
	// Default: 180 x 45
	SheetLabel LabelSize `yaml:"sheet_label"`

	// IndividualLabel is the footprint used for --individual output.
	// Default: 80 x 40. This intentionally differs from SheetLabel:
	// individually printed tags are smaller stock.
	IndividualLabel LabelSize `yaml:"individual_label"`

	// LabelsPerRow is the number of grid columns on a combined sheet.
	// Default: 3
	LabelsPerRow int `yaml:"labels_per_row"`

	// Spacing is the gap between labels on a sheet, and the sheet margin,
	// in millimeters. Default: 2
	Spacing float64 `yaml:"spacing"`
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir:       "output",
		CanvasWidth:     600,
		CanvasHeight:    300,
		SheetLabel:      LabelSize{Width: 180, Height: 45},
		IndividualLabel: LabelSize{Width: 80, Height: 40},
		LabelsPerRow:    3,
		Spacing:         2,
	}
}

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - path: The path to the configuration file.
//
// RETURNS:
//   - The resolved configuration.
//   - An error if the file cannot be parsed or fails validation.
//
// A missing file at the default path yields the built-in defaults. A missing
// file at an explicitly requested path is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigFile {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills any unset option with its built-in default.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.CanvasWidth == 0 {
		cfg.CanvasWidth = def.CanvasWidth
	}
	if cfg.CanvasHeight == 0 {
		cfg.CanvasHeight = def.CanvasHeight
	}
	if cfg.SheetLabel.Width == 0 {
		cfg.SheetLabel.Width = def.SheetLabel.Width
	}
	if cfg.SheetLabel.Height == 0 {
		cfg.SheetLabel.Height = def.SheetLabel.Height
	}
	if cfg.IndividualLabel.Width == 0 {
		cfg.IndividualLabel.Width = def.IndividualLabel.Width
	}
	if cfg.IndividualLabel.Height == 0 {
		cfg.IndividualLabel.Height = def.IndividualLabel.Height
	}
	if cfg.LabelsPerRow == 0 {
		cfg.LabelsPerRow = def.LabelsPerRow
	}
	if cfg.Spacing == 0 {
		cfg.Spacing = def.Spacing
	}
}

// validate rejects configurations that cannot produce a drawable layout.
func validate(cfg Config) error {
	if cfg.CanvasWidth <= 0 || cfg.CanvasHeight <= 0 {
		return fmt.Errorf("canvas dimensions must be positive")
	}
	if cfg.SheetLabel.Width <= 0 || cfg.SheetLabel.Height <= 0 {
		return fmt.Errorf("sheet label dimensions must be positive")
	}
	if cfg.IndividualLabel.Width <= 0 || cfg.IndividualLabel.Height <= 0 {
		return fmt.Errorf("individual label dimensions must be positive")
	}
	if cfg.LabelsPerRow < 1 {
		return fmt.Errorf("labels_per_row must be at least 1")
	}
	if cfg.Spacing < 0 {
		return fmt.Errorf("spacing must not be negative")
	}
	return nil
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// BatchSize returns how many labels fit on one sheet.
//
// With the defaults: 600 / (180 + 2) = ~3.3 -> 3 labels per row,
// 300 / (45 + 2) = ~6.4 -> 6 rows, 3 x 6 = 18 labels per sheet.
func (c Config) BatchSize() int {
	cols := int(c.CanvasWidth / (c.SheetLabel.Width + c.Spacing))
	rows := int(c.CanvasHeight / (c.SheetLabel.Height + c.Spacing))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols * rows
}
