// =============================================================================
// Cable Label Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Unlike tools with
// several processing subcommands, label generation is the whole job, so the
// root command itself runs it:
//
//   cablelabel <schedule-file> [-o dir] [--individual] [--no-combined]
//
// The only subcommand is 'version'.
//
// PIPELINE:
//   1. Check the schedule file exists (nonzero exit if not)
//   2. Load the run configuration and apply flag overrides
//   3. Ensure the output directory exists
//   4. Ingest the schedule (CSV or XLSX, by extension)
//   5. Hand the cable sequence to the generator
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wanshade/cable-label-generator/internal/cable"
	"github.com/wanshade/cable-label-generator/internal/config"
	"github.com/wanshade/cable-label-generator/internal/csvparser"
	"github.com/wanshade/cable-label-generator/internal/generator"
	"github.com/wanshade/cable-label-generator/internal/xlsxparser"
	"github.com/wanshade/cable-label-generator/pkg/utils"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

// cfgFile holds the path to the run configuration file.
var cfgFile string

// verbose enables per-file output instead of periodic progress lines.
var verbose bool

// outputDir overrides the configured output directory when non-empty.
var outputDir string

// individual also emits one drawing per cable.
var individual bool

// noCombined suppresses the batched sheet output.
var noCombined bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command. It takes the schedule file as its one
// positional argument and runs the full generation pipeline.
var rootCmd = &cobra.Command{
	Use:   "cablelabel <schedule-file>",
	Short: "Generate DXF cable labels from a CSV or XLSX cable schedule",
	Long: `Cable Label Generator converts a cable schedule into DXF drawings of
printable/cuttable cable tags.

By default the cables are tiled onto combined sheets sized for the cutting
bed, one drawing per sheet. With --individual an additional drawing is
emitted per cable on smaller single-tag stock.

Every drawing carries three fixed layers for downstream machine processing:
Cutting (outlines), Hole (mounting holes) and Text (label text). All
dimensions are millimeters.

Example Usage:
  cablelabel schedule.csv                    # Combined sheets into ./output
  cablelabel schedule.csv -o /tmp/labels     # Custom output directory
  cablelabel schedule.csv --individual       # Also one drawing per cable
  cablelabel schedule.xlsx --no-combined --individual`,

	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(args[0])
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the run configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Print a line per generated file",
	)

	rootCmd.Flags().StringVarP(
		&outputDir,
		"output",
		"o",
		"",
		"Output directory for generated DXF files (default \"output\")",
	)
	rootCmd.Flags().BoolVar(
		&individual,
		"individual",
		false,
		"Generate individual DXF files for each cable",
	)
	rootCmd.Flags().BoolVar(
		&noCombined,
		"no-combined",
		false,
		"Skip combined sheets generation",
	)
}

// =============================================================================
// GENERATION PIPELINE
// =============================================================================

// runGenerate executes the full pipeline for one schedule file.
func runGenerate(schedulePath string) error {
	if !utils.FileExists(schedulePath) {
		return fmt.Errorf("file not found: %s", schedulePath)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	if err := utils.EnsureDir(cfg.OutputDir); err != nil {
		return err
	}

	// Ingestion failures (undecodable file, broken workbook) are reported
	// and yield an empty cable sequence; the generator then reports "no
	// cables found" and the process exits cleanly.
	cables, encoding := ingestSchedule(schedulePath)

	gen := generator.New(cfg, generator.Options{
		Individual: individual,
		NoCombined: noCombined,
		Verbose:    verbose,
	})

	_, err = gen.Run(schedulePath, encoding, cables)
	return err
}

// ingestSchedule reads the schedule with the parser matching its extension.
func ingestSchedule(path string) ([]cable.Record, string) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		records, err := xlsxparser.Parse(path)
		if err != nil {
			fmt.Printf("  Error reading %s: %v\n", path, err)
			return nil, ""
		}
		return records, ""
	}

	schedule, err := csvparser.Parse(path)
	if err != nil {
		fmt.Printf("  Error reading %s: %v\n", path, err)
		return nil, ""
	}
	if verbose {
		fmt.Printf("Detected encoding: %s\n", schedule.Encoding)
	}
	return schedule.Records, schedule.Encoding
}
