// =============================================================================
// Cable Label Generator - Generator Module
// =============================================================================
//
// This module orchestrates one generation run over an already ingested cable
// sequence:
//
//   1. Print the run banner and a preview of the first few cables
//   2. Optionally generate one individual label drawing per cable
//   3. Generate combined sheet drawings in fixed-capacity batches
//   4. Print the summary and write the generation report
//
// The run is fully sequential. Each drawing is an independent in-memory
// canvas flushed once; a failed write aborts only that file and the run
// continues with the remaining files.
//
// =============================================================================

package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/wanshade/cable-label-generator/internal/cable"
	"github.com/wanshade/cable-label-generator/internal/config"
	"github.com/wanshade/cable-label-generator/internal/dxfwriter"
	"github.com/wanshade/cable-label-generator/internal/layout"
	"github.com/wanshade/cable-label-generator/pkg/utils"
)

// previewCount is how many cables the run preview lists.
const previewCount = 5

// progressInterval is how often the individual label loop reports progress.
const progressInterval = 10

// =============================================================================
// OPTIONS AND RESULT
// =============================================================================

// Options control which outputs a run produces.
type Options struct {
	// Individual also emits one drawing per cable at the individual footprint.
	Individual bool

	// NoCombined suppresses the batched sheet output.
	NoCombined bool

	// Verbose prints a line per generated file instead of periodic progress.
	Verbose bool
}

// Result summarizes a completed run.
type Result struct {
	// GeneratedFiles lists the paths of all successfully written drawings.
	GeneratedFiles []string

	// FailedFiles lists the file names whose generation failed.
	FailedFiles []string

	// ReportFile is the path of the generation report, empty if the report
	// could not be written.
	ReportFile string
}

// =============================================================================
// GENERATOR
// =============================================================================

// Generator runs label generation with a fixed configuration.
type Generator struct {
	cfg  config.Config
	opts Options
}

// New creates a Generator.
func New(cfg config.Config, opts Options) *Generator {
	return &Generator{cfg: cfg, opts: opts}
}

// Run generates all requested drawings for the cable sequence.
//
// PARAMETERS:
//   - inputFile: The schedule path, used for the banner and the report.
//   - encoding: The encoding the schedule was decoded with (may be empty).
//   - cables: The ingested cable records, in schedule order.
//
// RETURNS:
//   - A Result listing generated and failed files.
//   - An error only for conditions outside per-file failures; an empty cable
//     sequence is informational, not an error.
func (g *Generator) Run(inputFile, encoding string, cables []cable.Record) (Result, error) {
	startTime := time.Now()

	fmt.Printf("\n%s\n", banner)
	fmt.Println("CABLE LABEL GENERATOR")
	fmt.Println(banner)
	fmt.Printf("CSV File: %s\n", inputFile)
	fmt.Printf("Output Directory: %s\n", g.cfg.OutputDir)
	fmt.Printf("%s\n\n", banner)

	fmt.Printf("✓ Found %d cables in CSV\n\n", len(cables))

	if len(cables) == 0 {
		fmt.Println("❌ No cables found!")
		return Result{}, nil
	}

	printPreview(cables)

	var result Result

	if g.opts.Individual {
		g.generateIndividual(cables, &result)
	}

	if !g.opts.NoCombined {
		g.generateSheets(cables, &result)
	}

	// Summary.
	fmt.Println(banner)
	fmt.Println("GENERATION COMPLETE")
	fmt.Println(banner)
	fmt.Printf("Total files: %d\n", len(result.GeneratedFiles))
	if outputPath, err := filepath.Abs(g.cfg.OutputDir); err == nil {
		fmt.Printf("Output location: %s\n", outputPath)
	} else {
		fmt.Printf("Output location: %s\n", g.cfg.OutputDir)
	}
	fmt.Printf("%s\n\n", banner)

	g.writeReport(inputFile, encoding, cables, startTime, &result)

	return result, nil
}

var banner = "============================================================"

// printPreview lists the first few cables so obviously wrong column mappings
// are visible before the shop cuts anything.
func printPreview(cables []cable.Record) {
	fmt.Println("Sample cables:")
	for i, c := range cables {
		if i >= previewCount {
			break
		}
		fmt.Printf("  %d. %s\n", i+1, c.ID)
		fmt.Printf("     Spec: %s\n", c.Specification)
		fmt.Printf("     %s → %s\n", c.Origin, c.Destination)
	}
	fmt.Println()
}

// =============================================================================
// INDIVIDUAL LABELS
// =============================================================================

// generateIndividual writes one drawing per cable at the individual footprint.
func (g *Generator) generateIndividual(cables []cable.Record, result *Result) {
	fmt.Println("Generating individual labels...")

	size := g.cfg.IndividualLabel

	for i, c := range cables {
		fileName := fmt.Sprintf("cable_%s.dxf", utils.SanitizeID(c.ID))
		path := filepath.Join(g.cfg.OutputDir, fileName)

		canvas := &layout.Canvas{}
		layout.Label(canvas, c, 0, 0, size.Width, size.Height, layout.IndividualStyle)

		if err := dxfwriter.Write(canvas, path); err != nil {
			fmt.Printf("  ✗ %s: %v\n", fileName, err)
			result.FailedFiles = append(result.FailedFiles, fileName)
			continue
		}

		result.GeneratedFiles = append(result.GeneratedFiles, path)
		if g.opts.Verbose {
			fmt.Printf("  ✓ %s\n", fileName)
		} else if (i+1)%progressInterval == 0 {
			fmt.Printf("  Progress: %d/%d\n", i+1, len(cables))
		}
	}

	fmt.Printf("✓ Generated %d individual labels\n\n",
		len(cables)-len(result.FailedFiles))
}

// =============================================================================
// COMBINED SHEETS
// =============================================================================

// generateSheets writes one drawing per batch, each a grid of labels at the
// sheet footprint.
func (g *Generator) generateSheets(cables []cable.Record, result *Result) {
	fmt.Println("Generating combined label sheets...")

	batches := layout.BatchRecords(cables, g.cfg.BatchSize())
	grid := layout.SheetLayout{
		Columns:     g.cfg.LabelsPerRow,
		LabelWidth:  g.cfg.SheetLabel.Width,
		LabelHeight: g.cfg.SheetLabel.Height,
		Spacing:     g.cfg.Spacing,
	}

	sheets := 0
	for batchNum, batch := range batches {
		fileName := fmt.Sprintf("cable_labels_sheet_%02d.dxf", batchNum+1)
		path := filepath.Join(g.cfg.OutputDir, fileName)

		canvas := &layout.Canvas{}
		width, height := layout.Sheet(canvas, batch, grid)

		fmt.Printf("Creating sheet: %.0fmm x %.0fmm\n", width, height)
		fmt.Printf("Labels: %d arranged in %d rows x %d cols\n",
			len(batch), grid.Rows(len(batch)), grid.Columns)

		if err := dxfwriter.Write(canvas, path); err != nil {
			fmt.Printf("  ✗ %s: %v\n", fileName, err)
			result.FailedFiles = append(result.FailedFiles, fileName)
			continue
		}

		sheets++
		result.GeneratedFiles = append(result.GeneratedFiles, path)
		fmt.Printf("  ✓ Sheet %d: %d labels\n", batchNum+1, len(batch))
	}

	fmt.Printf("✓ Generated %d combined sheets\n\n", sheets)
}

// =============================================================================
// REPORT
// =============================================================================

// writeReport records the run in the output directory. A report failure is
// reported but does not fail the run; the drawings are already on disk.
func (g *Generator) writeReport(inputFile, encoding string, cables []cable.Record, startTime time.Time, result *Result) {
	individual := 0
	sheetCount := 0
	for _, f := range result.GeneratedFiles {
		if strings.HasPrefix(filepath.Base(f), "cable_labels_sheet_") {
			sheetCount++
		} else {
			individual++
		}
	}

	reportPath, err := utils.WriteGenerationReport(utils.GenerationSummary{
		StartTime:       startTime,
		EndTime:         time.Now(),
		InputFile:       inputFile,
		Encoding:        encoding,
		CableCount:      len(cables),
		IndividualFiles: individual,
		SheetFiles:      sheetCount,
		GeneratedFiles:  result.GeneratedFiles,
		FailedFiles:     result.FailedFiles,
	}, g.cfg.OutputDir)
	if err != nil {
		fmt.Printf("  ✗ failed to write generation report: %v\n", err)
		return
	}
	result.ReportFile = reportPath
}
