// =============================================================================
// Cable Label Generator - File Manager Utility
// =============================================================================
//
// This module provides the file-level plumbing around a generation run:
//   - Output directory management
//   - File name sanitization for cable ids
//   - The generation report written next to the DXF output
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates a directory (and any parents) if it does not exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// =============================================================================
// FILE NAMING
// =============================================================================

// SanitizeID makes a cable id safe for use in a file name. Cable ids
// regularly contain "/" as a hierarchy separator ("A/12/3").
func SanitizeID(id string) string {
	return strings.ReplaceAll(id, "/", "_")
}

// =============================================================================
// GENERATION REPORT
// =============================================================================

// GenerationSummary contains summary information about one generation run.
type GenerationSummary struct {
	StartTime       time.Time
	EndTime         time.Time
	InputFile       string
	Encoding        string
	CableCount      int
	IndividualFiles int
	SheetFiles      int
	GeneratedFiles  []string
	FailedFiles     []string
}

// WriteGenerationReport writes a plain-text report of the run into the
// output directory. Each run is tagged with a fresh UUID so reports from
// repeated runs over the same schedule can be told apart.
//
// RETURNS:
//   - The path to the report file.
//   - An error if writing fails.
func WriteGenerationReport(summary GenerationSummary, outputDir string) (string, error) {
	timestamp := summary.EndTime.Format("20060102_150405")
	reportPath := filepath.Join(outputDir, fmt.Sprintf("generation_report_%s.txt", timestamp))

	file, err := os.Create(reportPath)
	if err != nil {
		return "", fmt.Errorf("failed to create report: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	runID := uuid.New().String()
	duration := summary.EndTime.Sub(summary.StartTime)

	fmt.Fprintf(writer, "Cable Label Generator - Generation Report\n")
	fmt.Fprintf(writer, "================================================================================\n\n")
	fmt.Fprintf(writer, "Run Information:\n")
	fmt.Fprintf(writer, "  Run ID:     %s\n", runID)
	fmt.Fprintf(writer, "  Input:      %s\n", summary.InputFile)
	if summary.Encoding != "" {
		fmt.Fprintf(writer, "  Encoding:   %s\n", summary.Encoding)
	}
	fmt.Fprintf(writer, "  Start Time: %s\n", summary.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(writer, "  End Time:   %s\n", summary.EndTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(writer, "  Duration:   %s\n\n", duration.String())
	fmt.Fprintf(writer, "Statistics:\n")
	fmt.Fprintf(writer, "  Cables:            %d\n", summary.CableCount)
	fmt.Fprintf(writer, "  Individual labels: %d\n", summary.IndividualFiles)
	fmt.Fprintf(writer, "  Combined sheets:   %d\n", summary.SheetFiles)
	fmt.Fprintf(writer, "  Failed files:      %d\n\n", len(summary.FailedFiles))

	if len(summary.GeneratedFiles) > 0 {
		fmt.Fprintf(writer, "Generated Files:\n")
		for _, f := range summary.GeneratedFiles {
			fmt.Fprintf(writer, "  %s\n", f)
		}
		fmt.Fprintln(writer)
	}

	if len(summary.FailedFiles) > 0 {
		fmt.Fprintf(writer, "Failed Files:\n")
		for _, f := range summary.FailedFiles {
			fmt.Fprintf(writer, "  %s\n", f)
		}
		fmt.Fprintln(writer)
	}

	fmt.Fprintf(writer, "================================================================================\n")
	fmt.Fprintf(writer, "End of Report\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush report: %w", err)
	}

	return reportPath, nil
}
