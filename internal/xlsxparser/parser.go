// =============================================================================
// Cable Label Generator - XLSX Schedule Parser
// =============================================================================
//
// Some sites maintain their cable schedule directly in a workbook rather than
// exporting it to CSV first. This module reads the first sheet of an XLSX
// workbook and maps its rows through the same tolerant row mapping the CSV
// parser uses, so both input formats behave identically.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/wanshade/cable-label-generator/internal/cable"
)

// Parse reads an XLSX cable schedule and returns the mapped cable records.
//
// PARAMETERS:
//   - path: The path to the XLSX workbook.
//
// RETURNS:
//   - The cable records from the first sheet, in row order.
//   - An error if the workbook cannot be opened or read.
//
// The first row is skipped when it looks like a column header, using the same
// keyword heuristic as the CSV parser.
func Parse(path string) ([]cable.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	if len(rows) > 0 && cable.LooksLikeHeader(strings.Join(rows[0], ",")) {
		rows = rows[1:]
	}

	records := make([]cable.Record, 0, len(rows))
	for _, row := range rows {
		if rec, ok := cable.FromRow(row); ok {
			records = append(records, rec)
		}
	}

	return records, nil
}
