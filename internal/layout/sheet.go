// =============================================================================
// Cable Label Generator - Sheet Batching and Grid Layout
// =============================================================================
//
// This module partitions the cable sequence into fixed-capacity batches and
// arranges each batch into a row/column grid on one sheet. Batches are
// contiguous, non-overlapping and preserve the input order; the last batch
// may be short. Grid cells fill left to right, top to bottom, with row 0 at
// the top of the sheet.
//
// =============================================================================

package layout

import "github.com/wanshade/cable-label-generator/internal/cable"

// =============================================================================
// BATCHING
// =============================================================================

// BatchRecords splits the record sequence into consecutive batches of at most
// size records. Concatenating the batches in order reproduces the input.
func BatchRecords(records []cable.Record, size int) [][]cable.Record {
	if size < 1 {
		size = 1
	}

	var batches [][]cable.Record
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		batches = append(batches, records[start:end:end])
	}

	return batches
}

// =============================================================================
// SHEET LAYOUT
// =============================================================================

// SheetLayout describes the grid of one combined sheet.
type SheetLayout struct {
	// Columns is the number of labels per row.
	Columns int

	// LabelWidth and LabelHeight are the footprint of each grid cell.
	LabelWidth  float64
	LabelHeight float64

	// Spacing is the gap between cells and the margin around the grid.
	Spacing float64
}

// Rows returns the number of grid rows needed for count labels.
func (l SheetLayout) Rows(count int) int {
	return (count + l.Columns - 1) / l.Columns
}

// TotalSize returns the overall sheet footprint for count labels.
func (l SheetLayout) TotalSize(count int) (width, height float64) {
	width = float64(l.Columns)*(l.LabelWidth+l.Spacing) + l.Spacing
	height = float64(l.Rows(count))*(l.LabelHeight+l.Spacing) + l.Spacing
	return width, height
}

// CellOrigin returns the lower-left corner of the cell for the label at the
// given flat index. Index 0 is the top-left cell; indices advance left to
// right, then down.
func (l SheetLayout) CellOrigin(index int, totalHeight float64) (x, y float64) {
	row := index / l.Columns
	col := index % l.Columns

	x = l.Spacing + float64(col)*(l.LabelWidth+l.Spacing)
	y = totalHeight - float64(row+1)*(l.LabelHeight+l.Spacing)
	return x, y
}

// Sheet appends one batch of labels to the canvas as a grid and returns the
// sheet's overall footprint. Each cell is rendered with GridStyle through the
// same layout engine as individual labels, at the cell's world-space offset.
func Sheet(c *Canvas, batch []cable.Record, l SheetLayout) (width, height float64) {
	width, height = l.TotalSize(len(batch))

	for i, rec := range batch {
		x, y := l.CellOrigin(i, height)
		Label(c, rec, x, y, l.LabelWidth, l.LabelHeight, GridStyle)
	}

	return width, height
}
