// =============================================================================
// Cable Label Generator - DXF Writer Module
// =============================================================================
//
// This module serializes an accumulated layout canvas into a DXF file. Every
// output drawing declares the same three layers before any geometry is added:
//
//   Layer     Color        Content
//   -------   ----------   -------------------------
//   Cutting   4 (cyan)     label outlines (cut lines)
//   Hole      1 (red)      mounting hole outlines
//   Text      5 (blue)     all label text
//
// Downstream cutting software keys on the layer names, so the set and the
// colors are fixed. All coordinates are millimeters.
//
// Each drawing is built fully in memory and flushed once on save, so a failed
// save never leaves a partially written file next to completed ones.
//
// =============================================================================

package dxfwriter

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
	"github.com/yofu/dxf/table"

	"github.com/wanshade/cable-label-generator/internal/layout"
)

// drawingLayers is the fixed layer set, declared in this order in every file.
var drawingLayers = []struct {
	name  string
	color color.ColorNumber
}{
	{layout.LayerCutting, color.Cyan},
	{layout.LayerHole, color.Red},
	{layout.LayerText, color.Blue},
}

// Write serializes the canvas to a DXF file at the given path.
//
// PARAMETERS:
//   - c: The canvas holding the accumulated entities.
//   - path: The destination file path.
//
// RETURNS:
//   - An error if the drawing cannot be assembled or saved. The error wraps
//     the destination path so the caller can report which file failed.
func Write(c *layout.Canvas, path string) error {
	d := dxf.NewDrawing()

	for _, l := range drawingLayers {
		if _, err := d.AddLayer(l.name, l.color, table.LT_CONTINUOUS, false); err != nil {
			return fmt.Errorf("failed to declare layer %s: %w", l.name, err)
		}
	}

	for _, p := range c.Polylines {
		if err := d.ChangeLayer(p.Layer); err != nil {
			return fmt.Errorf("unknown layer %s: %w", p.Layer, err)
		}

		vertices := make([][]float64, len(p.Points))
		for i, pt := range p.Points {
			vertices[i] = []float64{pt[0], pt[1]}
		}
		if _, err := d.LwPolyline(p.Closed, vertices...); err != nil {
			return fmt.Errorf("failed to add polyline: %w", err)
		}
	}

	for _, t := range c.Texts {
		if err := d.ChangeLayer(t.Layer); err != nil {
			return fmt.Errorf("unknown layer %s: %w", t.Layer, err)
		}

		txt, err := d.Text(t.Value, t.X, t.Y, 0.0, t.Height)
		if err != nil {
			return fmt.Errorf("failed to add text %q: %w", t.Value, err)
		}

		switch t.Align {
		case layout.AlignCenter:
			txt.Anchor(entity.CENTER_CENTER)
		default:
			txt.Anchor(entity.LEFT_CENTER)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
