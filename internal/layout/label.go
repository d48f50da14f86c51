// =============================================================================
// Cable Label Generator - Label Layout Engine
// =============================================================================
//
// This module computes the complete geometry of one label: the rectangular
// cut outline, the four corner mounting holes, and up to four text placements
// (id, specification, origin, destination). All positions are absolute in the
// target drawing's coordinate space; for grid cells the caller passes the
// cell's world-space offset as the origin.
//
// Two text styles exist on purpose. Individual labels are printed on larger
// stock and use bigger fonts and longer truncation limits than grid cells.
// The two parameter sets must not be unified: doing so would silently change
// the visual output of one of the two modes.
//
// =============================================================================

package layout

import "github.com/wanshade/cable-label-generator/internal/cable"

// =============================================================================
// GEOMETRY CONSTANTS
// =============================================================================

// Mounting holes sit a fixed distance in from each corner and have a fixed
// footprint, independent of the label size. The 5 x 2.5 slot matches the
// strap stock used for tagging.
const (
	holeOffset = 5.0
	holeWidth  = 5.0
	holeHeight = 2.5
)

// Vertical text anchors measured down from the top edge. These are shared by
// both styles.
const (
	idOffsetFromTop   = 12.0
	specOffsetFromTop = 22.0
)

// Prefixes rendered in front of the routing lines.
const (
	originLabel      = "ORIGIN: "
	destinationLabel = "DEST: "
)

// =============================================================================
// TEXT STYLES
// =============================================================================

// Style is a parameter set for the text portion of a label.
type Style struct {
	// IDHeight is the text height of the cable id line.
	IDHeight float64

	// SpecHeight is the text height of the specification line.
	SpecHeight float64

	// SpecMaxLen is the character limit for the specification line.
	SpecMaxLen int

	// RouteHeight is the text height of the origin and destination lines.
	RouteHeight float64

	// RouteMaxLen is the character limit for the origin and destination
	// values, applied before the "ORIGIN: " / "DEST: " prefix is added.
	RouteMaxLen int

	// TextMargin is the left margin of the origin and destination lines.
	TextMargin float64

	// OriginBaseline is the origin line's vertical anchor, measured up from
	// the bottom edge.
	OriginBaseline float64

	// DestBaseline is the destination line's vertical anchor, measured up
	// from the bottom edge. Smaller than OriginBaseline so the destination
	// sits below the origin.
	DestBaseline float64
}

// IndividualStyle is used for single-label drawings (80 x 40 stock).
var IndividualStyle = Style{
	IDHeight:       7,
	SpecHeight:     4,
	SpecMaxLen:     55,
	RouteHeight:    3.5,
	RouteMaxLen:    45,
	TextMargin:     5,
	OriginBaseline: 14,
	DestBaseline:   7,
}

// GridStyle is used for cells on combined sheets (180 x 45 cells).
var GridStyle = Style{
	IDHeight:       6,
	SpecHeight:     3.5,
	SpecMaxLen:     50,
	RouteHeight:    3.2,
	RouteMaxLen:    40,
	TextMargin:     3,
	OriginBaseline: 12,
	DestBaseline:   6,
}

// =============================================================================
// LABEL LAYOUT
// =============================================================================

// Label appends the complete geometry and text of one label to the canvas.
//
// PARAMETERS:
//   - c: The canvas to append to.
//   - rec: The cable record to render.
//   - x, y: The lower-left corner of the label in drawing coordinates.
//   - w, h: The label footprint.
//   - style: The text parameter set to apply.
//
// Calling Label twice with identical inputs appends identical geometry; the
// record is never mutated.
func Label(c *Canvas, rec cable.Record, x, y, w, h float64, style Style) {
	// Cut outline. The first point is repeated so the polyline is explicitly
	// closed in the output file as well as flagged closed.
	c.AddPolyline(LayerCutting, true,
		[2]float64{x, y},
		[2]float64{x + w, y},
		[2]float64{x + w, y + h},
		[2]float64{x, y + h},
		[2]float64{x, y},
	)

	// Mounting holes, one per corner.
	holeCenters := [4][2]float64{
		{x + holeOffset, y + holeOffset},
		{x + w - holeOffset, y + holeOffset},
		{x + holeOffset, y + h - holeOffset},
		{x + w - holeOffset, y + h - holeOffset},
	}
	for _, center := range holeCenters {
		hx, hy := center[0], center[1]
		c.AddPolyline(LayerHole, true,
			[2]float64{hx - holeWidth/2, hy - holeHeight/2},
			[2]float64{hx + holeWidth/2, hy - holeHeight/2},
			[2]float64{hx + holeWidth/2, hy + holeHeight/2},
			[2]float64{hx - holeWidth/2, hy + holeHeight/2},
			[2]float64{hx - holeWidth/2, hy - holeHeight/2},
		)
	}

	// Cable id, centered near the top. Never truncated.
	c.AddText(Text{
		Layer:  LayerText,
		Value:  rec.ID,
		X:      x + w/2,
		Y:      y + h - idOffsetFromTop,
		Height: style.IDHeight,
		Align:  AlignCenter,
	})

	// Specification, centered below the id.
	c.AddText(Text{
		Layer:  LayerText,
		Value:  truncate(rec.Specification, style.SpecMaxLen),
		X:      x + w/2,
		Y:      y + h - specOffsetFromTop,
		Height: style.SpecHeight,
		Align:  AlignCenter,
	})

	// Origin and destination, left-aligned in the bottom section. Either
	// line is omitted entirely when its value is empty.
	if rec.Origin != "" {
		c.AddText(Text{
			Layer:  LayerText,
			Value:  originLabel + truncate(rec.Origin, style.RouteMaxLen),
			X:      x + style.TextMargin,
			Y:      y + style.OriginBaseline,
			Height: style.RouteHeight,
			Align:  AlignLeft,
		})
	}
	if rec.Destination != "" {
		c.AddText(Text{
			Layer:  LayerText,
			Value:  destinationLabel + truncate(rec.Destination, style.RouteMaxLen),
			X:      x + style.TextMargin,
			Y:      y + style.DestBaseline,
			Height: style.RouteHeight,
			Align:  AlignLeft,
		})
	}
}

// truncate cuts a string to at most max characters. Truncation counts
// characters, not bytes; specifications often contain "²".
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
