// =============================================================================
// Cable Label Generator - Drawing Entities
// =============================================================================
//
// The layout engine does not talk to the DXF library directly. It appends
// layer-tagged primitives to a Canvas, and the dxfwriter module serializes
// the accumulated entities in one pass. This keeps the geometry pure and
// testable without touching the filesystem.
//
// =============================================================================

package layout

// Layer names used in every output drawing. The set is fixed so downstream
// cutting machines can key on them.
const (
	// LayerCutting carries the label outlines (cut lines).
	LayerCutting = "Cutting"

	// LayerHole carries the mounting hole outlines.
	LayerHole = "Hole"

	// LayerText carries all label text.
	LayerText = "Text"
)

// Align describes the horizontal anchoring of a text entity. Vertical
// anchoring is always middle.
type Align int

const (
	// AlignLeft anchors the text at its left edge.
	AlignLeft Align = iota

	// AlignCenter anchors the text at its horizontal center.
	AlignCenter
)

// Polyline is a sequence of connected line segments on a named layer.
type Polyline struct {
	Layer  string
	Points [][2]float64
	Closed bool
}

// Text is a single-line text entity on a named layer.
// X and Y are the anchor point in drawing coordinates; Height is the text
// height in drawing units.
type Text struct {
	Layer  string
	Value  string
	X      float64
	Y      float64
	Height float64
	Align  Align
}

// Canvas accumulates the entities of one output drawing.
// Entities are appended in a deterministic order, so two identical sequences
// of layout calls produce identical canvases.
type Canvas struct {
	Polylines []Polyline
	Texts     []Text
}

// AddPolyline appends a polyline to the canvas.
func (c *Canvas) AddPolyline(layer string, closed bool, points ...[2]float64) {
	c.Polylines = append(c.Polylines, Polyline{
		Layer:  layer,
		Points: points,
		Closed: closed,
	})
}

// AddText appends a text entity to the canvas.
func (c *Canvas) AddText(t Text) {
	c.Texts = append(c.Texts, t)
}
