package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanshade/cable-label-generator/internal/cable"
)

func polylinesOnLayer(c *Canvas, layer string) []Polyline {
	var out []Polyline
	for _, p := range c.Polylines {
		if p.Layer == layer {
			out = append(out, p)
		}
	}
	return out
}

func textValues(c *Canvas) []string {
	var out []string
	for _, t := range c.Texts {
		out = append(out, t.Value)
	}
	return out
}

func TestLabelOutline(t *testing.T) {
	t.Parallel()

	rec := cable.New("C-101", "500mm² 110 XLPE CU FLEX", "Panel A", "Panel B")
	c := &Canvas{}
	Label(c, rec, 0, 0, 80, 40, IndividualStyle)

	outlines := polylinesOnLayer(c, LayerCutting)
	require.Len(t, outlines, 1)

	outline := outlines[0]
	assert.True(t, outline.Closed)
	require.Len(t, outline.Points, 5)
	assert.Equal(t, [2]float64{0, 0}, outline.Points[0])
	assert.Equal(t, [2]float64{80, 0}, outline.Points[1])
	assert.Equal(t, [2]float64{80, 40}, outline.Points[2])
	assert.Equal(t, [2]float64{0, 40}, outline.Points[3])
	assert.Equal(t, outline.Points[0], outline.Points[4], "outline is explicitly closed")
}

func TestLabelMountingHoles(t *testing.T) {
	t.Parallel()

	rec := cable.New("C-101", "25mm² XLPE", "A", "B")
	c := &Canvas{}
	Label(c, rec, 10, 20, 80, 40, IndividualStyle)

	holes := polylinesOnLayer(c, LayerHole)
	require.Len(t, holes, 4)

	// First hole is centered 5 units in from the lower-left corner and spans
	// 5 x 2.5 around its center.
	first := holes[0]
	assert.True(t, first.Closed)
	require.Len(t, first.Points, 5)
	assert.Equal(t, [2]float64{12.5, 23.75}, first.Points[0])
	assert.Equal(t, [2]float64{17.5, 23.75}, first.Points[1])
	assert.Equal(t, [2]float64{17.5, 26.25}, first.Points[2])
	assert.Equal(t, [2]float64{12.5, 26.25}, first.Points[3])
	assert.Equal(t, first.Points[0], first.Points[4])

	// Last hole sits in from the upper-right corner.
	last := holes[3]
	assert.Equal(t, [2]float64{82.5, 53.75}, last.Points[0])
}

func TestLabelTextPlacement(t *testing.T) {
	t.Parallel()

	rec := cable.New("C-101", "500mm² 110 XLPE CU FLEX", "Panel A", "Panel B")
	c := &Canvas{}
	Label(c, rec, 0, 0, 80, 40, IndividualStyle)

	require.Len(t, c.Texts, 4)

	id := c.Texts[0]
	assert.Equal(t, "C-101", id.Value)
	assert.Equal(t, 40.0, id.X)
	assert.Equal(t, 28.0, id.Y) // h - 12
	assert.Equal(t, 7.0, id.Height)
	assert.Equal(t, AlignCenter, id.Align)

	spec := c.Texts[1]
	assert.Equal(t, "500mm² 110 XLPE CU FLEX", spec.Value)
	assert.Equal(t, 40.0, spec.X)
	assert.Equal(t, 18.0, spec.Y) // h - 22
	assert.Equal(t, 4.0, spec.Height)

	origin := c.Texts[2]
	assert.Equal(t, "ORIGIN: Panel A", origin.Value)
	assert.Equal(t, 5.0, origin.X)
	assert.Equal(t, 14.0, origin.Y)
	assert.Equal(t, 3.5, origin.Height)
	assert.Equal(t, AlignLeft, origin.Align)

	dest := c.Texts[3]
	assert.Equal(t, "DEST: Panel B", dest.Value)
	assert.Equal(t, 5.0, dest.X)
	assert.Equal(t, 7.0, dest.Y)
}

func TestLabelOmitsEmptyRouting(t *testing.T) {
	t.Parallel()

	rec := cable.New("C-102", "95mm 3C CU", "", "")
	c := &Canvas{}
	Label(c, rec, 0, 0, 80, 40, IndividualStyle)

	values := textValues(c)
	assert.Len(t, values, 2)
	for _, v := range values {
		assert.False(t, strings.HasPrefix(v, "ORIGIN:"))
		assert.False(t, strings.HasPrefix(v, "DEST:"))
	}
}

func TestLabelTruncation(t *testing.T) {
	t.Parallel()

	longSpec := strings.Repeat("x", 60)
	longRoute := strings.Repeat("y", 60)
	rec := cable.New("C-103", longSpec, longRoute, longRoute)

	t.Run("individual style", func(t *testing.T) {
		t.Parallel()
		c := &Canvas{}
		Label(c, rec, 0, 0, 80, 40, IndividualStyle)

		assert.Equal(t, strings.Repeat("x", 55), c.Texts[1].Value)
		assert.Equal(t, "ORIGIN: "+strings.Repeat("y", 45), c.Texts[2].Value)
		assert.Equal(t, "DEST: "+strings.Repeat("y", 45), c.Texts[3].Value)
	})

	t.Run("grid style", func(t *testing.T) {
		t.Parallel()
		c := &Canvas{}
		Label(c, rec, 0, 0, 180, 45, GridStyle)

		assert.Equal(t, strings.Repeat("x", 50), c.Texts[1].Value)
		assert.Equal(t, "ORIGIN: "+strings.Repeat("y", 40), c.Texts[2].Value)
		assert.Equal(t, "DEST: "+strings.Repeat("y", 40), c.Texts[3].Value)
	})

	// The stored record field stays untruncated.
	assert.Equal(t, longSpec, rec.Specification)
}

func TestLabelTruncationCountsRunes(t *testing.T) {
	t.Parallel()

	spec := strings.Repeat("²", 60)
	rec := cable.New("C-104", spec, "", "")
	c := &Canvas{}
	Label(c, rec, 0, 0, 80, 40, IndividualStyle)

	assert.Equal(t, strings.Repeat("²", 55), c.Texts[1].Value)
}

func TestLabelIdempotent(t *testing.T) {
	t.Parallel()

	rec := cable.New("C-105", "500mm² 110 XLPE CU FLEX 20-OF", "MCC-1", "DB-4")

	first := &Canvas{}
	Label(first, rec, 12.5, 30, 180, 45, GridStyle)

	second := &Canvas{}
	Label(second, rec, 12.5, 30, 180, 45, GridStyle)

	assert.Equal(t, first, second)
}

func TestLabelGridStyleOffsets(t *testing.T) {
	t.Parallel()

	rec := cable.New("C-106", "25mm² XLPE", "A", "B")
	c := &Canvas{}
	Label(c, rec, 100, 200, 180, 45, GridStyle)

	id := c.Texts[0]
	assert.Equal(t, 190.0, id.X) // x + w/2
	assert.Equal(t, 233.0, id.Y) // y + h - 12
	assert.Equal(t, 6.0, id.Height)

	origin := c.Texts[2]
	assert.Equal(t, 103.0, origin.X) // x + margin 3
	assert.Equal(t, 212.0, origin.Y) // y + 12
	assert.Equal(t, 3.2, origin.Height)

	dest := c.Texts[3]
	assert.Equal(t, 206.0, dest.Y) // y + 6
}
