package pixels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeInvariant(t *testing.T) {
	_, err := newColorPixels([][]Color{
		{RGBColor(1, 2, 3), RGBColor(4, 5, 6)},
		{RGBColor(7, 8, 9)},
	}, 2)
	var shape *ShapeError
	assert.ErrorAs(t, err, &shape)
	assert.Equal(t, 1, shape.Row)
	assert.Equal(t, 1, shape.Len)
	assert.Equal(t, 2, shape.Want)

	_, err = newSegmentPixels([][]Segment{
		{{Grapheme: " "}},
		{{Grapheme: " "}, {Grapheme: " "}},
	}, 1)
	assert.ErrorAs(t, err, &shape)
}

func TestLineIdempotent(t *testing.T) {
	px, err := newColorPixels([][]Color{
		{RGBColor(1, 2, 3), 0},
		{0, RGBColor(4, 5, 6)},
	}, 2)
	assert.NoError(t, err)

	for row := 0; row < 2; row += 1 {
		first := px.Line(row)
		second := px.Line(row)
		assert.Equal(t, first, second)
	}
}

func TestLineIsolated(t *testing.T) {
	// mutating a returned line must not leak into later renders
	px, err := newSegmentPixels([][]Segment{{{Grapheme: "x"}}}, 1)
	assert.NoError(t, err)

	line := px.Line(0)
	line[0].Grapheme = "y"
	assert.Equal(t, "x", px.Line(0)[0].Grapheme)
}

func TestLineOutOfRange(t *testing.T) {
	px, err := newColorPixels([][]Color{{RGBColor(1, 2, 3)}}, 2)
	assert.NoError(t, err)
	assert.Nil(t, px.Line(-1))
	assert.Nil(t, px.Line(1))
}

func TestEmptyGrid(t *testing.T) {
	var px Pixels
	cols, rows := px.CellSize()
	assert.Equal(t, 0, cols)
	assert.Equal(t, 0, rows)
	cols, rows = px.RenderedSize()
	assert.Equal(t, 0, cols)
	assert.Equal(t, 0, rows)
	assert.Empty(t, px.Lines())
}
