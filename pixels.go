// Package pixels converts raster images and character sketches into
// immutable grids of styled terminal segments. A Pixels value reports its
// size in cells and hands back one ordered row of segments at a time;
// painting those segments is left to the hosting rendering layer.
package pixels

import (
	"io"

	"golang.org/x/exp/slog"
)

// Logger is a slog.Logger that pixels will dump logs to. pixels logs using
// the stdlib levels
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// gapGlyph is the blank block synthesized for color cells. Two columns per
// cell keeps image output roughly square in most fonts
const gapGlyph = "  "

// Pixels is an immutable grid of colored cells, constructed with
// [FromImage], [FromImagePath], or [FromASCII]. The zero value is an empty
// grid. Once constructed a Pixels never changes, so it may be read from any
// number of goroutines without synchronization
type Pixels struct {
	// colors holds image grids sampled in FullBlock mode. The zero Color
	// marks a transparent cell
	colors [][]Color
	// segs holds pre-built segment grids (ASCII sketches and HalfBlock
	// images). Exactly one of colors and segs is set for a non-empty grid
	segs [][]Segment
	// cellWidth is the number of terminal columns each cell spans,
	// constant across the grid
	cellWidth int
	width     int
	height    int
}

// CellSize returns the size of the grid in cells: the number of columns per
// row and the number of rows
func (p *Pixels) CellSize() (cols int, rows int) {
	return p.width, p.height
}

// RenderedSize returns the screen area the grid paints, in terminal columns
// and rows. A FullBlock cell spans two columns, so the column count can
// differ from [Pixels.CellSize]
func (p *Pixels) RenderedSize() (cols int, rows int) {
	return p.width * p.cellWidth, p.height
}

// Line returns the ordered segments for one row, or nil if row is out of
// range. Rows are synthesized from the immutable grid on every call, so
// repeated renders of the same row yield equal segments
func (p *Pixels) Line(row int) []Segment {
	if row < 0 || row >= p.height {
		return nil
	}
	if p.segs != nil {
		line := make([]Segment, len(p.segs[row]))
		copy(line, p.segs[row])
		return line
	}
	line := make([]Segment, 0, len(p.colors[row]))
	for _, color := range p.colors[row] {
		seg := Segment{Grapheme: gapGlyph}
		if color != 0 {
			seg.Style.Background = color
		}
		line = append(line, seg)
	}
	return line
}

// Lines returns every row of the grid in order
func (p *Pixels) Lines() [][]Segment {
	lines := make([][]Segment, 0, p.height)
	for row := 0; row < p.height; row += 1 {
		lines = append(lines, p.Line(row))
	}
	return lines
}

// newColorPixels wraps a grid of color cells, enforcing the rectangular
// shape invariant
func newColorPixels(colors [][]Color, cellWidth int) (*Pixels, error) {
	width := 0
	if len(colors) > 0 {
		width = len(colors[0])
	}
	for row, cells := range colors {
		if len(cells) != width {
			return nil, &ShapeError{Row: row, Len: len(cells), Want: width}
		}
	}
	return &Pixels{
		colors:    colors,
		cellWidth: cellWidth,
		width:     width,
		height:    len(colors),
	}, nil
}

// newSegmentPixels wraps a grid of pre-built segments, enforcing the
// rectangular shape invariant
func newSegmentPixels(segs [][]Segment, cellWidth int) (*Pixels, error) {
	width := 0
	if len(segs) > 0 {
		width = len(segs[0])
	}
	for row, cells := range segs {
		if len(cells) != width {
			return nil, &ShapeError{Row: row, Len: len(cells), Want: width}
		}
	}
	return &Pixels{
		segs:      segs,
		cellWidth: cellWidth,
		width:     width,
		height:    len(segs),
	}, nil
}
