package pixels

import (
	"strings"
	"unicode"
)

// FromASCII converts a multi-line character sketch into a Pixels grid. Every
// character maps to one cell: whitespace (including tabs, one cell each)
// always becomes a transparent gap, and every other character must have an
// entry in mapping or, failing that, a non-nil def segment to fall back to.
// Rows shorter than the longest row are padded with gaps on the right.
//
// All mapped segments must span the same number of terminal columns; gap
// cells are blanks of that width. A single trailing newline is ignored so
// that raw-string sketches ending in "\n" don't grow an empty bottom row
func FromASCII(grid string, mapping map[rune]Segment, def *Segment) (*Pixels, error) {
	if grid == "" {
		return &Pixels{cellWidth: 1}, nil
	}
	grid = strings.TrimSuffix(grid, "\r\n")
	grid = strings.TrimSuffix(grid, "\n")
	lines := strings.Split(grid, "\n")

	// cellWidth is learned from the first styled cell we place. 0 means
	// every cell seen so far has been whitespace
	cellWidth := 0
	width := 0
	segs := make([][]Segment, 0, len(lines))
	for r, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]Segment, 0, len(line))
		col := 0
		for _, char := range line {
			switch {
			case unicode.IsSpace(char):
				// placeholder, replaced with a gap of the
				// grid's cell width below
				row = append(row, Segment{})
			default:
				seg, ok := mapping[char]
				if !ok {
					if def == nil {
						return nil, &UnmappedCharacterError{Char: char, Row: r, Col: col}
					}
					seg = *def
				}
				w := seg.Width()
				if w < 1 {
					return nil, &SegmentWidthError{Char: char, Want: 1, Got: w}
				}
				if cellWidth == 0 {
					cellWidth = w
				}
				if w != cellWidth {
					return nil, &SegmentWidthError{Char: char, Want: cellWidth, Got: w}
				}
				row = append(row, seg)
			}
			col += 1
		}
		if len(row) > width {
			width = len(row)
		}
		segs = append(segs, row)
	}
	if cellWidth == 0 {
		cellWidth = 1
	}

	gap := Segment{Grapheme: strings.Repeat(" ", cellWidth)}
	for r := range segs {
		for c := range segs[r] {
			if segs[r][c].Grapheme == "" {
				segs[r][c] = gap
			}
		}
		for len(segs[r]) < width {
			segs[r] = append(segs[r], gap)
		}
	}
	return newSegmentPixels(segs, cellWidth)
}
