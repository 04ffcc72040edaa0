package pixels

import "fmt"

// DecodeError indicates an image source could not be opened or decoded
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// InvalidDimensionsError indicates a resize target with a non-positive
// coordinate
type InvalidDimensionsError struct {
	Cols int
	Rows int
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("invalid resize target %dx%d: dimensions must be positive", e.Cols, e.Rows)
}

// UnmappedCharacterError reports a non-whitespace character with no entry in
// the style mapping and no default segment to fall back to
type UnmappedCharacterError struct {
	Char rune
	Row  int
	Col  int
}

func (e *UnmappedCharacterError) Error() string {
	return fmt.Sprintf("unmapped character %q at row %d, column %d", e.Char, e.Row, e.Col)
}

// SegmentWidthError reports a mapped segment whose glyph width differs from
// the rest of the grid. Every cell must span the same number of terminal
// columns or the host's width computation falls apart
type SegmentWidthError struct {
	Char rune
	Want int
	Got  int
}

func (e *SegmentWidthError) Error() string {
	return fmt.Sprintf("segment for %q spans %d columns, grid cells span %d", e.Char, e.Got, e.Want)
}

// ShapeError reports rows of unequal length reaching a grid. Construction
// pads every row to a common width first, so a ShapeError indicates a bug in
// a construction path rather than bad input
type ShapeError struct {
	Row  int
	Len  int
	Want int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("row %d has %d cells, want %d", e.Row, e.Len, e.Want)
}
