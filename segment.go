package pixels

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Segment is the minimal paintable unit handed to a rendering layer: a glyph
// paired with the style to paint it in. Segments are produced by the
// construction paths and consumed through [Pixels.Line]
type Segment struct {
	// Grapheme is the literal glyph to paint, typically a blank block such
	// as "  "
	Grapheme string
	// Style is the style to paint the glyph with
	Style Style
}

// Width returns the number of terminal columns the segment's glyph occupies
func (s Segment) Width() int {
	return stringWidth(s.Grapheme)
}

// stringWidth measures the rendered width of a string. Terminals disagree on
// grapheme widths; wcwidth behavior is the common denominator, so variation
// selectors are skipped and the remaining runes measured individually.
// Strings joined with a ZWJ are measured as single graphemes
func stringWidth(s string) int {
	if strings.ContainsRune(s, '‍') {
		return uniseg.StringWidth(s)
	}
	total := 0
	for _, r := range s {
		if r >= 0xFE00 && r <= 0xFE0F {
			// Variation Selectors 1 - 16
			continue
		}
		if r >= 0xE0100 && r <= 0xE01EF {
			// Variation Selectors 17-256
			continue
		}
		total += runewidth.RuneWidth(r)
	}
	return total
}
