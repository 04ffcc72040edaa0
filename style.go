package pixels

// Style contains all the data required to style a [Segment]
type Style struct {
	// Foreground is the color to apply to the foreground of the segment
	Foreground Color
	// Background is the color to apply to the background of the segment
	Background Color
	// UnderlineColor is the color to apply to the underline of the
	// segment, if supported
	UnderlineColor Color
	// UnderlineStyle is the type of underline to apply (single, double,
	// curly, etc). Hosts without support for a particular style are
	// expected to fall back to single underlines
	UnderlineStyle UnderlineStyle
	// Attribute represents all other style information for the segment
	// (bold, dim, italic, etc)
	Attribute AttributeMask
}

// AttributeMask represents a bitmask of boolean attributes to style a
// segment
type AttributeMask uint8

const (
	AttrNone               = 0
	AttrBold AttributeMask = 1 << iota
	AttrDim
	AttrItalic
	AttrBlink
	AttrReverse
	AttrInvisible
	AttrStrikethrough
)

// UnderlineStyle represents the style of underline to apply
type UnderlineStyle uint8

const (
	UnderlineOff UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)
