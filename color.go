package pixels

// Color is a terminal color. The zero value represents an unset color, which
// doubles as the transparent cell marker: a grid cell holding the zero Color
// paints nothing. A true black RGBColor(0, 0, 0) carries the rgb tag bit and
// is distinct from the zero value
type Color uint32

const (
	indexed Color = 1 << 24
	rgb     Color = 1 << 25
)

// Params returns the SGR parameters for the color, or an empty slice if the
// color is unset
func (c Color) Params() []uint8 {
	switch {
	case c&indexed != 0:
		return []uint8{uint8(c)}
	case c&rgb != 0:
		r := uint8(c >> 16)
		g := uint8(c >> 8)
		b := uint8(c)
		return []uint8{r, g, b}
	}
	return []uint8{}
}

// RGB returns the 8-bit channel values of an RGB color. ok is false if the
// color is indexed or unset
func (c Color) RGB() (r uint8, g uint8, b uint8, ok bool) {
	if c&rgb == 0 {
		return 0, 0, 0, false
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c), true
}

// Index returns the palette index of an indexed color. ok is false if the
// color is RGB or unset
func (c Color) Index() (uint8, bool) {
	if c&indexed == 0 {
		return 0, false
	}
	return uint8(c), true
}

func RGBColor(r uint8, g uint8, b uint8) Color {
	color := Color(int(r)<<16 | int(g)<<8 | int(b))
	return color | rgb
}

func IndexColor(index uint8) Color {
	color := Color(index)
	return color | indexed
}

// HexColor creates an RGB Color from a hex value, EG 0x50B332
func HexColor(v uint32) Color {
	return Color(v&0x00FFFFFF) | rgb
}
