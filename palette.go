package pixels

import "github.com/lucasb-eyer/go-colorful"

// ColorSystem is the palette capability of the rendering layer that will
// consume the grid. Construction quantizes samples to it so the host never
// sees a color it can't represent
type ColorSystem int

const (
	// TrueColor keeps 24-bit RGB samples as-is
	TrueColor ColorSystem = iota
	// ANSI256 quantizes samples to the nearest xterm 256-color palette
	// index
	ANSI256
)

func (cs ColorSystem) convert(r uint8, g uint8, b uint8) Color {
	if cs == ANSI256 {
		return IndexColor(nearestANSI256(r, g, b))
	}
	return RGBColor(r, g, b)
}

// cubeLevels are the channel values of the xterm 6x6x6 color cube
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// nearestANSI256 returns the xterm palette index closest to an RGB sample.
// Only the color cube (16-231) and the gray ramp (232-255) are considered:
// the low 16 colors are user-configurable in most terminals and can't be
// trusted to hold any particular value
func nearestANSI256(r uint8, g uint8, b uint8) uint8 {
	target := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}

	ri := cubeIndex(r)
	gi := cubeIndex(g)
	bi := cubeIndex(b)
	best := uint8(16 + 36*ri + 6*gi + bi)
	bestDist := target.DistanceLuv(cubeColor(ri, gi, bi))

	for i := 0; i < 24; i += 1 {
		v := float64(8+10*i) / 255
		gray := colorful.Color{R: v, G: v, B: v}
		if d := target.DistanceLuv(gray); d < bestDist {
			bestDist = d
			best = uint8(232 + i)
		}
	}
	return best
}

// cubeIndex returns the cube level closest to one channel value
func cubeIndex(v uint8) int {
	best := 0
	bestDiff := 256
	for i, level := range cubeLevels {
		diff := int(v) - int(level)
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}
	return best
}

func cubeColor(ri int, gi int, bi int) colorful.Color {
	return colorful.Color{
		R: float64(cubeLevels[ri]) / 255,
		G: float64(cubeLevels[gi]) / 255,
		B: float64(cubeLevels[bi]) / 255,
	}
}
