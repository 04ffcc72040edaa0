package pixels

import (
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Alpha below which a sampled pixel is treated as transparent. Anything
// short of full opacity renders as a gap rather than standing in for a color
// the terminal can't blend
const opaqueAlpha = 0xFF

// Mode selects the cell geometry used to sample an image
type Mode int

const (
	// FullBlock maps one image pixel to one blank two-column cell painted
	// with the pixel's color
	FullBlock Mode = iota
	// HalfBlock maps a vertical pair of pixels to one single-column cell
	// using upper and lower half block glyphs, doubling the vertical
	// resolution
	HalfBlock
)

// Size is a target grid size in cells
type Size struct {
	Cols int
	Rows int
}

// Options control how an image is sampled into a grid
type Options struct {
	// Resize scales the image to exactly Cols x Rows cells before
	// sampling. When nil, the image's native pixel dimensions become the
	// grid dimensions; callers should pre-size large images to avoid
	// unusably huge grids
	Resize *Size
	// Mode selects full or half block cell geometry. Defaults to FullBlock
	Mode Mode
	// ColorSystem selects the palette samples are quantized to. Defaults
	// to TrueColor
	ColorSystem ColorSystem
}

// FromImage samples a decoded image into a Pixels grid
func FromImage(img image.Image, opts Options) (*Pixels, error) {
	if opts.Resize != nil && (opts.Resize.Cols <= 0 || opts.Resize.Rows <= 0) {
		return nil, &InvalidDimensionsError{Cols: opts.Resize.Cols, Rows: opts.Resize.Rows}
	}
	switch opts.Mode {
	case HalfBlock:
		return sampleHalfBlock(img, opts)
	default:
		return sampleFullBlock(img, opts)
	}
}

// FromImagePath opens and decodes the image at path, then samples it per
// [FromImage]. The file is closed before returning, on success and failure
// alike. PNG, JPEG, GIF, BMP, TIFF, and WebP sources are decodable out of
// the box
func FromImagePath(path string, opts Options) (*Pixels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	Logger.Debug("decoded image", "path", path, "format", format)
	return FromImage(img, opts)
}

func sampleFullBlock(img image.Image, opts Options) (*Pixels, error) {
	src := normalize(img, opts.Resize, 1)
	cols := src.Bounds().Dx()
	rows := src.Bounds().Dy()
	colors := make([][]Color, 0, rows)
	for y := 0; y < rows; y += 1 {
		row := make([]Color, 0, cols)
		for x := 0; x < cols; x += 1 {
			row = append(row, sampleColor(src, x, y, opts.ColorSystem))
		}
		colors = append(colors, row)
	}
	return newColorPixels(colors, stringWidth(gapGlyph))
}

func sampleHalfBlock(img image.Image, opts Options) (*Pixels, error) {
	src := normalize(img, opts.Resize, 2)
	cols := src.Bounds().Dx()
	h := src.Bounds().Dy()
	// each cell is 2 pixels tall; an odd source height gains one
	// transparent ghost row
	rows := (h + 1) / 2
	segs := make([][]Segment, 0, rows)
	for y := 0; y < rows; y += 1 {
		row := make([]Segment, 0, cols)
		for x := 0; x < cols; x += 1 {
			top := sampleColor(src, x, y*2, opts.ColorSystem)
			var bottom Color
			if y*2+1 < h {
				bottom = sampleColor(src, x, y*2+1, opts.ColorSystem)
			}
			row = append(row, halfBlockSegment(top, bottom))
		}
		segs = append(segs, row)
	}
	return newSegmentPixels(segs, 1)
}

// halfBlockSegment pairs two vertically adjacent samples into one cell
func halfBlockSegment(top Color, bottom Color) Segment {
	switch {
	case top == 0 && bottom == 0:
		return Segment{Grapheme: " "}
	case top == 0:
		// top is transparent, paint only the lower half
		return Segment{
			Grapheme: "▄",
			Style:    Style{Foreground: bottom},
		}
	case bottom == 0:
		return Segment{
			Grapheme: "▀",
			Style:    Style{Foreground: top},
		}
	default:
		return Segment{
			Grapheme: "▀",
			Style:    Style{Foreground: top, Background: bottom},
		}
	}
}

// normalize converts the source to NRGBA, scaling it to the resize target
// when one is given. rowsPerCell is the number of pixel rows one cell
// covers: 1 for full block sampling, 2 for half block
func normalize(img image.Image, resize *Size, rowsPerCell int) *image.NRGBA {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if resize != nil {
		w = resize.Cols
		h = resize.Rows * rowsPerCell
		Logger.Debug("resizing image",
			"from", bounds.Dx(), "fromRows", bounds.Dy(),
			"to", w, "toRows", h)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Rect, img, bounds, draw.Src, nil)
	return dst
}

func sampleColor(src *image.NRGBA, x int, y int, system ColorSystem) Color {
	c := src.NRGBAAt(x, y)
	if c.A < opaqueAlpha {
		return 0
	}
	return system.convert(c.R, c.G, c.B)
}
