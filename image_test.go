package pixels_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.sr.ht/~rockorager/pixels"
)

var (
	red   = color.NRGBA{R: 0xFF, A: 0xFF}
	blue  = color.NRGBA{B: 0xFF, A: 0xFF}
	clear = color.NRGBA{}
)

// testImage builds an NRGBA image from rows of pixel values
func testImage(rows ...[]color.NRGBA) *image.NRGBA {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y, row := range rows {
		for x, c := range row {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	img := testImage([]color.NRGBA{red, clear})
	px, err := pixels.FromImage(img, pixels.Options{})
	assert.NoError(t, err)

	cols, rows := px.CellSize()
	assert.Equal(t, 2, cols)
	assert.Equal(t, 1, rows)

	// opaque red paints a background, transparent renders as a bare gap
	assert.Equal(t, []pixels.Segment{
		{Grapheme: "  ", Style: pixels.Style{Background: pixels.RGBColor(0xFF, 0, 0)}},
		{Grapheme: "  "},
	}, px.Line(0))

	renderedCols, renderedRows := px.RenderedSize()
	assert.Equal(t, 4, renderedCols)
	assert.Equal(t, 1, renderedRows)
}

func TestFromImageSemiTransparent(t *testing.T) {
	// anything short of full opacity is a gap, not a color
	img := testImage([]color.NRGBA{{R: 0xFF, A: 0x80}})
	px, err := pixels.FromImage(img, pixels.Options{})
	assert.NoError(t, err)
	assert.Equal(t, []pixels.Segment{{Grapheme: "  "}}, px.Line(0))
}

func TestFromImageResize(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 7))
	for y := 0; y < 7; y += 1 {
		for x := 0; x < 10; x += 1 {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 25), G: uint8(y * 36), A: 0xFF})
		}
	}

	tests := []struct {
		name string
		cols int
		rows int
	}{
		{"downscale", 3, 2},
		{"non divisible", 4, 3},
		{"upscale", 20, 14},
		{"single cell", 1, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			px, err := pixels.FromImage(img, pixels.Options{
				Resize: &pixels.Size{Cols: test.cols, Rows: test.rows},
			})
			assert.NoError(t, err)
			cols, rows := px.CellSize()
			assert.Equal(t, test.cols, cols)
			assert.Equal(t, test.rows, rows)
			for row := 0; row < rows; row += 1 {
				assert.Len(t, px.Line(row), test.cols)
			}
		})
	}
}

func TestFromImageInvalidDimensions(t *testing.T) {
	img := testImage([]color.NRGBA{red})
	for _, size := range []pixels.Size{{Cols: 0, Rows: 5}, {Cols: 5, Rows: 0}, {Cols: -1, Rows: -1}} {
		_, err := pixels.FromImage(img, pixels.Options{Resize: &size})
		var invalid *pixels.InvalidDimensionsError
		assert.ErrorAs(t, err, &invalid)
	}
}

func TestFromImageANSI256(t *testing.T) {
	img := testImage([]color.NRGBA{red})
	px, err := pixels.FromImage(img, pixels.Options{ColorSystem: pixels.ANSI256})
	assert.NoError(t, err)
	assert.Equal(t, pixels.IndexColor(196), px.Line(0)[0].Style.Background)
}

func TestFromImageHalfBlock(t *testing.T) {
	tests := []struct {
		name string
		img  *image.NRGBA
		want [][]pixels.Segment
	}{
		{
			name: "both opaque",
			img:  testImage([]color.NRGBA{red}, []color.NRGBA{blue}),
			want: [][]pixels.Segment{{{
				Grapheme: "▀",
				Style: pixels.Style{
					Foreground: pixels.RGBColor(0xFF, 0, 0),
					Background: pixels.RGBColor(0, 0, 0xFF),
				},
			}}},
		},
		{
			name: "top transparent",
			img:  testImage([]color.NRGBA{clear}, []color.NRGBA{blue}),
			want: [][]pixels.Segment{{{
				Grapheme: "▄",
				Style:    pixels.Style{Foreground: pixels.RGBColor(0, 0, 0xFF)},
			}}},
		},
		{
			name: "bottom transparent",
			img:  testImage([]color.NRGBA{red}, []color.NRGBA{clear}),
			want: [][]pixels.Segment{{{
				Grapheme: "▀",
				Style:    pixels.Style{Foreground: pixels.RGBColor(0xFF, 0, 0)},
			}}},
		},
		{
			name: "both transparent",
			img:  testImage([]color.NRGBA{clear}, []color.NRGBA{clear}),
			want: [][]pixels.Segment{{{Grapheme: " "}}},
		},
		{
			name: "odd height gains a ghost row",
			img: testImage(
				[]color.NRGBA{red},
				[]color.NRGBA{blue},
				[]color.NRGBA{red},
			),
			want: [][]pixels.Segment{
				{{
					Grapheme: "▀",
					Style: pixels.Style{
						Foreground: pixels.RGBColor(0xFF, 0, 0),
						Background: pixels.RGBColor(0, 0, 0xFF),
					},
				}},
				{{
					Grapheme: "▀",
					Style:    pixels.Style{Foreground: pixels.RGBColor(0xFF, 0, 0)},
				}},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			px, err := pixels.FromImage(test.img, pixels.Options{Mode: pixels.HalfBlock})
			assert.NoError(t, err)
			assert.Equal(t, test.want, px.Lines())
		})
	}
}

func TestFromImagePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "red.png")
	f, err := os.Create(path)
	assert.NoError(t, err)
	assert.NoError(t, png.Encode(f, testImage([]color.NRGBA{red, clear})))
	assert.NoError(t, f.Close())

	px, err := pixels.FromImagePath(path, pixels.Options{})
	assert.NoError(t, err)
	cols, rows := px.CellSize()
	assert.Equal(t, 2, cols)
	assert.Equal(t, 1, rows)
	assert.Equal(t, pixels.RGBColor(0xFF, 0, 0), px.Line(0)[0].Style.Background)
}

func TestFromImagePathErrors(t *testing.T) {
	var decodeErr *pixels.DecodeError

	_, err := pixels.FromImagePath("does-not-exist.png", pixels.Options{})
	assert.ErrorAs(t, err, &decodeErr)

	// a readable file that isn't an image fails the same way
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	assert.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))
	_, err = pixels.FromImagePath(path, pixels.Options{})
	assert.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, path, decodeErr.Path)
}

func BenchmarkFromImage(b *testing.B) {
	img := image.NewNRGBA(image.Rect(0, 0, 256, 256))
	for y := 0; y < 256; y += 1 {
		for x := 0; x < 256; x += 1 {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 0xFF})
		}
	}
	opts := pixels.Options{Resize: &pixels.Size{Cols: 80, Rows: 40}}

	b.Run("fullblock", func(b *testing.B) {
		for i := 0; i < b.N; i += 1 {
			if _, err := pixels.FromImage(img, opts); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("halfblock", func(b *testing.B) {
		half := opts
		half.Mode = pixels.HalfBlock
		for i := 0; i < b.N; i += 1 {
			if _, err := pixels.FromImage(img, half); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func ExampleFromImagePath() {
	px, err := pixels.FromImagePath("/home/rockorager/pic.png", pixels.Options{
		Resize: &pixels.Size{Cols: 40, Rows: 20},
	})
	if err != nil {
		panic(err)
	}
	// Hand the measurement and each line to the rendering layer
	cols, rows := px.CellSize()
	_ = cols
	for row := 0; row < rows; row += 1 {
		_ = px.Line(row)
	}
}
