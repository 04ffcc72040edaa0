// pxcat renders an image as colored cells in the terminal. It demonstrates
// consuming the pixels grid boundary: the library hands back sized rows of
// styled segments and pxcat paints them with termenv
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"git.sr.ht/~rockorager/pixels"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-sixel"
	"github.com/muesli/termenv"
	"golang.org/x/exp/slog"
	"golang.org/x/term"
)

func main() {
	var (
		cols     int
		rows     int
		half     bool
		useSixel bool
		verbose  bool
	)
	flag.IntVar(&cols, "w", 0, "target width in cells (0 = fit the terminal)")
	flag.IntVar(&rows, "h", 0, "target height in cells (0 = fit the terminal)")
	flag.BoolVar(&half, "half", false, "sample with half block cells for double vertical resolution")
	flag.BoolVar(&useSixel, "sixel", false, "emit sixel data instead of cells")
	flag.BoolVar(&verbose, "v", false, "log debug detail to stderr")
	flag.Parse()

	if verbose {
		pixels.Logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}))
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pxcat [flags] <image>")
		os.Exit(1)
	}

	img, err := decode(flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	if useSixel {
		if err := sixel.NewEncoder(os.Stdout).Encode(img); err != nil {
			fatal(err)
		}
		return
	}

	output := termenv.NewOutput(os.Stdout)
	opts := pixels.Options{
		Resize:      fit(img, cols, rows, half),
		ColorSystem: colorSystem(output.Profile),
	}
	if half {
		opts.Mode = pixels.HalfBlock
	}

	px, err := pixels.FromImage(img, opts)
	if err != nil {
		fatal(err)
	}

	_, gridRows := px.CellSize()
	for row := 0; row < gridRows; row += 1 {
		for _, seg := range px.Line(row) {
			output.WriteString(styled(output, seg))
		}
		output.WriteString("\n")
	}
}

// decode opens and decodes the image, closing the file before returning.
// Format support comes from the decoders the pixels package registers
func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func colorSystem(profile termenv.Profile) pixels.ColorSystem {
	if profile == termenv.TrueColor {
		return pixels.TrueColor
	}
	return pixels.ANSI256
}

// fit picks a resize target. Explicit flags win; a missing dimension is
// derived from the image's aspect ratio; with no flags the image is scaled
// down, aspect preserved, to fit the terminal. A nil return keeps the native
// pixel dimensions
func fit(img image.Image, cols int, rows int, half bool) *pixels.Size {
	rowsPerCell := 1
	colsPerCell := 2
	if half {
		rowsPerCell = 2
		colsPerCell = 1
	}
	nativeCols := img.Bounds().Dx()
	nativeRows := (img.Bounds().Dy() + rowsPerCell - 1) / rowsPerCell

	switch {
	case cols > 0 && rows > 0:
		return &pixels.Size{Cols: cols, Rows: rows}
	case cols > 0:
		return &pixels.Size{Cols: cols, Rows: atLeast1(nativeRows * cols / nativeCols)}
	case rows > 0:
		return &pixels.Size{Cols: atLeast1(nativeCols * rows / nativeRows), Rows: rows}
	}

	termCols, termRows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		// not a terminal, keep the native dimensions
		return nil
	}
	maxCols := termCols / colsPerCell
	maxRows := termRows - 1
	if nativeCols <= maxCols && nativeRows <= maxRows {
		return nil
	}
	sx := float64(maxCols) / float64(nativeCols)
	sy := float64(maxRows) / float64(nativeRows)
	scale := sx
	if sy < sx {
		scale = sy
	}
	return &pixels.Size{
		Cols: atLeast1(int(scale * float64(nativeCols))),
		Rows: atLeast1(int(scale * float64(nativeRows))),
	}
}

// styled paints one segment, converting its colors to the output's profile
func styled(out *termenv.Output, seg pixels.Segment) string {
	s := out.String(seg.Grapheme)
	if c, ok := convert(out.Profile, seg.Style.Foreground); ok {
		s = s.Foreground(c)
	}
	if c, ok := convert(out.Profile, seg.Style.Background); ok {
		s = s.Background(c)
	}
	attr := seg.Style.Attribute
	if attr&pixels.AttrBold != 0 {
		s = s.Bold()
	}
	if attr&pixels.AttrDim != 0 {
		s = s.Faint()
	}
	if attr&pixels.AttrItalic != 0 {
		s = s.Italic()
	}
	if attr&pixels.AttrBlink != 0 {
		s = s.Blink()
	}
	if attr&pixels.AttrReverse != 0 {
		s = s.Reverse()
	}
	if attr&pixels.AttrStrikethrough != 0 {
		s = s.CrossOut()
	}
	if seg.Style.UnderlineStyle != pixels.UnderlineOff {
		s = s.Underline()
	}
	return s.String()
}

func convert(profile termenv.Profile, c pixels.Color) (termenv.Color, bool) {
	if r, g, b, ok := c.RGB(); ok {
		return profile.Convert(termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", r, g, b))), true
	}
	if index, ok := c.Index(); ok {
		return profile.Convert(termenv.ANSI256Color(index)), true
	}
	return nil, false
}

func atLeast1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
