package bytegram

import (
	"bufio"
	"fmt"
	"io"

	"github.com/wbrown/bytegram/imageutil"
)

const (
	// ESC starts an ANSI escape sequence.
	ESC = "\u001b"

	// upperHalf draws the top pixel in the foreground color and the bottom
	// pixel in the background color, giving two pixels per character.
	upperHalf = "▀"

	// DefaultPreviewWidth is used when no terminal width is known.
	DefaultPreviewWidth = 64
)

// AnsiRenderer prints a matrix to a terminal using 24-bit color half
// blocks. The 256x256 matrix is downsampled to Width columns and Width
// pixel rows (Width/2 text lines).
type AnsiRenderer struct {
	Out      io.Writer
	Width    int
	Colormap string
}

// NewAnsiRenderer creates an AnsiRenderer writing to out. A width outside
// 1..256 falls back to DefaultPreviewWidth; odd widths are rounded down.
func NewAnsiRenderer(out io.Writer, width int, colormap string) *AnsiRenderer {
	return &AnsiRenderer{Out: out, Width: width, Colormap: colormap}
}

// width returns the preview width rounded down to an even number, so the
// square preview fills whole text lines.
func (r *AnsiRenderer) width() int {
	width := r.Width
	if width < 1 || width > Symbols {
		width = DefaultPreviewWidth
	}
	width -= width % 2
	if width < 2 {
		width = 2
	}
	return width
}

// Render writes the preview for m. source is not printed.
func (r *AnsiRenderer) Render(source string, m *Matrix) error {
	width := r.width()

	gray := m.Gray()
	if width != Symbols {
		gray = imageutil.ResizeGrayToWidth(gray, width, imageutil.InterpolationArea)
	}
	height := gray.Height()
	img, err := colorizeRGBA(gray, r.Colormap)
	if err != nil {
		return fmt.Errorf("failed to colorize preview: %w", err)
	}

	w := bufio.NewWriter(r.Out)
	for y := 0; y < height; y += 2 {
		writeAnsiLine(w, img, y)
	}
	return w.Flush()
}

// writeAnsiLine emits one text line covering pixel rows y and y+1. Color
// codes are only written when they change, so runs of identical cells cost
// one character each.
func writeAnsiLine(w *bufio.Writer, img *imageutil.RGBAImage, y int) {
	var fg, bg imageutil.RGB
	for x := 0; x < img.Width(); x++ {
		top, bottom := img.GetRGB(x, y), img.GetRGB(x, y+1)
		if x == 0 || top != fg {
			fmt.Fprintf(w, "%s[38;2;%d;%d;%dm", ESC, top.R, top.G, top.B)
			fg = top
		}
		if x == 0 || bottom != bg {
			fmt.Fprintf(w, "%s[48;2;%d;%d;%dm", ESC, bottom.R, bottom.G, bottom.B)
			bg = bottom
		}
		w.WriteString(upperHalf)
	}
	fmt.Fprintf(w, "%s[0m\n", ESC)
}
