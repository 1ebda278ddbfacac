package bytegram

import (
	"math"

	"github.com/wbrown/bytegram/imageutil"
)

// Matrix is a 256x256 grid of intensities in [0, 1], laid out like
// Histogram (see Index). A Matrix returned by Normalize is never mutated
// afterwards.
type Matrix struct {
	cells [Cells]float64
}

// At returns the intensity for the pair (row, col).
func (m *Matrix) At(row, col byte) float64 {
	return m.cells[Index(row, col)]
}

// Values returns a copy of the flat intensity buffer, indexed by Index.
func (m *Matrix) Values() []float64 {
	out := make([]float64, Cells)
	copy(out, m.cells[:])
	return out
}

// Intensity returns the 8-bit gray level for (row, col): round(v*255).
func (m *Matrix) Intensity(row, col byte) uint8 {
	return toGray(m.At(row, col))
}

// Equal reports whether both matrices hold bit-identical values.
func (m *Matrix) Equal(other *Matrix) bool {
	for i := range m.cells {
		if math.Float64bits(m.cells[i]) != math.Float64bits(other.cells[i]) {
			return false
		}
	}
	return true
}

// Gray renders the matrix as a 256x256 grayscale image with x = first
// byte and y = second byte.
func (m *Matrix) Gray() *imageutil.GrayImage {
	pix := make([]uint8, Cells)
	for i, v := range m.cells {
		pix[i] = toGray(v)
	}
	return imageutil.GrayImageFromPix(Symbols, Symbols, pix)
}

func toGray(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
