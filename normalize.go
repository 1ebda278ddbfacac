package bytegram

import "math"

// Normalize turns a filled histogram into an intensity matrix.
//
// Every count is log2 compressed and divided by the largest compressed
// value, so the most frequent pair maps to 1.0 regardless of file size.
// Degenerate inputs follow a fixed policy instead of producing NaN or
// infinities:
//
//   - no pairs at all gives an all-zero matrix;
//   - a zero count is floored to 0.0 rather than log2(0) = -Inf;
//   - when every observed pair occurs exactly once the largest compressed
//     value is log2(1) = 0, and each observed pair gets 1.0. Rendering the
//     resulting 0/0 as black would leave such inputs blank, so they are
//     deliberately shown at full intensity instead;
//   - results are clamped into [0, 1].
//
// A pair seen once in a histogram whose maximum is larger still lands on
// 0.0, the same as an unseen pair, because log2(1) = 0.
func Normalize(h *Histogram) *Matrix {
	m := &Matrix{}
	if h.Pairs() == 0 {
		return m
	}

	// log2 is monotonic, so the largest compressed value is log2 of the
	// largest count.
	maxLog := math.Log2(float64(h.Max()))

	for i, c := range h.counts {
		if c == 0 {
			continue
		}
		if maxLog == 0 {
			m.cells[i] = 1
			continue
		}
		m.cells[i] = clamp01(math.Log2(float64(c)) / maxLog)
	}
	return m
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
