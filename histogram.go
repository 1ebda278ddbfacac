package bytegram

import (
	"io"
	"math"
)

const (
	// Symbols is the size of the byte alphabet.
	Symbols = 256
	// Cells is the number of entries in a digram histogram or matrix.
	Cells = Symbols * Symbols
)

// Index returns the flat offset of (row, col). Rows come from the first
// byte of a pair and columns from the second; the layout is column-major
// (row + col*256), which is also the pixel order of a 256x256 image with
// x = first byte and y = second byte.
func Index(row, col byte) int {
	return int(row) + int(col)*Symbols
}

// Histogram counts how often each ordered byte pair occurs in a source.
// The zero value is an empty histogram ready for use.
type Histogram struct {
	counts [Cells]uint64
	pairs  uint64
}

// NewHistogram returns an empty histogram.
func NewHistogram() *Histogram {
	return &Histogram{}
}

// Add counts one occurrence of p.
func (h *Histogram) Add(p BytePair) {
	h.counts[Index(p.First, p.Second)]++
	h.pairs++
}

// At returns the count for the pair (row, col).
func (h *Histogram) At(row, col byte) uint64 {
	return h.counts[Index(row, col)]
}

// Pairs returns the number of pairs added.
func (h *Histogram) Pairs() uint64 {
	return h.pairs
}

// Sum adds up every cell. It always equals Pairs.
func (h *Histogram) Sum() uint64 {
	var sum uint64
	for _, c := range h.counts {
		sum += c
	}
	return sum
}

// Max returns the largest cell count.
func (h *Histogram) Max() uint64 {
	var max uint64
	for _, c := range h.counts {
		if c > max {
			max = c
		}
	}
	return max
}

// Distinct returns how many different pairs were seen.
func (h *Histogram) Distinct() int {
	n := 0
	for _, c := range h.counts {
		if c > 0 {
			n++
		}
	}
	return n
}

// Counts returns a copy of the flat count buffer, indexed by Index.
func (h *Histogram) Counts() []uint64 {
	out := make([]uint64, Cells)
	copy(out, h.counts[:])
	return out
}

// Accumulate drains pr into the histogram. If the underlying read fails
// the error is returned and the histogram must be discarded, since it
// only reflects part of the source.
func (h *Histogram) Accumulate(pr *PairReader) error {
	for pr.Next() {
		h.Add(pr.Pair())
	}
	return pr.Err()
}

// ReadFrom counts every pair in r, implementing io.ReaderFrom. It returns
// the number of source bytes consumed.
func (h *Histogram) ReadFrom(r io.Reader) (int64, error) {
	pr := NewPairReader(r)
	err := h.Accumulate(pr)
	return pr.BytesRead(), err
}

// Entropy returns the Shannon entropy, in bits, of the pair distribution.
// It ranges from 0 (empty input or a single repeated pair) to 16 (every
// pair equally likely).
func (h *Histogram) Entropy() float64 {
	if h.pairs == 0 {
		return 0
	}
	total := float64(h.pairs)
	var entropy float64
	for _, c := range h.counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}
