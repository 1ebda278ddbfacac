package bytegram

import (
	"bufio"
	"errors"
	"io"
)

// BytePair is an ordered pair of adjacent bytes: Second immediately
// follows First in the source.
type BytePair struct {
	First  byte
	Second byte
}

// PairReader extracts overlapping byte pairs from a reader. For the
// source [a b c] it yields (a,b) then (b,c). Only the previous byte is
// held between calls to Next, so arbitrarily large sources can be
// streamed.
//
// Usage follows bufio.Scanner:
//
//	pr := NewPairReader(f)
//	for pr.Next() {
//		p := pr.Pair()
//		...
//	}
//	if err := pr.Err(); err != nil {
//		...
//	}
//
// A PairReader is single use. Build a new one over a fresh reader to
// derive the same sequence again.
type PairReader struct {
	r      io.ByteReader
	pair   BytePair
	primed bool
	done   bool
	err    error
	nread  int64
}

// NewPairReader returns a PairReader over r. If r is not already an
// io.ByteReader it is wrapped in a bufio.Reader.
func NewPairReader(r io.Reader) *PairReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &PairReader{r: br}
}

// Next advances to the next pair, returning false when the source is
// exhausted or a read error occurs.
func (pr *PairReader) Next() bool {
	if pr.done {
		return false
	}
	if !pr.primed {
		first, ok := pr.readByte()
		if !ok {
			return false
		}
		pr.pair.Second = first
		pr.primed = true
	}
	next, ok := pr.readByte()
	if !ok {
		return false
	}
	pr.pair.First, pr.pair.Second = pr.pair.Second, next
	return true
}

func (pr *PairReader) readByte() (byte, bool) {
	b, err := pr.r.ReadByte()
	if err != nil {
		pr.done = true
		if !errors.Is(err, io.EOF) {
			pr.err = err
		}
		return 0, false
	}
	pr.nread++
	return b, true
}

// Pair returns the pair produced by the most recent call to Next.
func (pr *PairReader) Pair() BytePair {
	return pr.pair
}

// Err returns the first non-EOF error encountered while reading.
func (pr *PairReader) Err() error {
	return pr.err
}

// BytesRead returns how many source bytes have been consumed so far.
func (pr *PairReader) BytesRead() int64 {
	return pr.nread
}

// Pairs returns every overlapping pair in b. Sources shorter than two
// bytes yield no pairs.
func Pairs(b []byte) []BytePair {
	if len(b) < 2 {
		return nil
	}
	pairs := make([]BytePair, 0, len(b)-1)
	for i := 1; i < len(b); i++ {
		pairs = append(pairs, BytePair{First: b[i-1], Second: b[i]})
	}
	return pairs
}
