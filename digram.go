// Package bytegram renders the byte-pair statistics of arbitrary files as
// 256x256 intensity images.
//
// Every pair of adjacent bytes (first, second) in a file is treated as a
// coordinate and counted into a Histogram. The counts are log2 compressed
// and scaled by their maximum into a Matrix of values in [0, 1]. Text,
// machine code, compressed data and media each leave a recognisable
// texture in that image.
//
// Computation is a single sequential pass followed by normalization.
// Each call owns its own Histogram and Matrix, so separate sources can be
// processed concurrently without coordination.
package bytegram

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Digram is the result of analysing one source.
type Digram struct {
	// Source names where the bytes came from, usually a file path.
	Source string
	// Size is the number of bytes read.
	Size      int64
	Histogram *Histogram
	Matrix    *Matrix
}

// FromReader counts every byte pair in r and normalizes the result. On a
// read error nothing is returned but the error.
func FromReader(r io.Reader) (*Digram, error) {
	h := NewHistogram()
	n, err := h.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return &Digram{
		Size:      n,
		Histogram: h,
		Matrix:    Normalize(h),
	}, nil
}

// FromBytes analyses an in-memory buffer.
func FromBytes(b []byte) *Digram {
	// bytes.Reader never fails.
	d, _ := FromReader(bytes.NewReader(b))
	d.Source = "<memory>"
	return d
}

// FromFile analyses the file at path.
func FromFile(path string) (*Digram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	defer f.Close()

	d, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Source = path
	return d, nil
}

// OutputPath derives the image path for input: the input's base name with
// its extension replaced by ext, placed in dir. An empty dir means the
// current directory.
func OutputPath(input, dir, ext string) string {
	base := filepath.Base(input)
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
		base = stem
	}
	if base == "." || base == string(filepath.Separator) {
		base = "bytegram"
	}
	ext = strings.TrimPrefix(ext, ".")
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, base+"."+ext)
}
