// Package report writes a YAML summary of a digram run next to its image.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/wbrown/bytegram"
)

// Report summarises one analysed source.
type Report struct {
	ID            string    `yaml:"id"`
	Source        string    `yaml:"source"`
	Bytes         int64     `yaml:"bytes"`
	Pairs         uint64    `yaml:"pairs"`
	DistinctPairs int       `yaml:"distinct_pairs"`
	MaxCount      uint64    `yaml:"max_count"`
	EntropyBits   float64   `yaml:"entropy_bits"`
	Output        string    `yaml:"output,omitempty"`
	GeneratedAt   time.Time `yaml:"generated_at"`
}

// New builds a report for d. output is the image path, if one was written.
func New(d *bytegram.Digram, output string) *Report {
	h := d.Histogram
	return &Report{
		ID:            uuid.NewString(),
		Source:        d.Source,
		Bytes:         d.Size,
		Pairs:         h.Pairs(),
		DistinctPairs: h.Distinct(),
		MaxCount:      h.Max(),
		EntropyBits:   h.Entropy(),
		Output:        output,
		GeneratedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

// PathFor returns the sidecar path for an image: the image path with its
// extension replaced by .yaml.
func PathFor(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + ".yaml"
}

// Write encodes r as YAML to path.
func (r *Report) Write(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Read decodes a report previously written by Write.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	if _, err := uuid.Parse(r.ID); err != nil {
		return nil, fmt.Errorf("report has invalid id %q: %w", r.ID, err)
	}
	return &r, nil
}
