// Package config decodes the sparsecorr input document.
//
// The document is YAML and carries raw sparse arrays plus their layout:
//
//	layout: csc
//	shape: [3, 4]
//	data: [1, 2, 2, 1, 1, 3]
//	indices: [0, 1, 0, 1, 2, 0]
//	indptr: [0, 2, 4, 5, 6]
//
// Decoding never converts between layouts; that is left to csc.FromExporter,
// which rejects anything but csc.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsecorr/csc"
)

var (
	// ErrLayout is returned for a missing or unknown layout name.
	ErrLayout = errors.New("config: unknown layout")

	// ErrShape is returned when shape is not exactly [rows, cols].
	ErrShape = errors.New("config: shape must be [rows, cols]")
)

// Document is the on-disk form of a sparse matrix.
type Document struct {
	Layout  string    `yaml:"layout"`
	Shape   []int     `yaml:"shape"`
	Data    []float64 `yaml:"data"`
	Indices []int32   `yaml:"indices"`
	Indptr  []int32   `yaml:"indptr"`
}

// Raw converts d into a csc.Raw exporter. Only the layout name and the shape
// arity are checked here; structural checks happen in csc.
func (d *Document) Raw() (*csc.Raw, error) {
	layout, err := csc.ParseLayout(d.Layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLayout, err)
	}
	if len(d.Shape) != 2 {
		return nil, fmt.Errorf("%w: got %v", ErrShape, d.Shape)
	}

	return &csc.Raw{
		Format:  layout,
		NumRows: d.Shape[0],
		NumCols: d.Shape[1],
		Data:    d.Data,
		Indices: d.Indices,
		Indptr:  d.Indptr,
	}, nil
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(b []byte) (*csc.Raw, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	return doc.Raw()
}

// Load reads and parses the document at path.
func Load(path string) (*csc.Raw, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(b)
}
