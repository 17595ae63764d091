// SPDX-License-Identifier: MIT

// Package csc: domain types shared by the store, the adapter and the builder.
// Errors live in errors.go, invariant checks in validators.go.
package csc

import (
	"fmt"
	"math"
	"strings"
)

// maxDim bounds rows, cols and nnz: indices and pointers are int32.
const maxDim = math.MaxInt32

// Layout names the storage layout of a sparse value.
type Layout int

const (
	// LayoutCOO — unordered (row, col, value) triplets.
	LayoutCOO Layout = iota

	// LayoutCSR — row-compressed: indptr walks rows, indices hold columns.
	LayoutCSR

	// LayoutCSC — column-compressed: indptr walks columns, indices hold rows.
	LayoutCSC
)

// String returns the lower-case layout name ("coo", "csr", "csc").
func (l Layout) String() string {
	switch l {
	case LayoutCOO:
		return "coo"
	case LayoutCSR:
		return "csr"
	case LayoutCSC:
		return "csc"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// ParseLayout maps a case-insensitive name back to a Layout.
// Returns ErrBadLayout for anything else.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coo":
		return LayoutCOO, nil
	case "csr":
		return LayoutCSR, nil
	case "csc":
		return LayoutCSC, nil
	}

	return 0, fmt.Errorf("ParseLayout %q: %w", s, ErrBadLayout)
}

// Exporter is an externally defined sparse matrix value that can hand out its
// raw arrays. The meaning of indices/indptr depends on Layout:
//   - LayoutCSC: indptr has cols+1 entries, indices are row numbers.
//   - LayoutCSR: indptr has rows+1 entries, indices are column numbers.
//   - LayoutCOO: indices are row numbers and indptr holds the column number of
//     each entry (both len nnz).
//
// Only LayoutCSC is accepted by FromExporter.
type Exporter interface {
	// Layout reports the storage layout of the arrays returned by Arrays.
	Layout() Layout

	// Dims returns the matrix shape.
	Dims() (rows, cols int)

	// Arrays returns the raw storage. The slices are borrowed, not copied.
	Arrays() (data []float64, indices, indptr []int32)
}

// Raw is a plain Exporter: three arrays, a shape and a layout tag.
// It is what decoders (e.g. the YAML loader) produce.
type Raw struct {
	Format  Layout
	NumRows int
	NumCols int
	Data    []float64
	Indices []int32
	Indptr  []int32
}

// Layout implements Exporter.
func (r *Raw) Layout() Layout { return r.Format }

// Dims implements Exporter.
func (r *Raw) Dims() (rows, cols int) { return r.NumRows, r.NumCols }

// Arrays implements Exporter.
func (r *Raw) Arrays() (data []float64, indices, indptr []int32) {
	return r.Data, r.Indices, r.Indptr
}

// Matrix is an immutable R×C sparse matrix in column-compressed layout.
//
// The three slices are borrowed from the caller at construction time and are
// never written. A *Matrix is safe for concurrent readers as long as the
// caller does not mutate the underlying arrays.
//
// Complexity notes: every accessor is O(1) except ColumnDense (O(rows)).
type Matrix struct {
	data    []float64 // stored values, len = nnz
	indices []int32   // row index per stored value, len = nnz
	indptr  []int32   // column boundaries, len = cols+1
	rows    int
	cols    int
}
