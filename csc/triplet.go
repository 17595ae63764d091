// SPDX-License-Identifier: MIT
// Package: csc
//
// Purpose:
//   - Collect unordered (row, col, value) entries and compress them into CSC or
//     CSR arrays. This is construction glue; the correlation kernels never see a
//     Triplet, only the Matrix it compresses into.
//
// Determinism:
//   - Compress sorts by (major, minor) index, so the output does not depend on
//     Append order. Duplicates are summed in Append order.

package csc

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	opNewTriplet = "NewTriplet"
	opAppend     = "Append"
	opCompress   = "Compress"
)

type triplet struct {
	i, j int32
	v    float64
}

// Triplet is a coordinate-format (COO) sparse matrix builder.
// It is not safe for concurrent Append calls.
type Triplet struct {
	r, c int
	data []triplet
}

// NewTriplet returns an empty rows×cols builder.
// Errors: ErrBadShape (same limits as New).
func NewTriplet(rows, cols int) (*Triplet, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, cscErrorf(opNewTriplet, err)
	}

	return &Triplet{r: rows, c: cols}, nil
}

// Dims implements Exporter.
func (t *Triplet) Dims() (rows, cols int) {
	return t.r, t.c
}

// Layout implements Exporter; a Triplet is always LayoutCOO.
func (t *Triplet) Layout() Layout { return LayoutCOO }

// Len returns the number of appended entries, duplicates and zeros included.
func (t *Triplet) Len() int { return len(t.data) }

// Append records value v at (i, j). Repeated coordinates are summed by Compress.
// Returns ErrOutOfRange for coordinates outside the shape.
func (t *Triplet) Append(i, j int, v float64) error {
	if i < 0 || t.r <= i {
		return cscErrorf(fmt.Sprintf("%s: row %d", opAppend, i), ErrOutOfRange)
	}
	if j < 0 || t.c <= j {
		return cscErrorf(fmt.Sprintf("%s: column %d", opAppend, j), ErrOutOfRange)
	}
	t.data = append(t.data, triplet{int32(i), int32(j), v})

	return nil
}

// Arrays implements Exporter in COO form: values, row of each value and
// column of each value, in Append order. The slices are fresh copies.
func (t *Triplet) Arrays() (data []float64, indices, indptr []int32) {
	data = make([]float64, len(t.data))
	indices = make([]int32, len(t.data))
	indptr = make([]int32, len(t.data))
	for k, e := range t.data {
		data[k], indices[k], indptr[k] = e.v, e.i, e.j
	}

	return data, indices, indptr
}

// Compress builds fresh compressed arrays in the requested layout.
// Implementation:
//   - Stage 1: Copy entries and stable-sort by (major, minor) index
//     (column-major for CSC, row-major for CSR).
//   - Stage 2: Sum runs of equal coordinates; drop sums that are exactly zero.
//   - Stage 3: Emit data/indices and count entries per major index into indptr.
//
// Errors:
//   - ErrBadLayout for LayoutCOO or unknown layouts.
//
// Complexity:
//   - Time O(nnz log nnz + major), Space O(nnz + major).
func (t *Triplet) Compress(layout Layout) (*Raw, error) {
	var major, minor func(e triplet) int32
	var nMajor int
	switch layout {
	case LayoutCSC:
		major = func(e triplet) int32 { return e.j }
		minor = func(e triplet) int32 { return e.i }
		nMajor = t.c
	case LayoutCSR:
		major = func(e triplet) int32 { return e.i }
		minor = func(e triplet) int32 { return e.j }
		nMajor = t.r
	default:
		return nil, cscErrorf(opCompress+" ("+layout.String()+")", ErrBadLayout)
	}

	// Stage 1: stable sort keeps Append order inside duplicate runs.
	entries := slices.Clone(t.data)
	slices.SortStableFunc(entries, func(a, b triplet) int {
		if c := cmp.Compare(major(a), major(b)); c != 0 {
			return c
		}
		return cmp.Compare(minor(a), minor(b))
	})

	// Stage 2+3: merge duplicates and build the pointer array.
	out := &Raw{
		Format:  layout,
		NumRows: t.r,
		NumCols: t.c,
		Data:    make([]float64, 0, len(entries)),
		Indices: make([]int32, 0, len(entries)),
		Indptr:  make([]int32, nMajor+1),
	}
	for k := 0; k < len(entries); {
		e := entries[k]
		sum := e.v
		for k++; k < len(entries) && major(entries[k]) == major(e) && minor(entries[k]) == minor(e); k++ {
			sum += entries[k].v
		}
		if sum == 0 {
			continue // implicit zero
		}
		out.Data = append(out.Data, sum)
		out.Indices = append(out.Indices, minor(e))
		out.Indptr[major(e)+1]++
	}
	for p := 1; p <= nMajor; p++ {
		out.Indptr[p] += out.Indptr[p-1]
	}

	return out, nil
}

// ToMatrix compresses t into CSC arrays and wraps them in a Matrix.
func (t *Triplet) ToMatrix() (*Matrix, error) {
	raw, err := t.Compress(LayoutCSC)
	if err != nil {
		return nil, err
	}

	return FromExporter(raw)
}

// FromDense builds a Matrix from row-major rows, storing only non-zero values.
// Every row must have the same length. Returns ErrBadShape for empty or
// ragged input.
func FromDense(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, cscErrorf("FromDense", ErrBadShape)
	}
	cols := len(rows[0])
	t, err := NewTriplet(len(rows), cols)
	if err != nil {
		return nil, cscErrorf("FromDense", err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, cscErrorf(fmt.Sprintf("FromDense: row %d", i), ErrBadShape)
		}
		for j, v := range row {
			if v != 0 {
				_ = t.Append(i, j, v) // in range by construction
			}
		}
	}

	return t.ToMatrix()
}
