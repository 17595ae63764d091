// SPDX-License-Identifier: MIT
// Package: csc
//
// Purpose:
//   - Construct a Matrix over caller-owned CSC arrays after a single validation pass.
//   - Expose O(1) column addressing for kernels that walk stored entries only.
//
// Exposed API:
//   - New(data, indices, indptr, rows, cols) -> (*Matrix, error)
//   - ColumnSlice(c)  -> (start, end)       // half-open range into data/indices
//   - StoredCount(c)  -> end-start
//   - Column(c)       -> (rows, values)     // read-only sub-slices
//   - ColumnDense(c)  -> []float64          // materialised copy, for tests/debugging
//   - Rows(), Cols(), NNZ()

package csc

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opNew         = "New"
	opColumnSlice = "ColumnSlice"
	opStoredCount = "StoredCount"
	opColumn      = "Column"
	opColumnDense = "ColumnDense"
)

// cscErrorf wraps err with the operation tag.
func cscErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// New wraps already column-compressed arrays into a Matrix.
// Implementation:
//   - Stage 1: ValidateArrays (shape → lengths → pointers → row indices).
//   - Stage 2: Store the slices as-is; nothing is copied or converted.
//
// Inputs:
//   - data: stored values (len nnz).
//   - indices: row index per stored value (len nnz).
//   - indptr: column pointers (len cols+1).
//   - rows, cols: matrix shape.
//
// Errors:
//   - ErrBadShape, ErrMalformed (tagged with the failing validator).
//
// Complexity:
//   - Time O(cols + nnz), Space O(1).
//
// Notes:
//   - The caller keeps ownership. Mutating the arrays after New breaks the
//     immutability contract relied on by concurrent readers.
func New(data []float64, indices, indptr []int32, rows, cols int) (*Matrix, error) {
	if err := ValidateArrays(data, indices, indptr, rows, cols); err != nil {
		return nil, cscErrorf(opNew, err)
	}

	return &Matrix{
		data:    data,
		indices: indices,
		indptr:  indptr,
		rows:    rows,
		cols:    cols,
	}, nil
}

// Rows returns R.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns C.
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the total number of stored entries.
func (m *Matrix) NNZ() int { return len(m.data) }

// ColumnSlice returns the half-open range [start, end) of column c inside the
// data and indices arrays.
// Returns ErrOutOfRange unless 0 <= c < Cols().
// Complexity: O(1).
func (m *Matrix) ColumnSlice(c int) (start, end int, err error) {
	if m == nil {
		return 0, 0, cscErrorf(opColumnSlice, ErrNilMatrix)
	}
	if err = ValidateColumn(c, m.cols); err != nil {
		return 0, 0, cscErrorf(opColumnSlice, err)
	}

	return int(m.indptr[c]), int(m.indptr[c+1]), nil
}

// StoredCount returns the number of stored entries in column c.
// Complexity: O(1).
func (m *Matrix) StoredCount(c int) (int, error) {
	start, end, err := m.ColumnSlice(c)
	if err != nil {
		return 0, cscErrorf(opStoredCount, err)
	}

	return end - start, nil
}

// Column returns the row indices and values stored in column c.
// Both slices alias the matrix storage and must be treated as read-only.
// Complexity: O(1).
func (m *Matrix) Column(c int) (rows []int32, values []float64, err error) {
	start, end, err := m.ColumnSlice(c)
	if err != nil {
		return nil, nil, cscErrorf(opColumn, err)
	}

	return m.indices[start:end:end], m.data[start:end:end], nil
}

// ColumnDense materialises column c as a fresh []float64 of length Rows().
// Intended for tests and debugging; kernels should walk Column instead.
// Complexity: Time O(rows), Space O(rows).
func (m *Matrix) ColumnDense(c int) ([]float64, error) {
	rows, values, err := m.Column(c)
	if err != nil {
		return nil, cscErrorf(opColumnDense, err)
	}
	out := make([]float64, m.rows)
	for k, r := range rows {
		out[r] = values[k]
	}

	return out, nil
}
