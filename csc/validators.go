// SPDX-License-Identifier: MIT
// Package: csc
//
// Purpose:
//  - Provide a single source of truth for the CSC structural invariants.
//  - Keep New and the adapter minimal by delegating every check here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateRowIndices is the only O(nnz) check; the rest are O(1) or O(cols).
//
// Note:
//  - ValidateArrays runs a fixed sequence: Shape → Lengths → Pointers → RowIndices.
//  - Each later validator assumes the earlier ones passed.

package csc

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows ∈ (0, 2^31-1] and cols ∈ [0, 2^31-1].
//
// rows==0 is rejected: every statistic divides by the row count.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows <= 0 || rows > maxDim {
		return validatorErrorf("ValidateShape: Rows", ErrBadShape)
	}
	if cols < 0 || cols > maxDim {
		return validatorErrorf("ValidateShape: Columns", ErrBadShape)
	}

	return nil
}

// ValidateLengths ensures len(data)==len(indices)<=2^31-1 and len(indptr)==cols+1.
// Assumes ValidateShape passed.
// Complexity: O(1).
func ValidateLengths(data []float64, indices, indptr []int32, cols int) error {
	if len(data) != len(indices) {
		return validatorErrorf("ValidateLengths: data/indices", ErrMalformed)
	}
	if len(data) > maxDim {
		return validatorErrorf("ValidateLengths: nnz", ErrMalformed)
	}
	if len(indptr) != cols+1 {
		return validatorErrorf("ValidateLengths: indptr", ErrMalformed)
	}

	return nil
}

// ValidatePointers ensures indptr[0]==0, indptr is non-decreasing and
// indptr[cols]==nnz. Assumes ValidateLengths passed.
// Complexity: O(cols).
func ValidatePointers(indptr []int32, nnz int) error {
	if indptr[0] != 0 {
		return validatorErrorf("ValidatePointers: first", ErrMalformed)
	}
	for c := 1; c < len(indptr); c++ {
		if indptr[c] < indptr[c-1] {
			return validatorErrorf(fmt.Sprintf("ValidatePointers: column %d", c-1), ErrMalformed)
		}
	}
	if int(indptr[len(indptr)-1]) != nnz {
		return validatorErrorf("ValidatePointers: last", ErrMalformed)
	}

	return nil
}

// ValidateRowIndices ensures that inside every column the row indices are
// strictly increasing and lie in [0, rows). Assumes ValidatePointers passed.
// Complexity: O(nnz).
func ValidateRowIndices(indices, indptr []int32, rows int) error {
	var (
		c, k       int
		start, end int
		prev, row  int32
	)
	for c = 0; c+1 < len(indptr); c++ {
		start, end = int(indptr[c]), int(indptr[c+1])
		prev = -1
		for k = start; k < end; k++ {
			row = indices[k]
			if row < 0 || int(row) >= rows {
				return validatorErrorf(fmt.Sprintf("ValidateRowIndices: column %d", c), ErrMalformed)
			}
			if row <= prev {
				return validatorErrorf(fmt.Sprintf("ValidateRowIndices: column %d unsorted", c), ErrMalformed)
			}
			prev = row
		}
	}

	return nil
}

// ValidateArrays runs the full CSC invariant sequence.
// Complexity: O(cols + nnz).
func ValidateArrays(data []float64, indices, indptr []int32, rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return err
	}
	if err := ValidateLengths(data, indices, indptr, cols); err != nil {
		return err
	}
	if err := ValidatePointers(indptr, len(data)); err != nil {
		return err
	}

	return ValidateRowIndices(indices, indptr, rows)
}

// ValidateColumn ensures 0 <= c < cols.
// Complexity: O(1).
func ValidateColumn(c, cols int) error {
	if c < 0 || c >= cols {
		return validatorErrorf(fmt.Sprintf("ValidateColumn %d", c), ErrOutOfRange)
	}

	return nil
}
