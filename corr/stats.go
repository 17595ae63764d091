// SPDX-License-Identifier: MIT
// Package: corr
//
// Purpose:
//   - Derive per-column mean and population variance of a sparse column,
//     accounting for the implicit zeros analytically.
//
// Determinism & Performance:
//   - Two passes over the stored entries, plain float64 accumulation
//     (no compensated summation), stored order.

package corr

import (
	"fmt"

	"github.com/katalvlaran/sparsecorr/csc"
)

// Operation name constants for unified error wrapping.
const (
	opDescribe   = "Describe"
	opPearson    = "Pearson"
	opCovariance = "Covariance"
)

// corrErrorf wraps err with the operation tag.
func corrErrorf(tag string, err error) error {
	return fmt.Errorf("corr: %s: %w", tag, err)
}

// Stats holds the population statistics of one column.
type Stats struct {
	Mean     float64 // Σ stored / R
	Variance float64 // population variance, zeros included
	Stored   int     // number of stored entries
}

// Describe returns mean, population variance and stored count of column c.
//
// Errors:
//   - csc.ErrNilMatrix, csc.ErrOutOfRange (wrapped).
//
// Complexity:
//   - Time O(stored(c)), Space O(1).
func Describe(m *csc.Matrix, c int) (Stats, error) {
	if m == nil {
		return Stats{}, corrErrorf(opDescribe, csc.ErrNilMatrix)
	}
	_, values, err := m.Column(c)
	if err != nil {
		return Stats{}, corrErrorf(opDescribe, err)
	}

	return describe(values, m.Rows()), nil
}

// describe is the kernel behind Describe and Pearson.
// Implementation:
//   - Stage 1: mean = Σ v / R; unstored rows add nothing to the sum.
//   - Stage 2: ss = Σ (v-mean)² over stored values.
//   - Stage 3: each of the R-n implicit zeros adds (0-mean)² = mean²;
//     variance = (ss + (R-n)·mean²) / R.
func describe(values []float64, rows int) Stats {
	var mean, ss, d float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(rows)

	for _, v := range values {
		d = v - mean
		ss += d * d
	}
	ss += mean * mean * float64(rows-len(values))

	return Stats{
		Mean:     mean,
		Variance: ss / float64(rows),
		Stored:   len(values),
	}
}
