// SPDX-License-Identifier: MIT
// Package: corr
//
// Purpose:
//   - Pearson correlation and population covariance of two sparse columns via
//     a merge-walk over their sorted row indices.
//
// Exposed API:
//   - Pearson(m, col1, col2)    -> (r, err)   // Undefined (NaN) for constant columns
//   - Covariance(m, col1, col2) -> (cov, err) // population co-moment / R
//   - IsUndefined(r)            -> bool
//
// Determinism & Performance:
//   - Fixed increasing-row traversal; every row stored in either column is
//     visited exactly once; rows stored in neither are added in closed form.
//   - No allocation; all state is call-local.

package corr

import (
	"math"

	"github.com/katalvlaran/sparsecorr/csc"
)

// Undefined is returned by Pearson when either column has zero variance.
// Test with IsUndefined; NaN never compares equal to itself.
var Undefined = math.NaN()

// IsUndefined reports whether r is the Undefined sentinel.
func IsUndefined(r float64) bool { return math.IsNaN(r) }

// column is one side of the walk: stored rows, stored values and statistics.
type column struct {
	rows   []int32
	values []float64
	Stats
}

// load validates col and derives its statistics.
func load(m *csc.Matrix, col int) (column, error) {
	rows, values, err := m.Column(col)
	if err != nil {
		return column{}, err
	}

	return column{rows: rows, values: values, Stats: describe(values, m.Rows())}, nil
}

// Pearson returns the Pearson correlation coefficient between columns col1 and
// col2 of m, treating every unstored entry as zero.
// Implementation:
//   - Stage 1: Per-column mean and population variance (see Describe).
//   - Stage 2: If either variance is exactly zero return Undefined. This also
//     applies when col1 == col2.
//   - Stage 3: Merge-walk the stored entries (crossSum).
//   - Stage 4: sum / (R · sqrt(var1 · var2)).
//
// Behavior highlights:
//   - Symmetric in its column arguments.
//   - NaN/Inf stored values propagate; a negative variance from cancellation
//     is not clamped.
//
// Errors:
//   - csc.ErrNilMatrix, csc.ErrOutOfRange (wrapped with "corr: Pearson").
//
// Complexity:
//   - Time O(stored(col1) + stored(col2)), Space O(1).
//
// AI-Hints:
//   - For many pairs sharing a column, Describe once and reuse; Pearson
//     recomputes both columns' statistics on every call.
func Pearson(m *csc.Matrix, col1, col2 int) (float64, error) {
	if m == nil {
		return 0, corrErrorf(opPearson, csc.ErrNilMatrix)
	}
	a, err := load(m, col1)
	if err != nil {
		return 0, corrErrorf(opPearson, err)
	}
	b, err := load(m, col2)
	if err != nil {
		return 0, corrErrorf(opPearson, err)
	}

	// Stage 2 (Degenerate): the denominator would be zero.
	if a.Variance == 0 || b.Variance == 0 {
		return Undefined, nil
	}

	r := float64(m.Rows())
	sum := crossSum(a, b, m.Rows())

	return sum / (r * math.Sqrt(a.Variance*b.Variance)), nil
}

// Covariance returns the population covariance of columns col1 and col2:
// Σ (x_i - m1)(y_i - m2) / R over all R rows, zeros included.
// Constant columns simply yield 0.
//
// Errors and complexity as for Pearson.
func Covariance(m *csc.Matrix, col1, col2 int) (float64, error) {
	if m == nil {
		return 0, corrErrorf(opCovariance, csc.ErrNilMatrix)
	}
	a, err := load(m, col1)
	if err != nil {
		return 0, corrErrorf(opCovariance, err)
	}
	b, err := load(m, col2)
	if err != nil {
		return 0, corrErrorf(opCovariance, err)
	}

	return crossSum(a, b, m.Rows()) / float64(m.Rows()), nil
}

// crossSum accumulates Σ (x_i - a.Mean)(y_i - b.Mean) over all rows.
// Implementation:
//   - Stage 1: Two cursors advance in increasing row order. Equal rows take
//     the full product; a row stored on one side only pairs with an implicit
//     zero on the other.
//   - Stage 2: Once one cursor is exhausted the other side's remaining rows
//     are drained with the same one-sided rule.
//   - Stage 3: Rows stored in neither column contribute a.Mean·b.Mean each.
//
// Invariants:
//   - visited counts distinct rows seen by either cursor, so
//     rows-visited >= 0 always holds for valid CSC input.
func crossSum(a, b column, rows int) float64 {
	var (
		p1, p2  int
		visited int
		sum     float64
	)
	n1, n2 := len(a.rows), len(b.rows)

	// Stage 1 (Walk): both cursors live.
	for p1 < n1 && p2 < n2 {
		switch r1, r2 := a.rows[p1], b.rows[p2]; {
		case r1 == r2:
			sum += (a.values[p1] - a.Mean) * (b.values[p2] - b.Mean)
			p1++
			p2++
		case r1 < r2:
			sum -= (a.values[p1] - a.Mean) * b.Mean
			p1++
		default:
			sum -= a.Mean * (b.values[p2] - b.Mean)
			p2++
		}
		visited++
	}

	// Stage 2 (Drain): at most one of these loops runs.
	for ; p1 < n1; p1++ {
		sum -= (a.values[p1] - a.Mean) * b.Mean
		visited++
	}
	for ; p2 < n2; p2++ {
		sum -= a.Mean * (b.values[p2] - b.Mean)
		visited++
	}

	// Stage 3 (Closed form): rows where both columns are zero.
	sum += float64(rows-visited) * a.Mean * b.Mean

	return sum
}
