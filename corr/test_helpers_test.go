// SPDX-License-Identifier: MIT
// Package corr_test contains test helpers
//
// Purpose:
//   • Provide the worked example matrix and seeded random sparse matrices.
//   • Keep every generated value finite so dense references stay comparable.

package corr_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsecorr/csc"
)

// tol is the agreement required between sparse and dense computations.
const tol = 1e-9

// exampleRows is the 3×4 matrix used throughout the docs.
var exampleRows = [][]float64{
	{1, 2, 0, 3},
	{2, 1, 0, 0},
	{0, 0, 1, 0},
}

// mustFromDense builds a CSC matrix from row-major rows or fails the test.
func mustFromDense(t testing.TB, rows [][]float64) *csc.Matrix {
	t.Helper()
	m, err := csc.FromDense(rows)
	require.NoError(t, err)

	return m
}

// randomRows returns an r×c row-major matrix where each entry is non-zero with
// probability density. Values are small integers or uniform floats so both
// exact ties and generic values appear.
func randomRows(rnd *rand.Rand, r, c int, density float64) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			if rnd.Float64() >= density {
				continue
			}
			if rnd.Intn(2) == 0 {
				out[i][j] = float64(rnd.Intn(7) - 3)
			} else {
				out[i][j] = rnd.NormFloat64() * 10
			}
		}
	}

	return out
}

// denseOf mirrors rows into a gonum Dense for reference statistics.
func denseOf(rows [][]float64) *mat.Dense {
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat)
}
