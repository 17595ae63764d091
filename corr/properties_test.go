// SPDX-License-Identifier: MIT

package corr_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sparsecorr/corr"
)

// colOf copies column j of a.
func colOf(a mat.Matrix, j int) []float64 {
	return mat.Col(nil, j, a)
}

// densePearson is the reference Pearson coefficient on explicit columns.
// The n vs n-1 divisor cancels, so gonum's sample form equals the population one.
func densePearson(x, y []float64) float64 {
	return stat.Correlation(x, y, nil)
}

// densePopCovariance rescales gonum's sample covariance to divisor n.
func densePopCovariance(x, y []float64) float64 {
	n := float64(len(x))
	if n < 2 {
		return 0
	}

	return stat.Covariance(x, y, nil) * (n - 1) / n
}

// TestPearson_MatchesDense compares every column pair of seeded random sparse
// matrices against gonum on the materialised columns.
func TestPearson_MatchesDense(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(1))
	shapes := []struct {
		r, c    int
		density float64
	}{
		{1, 3, 0.5},
		{2, 4, 0.5},
		{5, 5, 0.3},
		{20, 6, 0.1},
		{50, 8, 0.05},
		{30, 5, 0.9},
	}
	for _, sh := range shapes {
		rows := randomRows(rnd, sh.r, sh.c, sh.density)
		m := mustFromDense(t, rows)
		ref := denseOf(rows)

		for c1 := 0; c1 < sh.c; c1++ {
			x := colOf(ref, c1)
			_, vx := stat.PopMeanVariance(x, nil)
			for c2 := 0; c2 < sh.c; c2++ {
				y := colOf(ref, c2)
				_, vy := stat.PopMeanVariance(y, nil)

				got, err := corr.Pearson(m, c1, c2)
				require.NoError(t, err)

				if vx == 0 || vy == 0 {
					assert.True(t, corr.IsUndefined(got), "%dx%d pair %d,%d", sh.r, sh.c, c1, c2)
					continue
				}
				assert.InDelta(t, densePearson(x, y), got, tol, "%dx%d pair %d,%d", sh.r, sh.c, c1, c2)

				cov, err := corr.Covariance(m, c1, c2)
				require.NoError(t, err)
				assert.InDelta(t, densePopCovariance(x, y), cov, tol*math.Max(1, math.Abs(cov)))
			}
		}
	}
}

func TestPearson_SymmetryAndRange(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(7))
	rows := randomRows(rnd, 40, 10, 0.2)
	m := mustFromDense(t, rows)

	for c1 := 0; c1 < m.Cols(); c1++ {
		for c2 := c1; c2 < m.Cols(); c2++ {
			ab, err := corr.Pearson(m, c1, c2)
			require.NoError(t, err)
			ba, err := corr.Pearson(m, c2, c1)
			require.NoError(t, err)

			if corr.IsUndefined(ab) {
				assert.True(t, corr.IsUndefined(ba))
				continue
			}
			assert.InDelta(t, ab, ba, 1e-12, "pair %d,%d", c1, c2)
			assert.GreaterOrEqual(t, ab, -1-tol)
			assert.LessOrEqual(t, ab, 1+tol)
			if c1 == c2 {
				assert.InDelta(t, 1.0, ab, tol)
			}
		}
	}
}

// Pearson is invariant under positive scaling of a column.
func TestPearson_ScaleInvariant(t *testing.T) {
	t.Parallel()

	rows := randomRows(rand.New(rand.NewSource(3)), 25, 2, 0.4)
	rows[0][0], rows[1][1] = 1, 2 // keep both columns non-constant
	m := mustFromDense(t, rows)
	base, err := corr.Pearson(m, 0, 1)
	require.NoError(t, err)

	scaled := make([][]float64, len(rows))
	for i, row := range rows {
		scaled[i] = append([]float64(nil), row...)
		floats.Scale(1e3, scaled[i][:1])
	}
	got, err := corr.Pearson(mustFromDense(t, scaled), 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, base, got, tol)
}
