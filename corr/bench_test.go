package corr_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsecorr/corr"
	"github.com/katalvlaran/sparsecorr/csc"
)

// benchmarkPearson builds a rows×2 matrix with nnz stored entries per column
// and correlates the two columns. Cost should track nnz, not rows.
func benchmarkPearson(b *testing.B, rows, nnz int) {
	rnd := rand.New(rand.NewSource(1))
	tr, err := csc.NewTriplet(rows, 2)
	if err != nil {
		b.Fatalf("NewTriplet: %v", err)
	}
	for j := 0; j < 2; j++ {
		for _, i := range rnd.Perm(rows)[:nnz] {
			_ = tr.Append(i, j, rnd.NormFloat64()+1)
		}
	}
	m, err := tr.ToMatrix()
	if err != nil {
		b.Fatalf("ToMatrix: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = corr.Pearson(m, 0, 1); err != nil {
			b.Fatalf("Pearson failed: %v", err)
		}
	}
}

// BenchmarkPearson_Rows1e4 — 10k rows, 100 stored per column.
func BenchmarkPearson_Rows1e4(b *testing.B) { benchmarkPearson(b, 10_000, 100) }

// BenchmarkPearson_Rows1e6 — same stored count, 100× more rows; should cost the same.
func BenchmarkPearson_Rows1e6(b *testing.B) { benchmarkPearson(b, 1_000_000, 100) }

// BenchmarkPearson_Dense1e4 — every row stored.
func BenchmarkPearson_Dense1e4(b *testing.B) { benchmarkPearson(b, 10_000, 10_000) }
