// Package sparsecorr computes Pearson correlation between columns of large,
// mostly-zero matrices without expanding them.
//
// 🚀 What is in here?
//
//	csc/            — read-only compressed-sparse-column matrix, invariant
//	                  validators, the CSC-only adapter and a COO builder
//	corr/           — column statistics, covariance and the Pearson merge-walk
//	cmd/sparsecorr  — prints one coefficient for a YAML matrix document
//
// ✨ Why sparse?
//
//   - Cost tracks stored entries, never the row count
//   - Implicit zeros are accounted for analytically
//   - Pure functions over immutable data: safe to call from many goroutines
//
// Quick example:
//
//	m, _ := csc.FromDense([][]float64{
//	  {1, 2, 0, 3},
//	  {2, 1, 0, 0},
//	  {0, 0, 1, 0},
//	})
//	r, _ := corr.Pearson(m, 0, 1) // 0.5
//
//	go get github.com/katalvlaran/sparsecorr
package sparsecorr
