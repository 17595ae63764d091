// Package csc provides a read-only compressed-sparse-column matrix view.
//
// 🚀 What is CSC?
//
//	A column-compressed layout keeps only non-zero entries, grouped by column
//	and sorted by row index inside each column:
//	  • data    — stored values (len = nnz)
//	  • indices — row index of every stored value (len = nnz)
//	  • indptr  — column boundaries (len = cols+1), column c lives in
//	              data[indptr[c]:indptr[c+1]]
//	Every position that is not stored is an implicit zero.
//
// ✨ Key features:
//   - Matrix wraps already-compressed arrays without copying them
//   - New validates every structural invariant once, up front
//   - FromExporter adapts any Exporter value and rejects non-CSC layouts
//   - Triplet builds CSC (or CSR) arrays from unordered (i, j, v) entries
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sparsecorr/csc"
//
//	m, err := csc.New(data, indices, indptr, rows, cols)
//	if err != nil {
//	  // errors.Is(err, csc.ErrMalformed) / csc.ErrBadShape
//	}
//	start, end, err := m.ColumnSlice(2)
//
// Indices and pointers are int32, so a Matrix holds at most 2^31-1 rows,
// columns and stored entries.
package csc
