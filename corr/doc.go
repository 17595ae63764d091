// Package corr computes Pearson correlation between two columns of a sparse
// column-compressed matrix without materialising either column.
//
// 🚀 How does it work?
//
//	Every unstored row is an implicit zero. Instead of expanding the columns,
//	the engine derives mean and population variance from the stored values
//	plus an analytic term for the zeros, then merge-walks the two sorted row
//	index lists to accumulate the co-moment:
//	  • row stored in both columns   → (v1-m1)(v2-m2)
//	  • row stored in column 1 only  → -(v1-m1)·m2
//	  • row stored in column 2 only  → -m1·(v2-m2)
//	  • rows stored in neither       → (R - visited)·m1·m2, added once
//
// ✨ Key features:
//   - O(nnz(col1) + nnz(col2)) time, O(1) extra memory
//   - population statistics (divisor R, not R-1)
//   - constant columns yield Undefined (NaN), not an error
//   - pure and stateless: concurrent calls on one matrix need no locking
//
// ⚙️ Usage:
//
//	r, err := corr.Pearson(m, 0, 1)
//	if err != nil {
//	  // errors.Is(err, csc.ErrOutOfRange)
//	}
//	if corr.IsUndefined(r) {
//	  // one of the columns is constant
//	}
package corr
