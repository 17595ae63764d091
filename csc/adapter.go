// SPDX-License-Identifier: MIT

package csc

const opFromExporter = "FromExporter"

// FromExporter adapts an externally defined sparse value into a Matrix.
//
// The source must already be column-compressed: any other layout fails with
// ErrNotCSC and nothing is converted. On success the returned Matrix borrows
// the exported arrays.
//
// Errors:
//   - ErrNilSource for a nil src.
//   - ErrNotCSC when src.Layout() != LayoutCSC.
//   - ErrBadShape / ErrMalformed from New.
func FromExporter(src Exporter) (*Matrix, error) {
	if src == nil {
		return nil, cscErrorf(opFromExporter, ErrNilSource)
	}
	if src.Layout() != LayoutCSC {
		return nil, cscErrorf(opFromExporter+" ("+src.Layout().String()+")", ErrNotCSC)
	}

	rows, cols := src.Dims()
	data, indices, indptr := src.Arrays()
	m, err := New(data, indices, indptr, rows, cols)
	if err != nil {
		return nil, cscErrorf(opFromExporter, err)
	}

	return m, nil
}

// Export returns m as a Raw exporter sharing m's arrays.
func (m *Matrix) Export() *Raw {
	return &Raw{
		Format:  LayoutCSC,
		NumRows: m.rows,
		NumCols: m.cols,
		Data:    m.data,
		Indices: m.indices,
		Indptr:  m.indptr,
	}
}
