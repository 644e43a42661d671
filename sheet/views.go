// SPDX-License-Identifier: MIT

// Package sheet - Row/Column accessor views.
//
// Purpose:
//   - Thin index-translating facades for slice-style access. A view owns no
//     data: it holds a back-reference to its Matrix and forwards every call
//     to the matrix's row-at/column-at/set-at operations, so the copy
//     discipline (reads copy, the store stays private) is inherited, not
//     re-implemented.
//   - Lifetime is tied to the owning Matrix; a view never outlives it and
//     carries no invariants of its own.
package sheet

import "fmt"

// RowView is the slice-style facade over the row axis, reachable as
// Matrix.Row.
type RowView struct {
	m *Matrix // back-reference; never nil after New
}

// At returns a value copy of row index; ErrOutOfRange outside bounds.
func (v *RowView) At(index int) ([]any, error) { return v.m.RowAt(index) }

// Set replaces row index wholesale; never grows the matrix.
func (v *RowView) Set(index int, data []any) error { return v.m.SetRowAt(index, data) }

// Slice returns value copies of the rows in the half-open range [from, to).
// The bounds are validated: ErrOutOfRange when the range does not lie
// within [0, NumberOfRows()] or from > to.
// Complexity: O((to-from)×cols).
func (v *RowView) Slice(from, to int) ([][]any, error) {
	if from < 0 || to > v.m.NumberOfRows() || from > to {
		return nil, fmt.Errorf("RowView.Slice(%d,%d): %w", from, to, ErrOutOfRange)
	}
	out := make([][]any, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, copyCells(v.m.store[i]))
	}

	return out, nil
}

// Delete removes the named rows; duplicates and out-of-range indices are
// tolerated exactly as in Matrix.DeleteRows.
func (v *RowView) Delete(indices ...int) { v.m.DeleteRows(indices) }

// Append adds rows after the bottom row, value-copied.
func (v *RowView) Append(rows ...[]any) { v.m.ExtendRows(rows) }

// ColumnView is the slice-style facade over the column axis, reachable as
// Matrix.Column.
type ColumnView struct {
	m *Matrix // back-reference; never nil after New
}

// At returns a value copy of column index; ErrOutOfRange outside bounds.
func (v *ColumnView) At(index int) ([]any, error) { return v.m.ColumnAt(index) }

// Set replaces column index from the top; writing past the last row appends
// left-padded rows, as Matrix.SetColumnAt documents.
func (v *ColumnView) Set(index int, data []any) error { return v.m.SetColumnAt(index, data, 0) }

// Slice returns value copies of the columns in the half-open range
// [from, to); ErrOutOfRange when the range does not lie within
// [0, NumberOfColumns()] or from > to.
// Complexity: O((to-from)×rows).
func (v *ColumnView) Slice(from, to int) ([][]any, error) {
	if from < 0 || to > v.m.NumberOfColumns() || from > to {
		return nil, fmt.Errorf("ColumnView.Slice(%d,%d): %w", from, to, ErrOutOfRange)
	}
	out := make([][]any, 0, to-from)
	for j := from; j < to; j++ {
		column, err := v.m.ColumnAt(j)
		if err != nil {
			return nil, err
		}
		out = append(out, column)
	}

	return out, nil
}

// Delete removes the named columns; duplicates and out-of-range indices are
// tolerated exactly as in Matrix.DeleteColumns.
func (v *ColumnView) Delete(indices ...int) { v.m.DeleteColumns(indices) }

// Append adds column-major lines after the rightmost column.
func (v *ColumnView) Append(columns ...[]any) { v.m.ExtendColumns(columns) }
