// SPDX-License-Identifier: MIT

// Package sheet - structural edits: extend, delete, cut, paste, transpose.
//
// Purpose:
//   - Splice rows and columns directly into the row-major store and restore
//     the rectangularity invariant through Uniform afterwards.
//   - Validate before mutating: the error paths of Paste leave the store
//     untouched; bounds errors inside a multi-step paste surface verbatim.
//   - Reproduce the asymmetric grow-then-merge paste policy exactly; its
//     row-count/column-count thresholds are externally observable (a
//     cut+paste round trip at the original coordinates must restore the
//     original content bit for bit).
package sheet

import (
	"fmt"
	"sort"
)

// extendRow appends one value-copied row without re-normalizing. Internal
// building block shared by ExtendRow(s) and the paste backfill.
func (m *Matrix) extendRow(row []any) {
	m.store = append(m.store, copyCells(row))
}

// ExtendRow appends a single row after the last row and re-normalizes. The
// row is value-copied; the caller keeps ownership of its slice.
// Complexity: O(rows×cols) due to renormalization.
func (m *Matrix) ExtendRow(row []any) {
	m.extendRow(row)
	m.uniform()
}

// ExtendRows appends many rows after the last row, each value-copied, and
// re-normalizes once.
// Complexity: O((rows+len(rows))×cols).
func (m *Matrix) ExtendRows(rows [][]any) {
	for _, row := range rows {
		m.extendRow(row)
	}
	m.uniform()
}

// DeleteRows removes the named row indices. Duplicates are de-duplicated
// (order-preserving), removal proceeds in descending index order so earlier
// indices are unaffected by later deletions, and indices beyond the current
// row count — including negatives — are silently ignored.
// Complexity: O(len(indices)·rows).
func (m *Matrix) DeleteRows(indices []int) {
	if len(indices) == 0 {
		return
	}
	for _, i := range descending(uniqueInts(indices)) {
		if i >= 0 && i < m.NumberOfRows() {
			m.store = append(m.store[:i], m.store[i+1:]...)
		}
	}
}

// ExtendColumn appends a single column after the rightmost column. The
// incoming line is column-major (top to bottom); it is transposed to
// row-major and merged onto the right edge.
// Complexity: O(rows×cols).
func (m *Matrix) ExtendColumn(column []any) {
	m.extendColumnsWithRows(Transpose([][]any{column}))
}

// ExtendColumns appends many columns after the rightmost column:
//
//	s s s     t t        s s s t t
//	s s s  +  t t   ⇒    s s s t t
//
// Complexity: O(rows×cols).
func (m *Matrix) ExtendColumns(columns [][]any) {
	m.extendColumnsWithRows(Transpose(columns))
}

// ExtendColumnsWithRows merges already row-major data onto the right edge
// of the store: rows in the overlapping range are concatenated; surplus
// incoming rows beyond the current row count are appended as new rows
// left-padded with Blank to the pre-existing width.
//
//	1            1 11 11
//	2  + 11 11 ⇒ 2 22 22
//	3    22 22   3  ·  ·
//
// Complexity: O(rows×cols).
func (m *Matrix) ExtendColumnsWithRows(rows [][]any) {
	m.extendColumnsWithRows(rows)
}

func (m *Matrix) extendColumnsWithRows(rows [][]any) {
	nrows, ncols := m.NumberOfRows(), m.NumberOfColumns()
	overlap := len(rows)
	if nrows < overlap {
		overlap = nrows
	}
	for i := 0; i < overlap; i++ {
		m.store[i] = append(m.store[i], copyCells(rows[i])...)
	}
	for i := nrows; i < len(rows); i++ {
		m.store = append(m.store, append(blanks(ncols), copyCells(rows[i])...))
	}
	m.uniform()
}

// DeleteColumns removes the named column indices from every row. Duplicates
// are de-duplicated, removal proceeds in descending order, out-of-range
// indices are silently ignored, and the width is recomputed from the
// longest remaining row.
// Complexity: O(rows×len(indices)×cols).
func (m *Matrix) DeleteColumns(indices []int) {
	if len(indices) == 0 {
		return
	}
	ncols := m.NumberOfColumns()
	sorted := descending(uniqueInts(indices))
	for r := range m.store {
		for _, j := range sorted {
			if j >= 0 && j < ncols {
				m.store[r] = append(m.store[r][:j], m.store[r][j+1:]...)
			}
		}
	}
	m.width = LongestRow(m.store)
}

// Region returns a value copy of the half-open rectangular span
// [topLeft.Row, bottomRight.Row) × [topLeft.Col, bottomRight.Col).
// Bounds are caller-guaranteed: no validation is performed and the given
// half-open bounds become the iteration bounds verbatim; a violated
// promise panics like any programmer error.
// Complexity: O(span area).
func (m *Matrix) Region(topLeft, bottomRight Position) [][]any {
	region := make([][]any, 0, bottomRight.Row-topLeft.Row)
	for r := topLeft.Row; r < bottomRight.Row; r++ {
		line := make([]any, 0, bottomRight.Col-topLeft.Col)
		for c := topLeft.Col; c < bottomRight.Col; c++ {
			line = append(line, m.store[r][c])
		}
		region = append(region, line)
	}

	return region
}

// Cut is a destructive read: it returns the same value copy as Region, then
// overwrites every cell of the span with Blank. Same caller-guaranteed
// bounds contract as Region.
// Complexity: O(span area).
func (m *Matrix) Cut(topLeft, bottomRight Position) [][]any {
	region := m.Region(topLeft, bottomRight)
	for r := topLeft.Row; r < bottomRight.Row; r++ {
		for c := topLeft.Col; c < bottomRight.Col; c++ {
			m.store[r][c] = Blank
		}
	}

	return region
}

// Paste writes a rectangle of data with topLeft as its top-left corner,
// growing the matrix as needed. Exactly one of rows (row-major) or columns
// (column-major) must be supplied: neither is ErrEmptyContent, both at once
// is ErrTypeMismatch; both are checked before any mutation.
//
// Row mode, in order:
//   - Stage 1: when topLeft.Row exceeds the current row count, append fully
//     blank rows of the current width to close the gap.
//   - Stage 2: each incoming row whose target index is within the (post
//     backfill) bounds is offset-merged via setRowAt starting at
//     topLeft.Col — extending that row, and hence the global width, as
//     needed; a target beyond the bounds is appended as a new row
//     left-padded with Blank to topLeft.Col.
//   - Stage 3: re-normalize.
//
// Column mode is the structural mirror along columns, funneling through
// SetColumnAt and ExtendColumns.
//
// The thresholds are deliberate and observable: cutting [1,1)–[4,5) out of
// a 5×7 grid and pasting it back at [1,1] restores the grid exactly, while
// pasting it at [4,6] yields a 7×10 grid with blank backfill.
//
// Errors:
//   - ErrEmptyContent / ErrTypeMismatch on the content contract.
//   - ErrOutOfRange when topLeft.Col (row mode) or topLeft.Row (column
//     mode) lies beyond the current width/height for an in-bounds merge.
//
// Complexity: O(pasted area + rows×cols) including renormalization.
func (m *Matrix) Paste(topLeft Position, rows, columns [][]any) error {
	if len(rows) == 0 && len(columns) == 0 {
		return fmt.Errorf("Matrix.Paste: %w", ErrEmptyContent)
	}
	if len(rows) > 0 && len(columns) > 0 {
		return fmt.Errorf("Matrix.Paste: rows and columns are mutually exclusive: %w", ErrTypeMismatch)
	}
	if len(rows) > 0 {
		return m.pasteRows(topLeft, rows)
	}

	return m.pasteColumns(topLeft, columns)
}

func (m *Matrix) pasteRows(topLeft Position, rows [][]any) error {
	ncols := m.NumberOfColumns()
	if gap := topLeft.Row - m.NumberOfRows(); gap > 0 {
		for i := 0; i < gap; i++ {
			m.extendRow(blanks(ncols))
		}
	}
	nrows := m.NumberOfRows()
	for idx, row := range rows {
		target := topLeft.Row + idx
		if target < nrows {
			if err := m.setRowAt(target, row, topLeft.Col); err != nil {
				return err
			}
		} else {
			m.extendRow(append(blanks(topLeft.Col), row...))
		}
	}
	m.uniform()

	return nil
}

func (m *Matrix) pasteColumns(topLeft Position, columns [][]any) error {
	ncols := m.NumberOfColumns()
	for idx, column := range columns {
		target := topLeft.Col + idx
		if target < ncols {
			if err := m.SetColumnAt(target, column, topLeft.Row); err != nil {
				return err
			}
		} else {
			m.ExtendColumns([][]any{append(blanks(topLeft.Row), column...)})
		}
	}
	m.uniform()

	return nil
}

// Transpose replaces the store with its rectangularized transpose and
// re-normalizes. See the package-level Transpose for the padding rule.
// Complexity: O(rows×cols).
func (m *Matrix) Transpose() {
	m.store = Transpose(m.store)
	m.uniform()
}

// Filter deletes the named rows and/or columns with immediate, irreversible
// effect — rows first, then columns. A nil slice skips that axis. There is
// no deferred filter mechanism; see removed.go for the retired lifecycle.
// Complexity: as DeleteRows + DeleteColumns.
func (m *Matrix) Filter(rowIndices, columnIndices []int) {
	if rowIndices != nil {
		m.DeleteRows(rowIndices)
	}
	if columnIndices != nil {
		m.DeleteColumns(columnIndices)
	}
}

// descending sorts an int slice in place, largest first.
func descending(indices []int) []int {
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	return indices
}
