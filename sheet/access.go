// SPDX-License-Identifier: MIT

// Package sheet - cell, row and column addressing.
//
// Purpose:
//   - Strict bounds on every get-style access: reads never clamp and never
//     grow; ErrOutOfRange is wrapped with the method and coordinates.
//   - Implicit growth on out-of-range SetCell via the paste algorithm. The
//     get/set asymmetry is a real contract, not an accident — do not "fix"
//     it by symmetrizing either side.
package sheet

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridsheet/cellref"
)

// Error context tags used in wrapped messages.
const (
	ctxCell     = "Cell"
	ctxSetCell  = "SetCell"
	ctxRowAt    = "RowAt"
	ctxColumnAt = "ColumnAt"
	ctxSetRow   = "SetRowAt"
	ctxSetRowP  = "setRowAt"
	ctxSetCol   = "SetColumnAt"
	ctxAtIndex  = "At"
)

// boundsErrorf attaches method context and coordinates to ErrOutOfRange.
// Keep wrapping at the detection site so messages carry exact coordinates.
func boundsErrorf(method string, row, col int) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
}

// inRange reports whether (row, col) addresses an existing cell.
// Complexity: O(1).
func (m *Matrix) inRange(row, col int) bool {
	return row >= 0 && row < m.NumberOfRows() && col >= 0 && col < m.NumberOfColumns()
}

// Cell returns the value stored at (row, col). A get with an out-of-range
// index is always an error — unlike SetCell, which grows.
// Complexity: O(1).
func (m *Matrix) Cell(row, col int) (any, error) {
	if !m.inRange(row, col) {
		return nil, boundsErrorf(ctxCell, row, col)
	}

	return m.store[row][col], nil
}

// SetCell stores v at (row, col). In-range writes are O(1). An out-of-range
// target does NOT fail: the matrix grows to cover it, exactly as a Paste of
// a 1×1 region at that position — missing rows are backfilled with fully
// blank rows, a short row is extended, and the store is re-normalized.
// Negative coordinates are the one irrecoverable case and return
// ErrOutOfRange (there is nothing to grow toward).
// Complexity: O(1) in range; O(rows×cols) when growth renormalizes.
func (m *Matrix) SetCell(row, col int, v any) error {
	if row < 0 || col < 0 {
		return boundsErrorf(ctxSetCell, row, col)
	}
	if m.inRange(row, col) {
		m.store[row][col] = v

		return nil
	}
	if row < m.NumberOfRows() {
		// Existing row, column beyond width: extend this row to the target
		// and let normalization widen the rest of the matrix.
		m.store[row] = append(m.store[row], blanks(col+1-len(m.store[row]))...)
		m.store[row][col] = v
		m.uniform()

		return nil
	}

	// Row beyond the last: delegate to the paste growth policy.
	return m.Paste(Position{Row: row, Col: col}, [][]any{{v}}, nil)
}

// RowAt returns a value copy of the addressed row; mutating the result does
// not touch the store. Out-of-range index fails with ErrOutOfRange.
// Complexity: O(cols).
func (m *Matrix) RowAt(index int) ([]any, error) {
	if index < 0 || index >= m.NumberOfRows() {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRowAt, index, ErrOutOfRange)
	}

	return copyCells(m.store[index]), nil
}

// ColumnAt returns a value copy of the addressed column, top to bottom.
// Out-of-range index fails with ErrOutOfRange.
// Complexity: O(rows).
func (m *Matrix) ColumnAt(index int) ([]any, error) {
	if index < 0 || index >= m.NumberOfColumns() {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxColumnAt, index, ErrOutOfRange)
	}
	column := make([]any, 0, m.NumberOfRows())
	for _, row := range m.store {
		column = append(column, row[index])
	}

	return column, nil
}

// SetRowAt replaces the addressed row wholesale and re-normalizes when the
// new row's length differs from the current width. Unlike SetCell, this
// call never grows the matrix: an out-of-range index fails.
// Complexity: O(cols), plus O(rows×cols) when renormalizing.
func (m *Matrix) SetRowAt(index int, data []any) error {
	if index < 0 || index >= m.NumberOfRows() {
		return fmt.Errorf("Matrix.%s(%d): %w", ctxSetRow, index, ErrOutOfRange)
	}
	m.store[index] = data
	if len(data) != m.NumberOfColumns() {
		m.uniform()
	}

	return nil
}

// setRowAt is the partial, offset row update used by Paste. It writes data
// into row index beginning at column starting:
//
//	A B C
//	1 3 5
//	2 N N  ← index = 2, data = [N N N], starting = 1
//	  ^starting
//
// Cells within the current width are overwritten in place; any surplus
// extends that row, growing the global width on the subsequent
// normalization. Fails with ErrOutOfRange when index or starting falls
// outside the current table.
// Complexity: O(len(data)) plus renormalization.
func (m *Matrix) setRowAt(index int, data []any, starting int) error {
	nrows, ncols := m.NumberOfRows(), m.NumberOfColumns()
	if index < 0 || index >= nrows || starting < 0 || starting >= ncols {
		return boundsErrorf(ctxSetRowP, index, starting)
	}
	span := starting + len(data)
	to := span
	if to > ncols {
		to = ncols
	}
	for i := starting; i < to; i++ {
		m.store[index][i] = data[i-starting]
	}
	if span > ncols {
		m.store[index] = append(m.store[index], data[ncols-starting:]...)
	}
	m.uniform()

	return nil
}

// SetColumnAt is the column-axis mirror of setRowAt: it writes data into
// column index beginning at row starting:
//
//	    ┌─→ index = 2
//	A B C
//	1 3 N  ← starting = 1
//	2 4 N
//
// Writing past the last row appends new rows, each left-padded with Blank
// up to index columns. Fails with ErrOutOfRange when index or starting
// falls outside the current table.
// Complexity: O(len(data)×cols) worst case (appended rows), plus
// renormalization.
func (m *Matrix) SetColumnAt(index int, data []any, starting int) error {
	nrows, ncols := m.NumberOfRows(), m.NumberOfColumns()
	if index < 0 || index >= ncols || starting < 0 || starting >= nrows {
		return boundsErrorf(ctxSetCol, index, starting)
	}
	span := starting + len(data)
	to := span
	if to > nrows {
		to = nrows
	}
	for i := starting; i < to; i++ {
		m.store[i][index] = data[i-starting]
	}
	for i := nrows; i < span; i++ {
		row := append(blanks(index), data[i-starting])
		m.store = append(m.store, row)
	}
	m.uniform()

	return nil
}

// CellAt resolves an A1-style label ("B3") through the cellref collaborator
// and funnels into Cell. A malformed label surfaces cellref.ErrBadRef.
// Complexity: O(len(ref)).
func (m *Matrix) CellAt(ref string) (any, error) {
	row, col, err := cellref.Parse(ref)
	if err != nil {
		return nil, err
	}

	return m.Cell(row, col)
}

// SetCellAt resolves an A1-style label and funnels into SetCell, including
// its grow-on-out-of-range behavior.
// Complexity: as SetCell.
func (m *Matrix) SetCellAt(ref string, v any) error {
	row, col, err := cellref.Parse(ref)
	if err != nil {
		return err
	}

	return m.SetCell(row, col, v)
}

// At addresses a whole row by bare integer index.
//
// Deprecated: integer-only addressing is a legacy alias of RowAt and emits
// a deprecation notice through the configured logger. Use RowAt.
func (m *Matrix) At(index int) ([]any, error) {
	m.logger.Warn("Matrix."+ctxAtIndex+": integer indexing is deprecated, use RowAt",
		zap.Int("index", index))

	return m.RowAt(index)
}
