// SPDX-License-Identifier: MIT

// Package sheet - Matrix construction, introspection and diagnostics.
//
// Purpose:
//   - Own the row-major [][]any store and the width invariant.
//   - Keep construction cheap on large inputs: the incoming grid is aliased,
//     never deep-copied. Mutate it only through the Matrix API afterwards.
package sheet

import (
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"
)

// Formatting literals for the Stringer dump.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a mutable rectangular table of scalar cell values. The zero
// value is not usable; construct with New. Whenever NumberOfRows() > 0,
// every row in the store has exactly width cells.
type Matrix struct {
	width int     // common row length; max row length after any edit
	store [][]any // row-major backing store; aliased from the constructor input

	name   string      // sheet name used by collection-level collaborators
	logger *zap.Logger // notice sink for deprecation warnings

	// Row and Column are slice-style facades over this matrix. They hold a
	// back-reference only and never outlive their owner.
	Row    *RowView
	Column *ColumnView
}

// New constructs a Matrix from an arbitrary jagged grid. The grid is
// normalized to rectangular form (nil cells → Blank, short rows padded) and
// then owned by the Matrix. The outer and inner slices are aliased, not
// copied — deliberately, since the sheet could be huge; callers must not
// mutate the grid externally after handing it over.
// Complexity: O(rows×cols).
func New(grid [][]any, opts ...Option) *Matrix {
	o := gatherOptions(opts...)
	m := &Matrix{
		name:   o.name,
		logger: o.logger,
	}
	m.width, m.store = Uniform(grid)
	m.Row = &RowView{m: m}
	m.Column = &ColumnView{m: m}

	return m
}

// Name returns the sheet name (DefaultName unless WithName was supplied).
// Complexity: O(1).
func (m *Matrix) Name() string { return m.name }

// NumberOfRows returns the row count. Complexity: O(1).
func (m *Matrix) NumberOfRows() int { return len(m.store) }

// NumberOfColumns returns the common row length, or 0 when the matrix has
// no rows. Complexity: O(1).
func (m *Matrix) NumberOfColumns() int {
	if m.NumberOfRows() > 0 {
		return m.width
	}

	return 0
}

// RowRange yields the half-open row index range [0, NumberOfRows()).
// Complexity: O(rows) to drain.
func (m *Matrix) RowRange() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < m.NumberOfRows(); i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// ColumnRange yields the half-open column index range [0, NumberOfColumns()).
// Complexity: O(cols) to drain.
func (m *Matrix) ColumnRange() iter.Seq[int] {
	return func(yield func(int) bool) {
		for j := 0; j < m.NumberOfColumns(); j++ {
			if !yield(j) {
				return
			}
		}
	}
}

// ToArray exposes the live backing store — aliased, not copied — for
// format-writer collaborators to serialize. Callers must not assume
// isolation: edits through the Matrix are visible in the returned slices
// and vice versa.
// Complexity: O(1).
func (m *Matrix) ToArray() [][]any { return m.store }

// InternalArray is a synonym of ToArray kept for collection-level
// collaborators (book combine copies it by reference). Same aliasing
// caveat applies.
// Complexity: O(1).
func (m *Matrix) InternalArray() [][]any { return m.store }

// String renders a readable row-wise dump for diagnostics. Not for hot
// paths. Complexity: O(rows×cols).
func (m *Matrix) String() string {
	var b strings.Builder
	for _, row := range m.store {
		b.WriteString(_fmtRowOpen)
		for j, cell := range row {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%v", cell)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// uniform re-normalizes the store after a structural edit.
func (m *Matrix) uniform() {
	m.width, m.store = Uniform(m.store)
}

var _ fmt.Stringer = (*Matrix)(nil)
