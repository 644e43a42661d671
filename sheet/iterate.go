// SPDX-License-Identifier: MIT

// Package sheet - the eight fixed traversal orders.
//
// Purpose:
//   - Lazy, finite, restartable sequences over lines or cells. Every method
//     returns a fresh iter.Seq on each call; draining one does not exhaust
//     a later call.
//   - Line iterators along the row axis (Rows, RRows) yield the live
//     backing rows — mutating a yielded line writes through to the store.
//     Column-axis line iterators (Columns, RColumns) materialize each line
//     and therefore yield independent copies.
//   - Deterministic: fixed loop orders, no map iteration.
package sheet

import "iter"

// Rows yields the lines top→bottom. Default iteration over a Matrix is
// equivalent to Rows. Yielded slices alias the backing store.
// Complexity: O(rows) to drain.
func (m *Matrix) Rows() iter.Seq[[]any] {
	return func(yield func([]any) bool) {
		for _, row := range m.store {
			if !yield(row) {
				return
			}
		}
	}
}

// RRows yields the lines bottom→top. Yielded slices alias the backing store.
// Complexity: O(rows) to drain.
func (m *Matrix) RRows() iter.Seq[[]any] {
	return func(yield func([]any) bool) {
		for i := len(m.store) - 1; i >= 0; i-- {
			if !yield(m.store[i]) {
				return
			}
		}
	}
}

// Columns yields the lines left→right, each line top→bottom. Every line is
// a fresh slice.
// Complexity: O(rows×cols) to drain.
func (m *Matrix) Columns() iter.Seq[[]any] {
	return func(yield func([]any) bool) {
		for j := 0; j < m.NumberOfColumns(); j++ {
			line := make([]any, 0, len(m.store))
			for _, row := range m.store {
				line = append(line, row[j])
			}
			if !yield(line) {
				return
			}
		}
	}
}

// RColumns yields the lines right→left, each line top→bottom. Every line is
// a fresh slice.
// Complexity: O(rows×cols) to drain.
func (m *Matrix) RColumns() iter.Seq[[]any] {
	return func(yield func([]any) bool) {
		for j := m.NumberOfColumns() - 1; j >= 0; j-- {
			line := make([]any, 0, len(m.store))
			for _, row := range m.store {
				line = append(line, row[j])
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Enumerate yields cells row-major: top→bottom, left→right.
//
//	1 2 3 4
//	5 6 7 8   ⇒ 1 2 3 4 5 6 7 8 9 10 11 12
//	9 10 11 12
//
// Complexity: O(rows×cols) to drain.
func (m *Matrix) Enumerate() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, row := range m.store {
			for _, cell := range row {
				if !yield(cell) {
					return
				}
			}
		}
	}
}

// Reverse is the opposite of Enumerate: cells row-major bottom→top,
// right→left (12 11 10 ... 1 on the grid above).
// Complexity: O(rows×cols) to drain.
func (m *Matrix) Reverse() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := len(m.store) - 1; i >= 0; i-- {
			row := m.store[i]
			for j := len(row) - 1; j >= 0; j-- {
				if !yield(row[j]) {
					return
				}
			}
		}
	}
}

// Vertical yields cells column-major: columns left→right, each top→bottom
// (1 5 9 2 6 10 3 7 11 4 8 12 on the grid above).
// Complexity: O(rows×cols) to drain.
func (m *Matrix) Vertical() iter.Seq[any] {
	return func(yield func(any) bool) {
		for j := 0; j < m.NumberOfColumns(); j++ {
			for _, row := range m.store {
				if !yield(row[j]) {
					return
				}
			}
		}
	}
}

// RVertical is the opposite of Vertical: columns right→left, each
// bottom→top (12 8 4 11 7 3 10 6 2 9 5 1 on the grid above).
// Complexity: O(rows×cols) to drain.
func (m *Matrix) RVertical() iter.Seq[any] {
	return func(yield func(any) bool) {
		for j := m.NumberOfColumns() - 1; j >= 0; j-- {
			for i := len(m.store) - 1; i >= 0; i-- {
				if !yield(m.store[i][j]) {
					return
				}
			}
		}
	}
}
