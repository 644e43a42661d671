// SPDX-License-Identifier: MIT

// Package sheet - bulk cell transforms and predicates.
package sheet

// Map applies fn to every cell value in row-major order and writes the
// result back in place. Shape and cell count are unchanged, so no
// re-normalization happens.
// Complexity: O(rows×cols).
func (m *Matrix) Map(fn func(any) any) {
	for _, row := range m.store {
		for j, cell := range row {
			row[j] = fn(cell)
		}
	}
}

// Format is Map composed with a blank-preserving adapter: the Blank
// sentinel passes through untouched and fn is applied to every other
// value. This is how bulk type coercion (force all cells to text, say) is
// done without special-casing blank cells at every call site.
// Complexity: O(rows×cols).
func (m *Matrix) Format(fn func(any) any) {
	m.Map(func(v any) any {
		if v == Blank {
			return v
		}

		return fn(v)
	})
}

// Contains reports whether any row satisfies the predicate. The predicate
// receives the live backing row; treat it as read-only.
// Complexity: O(rows×cols) worst case.
func (m *Matrix) Contains(pred func([]any) bool) bool {
	for _, row := range m.store {
		if pred(row) {
			return true
		}
	}

	return false
}
