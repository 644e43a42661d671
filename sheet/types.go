// SPDX-License-Identifier: MIT

// Package sheet: domain types shared across the matrix files.
// This file intentionally contains ONLY domain-facing types and the blank
// sentinel. Errors and options live in dedicated files (errors.go,
// options.go) per the package conventions.
package sheet

// Blank is the designated "empty cell" value. It pads shorter rows during
// rectangularization, replaces nil cells, and overwrites cells cleared by
// Cut. It is distinct from a true missing marker: a Blank cell exists and
// participates in every traversal.
const Blank = ""

// Position addresses a cell by zero-based (Row, Col). Region, Cut and Paste
// take half-open spans: the top-left Position is inclusive, the bottom-right
// exclusive on both axes.
type Position struct {
	Row int // zero-based row index
	Col int // zero-based column index
}

// blanks returns a fresh row of n Blank cells.
// Complexity: O(n).
func blanks(n int) []any {
	row := make([]any, n)
	for i := range row {
		row[i] = Blank
	}

	return row
}

// copyCells returns an independent copy of a single line of cells.
// Complexity: O(n).
func copyCells(line []any) []any {
	cp := make([]any, len(line))
	copy(cp, line)

	return cp
}

// uniqueInts de-duplicates while preserving first-seen order.
// Complexity: O(n) time, O(n) space.
func uniqueInts(indices []int) []int {
	seen := make(map[int]struct{}, len(indices))
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}

	return out
}
