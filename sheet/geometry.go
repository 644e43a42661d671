// SPDX-License-Identifier: MIT

// Package sheet - geometry helpers over a sequence of rows.
//
// Purpose:
//   - Pure functions that measure and rectangularize a jagged [][]any grid.
//   - Uniform is the sole normalizer: every structural edit on Matrix funnels
//     through it, so callers never re-normalize manually.
package sheet

// LongestRow returns the length of the longest row in the grid, or 0 for an
// empty grid. Pure; no mutation.
// Complexity: O(rows).
func LongestRow(grid [][]any) int {
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}

	return width
}

// Uniform rectangularizes the grid in place: nil cells become Blank and
// shorter rows are right-padded with Blank up to the longest row's length.
// It returns the resulting width together with the grid. Width of an empty
// grid is 0.
//
// Uniform is idempotent and is invoked after every structural edit; it is
// the single place where the rectangularity invariant is restored.
// Complexity: O(rows×cols).
func Uniform(grid [][]any) (int, [][]any) {
	width := LongestRow(grid)
	if width == 0 {
		return 0, grid
	}
	for i, row := range grid {
		for j, cell := range row {
			if cell == nil {
				row[j] = Blank
			}
		}
		if len(row) < width {
			grid[i] = append(row, blanks(width-len(row))...)
		}
	}

	return width, grid
}

// Transpose builds a new grid where output row i holds, for each input row
// c, c[i] when present and Blank otherwise. The output has LongestRow(grid)
// rows. This is a rectangularizing transpose, not a strict mathematical one:
// ragged input is padded with Blank rather than rejected.
//
//	1 2 3       1 4
//	4 5 6 7  ⇒  2 5
//	            3 6
//	            · 7
//
// Complexity: O(rows×cols) time and space.
func Transpose(grid [][]any) [][]any {
	width := LongestRow(grid)
	out := make([][]any, 0, width)
	for i := 0; i < width; i++ {
		line := make([]any, 0, len(grid))
		for _, row := range grid {
			if i < len(row) {
				line = append(line, row[i])
			} else {
				line = append(line, Blank)
			}
		}
		out = append(out, line)
	}

	return out
}
