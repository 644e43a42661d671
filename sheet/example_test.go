// File: sheet/example_test.go
package sheet_test

import (
	"fmt"

	"github.com/katalvlaran/gridsheet/sheet"
)

////////////////////////////////////////////////////////////////////////////////
// Example: rectangularization at construction
////////////////////////////////////////////////////////////////////////////////

// ExampleNew demonstrates how a jagged grid with missing cells is
// normalized: nil cells become the blank sentinel and shorter rows are
// right-padded to the longest row's width.
func ExampleNew() {
	m := sheet.New([][]any{
		{"name", "qty", "unit"},
		{"bolt", 12},
		{"nut", nil, "box"},
	})
	fmt.Printf("%dx%d\n", m.NumberOfRows(), m.NumberOfColumns())
	fmt.Print(m)

	// Output:
	// 3x3
	// [name, qty, unit]
	// [bolt, 12, ]
	// [nut, , box]
}

////////////////////////////////////////////////////////////////////////////////
// Example: cut and paste with auto-growth
////////////////////////////////////////////////////////////////////////////////

// ExampleMatrix_Paste cuts a region out of a small grid and pastes it past
// the bottom-right corner. The matrix backfills blank rows to close the gap
// and widens itself to fit the pasted block.
func ExampleMatrix_Paste() {
	m := sheet.New([][]any{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	region := m.Cut(sheet.Position{Row: 0, Col: 0}, sheet.Position{Row: 2, Col: 2})
	if err := m.Paste(sheet.Position{Row: 3, Col: 2}, region, nil); err != nil {
		fmt.Println("paste failed:", err)

		return
	}
	fmt.Print(m)

	// Output:
	// [, , 3, ]
	// [, , 6, ]
	// [7, 8, 9, ]
	// [, , 1, 2]
	// [, , 4, 5]
}

////////////////////////////////////////////////////////////////////////////////
// Example: traversal orders
////////////////////////////////////////////////////////////////////////////////

// ExampleMatrix_Vertical walks the cells column-major: down each column,
// columns left to right.
func ExampleMatrix_Vertical() {
	m := sheet.New([][]any{
		{1, 2, 3},
		{4, 5, 6},
	})
	for v := range m.Vertical() {
		fmt.Print(v, " ")
	}
	fmt.Println()

	// Output:
	// 1 4 2 5 3 6
}

////////////////////////////////////////////////////////////////////////////////
// Example: blank-preserving bulk coercion
////////////////////////////////////////////////////////////////////////////////

// ExampleMatrix_Format coerces every non-blank cell to text while blanks
// pass through untouched.
func ExampleMatrix_Format() {
	m := sheet.New([][]any{
		{1, 2.5},
		{true},
	})
	m.Format(func(v any) any { return fmt.Sprint(v) })
	fmt.Print(m)

	// Output:
	// [1, 2.5]
	// [true, ]
}
