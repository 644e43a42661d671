package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsheet/sheet"
)

// grid3x4 builds the canonical 3×4 fixture used across the iteration and
// geometry tests.
func grid3x4() [][]any {
	return [][]any{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	}
}

// requireRectangular asserts the core invariant: every row has exactly
// NumberOfColumns() cells whenever the matrix has rows.
func requireRectangular(t *testing.T, m *sheet.Matrix) {
	t.Helper()
	ncols := m.NumberOfColumns()
	for row := range m.Rows() {
		require.Len(t, row, ncols)
	}
}

func TestNew_NormalizesJaggedInput(t *testing.T) {
	m := sheet.New([][]any{{1, 2, 3}, {4}, nil})
	require.Equal(t, 3, m.NumberOfRows())
	require.Equal(t, 3, m.NumberOfColumns())
	requireRectangular(t, m)

	row, err := m.RowAt(2)
	require.NoError(t, err)
	require.Equal(t, []any{sheet.Blank, sheet.Blank, sheet.Blank}, row)
}

func TestNew_AliasesInputGrid(t *testing.T) {
	grid := [][]any{{1, 2}, {3, 4}}
	m := sheet.New(grid)
	// Construction deliberately avoids a deep copy: the matrix owns the
	// caller's slices.
	require.NoError(t, m.SetCell(0, 0, "x"))
	require.Equal(t, "x", grid[0][0])
}

func TestNew_EmptyGrid(t *testing.T) {
	m := sheet.New([][]any{})
	require.Equal(t, 0, m.NumberOfRows())
	require.Equal(t, 0, m.NumberOfColumns())
}

func TestNumberOfColumns_ZeroWithoutRows(t *testing.T) {
	m := sheet.New([][]any{{1, 2, 3}})
	m.DeleteRows([]int{0})
	require.Equal(t, 0, m.NumberOfRows())
	require.Equal(t, 0, m.NumberOfColumns())
}

func TestRowRangeColumnRange_HalfOpen(t *testing.T) {
	m := sheet.New(grid3x4())

	var rows []int
	for i := range m.RowRange() {
		rows = append(rows, i)
	}
	require.Equal(t, []int{0, 1, 2}, rows)

	var cols []int
	for j := range m.ColumnRange() {
		cols = append(cols, j)
	}
	require.Equal(t, []int{0, 1, 2, 3}, cols)
}

func TestToArray_AliasesLiveStore(t *testing.T) {
	m := sheet.New(grid3x4())
	arr := m.ToArray()
	require.NoError(t, m.SetCell(0, 0, 99))
	require.Equal(t, 99, arr[0][0])
	require.Equal(t, arr, m.InternalArray())
}

func TestName_DefaultAndOption(t *testing.T) {
	require.Equal(t, sheet.DefaultName, sheet.New(nil).Name())
	require.Equal(t, "prices", sheet.New(nil, sheet.WithName("prices")).Name())
}

func TestWithName_PanicsOnEmpty(t *testing.T) {
	require.Panics(t, func() { sheet.WithName("") })
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { sheet.WithLogger(nil) })
}

func TestString_RowWiseDump(t *testing.T) {
	m := sheet.New([][]any{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestRectangularity_AfterEveryStructuralEdit drives one matrix through the
// whole structural surface and re-checks the invariant after each step.
func TestRectangularity_AfterEveryStructuralEdit(t *testing.T) {
	m := sheet.New([][]any{{1, 2, 3}, {4, 5}})
	requireRectangular(t, m)

	m.ExtendRow([]any{6, 7, 8, 9})
	requireRectangular(t, m)

	m.ExtendRows([][]any{{10}, {11, 12}})
	requireRectangular(t, m)

	m.ExtendColumn([]any{"a", "b"})
	requireRectangular(t, m)

	m.ExtendColumns([][]any{{"c"}, {"d", "e", "f"}})
	requireRectangular(t, m)

	m.DeleteRows([]int{0, 3})
	requireRectangular(t, m)

	m.DeleteColumns([]int{1})
	requireRectangular(t, m)

	require.NoError(t, m.Paste(sheet.Position{Row: 5, Col: 4}, [][]any{{"x", "y"}}, nil))
	requireRectangular(t, m)

	m.Transpose()
	requireRectangular(t, m)

	require.NoError(t, m.SetCell(20, 20, "far"))
	requireRectangular(t, m)

	m.Filter([]int{1}, []int{0})
	requireRectangular(t, m)
}
