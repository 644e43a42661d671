package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsheet/sheet"
)

func TestLongestRow(t *testing.T) {
	require.Equal(t, 0, sheet.LongestRow(nil))
	require.Equal(t, 0, sheet.LongestRow([][]any{}))
	require.Equal(t, 3, sheet.LongestRow([][]any{{1, 2, 3}, {4}}))
	require.Equal(t, 4, sheet.LongestRow([][]any{{}, {1, 2, 3, 4}, {5}}))
}

func TestUniform_PadsShortRows(t *testing.T) {
	width, grid := sheet.Uniform([][]any{{1, 2, 3}, {4}})
	require.Equal(t, 3, width)
	require.Equal(t, [][]any{{1, 2, 3}, {4, sheet.Blank, sheet.Blank}}, grid)
}

func TestUniform_ReplacesNilCells(t *testing.T) {
	width, grid := sheet.Uniform([][]any{{1, nil, 3}, {nil, 5, 6}})
	require.Equal(t, 3, width)
	require.Equal(t, [][]any{{1, sheet.Blank, 3}, {sheet.Blank, 5, 6}}, grid)
}

func TestUniform_EmptyGrid(t *testing.T) {
	width, grid := sheet.Uniform([][]any{})
	require.Equal(t, 0, width)
	require.Empty(t, grid)
}

func TestUniform_Idempotent(t *testing.T) {
	w1, grid := sheet.Uniform([][]any{{1, 2}, {3}})
	w2, again := sheet.Uniform(grid)
	require.Equal(t, w1, w2)
	require.Equal(t, grid, again)
}

func TestTranspose_RaggedIsPadded(t *testing.T) {
	// 1 2 3       1 4
	// 4 5 6 7  ⇒  2 5
	//             3 6
	//             · 7
	got := sheet.Transpose([][]any{{1, 2, 3}, {4, 5, 6, 7}})
	want := [][]any{
		{1, 4},
		{2, 5},
		{3, 6},
		{sheet.Blank, 7},
	}
	require.Equal(t, want, got)
}

func TestTranspose_RectangularRoundTrip(t *testing.T) {
	original := [][]any{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}
	restored := sheet.Transpose(sheet.Transpose(original))
	require.Equal(t, original, restored)
}

func TestTranspose_Empty(t *testing.T) {
	require.Empty(t, sheet.Transpose(nil))
	require.Empty(t, sheet.Transpose([][]any{{}, {}}))
}
