package book_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsheet/book"
	"github.com/katalvlaran/gridsheet/sheet"
)

func TestAddSheet_AliasesByReference(t *testing.T) {
	grid := [][]any{{1, 2}, {3, 4}}
	b := book.New()
	key := b.AddSheet("data", grid)
	require.Equal(t, "data", key)

	grid[0][0] = "mutated"
	stored, ok := b.Sheet("data")
	require.True(t, ok)
	require.Equal(t, "mutated", stored[0][0], "book must alias, never deep-copy")
}

func TestAddSheet_CollisionGetsUniquenessSuffix(t *testing.T) {
	b := book.New()
	first := b.AddSheet("data", [][]any{{1}})
	second := b.AddSheet("data", [][]any{{2}})

	require.Equal(t, "data", first)
	require.NotEqual(t, first, second)
	require.True(t, strings.HasPrefix(second, "data_"), "suffixed key, got %q", second)

	// The original sheet was not overwritten.
	kept, ok := b.Sheet("data")
	require.True(t, ok)
	require.Equal(t, [][]any{{1}}, kept)
	added, ok := b.Sheet(second)
	require.True(t, ok)
	require.Equal(t, [][]any{{2}}, added)
	require.Equal(t, 2, b.NumberOfSheets())
}

func TestSheetNames_InsertionOrderCopy(t *testing.T) {
	b := book.New()
	b.AddSheet("one", nil)
	b.AddSheet("two", nil)
	names := b.SheetNames()
	require.Equal(t, []string{"one", "two"}, names)

	names[0] = "clobbered"
	require.Equal(t, []string{"one", "two"}, b.SheetNames())
}

func TestCombine_TwoMatrices(t *testing.T) {
	left := sheet.New([][]any{{1}}, sheet.WithName("left"))
	right := sheet.New([][]any{{2}}, sheet.WithName("right"))

	b := book.Combine(left, right)
	require.Equal(t, []string{"left", "right"}, b.SheetNames())

	// Reference copy: editing the matrix is visible through the book.
	require.NoError(t, left.SetCell(0, 0, "edited"))
	stored, ok := b.Sheet("left")
	require.True(t, ok)
	require.Equal(t, "edited", stored[0][0])
}

func TestCombine_SameNameNeverOverwrites(t *testing.T) {
	left := sheet.New([][]any{{1}}, sheet.WithName("data"))
	right := sheet.New([][]any{{2}}, sheet.WithName("data"))

	b := book.Combine(left, right)
	require.Equal(t, 2, b.NumberOfSheets())
	kept, ok := b.Sheet("data")
	require.True(t, ok)
	require.Equal(t, [][]any{{1}}, kept)
}

func TestCombineWithBook(t *testing.T) {
	other := book.New()
	other.AddSheet("prices", [][]any{{10}})
	other.AddSheet("volumes", [][]any{{20}})
	m := sheet.New([][]any{{1}}, sheet.WithName("summary"))

	b := book.CombineWithBook(m, other)
	require.Equal(t, []string{"summary", "prices", "volumes"}, b.SheetNames())

	dict := b.ToDict()
	require.Len(t, dict, 3)
	require.Equal(t, [][]any{{10}}, dict["prices"])
}

func TestMergeMatrix_Removed(t *testing.T) {
	b := book.New()
	err := b.MergeMatrix(sheet.New(nil))
	require.ErrorIs(t, err, sheet.ErrFeatureRemoved)
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { book.WithLogger(nil) })
}
