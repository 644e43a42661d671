// Package book collects named backing arrays into an ordered, multi-sheet
// workbook and implements the combine contract of the sheet core:
//
//   - combining never overwrites an existing same-named sheet — on a name
//     collision the incoming sheet is stored under a uuid-suffixed key;
//   - each side's backing array is copied by reference into the book's
//     storage, never deep-copied.
//
// The book performs no file I/O; format writers serialize the aliased
// arrays it holds.
package book

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridsheet/sheet"
)

// Option configures a Book at construction time.
type Option func(*Book)

// WithLogger routes collision-rename notices to the given logger instead of
// the process-global zap logger. Panics on nil.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("book: WithLogger: logger must be non-nil")
	}

	return func(b *Book) { b.logger = logger }
}

// Book is an ordered collection of named sheets. Sheet arrays are aliased:
// the Book and the originating Matrix share storage by design.
type Book struct {
	order  []string           // insertion order of sheet keys
	sheets map[string][][]any // key → aliased backing array
	logger *zap.Logger
}

// New returns an empty Book.
func New(opts ...Option) *Book {
	b := &Book{
		sheets: make(map[string][][]any),
		logger: zap.L(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddSheet stores grid under name, aliasing it by reference. An existing
// same-named sheet is never overwritten: on collision the grid is stored
// under name plus a uuid uniqueness suffix, the rename is logged, and the
// actual key is returned.
// Complexity: O(1) amortized.
func (b *Book) AddSheet(name string, grid [][]any) string {
	key := name
	if _, taken := b.sheets[key]; taken {
		key = fmt.Sprintf("%s_%s", name, uuid.NewString())
		b.logger.Warn("book: sheet name collision, stored under suffixed key",
			zap.String("name", name), zap.String("key", key))
	}
	b.sheets[key] = grid
	b.order = append(b.order, key)

	return key
}

// Sheet returns the aliased backing array stored under key.
func (b *Book) Sheet(key string) ([][]any, bool) {
	grid, ok := b.sheets[key]

	return grid, ok
}

// SheetNames returns the sheet keys in insertion order (a copy; mutating it
// does not affect the book).
func (b *Book) SheetNames() []string {
	names := make([]string, len(b.order))
	copy(names, b.order)

	return names
}

// NumberOfSheets returns the sheet count.
func (b *Book) NumberOfSheets() int { return len(b.order) }

// ToDict returns a fresh map of key → backing array. The map is a copy;
// the arrays stay aliased.
func (b *Book) ToDict() map[string][][]any {
	out := make(map[string][][]any, len(b.sheets))
	for key, grid := range b.sheets {
		out[key] = grid
	}

	return out
}

// MergeMatrix is the retired in-place merge (the "+=" of older cores).
// Always fails with sheet.ErrFeatureRemoved; use Combine to build a new
// Book instead.
func (b *Book) MergeMatrix(_ *sheet.Matrix) error {
	return fmt.Errorf("Book.MergeMatrix: %w", sheet.ErrFeatureRemoved)
}

// Combine builds a new Book from two matrices — the "+" of the sheet core.
// Left is stored first under its own name; right follows, suffixed on
// collision. Both backing arrays are aliased, never deep-copied.
// Complexity: O(1) beyond key bookkeeping.
func Combine(left, right *sheet.Matrix, opts ...Option) *Book {
	b := New(opts...)
	b.AddSheet(left.Name(), left.InternalArray())
	b.AddSheet(right.Name(), right.InternalArray())

	return b
}

// CombineWithBook builds a new Book from a matrix and an existing book: the
// matrix first, then the book's sheets in their insertion order, each
// suffixed on collision and aliased by reference.
// Complexity: O(sheets).
func CombineWithBook(m *sheet.Matrix, other *Book, opts ...Option) *Book {
	b := New(opts...)
	b.AddSheet(m.Name(), m.InternalArray())
	for _, key := range other.order {
		b.AddSheet(key, other.sheets[key])
	}

	return b
}
