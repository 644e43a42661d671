// Package sheet models a mutable, rectangular, in-memory table of
// heterogeneous cell values — the data grid that underlies a spreadsheet
// library.
//
// What:
//
//   - Matrix wraps a row-major [][]any store and keeps it rectangular:
//     after every structural edit each row has exactly NumberOfColumns()
//     cells, with ragged input right-padded by the Blank sentinel.
//   - Cell/row/column/region addressing with strict bounds on reads and
//     implicit growth on out-of-range writes (SetCell).
//   - Structural edits: ExtendRows/Columns, DeleteRows/Columns, Cut, Paste
//     with auto-growth, Transpose, Filter.
//   - Eight fixed traversal orders plus Map/Format bulk transforms.
//   - Row/Column views translate slice-style access into Matrix calls.
//
// Ownership:
//
//   - New aliases the caller-supplied grid (no defensive deep copy; sheets
//     can be huge). Hand the grid over and mutate only through the Matrix.
//   - RowAt/ColumnAt/Region/Cut return independent copies; callers cannot
//     alias back into the live store through a read.
//   - ToArray/InternalArray expose the live store for serializer
//     collaborators; the aliasing is deliberate and documented there.
//
// Concurrency:
//
//   - Matrix holds no locks. Concurrent mutation without external
//     synchronization is undefined and out of scope.
//
// Errors:
//
//   - ErrOutOfRange: strict gets, and strict structural sets, addressed
//     outside valid range. Never silently clamped.
//   - ErrTypeMismatch: an argument of the wrong shape for the operation.
//   - ErrEmptyContent: Paste invoked with no content to paste.
//   - ErrFeatureRemoved: the retired lazy filter/formatter lifecycle.
//
// The lazy filter/formatter pipeline of earlier spreadsheet libraries is
// permanently unsupported here: every legacy entry point fails loudly with
// ErrFeatureRemoved instead of silently doing nothing, so callers relying
// on the old semantics are told explicitly.
package sheet
