// Package gridsheet is your in-memory playground for building, editing,
// and traversing rectangular data grids — the tabular core that sits
// beneath spreadsheet readers, writers and report generators.
//
// 🚀 What is gridsheet?
//
//	A small, deterministic library that brings together:
//		• Geometry helpers: rectangularize ragged input, transpose, pad
//		• Matrix: cell/row/column/region addressing over a row-major store
//		• Structural edits: extend, delete, cut, paste with auto-growth
//		• Eight fixed traversal orders, row-major and column-major
//		• Row/Column views: slice-style facades over the same store
//		• Book: a named multi-sheet collection with a collision-safe combine
//
// ✨ Why choose gridsheet?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – sentinel errors, no silent clamping, no hidden copies
//   - Honest ownership – construction aliases your grid; reads hand back copies
//   - Extensible – bring your own cell transforms via Map/Format
//
// Under the hood, everything is organized under three subpackages:
//
//	sheet/   — the Matrix data model, edits, iteration and views
//	cellref/ — A1-style cell label resolution ("B3" ⇄ row 2, column 1)
//	book/    — named collection of sheets and the combine contract
//
// Quick ASCII example:
//
//	    1 2 3          1 4
//	    4 5 6 7   ⇒    2 5
//	                   3 6
//	                   · 7
//
//	a ragged grid is rectangularized with blank padding on transpose.
//
// The core performs no file I/O and infers no cell types; format codecs
// (CSV, XLSX, ODS, ...) are external collaborators that serialize the
// backing array exposed by sheet.Matrix.
//
//	go get github.com/katalvlaran/gridsheet
package gridsheet
