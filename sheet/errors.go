// SPDX-License-Identifier: MIT
// Package sheet: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the sheet
// package. Operations return these sentinels and tests check them via
// errors.Is. Wrap with fmt.Errorf("Ctx: %w", ErrX) at the detection site so
// callers still match with errors.Is. Panics are reserved for programmer
// errors (e.g. Region called with bounds the caller promised were valid).

package sheet

import "errors"

var (
	// ErrOutOfRange indicates an index (row or column) outside valid bounds
	// on a strict accessor: Cell, RowAt, ColumnAt, SetRowAt, SetColumnAt and
	// the view facades. SetCell is the one deliberate exception — it grows
	// the matrix instead (see SetCell).
	ErrOutOfRange = errors.New("sheet: index out of range")

	// ErrTypeMismatch indicates an argument of the wrong shape for a
	// structural edit, e.g. Paste given both rows and columns at once.
	// Surfaced before any mutation occurs.
	ErrTypeMismatch = errors.New("sheet: argument shape mismatch")

	// ErrEmptyContent indicates Paste was given nothing to paste (neither
	// rows nor columns). Surfaced before any mutation occurs.
	ErrEmptyContent = errors.New("sheet: no content to paste")

	// ErrFeatureRemoved marks the permanently retired lazy filter/formatter
	// lifecycle. Distinct from the other sentinels so callers cannot mistake
	// it for a transient bug.
	ErrFeatureRemoved = errors.New("sheet: feature permanently removed")
)
