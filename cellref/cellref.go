// Package cellref resolves spreadsheet-style cell labels ("B3") to
// zero-based (row, column) pairs and back. It exists so the sheet core
// never parses labels itself: label syntax is this collaborator's problem,
// and a malformed label is this collaborator's error.
//
// The heavy lifting is delegated to excelize's battle-tested coordinate
// conversion; this package only shifts between excelize's one-based
// (column, row) convention and the zero-based (row, column) convention of
// the sheet core.
package cellref

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrBadRef indicates a malformed cell label. Matched via errors.Is.
var ErrBadRef = errors.New("cellref: malformed cell reference")

// Parse converts an A1-style label to a zero-based (row, column) pair:
// "A1" → (0,0), "B3" → (2,1). Absolute markers ("$B$3") are accepted.
// Complexity: O(len(ref)).
func Parse(ref string) (row, col int, err error) {
	c, r, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return 0, 0, fmt.Errorf("cellref.Parse(%q): %w", ref, ErrBadRef)
	}

	return r - 1, c - 1, nil
}

// Format is the inverse of Parse: zero-based (row, column) to an A1-style
// label, (2,1) → "B3". Negative coordinates are malformed.
// Complexity: O(log col).
func Format(row, col int) (string, error) {
	if row < 0 || col < 0 {
		return "", fmt.Errorf("cellref.Format(%d,%d): %w", row, col, ErrBadRef)
	}
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", fmt.Errorf("cellref.Format(%d,%d): %w", row, col, ErrBadRef)
	}

	return ref, nil
}
