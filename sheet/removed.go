// SPDX-License-Identifier: MIT

// Package sheet - the permanently removed lazy filter/formatter lifecycle.
//
// Earlier spreadsheet cores carried named filters and formatters as
// stateful pipeline stages (add/remove/validate/freeze). That mechanism is
// gone for good: Filter and Format above are immediate. The legacy entry
// points are kept as a closed set that unconditionally fails with
// ErrFeatureRemoved — loudly, never as a silent no-op — so callers written
// against the old lifecycle learn about the removal instead of getting
// wrong results.
package sheet

import "fmt"

func removedErrorf(method string) error {
	return fmt.Errorf("Matrix.%s: %w", method, ErrFeatureRemoved)
}

// AddFilter always fails with ErrFeatureRemoved. Use Filter for immediate
// deletion.
func (m *Matrix) AddFilter(_ any) error { return removedErrorf("AddFilter") }

// RemoveFilter always fails with ErrFeatureRemoved.
func (m *Matrix) RemoveFilter(_ any) error { return removedErrorf("RemoveFilter") }

// ClearFilters always fails with ErrFeatureRemoved.
func (m *Matrix) ClearFilters() error { return removedErrorf("ClearFilters") }

// ValidateFilters always fails with ErrFeatureRemoved.
func (m *Matrix) ValidateFilters() error { return removedErrorf("ValidateFilters") }

// FreezeFilters always fails with ErrFeatureRemoved.
func (m *Matrix) FreezeFilters() error { return removedErrorf("FreezeFilters") }

// ApplyFormatter always fails with ErrFeatureRemoved. Use Format for
// immediate, blank-preserving coercion.
func (m *Matrix) ApplyFormatter(_ any) error { return removedErrorf("ApplyFormatter") }

// AddFormatter always fails with ErrFeatureRemoved.
func (m *Matrix) AddFormatter(_ any) error { return removedErrorf("AddFormatter") }

// RemoveFormatter always fails with ErrFeatureRemoved.
func (m *Matrix) RemoveFormatter(_ any) error { return removedErrorf("RemoveFormatter") }

// ClearFormatters always fails with ErrFeatureRemoved.
func (m *Matrix) ClearFormatters() error { return removedErrorf("ClearFormatters") }

// FreezeFormatters always fails with ErrFeatureRemoved.
func (m *Matrix) FreezeFormatters() error { return removedErrorf("FreezeFormatters") }
