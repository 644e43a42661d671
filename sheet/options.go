// SPDX-License-Identifier: MIT

// Package sheet: functional configuration for Matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state beyond the zap global logger.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Public APIs consume ...Option; Options fields stay unexported.
package sheet

import "go.uber.org/zap"

// DefaultName is the sheet name used when WithName is not supplied. The name
// only matters to collection-level collaborators (book combine keys).
const DefaultName = "sheet"

// Internal panic messages (no magic strings).
const (
	panicEmptyName = "sheet: WithName: name must be non-empty"
	panicNilLogger = "sheet: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly; last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-fields-only to prevent external mutation.
type Options struct {
	name   string      // sheet name; DefaultName
	logger *zap.Logger // notice sink; defaults to zap.L()
}

// WithName sets the sheet name used as the key in book combines.
// Panics on an empty name (programmer error).
// Complexity: O(1).
func WithName(name string) Option {
	if name == "" {
		panic(panicEmptyName)
	}

	return func(o *Options) { o.name = name }
}

// WithLogger routes deprecation and diagnostic notices to the given logger
// instead of the process-global zap logger. Panics on nil (pass
// zap.NewNop() to silence notices explicitly).
// Complexity: O(1).
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// The zap global is resolved here, once, so a later zap.ReplaceGlobals does
// not retroactively rewire existing matrices.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{
		name:   DefaultName,
		logger: zap.L(),
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
