// SPDX-License-Identifier: MIT
// Package cur: functional configuration for the CUR orchestrator.
//
// Design goals (shared across the library):
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: option constructors panic only on nonsensical
//     values (programmer error); user-facing validation happens in New.

package cur

import (
	"math"

	"github.com/vtraverse/curmat/selection"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultSymmetryTolerance is the entrywise |A - Aᵀ| tolerance for
	// auto-detecting symmetric input.
	DefaultSymmetryTolerance = 1e-4

	// ProjectorThreshold zeroes near-null eigenvalues when building the
	// latent-space projector.
	ProjectorThreshold = 1e-12
)

// Internal panic messages (no magic strings).
const (
	panicSymToleranceInvalid = "cur: WithSymmetryTolerance: tolerance must be finite and non-negative"
	panicPrecomputeInvalid   = "cur: WithPrecompute: counts must be positive"
)

// Options holds the resolved construction-time configuration.
// Fields are unexported; public APIs consume ...Option.
type Options struct {
	strategy       selection.Strategy
	symTolerance   float64
	featureSelect  bool
	precomputeCols int
	precomputeRows int
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// WithStrategy installs the selection strategy. A nil strategy is rejected by
// New (user-facing error, not a panic). Defaults to SVD leverage with rank
// selection.DefaultRank.
func WithStrategy(s selection.Strategy) Option {
	return func(o *Options) { o.strategy = s }
}

// WithFeatureSelect restricts the decomposition to column (feature)
// compression: no rows are selected and the full matrix serves as the row
// factor.
func WithFeatureSelect() Option {
	return func(o *Options) { o.featureSelect = true }
}

// WithSymmetryTolerance sets the entrywise tolerance for symmetric-input
// detection. Panics on a negative or non-finite tolerance (programmer error).
func WithSymmetryTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicSymToleranceInvalid)
	}

	return func(o *Options) { o.symTolerance = tol }
}

// WithPrecompute selects nc columns and nr rows at construction, so New
// returns with the index cache already warm. Panics on non-positive counts
// (programmer error); selection failures surface as New errors.
func WithPrecompute(nc, nr int) Option {
	if nc <= 0 || nr <= 0 {
		panic(panicPrecomputeInvalid)
	}

	return func(o *Options) {
		o.precomputeCols = nc
		o.precomputeRows = nr
	}
}

// WithPrecomputeSquare is WithPrecompute(n, n): the single-integer precompute
// form for symmetric or feature-select use.
func WithPrecomputeSquare(n int) Option {
	return WithPrecompute(n, n)
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) Options {
	o := Options{
		symTolerance: DefaultSymmetryTolerance,
		strategy:     &selection.SVDLeverage{K: selection.DefaultRank},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
