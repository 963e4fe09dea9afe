// SPDX-License-Identifier: MIT
// Package selection: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// selection package. All strategies return these sentinels and tests check
// them via errors.Is. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still match
// through errors.Is.

package selection

import "errors"

var (
	// ErrNilMatrix indicates a nil matrix was passed to a strategy.
	ErrNilMatrix = errors.New("selection: nil matrix")

	// ErrEmptyMatrix indicates a matrix with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("selection: empty matrix")

	// ErrBadCount indicates a negative selection count.
	ErrBadCount = errors.New("selection: selection count must be non-negative")

	// ErrBadRank indicates a non-positive truncation rank configured on a strategy.
	ErrBadRank = errors.New("selection: truncation rank must be positive")

	// ErrBadResume indicates a resume prefix with duplicate or out-of-range indices.
	ErrBadResume = errors.New("selection: invalid resume indices")

	// ErrZeroColumn is returned when deflation meets a zero-norm column.
	// Selecting such a column would divide by zero; this is fatal, never
	// silently skipped.
	ErrZeroColumn = errors.New("selection: zero-norm column during deflation")

	// ErrRankDeficient signals that covariance construction found no
	// eigenvalue above the regularization floor. PCovR.Select recovers from
	// it by returning the indices gathered so far with a nil error, so fewer
	// informative features than requested is not a failure.
	ErrRankDeficient = errors.New("selection: covariance rank below regularization floor")

	// ErrMissingProperty indicates PCovR was configured without a property matrix Y.
	ErrMissingProperty = errors.New("selection: PCovR requires a property matrix Y")

	// ErrBadAlpha indicates a PCovR mixing weight outside [0, 1].
	ErrBadAlpha = errors.New("selection: alpha must lie in [0, 1]")

	// ErrDimensionMismatch indicates that the property matrix row count does
	// not match the data matrix row count.
	ErrDimensionMismatch = errors.New("selection: dimension mismatch")
)
