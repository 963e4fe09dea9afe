// SPDX-License-Identifier: MIT
// Package cur: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the cur
// package. All operations return these sentinels and tests check them via
// errors.Is. Strategy and linalg errors propagate unmodified; the
// orchestrator never masks lower-level numerical failures.

package cur

import "errors"

var (
	// ErrNilMatrix indicates construction with a nil matrix.
	ErrNilMatrix = errors.New("cur: nil matrix")

	// ErrEmptyMatrix indicates a matrix with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("cur: empty matrix")

	// ErrNilStrategy indicates WithStrategy(nil).
	ErrNilStrategy = errors.New("cur: nil selection strategy")

	// ErrBadCount indicates a non-positive column count request.
	ErrBadCount = errors.New("cur: column count must be positive")

	// ErrRowCountRequired is returned when rows must be selected for a
	// non-symmetric matrix and no row count was given. There is no silent
	// default.
	ErrRowCountRequired = errors.New("cur: row count required for non-symmetric matrices")

	// ErrBadIndices indicates duplicate or out-of-range indices passed to
	// Approximate.
	ErrBadIndices = errors.New("cur: invalid index set")
)
