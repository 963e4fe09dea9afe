// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across linalg.
// All routines return these sentinels and tests check them via errors.Is.
// No routine panics on user-triggered conditions; panics are reserved for
// programmer errors in option constructors.

package linalg

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix was passed where a value is required.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrEmptyMatrix indicates a matrix with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("linalg: empty matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrEigenFailed indicates that the symmetric eigensolver failed to converge.
	ErrEigenFailed = errors.New("linalg: eigendecomposition failed")

	// ErrSVDFailed indicates that the SVD factorization failed to converge.
	ErrSVDFailed = errors.New("linalg: singular value decomposition failed")

	// ErrBadTruncation indicates a non-positive truncation rank.
	ErrBadTruncation = errors.New("linalg: truncation rank must be positive")
)
