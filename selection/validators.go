// SPDX-License-Identifier: MIT
// Package selection: canonical validation checks.
//
// Purpose:
//   - Single source of truth for the guards every strategy runs before work.
//   - Return plain sentinels so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; validateResume allocates one
//     seen-set, everything else allocates nothing.

package selection

import "gonum.org/v1/gonum/mat"

// validateMatrix ensures a is non-nil with positive dimensions.
// Returns ErrNilMatrix or ErrEmptyMatrix. Complexity: O(1).
func validateMatrix(a mat.Matrix) error {
	if a == nil {
		return ErrNilMatrix
	}
	if r, c := a.Dims(); r == 0 || c == 0 {
		return ErrEmptyMatrix
	}

	return nil
}

// validateResume ensures the resume prefix holds distinct indices inside
// [0, cols). Returns ErrBadResume. Complexity: O(len(resume)).
func validateResume(resume []int, cols int) error {
	seen := make(map[int]struct{}, len(resume))
	for _, j := range resume {
		if j < 0 || j >= cols {
			return ErrBadResume
		}
		if _, dup := seen[j]; dup {
			return ErrBadResume
		}
		seen[j] = struct{}{}
	}

	return nil
}

// validateCount ensures the selection count is non-negative.
// Returns ErrBadCount. Complexity: O(1).
func validateCount(n int) error {
	if n < 0 {
		return ErrBadCount
	}

	return nil
}
