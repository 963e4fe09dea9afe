// SPDX-License-Identifier: MIT
package selection

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose the unexported deflation and covariance kernels to
//     selection_test ONLY, without widening the production API.
//
// Provided Surface:
//   - *_TestOnly wrappers: thin pass-through to the private kernels.
//
// Behavior & Determinism:
//   - No allocations beyond what the wrapped functions do; no side effects.

import "gonum.org/v1/gonum/mat"

// Deflate_TestOnly exposes deflate for white-box tests.
func Deflate_TestOnly(work *mat.Dense, j int) error {
	return deflate(work, j)
}

// DeflateProperties_TestOnly exposes deflateProperties for white-box tests.
func DeflateProperties_TestOnly(y *mat.Dense, xc mat.Matrix) (*mat.Dense, error) {
	return deflateProperties(y, xc)
}

// PCovRCovariance_TestOnly exposes pcovrCovariance for white-box tests.
func PCovRCovariance_TestOnly(x, y *mat.Dense, alpha, regularization float64) (*mat.SymDense, error) {
	return pcovrCovariance(x, y, alpha, regularization)
}
