// Package linalg: Moore–Penrose pseudoinverse.
//
// Purpose:
//   - One canonical pseudoinverse for the library: thin SVD with small
//     singular values zeroed under the conventional eps·max(m,n)·σmax cutoff
//     (the same rule numpy/sklearn apply), so rank decisions are consistent
//     across packages.

package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// machineEps is the double-precision unit roundoff used in the rank cutoff.
const machineEps = 2.220446049250313e-16

// PInv computes the Moore–Penrose pseudoinverse of a via thin SVD.
// Singular values at or below eps·max(m,n)·σmax are treated as zero, which
// makes PInv well defined for rectangular, singular and all-zero inputs
// (the pseudoinverse of a zero matrix is the zero matrix of transposed shape).
//
// Returns ErrNilMatrix, ErrEmptyMatrix, or ErrSVDFailed.
// Complexity: O(min(r,c)·r·c); Memory: O(r·c).
func PInv(a mat.Matrix) (*mat.Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}

	// Stage 1: thin SVD, a = U·diag(σ)·Vᵀ.
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, ErrSVDFailed
	}
	sigma := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Stage 2: invert the spectrum under the rank cutoff.
	cutoff := machineEps * math.Max(float64(r), float64(c)) * sigma[0]
	k := len(sigma)
	inv := mat.NewDense(k, k, nil)
	for i, s := range sigma {
		if s > cutoff {
			inv.Set(i, i, 1.0/s)
		}
	}

	// Stage 3: a⁺ = V·diag(1/σ)·Uᵀ, shape c×r.
	var vi, pinv mat.Dense
	vi.Mul(&v, inv)
	pinv.Mul(&vi, u.T())

	return &pinv, nil
}
