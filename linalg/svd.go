// Package linalg: truncated singular value decomposition.
//
// Purpose:
//   - Provide the k-truncated thin SVD used for leverage scoring: the leading
//     singular values plus the matching right-singular vectors.
//   - Clamp the requested rank to min(k, min(rows, cols)) so callers can ask
//     for more than the shape supports without special-casing.

package linalg

import "gonum.org/v1/gonum/mat"

// TruncatedSVD computes a thin SVD of a and truncates it to the leading
// k singular values. It returns the singular values in descending order and
// the matching right-singular vectors as the columns of right (cols×k').
// k' = min(k, min(rows, cols)); requesting k beyond the shape is clamped,
// never an error.
//
// Returns ErrNilMatrix, ErrEmptyMatrix, ErrBadTruncation, or ErrSVDFailed.
// Complexity: O(min(r,c)·r·c) factorization; Memory: O(r·c).
func TruncatedSVD(a mat.Matrix, k int) ([]float64, *mat.Dense, error) {
	if a == nil {
		return nil, nil, ErrNilMatrix
	}
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, nil, ErrEmptyMatrix
	}
	if k <= 0 {
		return nil, nil, ErrBadTruncation
	}

	// Stage 1: thin factorization; only the right factor is materialized.
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThinV); !ok {
		return nil, nil, ErrSVDFailed
	}

	// Stage 2: clamp and slice. gonum orders singular values descending.
	kk := k
	if m := min(r, c); kk > m {
		kk = m
	}
	sigma := svd.Values(nil)[:kk]

	var v mat.Dense
	svd.VTo(&v)
	right := mat.DenseCopyOf(v.Slice(0, c, 0, kk))

	return sigma, right, nil
}
