// Package linalg: sorted symmetric eigendecomposition.
//
// Purpose:
//   - Provide the one canonical eigen-ordering convention for the library:
//     eigenvalues DESCENDING, eigenvector columns matching.
//   - Encode truncation policy explicitly (top-n, strict threshold) so callers
//     never re-implement ad hoc filtering.
//
// Determinism:
//   - gonum's EigenSym is deterministic for a fixed input; the reorder here is
//     a fixed reversal of its ascending output, so results are reproducible.

package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Internal panic messages for option constructors (programmer errors only).
const (
	panicEigThresholdInvalid = "linalg: EigThreshold: threshold must be finite"
	panicEigTopInvalid       = "linalg: EigTop: n must be positive"
)

// eigOptions carries truncation policy for SortedEig.
type eigOptions struct {
	top       int     // keep at most this many leading pairs; 0 means all
	threshold float64 // keep only pairs with eigenvalue strictly above this
	useThresh bool    // whether threshold filtering is active
}

// EigOption mutates eigen truncation policy. Safe to apply repeatedly.
type EigOption func(*eigOptions)

// EigTop keeps only the n leading (largest-eigenvalue) pairs.
// Panics if n <= 0 (programmer error); n larger than the spectrum is clamped.
func EigTop(n int) EigOption {
	if n <= 0 {
		panic(panicEigTopInvalid)
	}

	return func(o *eigOptions) { o.top = n }
}

// EigThreshold discards eigenpairs whose eigenvalue is <= t. The comparison
// is STRICT: a pair with eigenvalue exactly t is dropped. Panics on a
// non-finite threshold (programmer error).
func EigThreshold(t float64) EigOption {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic(panicEigThresholdInvalid)
	}

	return func(o *eigOptions) {
		o.threshold = t
		o.useThresh = true
	}
}

// SortedEig computes the eigendecomposition of the symmetric matrix c and
// returns eigenvalues sorted by DESCENDING value with the matching
// eigenvectors as columns of vecs (vecs column t pairs with vals[t]).
//
// Truncation runs after sorting: EigThreshold filters first, then EigTop
// clamps the count. An empty result (all pairs filtered) is returned as
// zero-length slices with a nil error; deciding whether that is fatal is the
// caller's concern.
//
// Returns ErrNilMatrix, ErrEmptyMatrix, or ErrEigenFailed.
// Complexity: O(n³) factorization + O(n²) reorder; Memory: O(n²).
func SortedEig(c mat.Symmetric, opts ...EigOption) ([]float64, *mat.Dense, error) {
	if c == nil {
		return nil, nil, ErrNilMatrix
	}
	n := c.SymmetricDim()
	if n == 0 {
		return nil, nil, ErrEmptyMatrix
	}

	var o eigOptions
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: factorize (gonum returns eigenvalues in ASCENDING order).
	var eig mat.EigenSym
	if ok := eig.Factorize(c, true); !ok {
		return nil, nil, ErrEigenFailed
	}
	asc := eig.Values(nil)
	var vecsAsc mat.Dense
	eig.VectorsTo(&vecsAsc)

	// Stage 2: reverse into descending order, filtering below the threshold.
	keep := make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		if o.useThresh && asc[i] <= o.threshold {
			continue // strict: value == threshold is dropped
		}
		keep = append(keep, i)
	}
	if o.top > 0 && o.top < len(keep) {
		keep = keep[:o.top]
	}
	if len(keep) == 0 {
		return []float64{}, &mat.Dense{}, nil
	}

	vals := make([]float64, len(keep))
	vecs := mat.NewDense(n, len(keep), nil)
	col := make([]float64, n)
	for t, i := range keep {
		vals[t] = asc[i]
		mat.Col(col, i, &vecsAsc)
		vecs.SetCol(t, col)
	}

	return vals, vecs, nil
}

// Symmetrize folds a square, numerically near-symmetric matrix a into a
// mat.SymDense by averaging a[i,j] and a[j,i]. Spectral routines require a
// mat.Symmetric input; products like XᵀX are symmetric only up to rounding,
// and the averaging removes that drift.
//
// Returns ErrNilMatrix, ErrEmptyMatrix, or ErrNonSquare.
// Complexity: O(n²); Memory: O(n²).
func Symmetrize(a mat.Matrix) (*mat.SymDense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}
	if r != c {
		return nil, ErrNonSquare
	}

	s := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			s.SetSym(i, j, 0.5*(a.At(i, j)+a.At(j, i)))
		}
	}

	return s, nil
}
