// Package selection: SVD leverage-score strategy.

package selection

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/vtraverse/curmat/linalg"
)

// SVDLeverage selects columns by statistical leverage: each round scores
// column j by the sum of squared components of the top-K right-singular
// vectors of the deflated working matrix, picks the argmax, and deflates.
//
// Fields:
//   - K — truncation rank for the score; 0 means DefaultRank.
//
// The zero value is ready to use and scores against the single leading
// singular vector.
type SVDLeverage struct {
	K int
}

// NewSVDLeverage returns an SVDLeverage scoring against the k leading
// singular vectors. Returns ErrBadRank for k < 1.
func NewSVDLeverage(k int) (*SVDLeverage, error) {
	if k < 1 {
		return nil, ErrBadRank
	}

	return &SVDLeverage{K: k}, nil
}

// Select returns n column indices of a, extending the resume prefix.
// See the Strategy contract for resume, tie-break and rank-exhaustion
// semantics.
//
// Returns ErrNilMatrix, ErrEmptyMatrix, ErrBadCount, ErrBadRank,
// ErrBadResume, ErrZeroColumn, or a wrapped linalg error.
// Complexity: O(n · SVD(r,c)); Memory: O(r·c) for the working copy.
func (s *SVDLeverage) Select(a mat.Matrix, n int, resume []int) ([]int, error) {
	if err := validateMatrix(a); err != nil {
		return nil, err
	}
	if err := validateCount(n); err != nil {
		return nil, err
	}
	_, cols := a.Dims()
	if err := validateResume(resume, cols); err != nil {
		return nil, err
	}
	k := s.K
	if k == 0 {
		k = DefaultRank
	}
	if k < 1 {
		return nil, ErrBadRank
	}

	work := mat.DenseCopyOf(a)
	scale := mat.Norm(work, 2) // exhaustion baseline, fixed for the whole run
	idxs := appendResume(resume, n)

	for nn := 0; nn < n; nn++ {
		if nn >= len(idxs) {
			if len(idxs) == cols {
				break // every column already selected
			}

			sigma, right, err := linalg.TruncatedSVD(work, k)
			if err != nil {
				return nil, fmt.Errorf("SVDLeverage.Select: %w", err)
			}
			if sigma[0] <= RankTolerance*scale {
				break // residual spectrum numerically empty: partial result
			}

			j := argmaxNew(squaredRowSums(right, len(sigma)), idxs)
			if j < 0 {
				break
			}
			idxs = append(idxs, j)
		}

		if err := deflate(work, idxs[nn]); err != nil {
			return nil, fmt.Errorf("SVDLeverage.Select: %w", err)
		}
	}

	return idxs, nil
}
