// Package selection: the Strategy extension point and shared scoring helpers.

package selection

import "gonum.org/v1/gonum/mat"

// Defaults — single source of truth for strategy zero-value behavior.
const (
	// DefaultRank is the truncation rank used when a strategy is built with
	// K == 0: importance is scored against the single leading component.
	DefaultRank = 1

	// DefaultRegularization is the eigenvalue floor for the PCovR covariance
	// when Regularization == 0.
	DefaultRegularization = 1e-6

	// RankTolerance decides rank exhaustion: a selection round stops when the
	// leading singular value of the deflated working matrix falls to or below
	// RankTolerance times the Frobenius norm of the original input.
	RankTolerance = 1e-12
)

// Strategy selects an ordered list of column indices from a matrix.
//
// Contract:
//   - The returned list begins with exactly the resume prefix; deflation is
//     replayed over the prefix so the working state matches a single longer
//     run. Select(a, n, Select(a, m, nil)) == Select(a, n, nil) for m <= n.
//   - The result never contains duplicates and never exceeds the column count.
//   - On rank exhaustion the partial list is returned with a nil error;
//     callers detect the shortfall as len(result) < n.
//   - The input matrix is never mutated; strategies work on private copies.
//
// Implementations must be deterministic for fixed inputs. Ties on the
// importance score break toward the lowest index.
type Strategy interface {
	Select(a mat.Matrix, n int, resume []int) ([]int, error)
}

// appendResume returns a fresh slice seeded with the resume prefix, sized to
// grow to n without reallocating.
func appendResume(resume []int, n int) []int {
	capacity := len(resume)
	if n > capacity {
		capacity = n
	}
	idxs := make([]int, len(resume), capacity)
	copy(idxs, resume)

	return idxs
}

// squaredRowSums scores column j as the sum over the first k columns of vecs
// of vecs[j,t]², i.e. the squared weight of the column in the leading
// components. vecs must have at least k columns.
func squaredRowSums(vecs *mat.Dense, k int) []float64 {
	rows, _ := vecs.Dims()
	scores := make([]float64, rows)
	for j := 0; j < rows; j++ {
		var s float64
		for t := 0; t < k; t++ {
			v := vecs.At(j, t)
			s += v * v
		}
		scores[j] = s
	}

	return scores
}

// argmaxNew returns the index of the largest score among columns not yet
// selected, or -1 when every unselected score is zero (nothing informative
// remains). Ties break toward the lowest index: the scan is a fixed ascending
// loop and only a STRICTLY greater score displaces the current best.
func argmaxNew(scores []float64, taken []int) int {
	for _, j := range taken {
		scores[j] = 0 // eliminate re-selection
	}

	best, bestScore := -1, 0.0
	for j, s := range scores {
		if s > bestScore {
			best, bestScore = j, s
		}
	}

	return best
}
