// Package selection: PCovR hybrid strategy.

package selection

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/vtraverse/curmat/linalg"
)

// PCovR selects columns against the Principal Covariates Regression
// covariance: each round builds C = alpha·XᵀX + (1-alpha)·C_lr from the
// deflated working copies of the matrix and the property matrix Y, scores
// column j by its squared weight in the top-K eigenvectors of C, picks the
// argmax, deflates the working matrix, and replaces the working Y with its
// residual after regressing on the columns selected so far.
//
// Fields:
//   - Y — property matrix, one row per sample of the data matrix (required).
//   - Alpha — mixing weight in [0, 1]; 1 is pure PCA, 0 fully supervised.
//   - K — truncation rank for the score; 0 means DefaultRank.
//   - Regularization — eigenvalue floor for the covariance spectrum;
//     0 means DefaultRegularization.
//
// Construct through NewPCovR to fail fast on misconfiguration; Select
// re-validates, so a hand-built value is also safe.
type PCovR struct {
	Y              *mat.Dense
	Alpha          float64
	K              int
	Regularization float64
}

// PCovROption tweaks optional PCovR knobs at construction.
type PCovROption func(*PCovR)

// PCovRRank sets the score truncation rank. Panics if k <= 0 (programmer error).
func PCovRRank(k int) PCovROption {
	if k <= 0 {
		panic("selection: PCovRRank: k must be positive")
	}

	return func(p *PCovR) { p.K = k }
}

// PCovRRegularization sets the covariance eigenvalue floor. Panics on a
// negative or non-finite floor (programmer error).
func PCovRRegularization(reg float64) PCovROption {
	if reg < 0 || math.IsNaN(reg) || math.IsInf(reg, 0) {
		panic("selection: PCovRRegularization: floor must be finite and non-negative")
	}

	return func(p *PCovR) { p.Regularization = reg }
}

// NewPCovR returns a PCovR strategy over the property matrix y with mixing
// weight alpha. Misconfiguration fails here, not at first use:
// ErrMissingProperty for a nil or empty y, ErrBadAlpha for alpha outside [0,1].
func NewPCovR(y *mat.Dense, alpha float64, opts ...PCovROption) (*PCovR, error) {
	p := &PCovR{Y: y, Alpha: alpha}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// validate checks the configured fields; used by NewPCovR and Select.
func (p *PCovR) validate() error {
	if p.Y == nil {
		return ErrMissingProperty
	}
	if r, c := p.Y.Dims(); r == 0 || c == 0 {
		return ErrMissingProperty
	}
	if math.IsNaN(p.Alpha) || p.Alpha < 0 || p.Alpha > 1 {
		return ErrBadAlpha
	}
	if p.K < 0 {
		return ErrBadRank
	}

	return nil
}

// Select returns n column indices of a, extending the resume prefix.
// See the Strategy contract for resume, tie-break and rank-exhaustion
// semantics. When covariance construction hits the regularization floor
// (fewer informative features than requested remain), the indices gathered so
// far are returned with a nil error.
//
// Returns ErrNilMatrix, ErrEmptyMatrix, ErrBadCount, ErrBadResume,
// ErrMissingProperty, ErrBadAlpha, ErrDimensionMismatch, ErrZeroColumn, or a
// wrapped linalg error.
// Complexity: O(n · c³) covariance spectra; Memory: O(r·c) working copies.
func (p *PCovR) Select(a mat.Matrix, n int, resume []int) ([]int, error) {
	if err := validateMatrix(a); err != nil {
		return nil, err
	}
	if err := validateCount(n); err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	rows, cols := a.Dims()
	if yr, _ := p.Y.Dims(); yr != rows {
		return nil, fmt.Errorf("PCovR.Select: Y has %d rows, matrix has %d: %w", yr, rows, ErrDimensionMismatch)
	}
	if err := validateResume(resume, cols); err != nil {
		return nil, err
	}

	k := p.K
	if k == 0 {
		k = DefaultRank
	}
	reg := p.Regularization
	if reg == 0 {
		reg = DefaultRegularization
	}

	work := mat.DenseCopyOf(a)
	ywork := mat.DenseCopyOf(p.Y)
	idxs := appendResume(resume, n)

	for nn := 0; nn < n; nn++ {
		if nn >= len(idxs) {
			if len(idxs) == cols {
				break
			}

			ct, err := pcovrCovariance(work, ywork, p.Alpha, reg)
			if errors.Is(err, ErrRankDeficient) {
				break // fewer informative features than requested: partial result
			}
			if err != nil {
				return nil, fmt.Errorf("PCovR.Select: %w", err)
			}

			_, vecs, err := linalg.SortedEig(ct, linalg.EigTop(k))
			if err != nil {
				return nil, fmt.Errorf("PCovR.Select: %w", err)
			}
			_, kk := vecs.Dims()

			j := argmaxNew(squaredRowSums(vecs, kk), idxs)
			if j < 0 {
				break
			}
			idxs = append(idxs, j)
		}

		if err := deflate(work, idxs[nn]); err != nil {
			return nil, fmt.Errorf("PCovR.Select: %w", err)
		}

		// Re-fit the property residual on the columns selected through this
		// round, taken from the original matrix. The deflated copy is useless
		// here: each selected column is zeroed by its own deflation round.
		next, err := p.updateProperties(ywork, a, idxs[:nn+1])
		if err != nil {
			return nil, fmt.Errorf("PCovR.Select: %w", err)
		}
		ywork = next
	}

	return idxs, nil
}

// updateProperties wraps deflateProperties over the selected source columns.
func (p *PCovR) updateProperties(ywork *mat.Dense, src mat.Matrix, selected []int) (*mat.Dense, error) {
	rows, _ := src.Dims()
	xc := mat.NewDense(rows, len(selected), nil)
	col := make([]float64, rows)
	for t, j := range selected {
		mat.Col(col, j, src)
		xc.SetCol(t, col)
	}

	return deflateProperties(ywork, xc)
}
