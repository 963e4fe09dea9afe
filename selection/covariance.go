// Package selection: PCovR-modified covariance construction.
//
// Purpose:
//   - Build the blended covariance C = alpha·XᵀX + (1-alpha)·C_lr that PCovR
//     scores columns against. The supervised part C_lr projects the feature
//     covariance onto the regression solution for Y, matched in scale to the
//     PCA covariance through the truncated matrix square root of XᵀX.
//
// Numerical policy:
//   - The eigendecomposition of XᵀX is truncated STRICTLY above the
//     regularization floor; square root and pseudoinverse are built only from
//     the surviving eigenpairs. An emptied spectrum is ErrRankDeficient.

package selection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/vtraverse/curmat/linalg"
)

// pcovrCovariance builds the PCovR covariance of x (rows = samples, columns =
// features) against the property matrix y with mixing weight alpha.
//
// alpha=1 reduces to the plain feature covariance XᵀX (pure PCA); alpha=0 is
// fully supervised. Returns ErrRankDeficient when no eigenvalue of XᵀX lies
// strictly above regularization.
// Complexity: O(c³) eigendecomposition + dense products; Memory: O(c²).
func pcovrCovariance(x, y *mat.Dense, alpha, regularization float64) (*mat.SymDense, error) {
	// Stage 1: plain feature covariance cov = XᵀX.
	var cov mat.Dense
	cov.Mul(x.T(), x)

	sym, err := linalg.Symmetrize(&cov)
	if err != nil {
		return nil, fmt.Errorf("pcovrCovariance: %w", err)
	}

	// Stage 2: regularized spectrum of cov; strict threshold.
	vals, vecs, err := linalg.SortedEig(sym, linalg.EigThreshold(regularization))
	if err != nil {
		return nil, fmt.Errorf("pcovrCovariance: %w", err)
	}
	if len(vals) == 0 {
		return nil, ErrRankDeficient
	}

	// Stage 3: truncated square root and pseudoinverse of cov,
	// Csqrt = U·diag(√v)·Uᵀ and Cinv = U·diag(1/v)·Uᵀ.
	csqrt := spectralApply(vals, vecs, math.Sqrt)
	cinv := spectralApply(vals, vecs, func(v float64) float64 { return 1 / v })

	// Stage 4: supervised covariance C_lr = (Csqrt·Cinv·XᵀY)·(·)ᵀ.
	var xty mat.Dense
	xty.Mul(x.T(), y)

	var proj mat.Dense
	proj.Product(csqrt, cinv, &xty)

	var clr mat.Dense
	clr.Mul(&proj, proj.T())

	// Stage 5: blend and symmetrize.
	n, _ := cov.Dims()
	c := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			pca := 0.5 * (cov.At(i, j) + cov.At(j, i))
			lr := 0.5 * (clr.At(i, j) + clr.At(j, i))
			c.SetSym(i, j, alpha*pca+(1-alpha)*lr)
		}
	}

	return c, nil
}

// spectralApply builds U·diag(f(v))·Uᵀ from sorted eigenpairs.
// Complexity: O(n²·k) for k surviving pairs.
func spectralApply(vals []float64, vecs *mat.Dense, f func(float64) float64) *mat.Dense {
	k := len(vals)
	d := mat.NewDense(k, k, nil)
	for i, v := range vals {
		d.Set(i, i, f(v))
	}

	var out mat.Dense
	out.Product(vecs, d, vecs.T())

	return &out
}
