// Package selection: Gram–Schmidt column deflation.
//
// Both strategies call deflate after every selection round so that the next
// score computation ignores information already captured by prior picks.
// PCovR additionally calls deflateProperties to keep Y consistent with the
// residual of the working matrix.

package selection

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/vtraverse/curmat/linalg"
)

// deflate projects the direction of column j out of every column of work,
// in place. The chosen column is normalized to v = work[:,j]/‖work[:,j]‖ and
// each column i (including j itself, which becomes zero) is updated as
// work[:,i] -= v·(vᵀ·work[:,i]).
//
// A zero-norm column cannot define a direction: deflate returns ErrZeroColumn
// instead of dividing by zero.
// Complexity: O(r·c); Memory: O(r) scratch.
func deflate(work *mat.Dense, j int) error {
	_, c := work.Dims()

	v := mat.Col(nil, j, work)
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return fmt.Errorf("deflate: column %d: %w", j, ErrZeroColumn)
	}
	floats.Scale(1/norm, v)

	col := make([]float64, len(v))
	for i := 0; i < c; i++ {
		mat.Col(col, i, work)
		floats.AddScaled(col, -floats.Dot(v, col), v)
		work.SetCol(i, col)
	}

	return nil
}

// deflateProperties regresses y on the selected columns xc and returns the
// residual Y - H·Y, where H = xc·(xcᵀ·xc)⁺·xcᵀ is the ordinary-least-squares
// hat matrix. The input y is left untouched; the caller owns the only working
// copies.
//
// The pseudoinverse absorbs the near-singular Gram matrices that arise when
// xc holds already-deflated columns.
// Complexity: dominated by the Gram pseudoinverse, O(k²·r + k³) for k
// selected columns; Memory: O(r²) for the hat matrix.
func deflateProperties(y *mat.Dense, xc mat.Matrix) (*mat.Dense, error) {
	var gram mat.Dense
	gram.Mul(xc.T(), xc)

	ginv, err := linalg.PInv(&gram)
	if err != nil {
		return nil, fmt.Errorf("deflateProperties: %w", err)
	}

	var hat mat.Dense
	hat.Product(xc, ginv, xc.T())

	var hy mat.Dense
	hy.Mul(&hat, y)

	res := mat.DenseCopyOf(y)
	res.Sub(res, &hy)

	return res, nil
}
