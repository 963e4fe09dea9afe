// Package cur: one-shot reconstruction from explicit index sets.

package cur

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/vtraverse/curmat/linalg"
)

// Approximate reconstructs a from the caller-chosen column and row index
// sets, with no selection involved: A_c = a[:, colIdx], A_r = a[rowIdx, :],
// S = A_c⁺·a·A_r⁺, result A_c·S·A_r. A nil or empty rowIdx keeps every row
// (the feature-compression case: A_r = a).
//
// Useful for evaluating an index choice produced elsewhere, e.g. a selection
// transferred from a related matrix.
//
// Returns ErrNilMatrix, ErrEmptyMatrix, ErrBadIndices, or a wrapped linalg
// error.
func Approximate(a mat.Matrix, colIdx, rowIdx []int) (*mat.Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := a.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyMatrix
	}
	if err := validateIndices(colIdx, cols); err != nil {
		return nil, err
	}
	if err := validateIndices(rowIdx, rows); err != nil {
		return nil, err
	}
	if len(colIdx) == 0 {
		return nil, ErrBadIndices
	}

	ad := mat.DenseCopyOf(a)
	ac := takeColumns(ad, colIdx)

	var ar *mat.Dense
	if len(rowIdx) == 0 {
		ar = ad
	} else {
		ar = takeRows(ad, rowIdx)
	}

	pc, err := linalg.PInv(ac)
	if err != nil {
		return nil, fmt.Errorf("Approximate: pinv(A_c): %w", err)
	}
	pr, err := linalg.PInv(ar)
	if err != nil {
		return nil, fmt.Errorf("Approximate: pinv(A_r): %w", err)
	}

	var s, recon mat.Dense
	s.Product(pc, ad, pr)
	recon.Product(ac, &s, ar)

	return &recon, nil
}

// validateIndices ensures idx holds distinct values inside [0, bound).
func validateIndices(idx []int, bound int) error {
	seen := make(map[int]struct{}, len(idx))
	for _, j := range idx {
		if j < 0 || j >= bound {
			return ErrBadIndices
		}
		if _, dup := seen[j]; dup {
			return ErrBadIndices
		}
		seen[j] = struct{}{}
	}

	return nil
}
