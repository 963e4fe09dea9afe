// Package cur: the CUR orchestrator.
//
// State machine:
//   - uninitialized (no cached indices) → covers(n) for growing n.
//   - Every transition either reuses a sufficient cache or extends it
//     monotonically; a cached prefix is never recomputed or shrunk, which is
//     what makes selection resumable and deterministic.

package cur

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/vtraverse/curmat/linalg"
	"github.com/vtraverse/curmat/selection"
)

// CUR owns a private copy of the input matrix, the selection strategy, the
// resumable index caches and the latest projector. The zero value is not
// usable; construct with New. Not safe for concurrent use of a single
// instance; independent instances may run in parallel.
type CUR struct {
	a          *mat.Dense
	rows, cols int

	strategy      selection.Strategy
	symmetric     bool
	featureSelect bool

	idxC, idxR []int
	projector  *mat.Dense
}

// New wraps matrix a for CUR decomposition. The input is copied once and
// never mutated afterwards. Symmetry is detected here, entrywise
// |a-aᵀ| <= tolerance, and governs whether row selection reuses the column
// selection.
//
// Returns ErrNilMatrix, ErrEmptyMatrix, ErrNilStrategy, or any selection
// error raised by a WithPrecompute request.
func New(a mat.Matrix, opts ...Option) (*CUR, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := a.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyMatrix
	}

	o := gatherOptions(opts)
	if o.strategy == nil {
		return nil, ErrNilStrategy
	}

	c := &CUR{
		a:             mat.DenseCopyOf(a),
		rows:          rows,
		cols:          cols,
		strategy:      o.strategy,
		symmetric:     isSymmetric(a, o.symTolerance),
		featureSelect: o.featureSelect,
	}

	if o.precomputeCols > 0 {
		if _, _, err := c.ComputeIndices(o.precomputeCols, o.precomputeRows); err != nil {
			return nil, fmt.Errorf("New: precompute: %w", err)
		}
	}

	return c, nil
}

// Symmetric reports whether the input was detected as symmetric within the
// configured tolerance.
func (c *CUR) Symmetric() bool { return c.symmetric }

// Indices returns copies of the currently cached column and row indices, in
// selection order. Both are nil before the first compute.
func (c *CUR) Indices() (idxC, idxR []int) {
	return cloneInts(c.idxC), cloneInts(c.idxR)
}

// LastProjector returns the projector from the most recent Projector call,
// or nil when none has been computed yet.
func (c *CUR) LastProjector() *mat.Dense { return c.projector }

// ComputeIndices extends the cached index lists so they cover nc columns and
// nr rows, running the selection strategy as needed. Columns are always
// selected on A; rows on Aᵀ unless symmetry lets them alias the column
// selection, or feature-select mode replaces them with the full column range.
//
// The returned slices are copies; they may be shorter than requested when the
// strategy exhausted the numerical rank (see the Strategy contract).
func (c *CUR) ComputeIndices(nc, nr int) (idxC, idxR []int, err error) {
	if nc <= 0 {
		return nil, nil, ErrBadCount
	}

	selC, err := c.strategy.Select(c.a, nc, c.idxC)
	if err != nil {
		return nil, nil, fmt.Errorf("ComputeIndices: columns: %w", err)
	}
	c.idxC = selC

	switch {
	case c.featureSelect:
		c.idxR = fullRange(c.cols)
	case c.symmetric:
		c.idxR = cloneInts(c.idxC)
	default:
		if nr <= 0 {
			return nil, nil, ErrRowCountRequired
		}
		selR, err := c.strategy.Select(c.a.T(), nr, c.idxR)
		if err != nil {
			return nil, nil, fmt.Errorf("ComputeIndices: rows: %w", err)
		}
		c.idxR = selR
	}

	return cloneInts(c.idxC), cloneInts(c.idxR), nil
}

// Compute returns the decomposition triple (A_c, S, A_r) for nc selected
// columns and nr selected rows. nr == 0 means "unspecified": it resolves to
// the full column range in feature-select mode, to nc for symmetric input,
// to the cached row selection when one exists, and is ErrRowCountRequired
// otherwise.
//
// Cached indices are reused when they already cover the request and extended
// monotonically when they don't. Counts clamp to the indices actually
// available, so a selection shortened by rank exhaustion stays usable. The
// triple itself is recomputed on every call; it is cheap next to selection.
func (c *CUR) Compute(nc, nr int) (ac, s, ar *mat.Dense, err error) {
	nc, nr, err = c.resolveCounts(nc, nr)
	if err != nil {
		return nil, nil, nil, err
	}

	// Extend the cache only when it falls short of the request.
	if len(c.idxC) < nc || c.idxR == nil || (!c.featureSelect && len(c.idxR) < nr) {
		if _, _, err = c.ComputeIndices(nc, nr); err != nil {
			return nil, nil, nil, err
		}
	}

	// Clamp to what selection could actually provide.
	if nc > len(c.idxC) {
		nc = len(c.idxC)
	}
	if nr > len(c.idxR) {
		nr = len(c.idxR)
	}

	ac = takeColumns(c.a, c.idxC[:nc])

	switch {
	case c.featureSelect:
		ar = mat.DenseCopyOf(c.a)
	case c.symmetric:
		ar = mat.DenseCopyOf(ac.T())
	default:
		ar = takeRows(c.a, c.idxR[:nr])
	}

	pc, err := linalg.PInv(ac)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("Compute: pinv(A_c): %w", err)
	}
	pr, err := linalg.PInv(ar)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("Compute: pinv(A_r): %w", err)
	}

	var mid mat.Dense
	mid.Product(pc, c.a, pr)

	return ac, &mid, ar, nil
}

// Loss returns the relative Frobenius reconstruction error
// ‖A - A_c·S·A_r‖ / ‖A‖ for the given selection sizes. It is monotonically
// non-increasing as the counts grow; sweep it to pick a target rank.
func (c *CUR) Loss(nc, nr int) (float64, error) {
	ac, s, ar, err := c.Compute(nc, nr)
	if err != nil {
		return 0, err
	}

	var recon mat.Dense
	recon.Product(ac, s, ar)
	recon.Sub(c.a, &recon)

	return mat.Norm(&recon, 2) / mat.Norm(c.a, 2), nil
}

// Projector computes the latent-space embedding for nc selected columns:
// with SA = S·A_r, the symmetric matrix SA·SAᵀ is eigendecomposed, eigenvalues
// below ProjectorThreshold are zeroed, and the result U·diag(√v) maps data
// expressed in A_r's column space into the learned subspace. The projector is
// stored on the instance and overwritten by subsequent calls.
//
// Row counts resolve as in Compute with nr unspecified, so non-symmetric
// input outside feature-select mode needs its rows chosen beforehand.
func (c *CUR) Projector(nc int) (*mat.Dense, error) {
	_, s, ar, err := c.Compute(nc, 0)
	if err != nil {
		return nil, err
	}

	var sa mat.Dense
	sa.Mul(s, ar)

	var g mat.Dense
	g.Mul(&sa, sa.T())

	sym, err := linalg.Symmetrize(&g)
	if err != nil {
		return nil, fmt.Errorf("Projector: %w", err)
	}
	vals, vecs, err := linalg.SortedEig(sym)
	if err != nil {
		return nil, fmt.Errorf("Projector: %w", err)
	}

	// U·diag(√v) with near-null eigenvalues zeroed.
	n := len(vals)
	d := mat.NewDense(n, n, nil)
	for i, v := range vals {
		if v >= ProjectorThreshold {
			d.Set(i, i, math.Sqrt(v))
		}
	}

	var p mat.Dense
	p.Mul(vecs, d)
	c.projector = &p

	return &p, nil
}

// resolveCounts applies the mode rules for an unspecified row count and
// validates the column count.
func (c *CUR) resolveCounts(nc, nr int) (int, int, error) {
	if nc <= 0 {
		return 0, 0, ErrBadCount
	}
	switch {
	case c.featureSelect:
		nr = c.cols
	case nr == 0 && c.symmetric:
		nr = nc
	case nr == 0 && len(c.idxR) > 0:
		nr = len(c.idxR) // fall back to the rows already selected
	case nr <= 0:
		return 0, 0, ErrRowCountRequired
	}

	return nc, nr, nil
}

// isSymmetric reports whether a is square with entrywise |a-aᵀ| <= tol.
func isSymmetric(a mat.Matrix, tol float64) bool {
	r, c := a.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			if math.Abs(a.At(i, j)-a.At(j, i)) > tol {
				return false
			}
		}
	}

	return true
}

// takeColumns builds the column-restricted factor A[:, idx].
func takeColumns(a *mat.Dense, idx []int) *mat.Dense {
	rows, _ := a.Dims()
	out := mat.NewDense(rows, len(idx), nil)
	col := make([]float64, rows)
	for t, j := range idx {
		mat.Col(col, j, a)
		out.SetCol(t, col)
	}

	return out
}

// takeRows builds the row-restricted factor A[idx, :].
func takeRows(a *mat.Dense, idx []int) *mat.Dense {
	_, cols := a.Dims()
	out := mat.NewDense(len(idx), cols, nil)
	row := make([]float64, cols)
	for t, i := range idx {
		mat.Row(row, i, a)
		out.SetRow(t, row)
	}

	return out
}

// fullRange returns [0, n).
func fullRange(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}

	return r
}

// cloneInts returns a copy of s, preserving nil.
func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}
