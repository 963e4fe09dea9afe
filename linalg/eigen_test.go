package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/vtraverse/curmat/linalg"
)

// diagSym builds a symmetric matrix with the given diagonal.
func diagSym(d ...float64) *mat.SymDense {
	s := mat.NewSymDense(len(d), nil)
	for i, v := range d {
		s.SetSym(i, i, v)
	}

	return s
}

// TestSortedEig_NilAndEmpty verifies the input guards.
func TestSortedEig_NilAndEmpty(t *testing.T) {
	_, _, err := linalg.SortedEig(nil)
	assert.ErrorIs(t, err, linalg.ErrNilMatrix, "nil input must error ErrNilMatrix")

	_, _, err = linalg.SortedEig(&mat.SymDense{})
	assert.ErrorIs(t, err, linalg.ErrEmptyMatrix, "empty input must error ErrEmptyMatrix")
}

// TestSortedEig_DescendingOrder verifies that eigenvalues come back sorted
// largest first, with eigenvector columns matching the reorder.
func TestSortedEig_DescendingOrder(t *testing.T) {
	vals, vecs, err := linalg.SortedEig(diagSym(3, 1, 2))
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{3, 2, 1}, vals, 1e-12, "eigenvalues must be descending")

	// For a diagonal matrix the eigenvectors are signed unit vectors; the
	// column paired with eigenvalue 3 must load entirely on coordinate 0.
	r, c := vecs.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	assert.InDelta(t, 1.0, vecs.At(0, 0)*vecs.At(0, 0), 1e-12, "leading eigenvector must be e_0 up to sign")
}

// TestSortedEig_ThresholdIsStrict verifies that EigThreshold drops pairs with
// eigenvalue exactly equal to the threshold, not only those below it.
func TestSortedEig_ThresholdIsStrict(t *testing.T) {
	vals, vecs, err := linalg.SortedEig(diagSym(3, 1, 2), linalg.EigThreshold(2))
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{3}, vals, 1e-9, "value == threshold must be dropped")
	_, c := vecs.Dims()
	assert.Equal(t, 1, c, "one eigenvector must survive")
}

// TestSortedEig_Top verifies top-n truncation and clamping beyond the spectrum.
func TestSortedEig_Top(t *testing.T) {
	vals, _, err := linalg.SortedEig(diagSym(5, 4, 3, 2), linalg.EigTop(2))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 4}, vals, 1e-12, "top-2 must keep the two largest")

	vals, _, err = linalg.SortedEig(diagSym(5, 4), linalg.EigTop(10))
	require.NoError(t, err)
	assert.Len(t, vals, 2, "top-n beyond the spectrum must clamp")
}

// TestSortedEig_AllFiltered verifies that filtering every pair yields empty
// slices with a nil error; the caller decides whether that is fatal.
func TestSortedEig_AllFiltered(t *testing.T) {
	vals, _, err := linalg.SortedEig(diagSym(1e-9, 1e-10), linalg.EigThreshold(1e-6))
	require.NoError(t, err)
	assert.Empty(t, vals, "an emptied spectrum is not an error here")
}

// TestSortedEig_BadOptionPanics verifies option constructors reject
// programmer errors loudly.
func TestSortedEig_BadOptionPanics(t *testing.T) {
	assert.Panics(t, func() { linalg.EigTop(0) }, "EigTop(0) must panic")
}

// TestSymmetrize_Guards covers nil, empty and non-square inputs.
func TestSymmetrize_Guards(t *testing.T) {
	_, err := linalg.Symmetrize(nil)
	assert.ErrorIs(t, err, linalg.ErrNilMatrix)

	_, err = linalg.Symmetrize(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, linalg.ErrNonSquare)
}

// TestSymmetrize_Averages verifies the off-diagonal averaging.
func TestSymmetrize_Averages(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 4, 3})

	s, err := linalg.Symmetrize(a)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, s.At(0, 1), 1e-15, "off-diagonal must be the mean of a[0,1] and a[1,0]")
	assert.InDelta(t, 3.0, s.At(1, 0), 1e-15)
}
