package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/vtraverse/curmat/linalg"
)

// TestPInv_Guards covers nil input.
func TestPInv_Guards(t *testing.T) {
	_, err := linalg.PInv(nil)
	assert.ErrorIs(t, err, linalg.ErrNilMatrix)
}

// TestPInv_Identity verifies that the pseudoinverse of the identity is the
// identity.
func TestPInv_Identity(t *testing.T) {
	eye := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		eye.Set(i, i, 1)
	}

	p, err := linalg.PInv(eye)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, mat.Norm(sub(p, eye), 2), 1e-12, "I⁺ must equal I")
}

// TestPInv_MoorePenroseRoundTrip verifies A·A⁺·A ≈ A on a rectangular,
// rank-deficient matrix (column 2 duplicates column 0).
func TestPInv_MoorePenroseRoundTrip(t *testing.T) {
	a := mat.NewDense(4, 3, []float64{
		1, 2, 1,
		0, 1, 0,
		3, 0, 3,
		1, 1, 1,
	})

	p, err := linalg.PInv(a)
	require.NoError(t, err)

	pr, pc := p.Dims()
	assert.Equal(t, 3, pr, "pseudoinverse has transposed shape")
	assert.Equal(t, 4, pc)

	var apa mat.Dense
	apa.Product(a, p, a)
	assert.InDelta(t, 0.0, mat.Norm(sub(&apa, a), 2), 1e-10, "A·A⁺·A must reproduce A")
}

// TestPInv_ZeroMatrix verifies the all-zero edge case returns the zero matrix
// of transposed shape instead of an error.
func TestPInv_ZeroMatrix(t *testing.T) {
	p, err := linalg.PInv(mat.NewDense(2, 3, nil))
	require.NoError(t, err)

	r, c := p.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.InDelta(t, 0.0, mat.Norm(p, 2), 0, "zero matrix pseudoinverse is zero")
}

// sub is a test helper returning a-b as a fresh matrix.
func sub(a, b mat.Matrix) *mat.Dense {
	var d mat.Dense
	d.Sub(a, b)

	return &d
}
