package cur_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/vtraverse/curmat/cur"
	"github.com/vtraverse/curmat/selection"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Decompose a 4×4 symmetric matrix whose diagonal carries clearly
//	separated scales (3.0, 2.0, 1.5, 1.0) plus tiny symmetric noise.
//	Leverage selection must pick the dominant feature first, then the
//	runner-up, and the symmetric shortcut reuses the column choice for rows.
//
// Use case:
//
//	Kernel or covariance matrices where selected columns correspond to
//	physically meaningful reference samples.
func ExampleNew() {
	a := mat.NewDense(4, 4, []float64{
		3.00, 0.02, 0.01, 0.00,
		0.02, 1.00, 0.03, 0.01,
		0.01, 0.03, 2.00, 0.02,
		0.00, 0.01, 0.02, 1.50,
	})

	c, err := cur.New(a)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if _, _, err := c.ComputeIndices(2, 0); err != nil {
		fmt.Println("error:", err)

		return
	}
	idxC, idxR := c.Indices()

	l1, _ := c.Loss(1, 0)
	l2, _ := c.Loss(2, 0)

	fmt.Println("symmetric:", c.Symmetric())
	fmt.Println("columns:", idxC)
	fmt.Println("rows mirror columns:", idxR[0] == idxC[0] && idxR[1] == idxC[1])
	fmt.Println("loss shrinks:", l2 < l1)
	// Output:
	// symmetric: true
	// columns: [0 2]
	// rows mirror columns: true
	// loss shrinks: true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCUR_Loss
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Feature compression of a tall 6×4 matrix: sweep the selection size and
//	watch the relative reconstruction error collapse once the selected
//	columns span the column space.
//
// Use case:
//
//	Choosing how many features to keep before training a downstream model.
func ExampleCUR_Loss() {
	a := mat.NewDense(6, 4, []float64{
		4, 1, 0, 2,
		1, 5, 1, 0,
		0, 1, 6, 1,
		2, 0, 1, 3,
		1, 2, 0, 1,
		3, 1, 2, 0,
	})

	c, err := cur.New(a, cur.WithFeatureSelect())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	l1, _ := c.Loss(1, 0)
	l4, _ := c.Loss(4, 0)
	fmt.Println("one column is lossy:", l1 > 0.1)
	fmt.Println("full selection reconstructs:", l4 < 1e-9)
	// Output:
	// one column is lossy: true
	// full selection reconstructs: true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleWithStrategy — PCovR-guided selection
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Column 0 dominates the variance, but the property Y is exactly column 2.
//	A fully supervised PCovR (alpha=0) must promote the Y-aligned feature,
//	while alpha=1 degenerates to plain leverage selection.
//
// Use case:
//
//	Selecting features that matter for a prediction target, not only for
//	reconstructing the data matrix.
func ExampleWithStrategy() {
	a := mat.NewDense(5, 4, []float64{
		8, 1, 1, 0,
		0, 0, 3, 1,
		8, 1, 1, 1,
		-6, 0, 4, 0,
		0, 2, 1, 1,
	})
	y := mat.NewDense(5, 1, []float64{1, 3, 1, 4, 1})

	supervised, err := selection.NewPCovR(y, 0.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	c, err := cur.New(a, cur.WithStrategy(supervised), cur.WithFeatureSelect())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	idxC, _, err := c.ComputeIndices(1, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("first supervised pick:", idxC)
	// Output:
	// first supervised pick: [2]
}
