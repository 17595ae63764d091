package corr_test

import (
	"fmt"

	"github.com/katalvlaran/sparsecorr/corr"
	"github.com/katalvlaran/sparsecorr/csc"
)

// ExamplePearson correlates the first two columns of
//
//	[1 2 0 3]
//	[2 1 0 0]
//	[0 0 1 0]
//
// Both columns have mean 1 and variance 2/3. Rows 0 and 1 contribute 0 to the
// co-moment, row 2 (zero in both) contributes 1·1, so r = 1 / (3·2/3) = 0.5.
func ExamplePearson() {
	m, err := csc.FromDense([][]float64{
		{1, 2, 0, 3},
		{2, 1, 0, 0},
		{0, 0, 1, 0},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	r, err := corr.Pearson(m, 0, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("r=%.4f\n", r)
	// Output:
	// r=0.5000
}

// ExampleIsUndefined shows the sentinel for a constant column.
func ExampleIsUndefined() {
	m, _ := csc.FromDense([][]float64{
		{7, 1},
		{7, 0},
	})
	r, _ := corr.Pearson(m, 0, 1)
	fmt.Println(corr.IsUndefined(r))

	s, _ := corr.Describe(m, 1)
	fmt.Printf("mean=%.1f var=%.2f stored=%d\n", s.Mean, s.Variance, s.Stored)
	// Output:
	// true
	// mean=0.5 var=0.25 stored=1
}
