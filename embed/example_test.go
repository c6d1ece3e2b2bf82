package embed_test

import (
	"fmt"

	"github.com/katalvlaran/mixcluster/embed"
	"github.com/katalvlaran/mixcluster/frame"
)

// ExampleExplainedVarianceRatios demonstrates the scree diagnostics on
// perfectly collinear data: the first principal component explains all
// variance, so a 2D projection loses nothing.
func ExampleExplainedVarianceRatios() {
	f, err := frame.New(
		[]string{"a", "b", "c", "d", "e"},
		[]string{"x", "y"},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, s := range []float64{-2, -1, 0, 1, 2} {
		_ = f.Set(i, 0, s)
		_ = f.Set(i, 1, 2*s)
	}

	ratios, err := embed.ExplainedVarianceRatios(f)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, r := range ratios {
		fmt.Printf("component %d: %.2f\n", i+1, r)
	}
	// Output:
	// component 1: 1.00
	// component 2: 0.00
}
