package edges_test

import (
	"fmt"

	"github.com/katalvlaran/fcsc/edges"
	"github.com/katalvlaran/fcsc/matrix"
)

// ExampleFlatten flattens two 3-node subjects into a 2×3 dataset.
func ExampleFlatten() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0.2, 0.3},
		{0.2, 1, 0.4},
		{0.3, 0.4, 1},
	})
	b, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0.5, 0.6},
		{0.5, 1, 0.7},
		{0.6, 0.7, 1},
	})
	data, nEdges, err := edges.Flatten([]*matrix.Dense{a, b})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("edges:", nEdges)
	fmt.Print(data)
	// Output:
	// edges: 3
	// [0.2, 0.3, 0.4]
	// [0.5, 0.6, 0.7]
}
