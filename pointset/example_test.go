package pointset_test

import (
	"fmt"

	"github.com/katalvlaran/bearmaps/pointset"
)

func ExampleKDTree_Nearest() {
	tree := pointset.NewKDTree([]pointset.Point{
		{X: 1.1, Y: 2.2},
		{X: 3.3, Y: 4.4},
		{X: -2.9, Y: 4.2},
	})

	p, _ := tree.Nearest(-1.0, 4.0)
	fmt.Println(p.X, p.Y)
	// Output: -2.9 4.2
}
