package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

// ExampleGrid_Expand demonstrates tiling a 2×2 cave map 3×3 times.
// Every step right or down through the tiles adds one to each cost,
// and 9 wraps back around to 1.
func ExampleGrid_Expand() {
	g, err := gridgraph.ParseString("18\n89")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	big, err := g.Expand(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(big)
	// Output:
	// 182931
	// 899112
	// 293142
	// 911223
	// 314253
	// 122334
}

// ExampleGrid_Neighbors shows the fixed right, down, left, up order.
func ExampleGrid_Neighbors() {
	g, _ := gridgraph.ParseString("123\n456\n789")
	for _, n := range g.Neighbors(gridgraph.Point{X: 1, Y: 1}, nil) {
		fmt.Printf("%v=%d ", n, g.At(n))
	}
	fmt.Println()
	// Output: 2,1=6 1,2=8 0,1=4 1,0=2
}
