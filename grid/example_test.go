package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/grid"
)

// ExampleFromNested builds a 3-D labyrinth from nested slices and reads it
// back by coordinate.
func ExampleFromNested() {
	g, err := grid.FromNested([][][]int{
		{{2, 0}, {1, 0}},
		{{1, 1}, {0, 3}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, _ := g.FindStart()
	end, _ := g.At(grid.Coord{1, 1, 1})
	fmt.Println("shape:", g.Shape())
	fmt.Println("start:", start)
	fmt.Println("(1,1,1):", end)
	fmt.Println("flat:", g.Flatten())
	// Output:
	// shape: [2 2 2]
	// start: (0,0,0)
	// (1,1,1): end
	// flat: [start path wall path wall wall path end]
}
