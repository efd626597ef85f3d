package distance_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/distance"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleShortestDistance labels a 3×3 maze with a wall across the middle
// row and prints the distance field of the interior.
func ExampleShortestDistance() {
	g, _ := grid.FromRows([][]int{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	})

	res, err := distance.ShortestDistance(g, grid.Pos(1, 1), grid.Pos(3, 3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("distance:", res.Distance)
	_ = grid.Render(os.Stdout, g, grid.WithInterior(), grid.WithDistances())
	// Output:
	// distance: 4
	// 0 1 2
	// # # 3
	// . . 4
}

// ExampleTrace recovers the cells of a shortest path after labeling.
func ExampleTrace() {
	g, _ := grid.FromRows([][]int{
		{0, 1, 0},
		{0, 0, 0},
	})
	start, end := grid.Pos(1, 1), grid.Pos(1, 3)
	if _, err := distance.ShortestDistance(g, start, end); err != nil {
		fmt.Println(err)
		return
	}
	path, _ := distance.Trace(g, start, end)
	fmt.Println(path)
	// Output:
	// [{1 1} {2 1} {2 2} {2 3} {1 3}]
}
