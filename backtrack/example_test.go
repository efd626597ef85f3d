package backtrack_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/backtrack"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleFindPath walks a 3×3 maze whose middle row is walled except at
// the right edge. The marked grid shows the path as '*'.
func ExampleFindPath() {
	g, _ := grid.FromRows([][]int{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	})

	path, err := backtrack.FindPath(g, grid.Pos(1, 1), grid.Pos(3, 3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("moves:", path.Moves)
	_ = grid.Render(os.Stdout, g)
	// Output:
	// moves: [right right down down]
	// # # # # #
	// # * * * #
	// # # # * #
	// # . . * #
	// # # # # #
}
