package grid_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleParse reads a 2×3 maze in console form and prints it with its
// blocked border.
func ExampleParse() {
	g, err := grid.ParseString(`2 3
0 1 0
0 0 0`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = grid.Render(os.Stdout, g)
	// Output:
	// # # # # #
	// # . # . #
	// # . . . #
	// # # # # #
}

// ExampleDirectionBetween recovers the move that links two adjacent cells.
func ExampleDirectionBetween() {
	d, ok := grid.DirectionBetween(grid.Pos(2, 2), grid.Pos(1, 2))
	fmt.Println(d, ok)
	// Output:
	// up true
}
