// Package gridpath searches mazes laid out on a rectangular grid.
//
// What is gridpath?
//
//	A small, dependency-light library and CLI built around one grid type:
//		• grid      – bordered cell buffer, positions, the shared move table
//		• backtrack – depth-first search with an explicit backtrack stack
//		• distance  – breadth-first distance labels and path tracing
//		• calc      – infix integer expression evaluator
//		• matrix    – lower-triangular, tridiagonal and sparse storage
//
// The border
//
//	Every grid is wrapped in a one-cell ring of blocked cells. Searches
//	read neighbours without bounds checks: the ring stops them first.
//
//	    # # # # #
//	    # . . . #
//	    # # # . #
//	    # . . . #
//	    # # # # #
//
// Moves are orthogonal only, scanned right, down, left, up. That order
// decides which path backtrack.FindPath reports; distance.ShortestDistance
// always reports the minimum number of moves.
//
// Command line:
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
//	printf '3 3\n0 0 0\n1 1 0\n0 0 0\n' | gridpath dfs
package gridpath
