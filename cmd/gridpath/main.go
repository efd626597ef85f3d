// Command gridpath reads a maze from a file or standard input and searches
// it, either for any path (dfs) or for the shortest distance (bfs). It can
// also evaluate an infix integer expression (calc).
//
// Maze input: the interior row count, the interior column count, then the
// cells row by row, 0 for free and 1 for blocked. A blocked border is
// added around the interior, so interior coordinates start at (1,1).
//
//	$ printf '3 3\n0 0 0\n1 1 0\n0 0 0\n' | gridpath bfs --start 1,1 --end 3,3
package main

import (
	"os"
)

func main() {
	root, cfg := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(cfg.exitCode(err))
	}
}
