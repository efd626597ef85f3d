// Package backtrack finds a path through a bordered grid with an explicit
// depth-first search.
//
// The search is a two-state machine. While advancing it scans the four
// neighbours of the current cell in Right, Down, Left, Up order, starting at a scan
// index, and steps into the first Free one, pushing the old cell onto a
// stack. When no neighbour is Free the cell is marked grid.DeadEnd and the
// search backtracks: it pops the previous cell, recovers which direction
// led to the abandoned cell with grid.DirectionBetween, and resumes
// scanning one past that direction.
//
// Every interior cell is marked at most once Visited and at most once
// DeadEnd, so the search terminates on any grid. The path found depends
// only on the scan order; it is not necessarily the shortest.
//
// Complexity: O(R×C) time, O(R×C) memory for the stack.
package backtrack

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// walker holds the mutable state of one search.
type walker struct {
	g     *grid.Grid
	opts  Options
	stack []grid.Position
	here  grid.Position
	scan  int // first offset index still untried at here
	stats Stats
}

// FindPath searches g for a path from entry to exit and marks the grid in
// place: cells on the returned path end up Visited, abandoned cells end up
// DeadEnd.
//
// Returns ErrNilGrid, grid.ErrOutOfRange for coordinates outside the
// bordered grid, ErrBlockedEndpoint when an endpoint is not a Free interior
// cell, and ErrNotFound when exit cannot be reached. On ErrNotFound the
// returned Path carries only Entry and Stats.
func FindPath(g *grid.Grid, entry, exit grid.Position, opts ...Option) (Path, error) {
	if g == nil {
		return Path{}, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for _, p := range []grid.Position{entry, exit} {
		if err := checkEndpoint(g, p); err != nil {
			return Path{}, err
		}
	}

	w := &walker{
		g:     g,
		opts:  o,
		stack: make([]grid.Position, 0, g.Rows()+g.Cols()),
		here:  entry,
	}
	w.mark(entry, grid.Visited)
	w.opts.OnAdvance(entry)

	for w.here != exit {
		if w.advance() {
			continue
		}
		if !w.backtrack() {
			return Path{Entry: entry, Stats: w.stats}, fmt.Errorf("%w: (%d,%d) to (%d,%d)",
				ErrNotFound, entry.Row, entry.Col, exit.Row, exit.Col)
		}
	}

	return w.path(entry), nil
}

// checkEndpoint rejects coordinates that cannot start or end a path.
func checkEndpoint(g *grid.Grid, p grid.Position) error {
	s, err := g.At(p)
	if err != nil {
		return err
	}
	if !g.Interior(p) || s != grid.Free {
		return fmt.Errorf("%w: (%d,%d) is %s", ErrBlockedEndpoint, p.Row, p.Col, s)
	}

	return nil
}

// advance steps into the first Free neighbour at or after the scan index.
// It reports false, after marking here as a dead end, when none is Free.
func (w *walker) advance() bool {
	nbs := w.g.Neighbors(w.here)
	for ; w.scan < grid.NumDirections; w.scan++ {
		next := nbs[w.scan]
		if w.state(next) != grid.Free {
			continue
		}
		w.stack = append(w.stack, w.here)
		w.here = next
		w.scan = 0
		w.mark(next, grid.Visited)
		w.stats.Advances++
		w.opts.OnAdvance(next)
		return true
	}

	w.mark(w.here, grid.DeadEnd)
	w.stats.Backtracks++
	w.opts.OnBacktrack(w.here)

	return false
}

// backtrack pops the previous cell and resumes one past the direction that
// led to the abandoned cell. It reports false when the stack is empty.
func (w *walker) backtrack() bool {
	if len(w.stack) == 0 {
		return false
	}
	prev := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	d, ok := grid.DirectionBetween(prev, w.here)
	if !ok {
		// stack entries are always adjacent to the cell pushed after them
		panic(fmt.Sprintf("backtrack: (%d,%d) is not adjacent to (%d,%d)",
			prev.Row, prev.Col, w.here.Row, w.here.Col))
	}
	w.here = prev
	w.scan = int(d) + 1

	return true
}

// path converts the stack plus the current cell into moves.
func (w *walker) path(entry grid.Position) Path {
	cells := append(w.stack, w.here)
	moves := make([]grid.Direction, 0, len(cells)-1)
	for i := 1; i < len(cells); i++ {
		d, _ := grid.DirectionBetween(cells[i-1], cells[i])
		moves = append(moves, d)
	}

	return Path{Entry: entry, Moves: moves, Stats: w.stats}
}

// state reads a cell that is known to be in range.
func (w *walker) state(p grid.Position) grid.State {
	s, err := w.g.At(p)
	if err != nil {
		panic(err)
	}

	return s
}

// mark writes an interior cell that is known to be in range.
func (w *walker) mark(p grid.Position, s grid.State) {
	if err := w.g.Set(p, s); err != nil {
		panic(err)
	}
}
