// Package distance computes shortest-path distances on a bordered grid by
// breadth-first label propagation.
//
// The start cell is labeled 0. Cells are taken from a FIFO frontier; each
// Free, unlabeled neighbour receives the label of the expanded cell plus
// one and joins the frontier. A non-blocked neighbour already labeled with
// a larger value is lowered and re-queued. The search stops as soon as the end cell
// is taken from the frontier, or fails when the frontier runs dry.
//
// Labels are written into the grid's distance layer and labeled cells are
// marked grid.Visited. Only cells actually reached are touched.
//
// Complexity: O(R×C) time and memory on an unweighted grid.
package distance

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// walker encapsulates mutable search state.
type walker struct {
	g     *grid.Grid
	opts  Options
	queue []grid.Position
	res   Result
}

// ShortestDistance labels g outward from start until end is expanded.
// Returns ErrNilGrid, grid.ErrOutOfRange for coordinates outside the
// bordered grid, ErrBlockedEndpoint when an endpoint is not a Free
// interior cell, or ErrUnreachable when the frontier empties first.
// On ErrUnreachable the Result still reports Labeled and Relaxations.
func ShortestDistance(g *grid.Grid, start, end grid.Position, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for _, p := range []grid.Position{start, end} {
		if err := checkEndpoint(g, p); err != nil {
			return Result{}, err
		}
	}

	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]grid.Position, 0, g.Rows()*g.Cols()),
		res:   Result{Start: start, End: end},
	}
	w.label(start, 0)
	w.enqueue(start)

	err := w.loop()

	return w.res, err
}

// checkEndpoint rejects coordinates that cannot start or end a search.
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

// loop drains the frontier until end is dequeued.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		here := w.dequeue()
		d := w.dist(here)
		if here == w.res.End {
			w.res.Distance = d
			return nil
		}
		w.expand(here, d)
	}

	return fmt.Errorf("%w: (%d,%d) to (%d,%d)", ErrUnreachable,
		w.res.Start.Row, w.res.Start.Col, w.res.End.Row, w.res.End.Col)
}

// expand labels or relaxes the four neighbours of here.
func (w *walker) expand(here grid.Position, d int) {
	next := d + 1
	for _, nb := range w.g.Neighbors(here) {
		if w.state(nb) == grid.Blocked {
			continue
		}
		if cur, ok := w.g.Distance(nb); ok {
			if cur > next {
				w.relax(nb, next)
			}
			continue
		}
		if w.state(nb) != grid.Free {
			continue
		}
		w.label(nb, next)
		w.enqueue(nb)
	}
}

// label gives p its first label and marks it Visited.
func (w *walker) label(p grid.Position, d int) {
	if err := w.g.SetDistance(p, d); err != nil {
		panic(err)
	}
	if err := w.g.Set(p, grid.Visited); err != nil {
		panic(err)
	}
	w.res.Labeled++
	w.opts.OnLabel(p, d)
}

// relax lowers a stale label of p, left by an earlier search or set by the
// caller, marks p Visited and puts it back on the frontier. Labels written
// by the current search are already minimal, so only stale ones get here.
func (w *walker) relax(p grid.Position, d int) {
	if err := w.g.SetDistance(p, d); err != nil {
		panic(err)
	}
	if err := w.g.Set(p, grid.Visited); err != nil {
		panic(err)
	}
	w.res.Relaxations++
	w.opts.OnLabel(p, d)
	w.enqueue(p)
}

func (w *walker) enqueue(p grid.Position) {
	w.queue = append(w.queue, p)
}

// dequeue pops the oldest frontier cell and invokes OnDequeue.
func (w *walker) dequeue() grid.Position {
	p := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(p, w.dist(p))

	return p
}

// dist reads the label of a cell that is known to be labeled.
func (w *walker) dist(p grid.Position) int {
	d, ok := w.g.Distance(p)
	if !ok {
		panic(fmt.Sprintf("distance: frontier cell (%d,%d) has no label", p.Row, p.Col))
	}

	return d
}

// state reads a cell that is known to be in range.
func (w *walker) state(p grid.Position) grid.State {
	s, err := w.g.At(p)
	if err != nil {
		panic(err)
	}

	return s
}
