package distance

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Trace rebuilds a shortest path on a grid labeled by ShortestDistance,
// stepping from end to start through strictly decreasing labels. Ties are
// broken in Right, Down, Left, Up order. The returned cells run from start to end
// inclusive, so len(path) == Result.Distance+1.
//
// Returns ErrNilGrid, or ErrUnreachable when end carries no label or the
// labels do not lead back to start.
func Trace(g *grid.Grid, start, end grid.Position) ([]grid.Position, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	d, ok := g.Distance(end)
	if !ok {
		return nil, fmt.Errorf("%w: (%d,%d) is unlabeled", ErrUnreachable, end.Row, end.Col)
	}

	path := make([]grid.Position, d+1)
	path[d] = end
	cur := end
	for ; d > 0; d-- {
		found := false
		for _, nb := range g.Neighbors(cur) {
			if nd, ok := g.Distance(nb); ok && nd == d-1 {
				cur = nb
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: label chain breaks at (%d,%d)", ErrUnreachable, cur.Row, cur.Col)
		}
		path[d-1] = cur
	}
	if cur != start {
		return nil, fmt.Errorf("%w: labels lead to (%d,%d), not start", ErrUnreachable, cur.Row, cur.Col)
	}

	return path, nil
}
