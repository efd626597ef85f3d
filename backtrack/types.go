// Package backtrack defines options, results and sentinel errors for the
// depth-first backtracking path search.
package backtrack

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed to FindPath.
	ErrNilGrid = errors.New("backtrack: grid is nil")

	// ErrBlockedEndpoint indicates that entry or exit is a border cell or
	// is not Free when the search starts.
	ErrBlockedEndpoint = errors.New("backtrack: endpoint is not a free interior cell")

	// ErrNotFound is the expected outcome when no path links entry to exit.
	ErrNotFound = errors.New("backtrack: no path found")
)

// Option configures FindPath.
type Option func(*Options)

// Options holds the hooks invoked while the search runs.
type Options struct {
	// OnAdvance is called each time the search steps into a cell,
	// including the entry cell.
	OnAdvance func(p grid.Position)

	// OnBacktrack is called with each cell marked as a dead end.
	OnBacktrack func(p grid.Position)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnAdvance:   func(grid.Position) {},
		OnBacktrack: func(grid.Position) {},
	}
}

// WithOnAdvance installs fn as the advance hook. nil is ignored.
func WithOnAdvance(fn func(p grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAdvance = fn
		}
	}
}

// WithOnBacktrack installs fn as the dead-end hook. nil is ignored.
func WithOnBacktrack(fn func(p grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBacktrack = fn
		}
	}
}

// Stats counts the moves a search made.
type Stats struct {
	Advances   int // forward steps, entry excluded
	Backtracks int // cells marked DeadEnd
}

// Path is a walk from Entry made of orthogonal moves.
// An empty Moves slice means Entry is also the exit.
type Path struct {
	Entry grid.Position
	Moves []grid.Direction
	Stats Stats
}

// Len returns the number of moves.
func (p Path) Len() int {
	return len(p.Moves)
}

// Cells returns every cell on the path, entry and exit included.
func (p Path) Cells() []grid.Position {
	out := make([]grid.Position, 0, len(p.Moves)+1)
	cur := p.Entry
	out = append(out, cur)
	for _, d := range p.Moves {
		cur = cur.Add(d.Offset())
		out = append(out, cur)
	}

	return out
}

// Exit returns the cell reached by replaying all moves from Entry.
func (p Path) Exit() grid.Position {
	cur := p.Entry
	for _, d := range p.Moves {
		cur = cur.Add(d.Offset())
	}

	return cur
}
