// Package distance provides options, results and sentinel errors for the
// breadth-first distance labeling search.
package distance

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for distance searches.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("distance: grid is nil")

	// ErrBlockedEndpoint indicates that start or end is a border cell or
	// is not Free when the search starts.
	ErrBlockedEndpoint = errors.New("distance: endpoint is not a free interior cell")

	// ErrUnreachable is the expected outcome when end cannot be reached
	// from start.
	ErrUnreachable = errors.New("distance: no path from start to end")
)

// Option configures ShortestDistance via functional arguments.
type Option func(*Options)

// Options holds the hooks invoked during the search.
type Options struct {
	// OnLabel is called whenever a cell receives a label or a smaller one.
	OnLabel func(p grid.Position, d int)

	// OnDequeue is called when a frontier cell is taken for expansion.
	OnDequeue func(p grid.Position, d int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnLabel:   func(grid.Position, int) {},
		OnDequeue: func(grid.Position, int) {},
	}
}

// WithOnLabel registers a callback run on every label write.
func WithOnLabel(fn func(p grid.Position, d int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLabel = fn
		}
	}
}

// WithOnDequeue registers a callback run before a cell is expanded.
func WithOnDequeue(fn func(p grid.Position, d int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of ShortestDistance:
//   - Distance: label of End, the number of moves on a shortest path.
//   - Labeled: cells labeled when the search stopped, Start included.
//   - Relaxations: labels lowered after their first write.
type Result struct {
	Start, End  grid.Position
	Distance    int
	Labeled     int
	Relaxations int
}
