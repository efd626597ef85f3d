// Package grid stores a rectangular maze of cells wrapped in a one-cell
// blocked border. The border acts as a sentinel: every neighbour of an
// interior cell is itself a valid cell, so searches never bounds-check
// per step.
//
// Coordinates are (row, col) of the bordered grid. For an interior of
// R×C cells, rows and columns run over [0, R+1] and [0, C+1]; the
// interior is [1, R] × [1, C].
package grid

import (
	"fmt"
)

// noLabel marks a cell without a distance label.
const noLabel = -1

// Size limits enforced by New. Both bounds hold before any allocation.
const (
	// MaxSide is the largest accepted row or column count.
	MaxSide = 1 << 15
	// MaxCells is the largest accepted interior area.
	MaxCells = 1 << 24
)

// Grid is a bordered 2-D buffer of cell states plus an optional layer of
// distance labels. The zero value is not usable; build one with New,
// FromRows or Parse.
type Grid struct {
	rows, cols int     // interior dimensions
	stride     int     // cols + 2
	cells      []State // (rows+2)*(cols+2), row-major
	labels     []int   // nil until the first SetDistance
}

// New returns a grid with a rows×cols free interior and a blocked border.
// Returns ErrEmptyGrid if either dimension is below 1, and ErrTooLarge if
// a dimension exceeds MaxSide or the area exceeds MaxCells.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, cols)
	}
	// rows, cols <= MaxSide keeps the product below overflow.
	if rows > MaxSide || cols > MaxSide || rows*cols > MaxCells {
		return nil, fmt.Errorf("%w: got %d×%d, limit %d per side and %d cells",
			ErrTooLarge, rows, cols, MaxSide, MaxCells)
	}
	g := &Grid{
		rows:   rows,
		cols:   cols,
		stride: cols + 2,
		cells:  make([]State, (rows+2)*(cols+2)),
	}
	for c := 0; c < g.stride; c++ {
		g.cells[g.index(0, c)] = Blocked
		g.cells[g.index(rows+1, c)] = Blocked
	}
	for r := 1; r <= rows; r++ {
		g.cells[g.index(r, 0)] = Blocked
		g.cells[g.index(r, cols+1)] = Blocked
	}

	return g, nil
}

// FromRows builds a grid whose interior is given row by row, 0 = free and
// 1 = blocked. The input is copied; the border is added around it.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrInvalidCell.
func FromRows(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(len(values), w)
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		for c, v := range row {
			s, err := cellState(v)
			if err != nil {
				return nil, fmt.Errorf("%w at interior (%d,%d)", err, r, c)
			}
			g.cells[g.index(r+1, c+1)] = s
		}
	}

	return g, nil
}

// cellState maps an input value to its initial State.
func cellState(v int) (State, error) {
	switch v {
	case 0:
		return Free, nil
	case 1:
		return Blocked, nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidCell, v)
	}
}

// Rows returns the number of interior rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of interior columns.
func (g *Grid) Cols() int { return g.cols }

// InRange reports whether p lies inside the bordered grid.
func (g *Grid) InRange(p Position) bool {
	return p.Row >= 0 && p.Row <= g.rows+1 && p.Col >= 0 && p.Col <= g.cols+1
}

// Interior reports whether p is a non-border cell.
func (g *Grid) Interior(p Position) bool {
	return p.Row >= 1 && p.Row <= g.rows && p.Col >= 1 && p.Col <= g.cols
}

// index maps (row, col) to a row-major offset: row*stride + col.
// Callers validate with InRange first.
func (g *Grid) index(row, col int) int {
	return row*g.stride + col
}

// checked validates p and returns its buffer offset.
func (g *Grid) checked(p Position) (int, error) {
	if !g.InRange(p) {
		return 0, fmt.Errorf("%w: (%d,%d) outside [0,%d]×[0,%d]",
			ErrOutOfRange, p.Row, p.Col, g.rows+1, g.cols+1)
	}

	return g.index(p.Row, p.Col), nil
}

// At returns the state of the cell at p.
// Returns ErrOutOfRange if p is outside the bordered grid.
func (g *Grid) At(p Position) (State, error) {
	i, err := g.checked(p)
	if err != nil {
		return 0, err
	}

	return g.cells[i], nil
}

// Set stores s at p. Border cells only accept Blocked.
// Returns ErrOutOfRange or ErrBorder.
func (g *Grid) Set(p Position, s State) error {
	i, err := g.checked(p)
	if err != nil {
		return err
	}
	if s != Blocked && !g.Interior(p) {
		return fmt.Errorf("%w: (%d,%d) set to %s", ErrBorder, p.Row, p.Col, s)
	}
	g.cells[i] = s

	return nil
}

// Neighbors returns the four orthogonal neighbours of p in Right, Down, Left, Up order.
// Nothing is filtered: for an interior p every neighbour is in range.
func (g *Grid) Neighbors(p Position) [NumDirections]Position {
	var out [NumDirections]Position
	for i, off := range offsets {
		out[i] = p.Add(off)
	}

	return out
}

// Distance returns the distance label at p. ok is false when p carries no
// label or lies outside the grid.
func (g *Grid) Distance(p Position) (d int, ok bool) {
	if g.labels == nil || !g.InRange(p) {
		return 0, false
	}
	d = g.labels[g.index(p.Row, p.Col)]
	if d == noLabel {
		return 0, false
	}

	return d, true
}

// SetDistance labels p with d, allocating the label layer on first use.
// Returns ErrOutOfRange or ErrNegativeDistance.
func (g *Grid) SetDistance(p Position, d int) error {
	i, err := g.checked(p)
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeDistance, d)
	}
	if g.labels == nil {
		g.labels = make([]int, len(g.cells))
		for j := range g.labels {
			g.labels[j] = noLabel
		}
	}
	g.labels[i] = d

	return nil
}

// Labeled reports whether any cell carries a distance label.
func (g *Grid) Labeled() bool {
	return g.labels != nil
}

// Count returns how many cells currently hold state s.
func (g *Grid) Count(s State) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of g, labels included.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		rows:   g.rows,
		cols:   g.cols,
		stride: g.stride,
		cells:  make([]State, len(g.cells)),
	}
	copy(out.cells, g.cells)
	if g.labels != nil {
		out.labels = make([]int, len(g.labels))
		copy(out.labels, g.labels)
	}

	return out
}

// Reset turns every Visited and DeadEnd cell back to Free and drops all
// distance labels, restoring the grid as it was constructed.
func (g *Grid) Reset() {
	for i, c := range g.cells {
		if c == Visited || c == DeadEnd {
			g.cells[i] = Free
		}
	}
	g.labels = nil
}
