// Package grid defines the cell states, coordinates, movement offsets and
// sentinel errors shared by the gridpath search packages.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCell indicates an input cell value other than 0 (free) or 1 (blocked).
	ErrInvalidCell = errors.New("grid: cell value must be 0 or 1")
	// ErrMalformedInput indicates a token stream that does not describe a grid.
	ErrMalformedInput = errors.New("grid: malformed grid input")
	// ErrOutOfRange indicates a coordinate outside the bordered grid.
	// It always points at a caller bug.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrBorder indicates an attempt to open a border cell.
	ErrBorder = errors.New("grid: border cells must stay blocked")
	// ErrNegativeDistance indicates a distance label below zero.
	ErrNegativeDistance = errors.New("grid: distance label must be non-negative")
	// ErrTooLarge indicates dimensions beyond MaxSide or MaxCells.
	ErrTooLarge = errors.New("grid: grid dimensions too large")
)

// State is the content of a single cell.
type State int

const (
	// Free is an open, unexplored cell.
	Free State = iota
	// Blocked is a wall. Every border cell is Blocked.
	Blocked
	// Visited marks a cell reached by a search.
	Visited
	// DeadEnd marks a cell the depth-first search explored and abandoned.
	DeadEnd
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Blocked:
		return "blocked"
	case Visited:
		return "visited"
	case DeadEnd:
		return "dead-end"
	default:
		return "unknown"
	}
}

// Glyph returns the single-character form used by Render.
func (s State) Glyph() byte {
	switch s {
	case Free:
		return '.'
	case Blocked:
		return '#'
	case Visited:
		return '*'
	case DeadEnd:
		return 'x'
	default:
		return '?'
	}
}

// Position addresses a cell of the bordered grid. Row 0 and column 0 are border.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns p shifted by the offset d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Direction indexes the shared movement table; see Direction.Offset.
type Direction int

const (
	// Right is (0, +1).
	Right Direction = iota
	// Down is (+1, 0).
	Down
	// Left is (0, -1).
	Left
	// Up is (-1, 0).
	Up
)

// NumDirections is the number of orthogonal moves.
const NumDirections = 4

// offsets is the single movement table. Its order {Right, Down, Left, Up}
// fixes the neighbour scan order of every search and is also the table
// DirectionBetween inverts, so both must read it from here. Callers get
// copies through Direction.Offset.
var offsets = [NumDirections]Position{
	Right: {Row: 0, Col: 1},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
	Up:    {Row: -1, Col: 0},
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return "invalid"
	}
}

// Offset returns the (ΔRow, ΔCol) step for d.
func (d Direction) Offset() Position {
	return offsets[d]
}

// DirectionBetween returns the direction whose offset leads from one cell
// to an orthogonally adjacent cell. ok is false when the cells are not adjacent.
// Complexity: O(1).
func DirectionBetween(from, to Position) (d Direction, ok bool) {
	delta := Position{Row: to.Row - from.Row, Col: to.Col - from.Col}
	for i, off := range offsets {
		if off == delta {
			return Direction(i), true
		}
	}

	return 0, false
}
