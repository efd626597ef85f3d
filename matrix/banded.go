// SPDX-License-Identifier: MIT

// Package matrix - compact square storage for lower-triangular and
// tridiagonal matrices.
//
// Purpose:
//   - Store only the entries the shape allows: n(n+1)/2 for lower-triangular,
//     3n-2 for tridiagonal.
//   - At reports (value, ok). ok == false means the position lies outside
//     the stored shape; the implicit value there is zero, but no storage is
//     fabricated for it.
//   - Set outside the shape fails with ErrOutsideShape.
//
// Complexity: At/Set O(1); constructors O(stored entries).

package matrix

import (
	"fmt"
	"strings"
)

const (
	kindLower = "LowerTriangular"
	kindTri   = "Tridiagonal"
	ctxAt     = "At"
	ctxSet    = "Set"
)

// LowerTriangular is an n×n matrix whose entries above the diagonal are zero.
// Entries are packed column by column.
type LowerTriangular struct {
	n    int
	data []float64
}

// NewLowerTriangular returns an all-zero n×n lower-triangular matrix.
func NewLowerTriangular(n int) (*LowerTriangular, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewLowerTriangular(%d): %w", n, ErrInvalidDimensions)
	}

	return &LowerTriangular{n: n, data: make([]float64, n*(n+1)/2)}, nil
}

// Size returns n.
func (m *LowerTriangular) Size() int { return m.n }

// offset packs column-major: the columns before col hold
// col*(2n-col+1)/2 entries, then row-col more within col.
func (m *LowerTriangular) offset(row, col int) int {
	return col*(2*m.n-col+1)/2 + (row - col)
}

// At returns the entry at (row, col). ok is false above the diagonal.
func (m *LowerTriangular) At(row, col int) (v float64, ok bool, err error) {
	if !inSquare(m.n, row, col) {
		return 0, false, shapeErrorf(kindLower, ctxAt, row, col, ErrIndexOutOfRange)
	}
	if col > row {
		return 0, false, nil
	}

	return m.data[m.offset(row, col)], true, nil
}

// Set stores v at (row, col). Only row >= col is accepted.
func (m *LowerTriangular) Set(row, col int, v float64) error {
	if !inSquare(m.n, row, col) {
		return shapeErrorf(kindLower, ctxSet, row, col, ErrIndexOutOfRange)
	}
	if col > row {
		return shapeErrorf(kindLower, ctxSet, row, col, ErrOutsideShape)
	}
	m.data[m.offset(row, col)] = v

	return nil
}

// String prints the full n×n matrix, implicit zeros included.
func (m *LowerTriangular) String() string {
	return formatSquare(m.n, func(r, c int) float64 {
		v, _, _ := m.At(r, c)
		return v
	})
}

// Tridiagonal is an n×n matrix whose only non-zero entries satisfy |row-col| <= 1.
type Tridiagonal struct {
	n    int
	data []float64 // per column: above-diagonal, diagonal, below-diagonal
}

// NewTridiagonal returns an all-zero n×n tridiagonal matrix.
func NewTridiagonal(n int) (*Tridiagonal, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewTridiagonal(%d): %w", n, ErrInvalidDimensions)
	}

	return &Tridiagonal{n: n, data: make([]float64, 3*n-2)}, nil
}

// Size returns n.
func (m *Tridiagonal) Size() int { return m.n }

// offset maps a band position to its slot: 3*col-1, 3*col, 3*col+1 for
// row = col-1, col, col+1. ok is false off the band.
func (m *Tridiagonal) offset(row, col int) (int, bool) {
	switch row - col {
	case -1:
		return 3*col - 1, true
	case 0:
		return 3 * col, true
	case 1:
		return 3*col + 1, true
	default:
		return 0, false
	}
}

// At returns the entry at (row, col). ok is false off the band.
func (m *Tridiagonal) At(row, col int) (v float64, ok bool, err error) {
	if !inSquare(m.n, row, col) {
		return 0, false, shapeErrorf(kindTri, ctxAt, row, col, ErrIndexOutOfRange)
	}
	i, ok := m.offset(row, col)
	if !ok {
		return 0, false, nil
	}

	return m.data[i], true, nil
}

// Set stores v at (row, col). Only |row-col| <= 1 is accepted.
func (m *Tridiagonal) Set(row, col int, v float64) error {
	if !inSquare(m.n, row, col) {
		return shapeErrorf(kindTri, ctxSet, row, col, ErrIndexOutOfRange)
	}
	i, ok := m.offset(row, col)
	if !ok {
		return shapeErrorf(kindTri, ctxSet, row, col, ErrOutsideShape)
	}
	m.data[i] = v

	return nil
}

// String prints the full n×n matrix, implicit zeros included.
func (m *Tridiagonal) String() string {
	return formatSquare(m.n, func(r, c int) float64 {
		v, _, _ := m.At(r, c)
		return v
	})
}

func inSquare(n, row, col int) bool {
	return row >= 0 && row < n && col >= 0 && col < n
}

// formatSquare renders n rows of space-separated values using %g.
func formatSquare(n int, at func(r, c int) float64) string {
	return formatDense(n, n, at)
}

// formatDense renders rows×cols values, one line per row, using %g.
func formatDense(rows, cols int, at func(r, c int) float64) string {
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", at(r, c))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
