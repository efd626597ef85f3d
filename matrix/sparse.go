// SPDX-License-Identifier: MIT

// Package matrix - sparse storage as an ordered term list.
//
// Purpose:
//   - Keep only non-zero entries as (row, col, value) terms sorted row-major.
//   - At reports absence with ok == false instead of returning a fresh zero.
//   - Add merges two term lists in one linear pass; Transpose re-sorts.
//
// Complexity: At O(log t), Set O(t) worst case (insertion), Add O(t1+t2),
// Transpose O(t log t), where t is the number of stored terms.

package matrix

import (
	"fmt"
	"sort"
)

const (
	kindSparse = "Sparse"
	ctxAdd     = "Add"
)

// Term is one stored entry of a Sparse matrix.
type Term struct {
	Row, Col int
	Value    float64
}

// Sparse is a rows×cols matrix that stores non-zero entries only.
type Sparse struct {
	rows, cols int
	terms      []Term // row-major order, no zero values, no duplicates
}

// NewSparse returns an empty rows×cols sparse matrix.
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewSparse(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Sparse{rows: rows, cols: cols}, nil
}

// Rows returns the number of rows.
func (m *Sparse) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Sparse) Cols() int { return m.cols }

// Len returns the number of stored terms.
func (m *Sparse) Len() int { return len(m.terms) }

// Terms returns a copy of the stored terms in row-major order.
func (m *Sparse) Terms() []Term {
	out := make([]Term, len(m.terms))
	copy(out, m.terms)

	return out
}

// search returns the position of (row, col) in terms, or where it would go.
func (m *Sparse) search(row, col int) (int, bool) {
	i := sort.Search(len(m.terms), func(k int) bool {
		t := m.terms[k]
		return t.Row > row || (t.Row == row && t.Col >= col)
	})
	found := i < len(m.terms) && m.terms[i].Row == row && m.terms[i].Col == col

	return i, found
}

func (m *Sparse) inRange(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// At returns the stored value at (row, col). ok is false when nothing is
// stored there.
func (m *Sparse) At(row, col int) (v float64, ok bool, err error) {
	if !m.inRange(row, col) {
		return 0, false, shapeErrorf(kindSparse, ctxAt, row, col, ErrIndexOutOfRange)
	}
	i, found := m.search(row, col)
	if !found {
		return 0, false, nil
	}

	return m.terms[i].Value, true, nil
}

// Set stores v at (row, col), replacing any existing term. Storing zero
// removes the term.
func (m *Sparse) Set(row, col int, v float64) error {
	if !m.inRange(row, col) {
		return shapeErrorf(kindSparse, ctxSet, row, col, ErrIndexOutOfRange)
	}
	i, found := m.search(row, col)
	switch {
	case found && v == 0:
		m.terms = append(m.terms[:i], m.terms[i+1:]...)
	case found:
		m.terms[i].Value = v
	case v != 0:
		m.terms = append(m.terms, Term{})
		copy(m.terms[i+1:], m.terms[i:])
		m.terms[i] = Term{Row: row, Col: col, Value: v}
	}

	return nil
}

// Add returns m + other as a new matrix. Terms that cancel to zero are dropped.
// Returns ErrDimensionMismatch when other is nil or the shapes differ.
func (m *Sparse) Add(other *Sparse) (*Sparse, error) {
	if other == nil {
		return nil, fmt.Errorf("%s.%s: %d×%d vs nil: %w", kindSparse, ctxAdd,
			m.rows, m.cols, ErrDimensionMismatch)
	}
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("%s.%s: %d×%d vs %d×%d: %w", kindSparse, ctxAdd,
			m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}

	out := &Sparse{rows: m.rows, cols: m.cols, terms: make([]Term, 0, len(m.terms)+len(other.terms))}
	a, b := m.terms, other.terms
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case less(a[i], b[j]):
			out.terms = append(out.terms, a[i])
			i++
		case less(b[j], a[i]):
			out.terms = append(out.terms, b[j])
			j++
		default:
			if s := a[i].Value + b[j].Value; s != 0 {
				out.terms = append(out.terms, Term{Row: a[i].Row, Col: a[i].Col, Value: s})
			}
			i++
			j++
		}
	}
	out.terms = append(out.terms, a[i:]...)
	out.terms = append(out.terms, b[j:]...)

	return out, nil
}

// Transpose returns the cols×rows transpose as a new matrix.
func (m *Sparse) Transpose() *Sparse {
	out := &Sparse{rows: m.cols, cols: m.rows, terms: make([]Term, len(m.terms))}
	for k, t := range m.terms {
		out.terms[k] = Term{Row: t.Col, Col: t.Row, Value: t.Value}
	}
	sort.Slice(out.terms, func(x, y int) bool { return less(out.terms[x], out.terms[y]) })

	return out
}

// String prints the full matrix, absent entries as 0.
func (m *Sparse) String() string {
	dense := make([]float64, m.rows*m.cols)
	for _, t := range m.terms {
		dense[t.Row*m.cols+t.Col] = t.Value
	}

	return formatDense(m.rows, m.cols, func(r, c int) float64 {
		return dense[r*m.cols+c]
	})
}

// less orders terms row-major.
func less(a, b Term) bool {
	return a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col)
}
