package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a grid in console form: the interior row count, the
// interior column count, then rows×cols cell values in row-major order,
// 0 for free and 1 for blocked. Tokens are separated by any whitespace.
//
// Returns ErrMalformedInput for missing, non-numeric or surplus tokens,
// ErrEmptyGrid for non-positive dimensions, ErrTooLarge for dimensions
// past MaxSide or MaxCells and ErrInvalidCell for cell values other than
// 0 or 1. Dimensions are checked before any cell is allocated.
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("grid: reading %s: %w", what, err)
			}
			return 0, fmt.Errorf("%w: missing %s", ErrMalformedInput, what)
		}
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedInput, what, scanner.Text())
		}
		return v, nil
	}

	rows, err := next("row count")
	if err != nil {
		return nil, err
	}
	cols, err := next("column count")
	if err != nil {
		return nil, err
	}
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			v, err := next(fmt.Sprintf("cell (%d,%d)", r, c))
			if err != nil {
				return nil, err
			}
			s, err := cellState(v)
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, r, c)
			}
			g.cells[g.index(r, c)] = s
		}
	}
	if scanner.Scan() {
		return nil, fmt.Errorf("%w: unexpected trailing token %q", ErrMalformedInput, scanner.Text())
	}

	return g, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// RenderOption configures Render.
type RenderOption func(*renderOptions)

type renderOptions struct {
	interior  bool
	distances bool
}

// WithInterior omits the border rows and columns.
func WithInterior() RenderOption {
	return func(o *renderOptions) { o.interior = true }
}

// WithDistances prints the distance label of every labeled cell in place
// of its glyph. Unlabeled cells keep their glyph.
func WithDistances() RenderOption {
	return func(o *renderOptions) { o.distances = true }
}

// Render writes g as text, one line per row and one right-aligned,
// space-separated column per cell. Glyphs: '.' free, '#' blocked,
// '*' visited, 'x' dead end.
func Render(w io.Writer, g *Grid, opts ...RenderOption) error {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	lo, hiRow, hiCol := 0, g.rows+1, g.cols+1
	if o.interior {
		lo, hiRow, hiCol = 1, g.rows, g.cols
	}

	width := 1
	if o.distances && g.labels != nil {
		for _, d := range g.labels {
			if n := len(strconv.Itoa(d)); d != noLabel && n > width {
				width = n
			}
		}
	}

	bw := bufio.NewWriter(w)
	for r := lo; r <= hiRow; r++ {
		for c := lo; c <= hiCol; c++ {
			if c > lo {
				bw.WriteByte(' ')
			}
			cell := string(g.cells[g.index(r, c)].Glyph())
			if o.distances {
				if d, ok := g.Distance(Pos(r, c)); ok {
					cell = strconv.Itoa(d)
				}
			}
			fmt.Fprintf(bw, "%*s", width, cell)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// String renders the bordered grid with glyphs.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = Render(&sb, g)

	return sb.String()
}
