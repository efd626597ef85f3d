package backtrack_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/backtrack"
	"github.com/katalvlaran/gridpath/grid"
)

// serpentine builds an n×n maze whose walls force a single winding corridor:
// every second row is walled except at alternating ends.
func serpentine(b *testing.B, n int) *grid.Grid {
	b.Helper()
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		if r%2 == 1 {
			for c := range values[r] {
				values[r][c] = 1
			}
			if r%4 == 1 {
				values[r][n-1] = 0
			} else {
				values[r][0] = 0
			}
		}
	}
	g, err := grid.FromRows(values)
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}

	return g
}

// BenchmarkFindPath_Open measures the search on an obstacle-free 500×500 grid.
// Complexity: O(R×C).
func BenchmarkFindPath_Open(b *testing.B) {
	const n = 500
	base, err := grid.New(n, n)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		_, _ = backtrack.FindPath(g, grid.Pos(1, 1), grid.Pos(n, n))
	}
}

// BenchmarkFindPath_Serpentine measures the search along a 201×201 winding corridor.
func BenchmarkFindPath_Serpentine(b *testing.B) {
	const n = 201
	base := serpentine(b, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		_, _ = backtrack.FindPath(g, grid.Pos(1, 1), grid.Pos(n, n))
	}
}
