package grid

// Regions finds all orthogonally connected regions of Free interior cells.
// Regions are returned in row-major order of their first cell; cells
// within a region appear in breadth-first order from that cell.
//
// Time:   O(R·C).
// Memory: O(R·C) for the seen flags and output.
func (g *Grid) Regions() [][]Position {
	seen := make([]bool, len(g.cells))
	var regions [][]Position

	for r := 1; r <= g.rows; r++ {
		for c := 1; c <= g.cols; c++ {
			i0 := g.index(r, c)
			if g.cells[i0] != Free || seen[i0] {
				continue
			}
			seen[i0] = true
			queue := []Position{Pos(r, c)}
			for qi := 0; qi < len(queue); qi++ {
				for _, nb := range g.Neighbors(queue[qi]) {
					ni := g.index(nb.Row, nb.Col)
					if g.cells[ni] != Free || seen[ni] {
						continue
					}
					seen[ni] = true
					queue = append(queue, nb)
				}
			}
			regions = append(regions, queue)
		}
	}

	return regions
}

// Connected reports whether a and b are Free cells of the same region.
// Complexity: O(R·C) worst case.
func (g *Grid) Connected(a, b Position) bool {
	if !g.Interior(a) || !g.Interior(b) {
		return false
	}
	for _, region := range g.Regions() {
		hasA, hasB := false, false
		for _, p := range region {
			hasA = hasA || p == a
			hasB = hasB || p == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}

	return false
}
