package distance_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/distance"
	"github.com/katalvlaran/gridpath/grid"
)

// referenceBFS computes the shortest move count between two interior cells
// of values (0 = free, 1 = blocked, 0-based, no border), or -1.
func referenceBFS(values [][]int, from, to [2]int) int {
	h, w := len(values), len(values[0])
	dist := make([][]int, h)
	for i := range dist {
		dist[i] = make([]int, w)
		for j := range dist[i] {
			dist[i][j] = -1
		}
	}
	dist[from[0]][from[1]] = 0
	queue := [][2]int{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == to {
			return dist[u[0]][u[1]]
		}
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			r, c := u[0]+d[0], u[1]+d[1]
			if r < 0 || r >= h || c < 0 || c >= w || values[r][c] == 1 || dist[r][c] >= 0 {
				continue
			}
			dist[r][c] = dist[u[0]][u[1]] + 1
			queue = append(queue, [2]int{r, c})
		}
	}

	return -1
}

func randomValues(rng *rand.Rand, rows, cols int, density float64) [][]int {
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			if rng.Float64() < density {
				values[r][c] = 1
			}
		}
	}

	return values
}

func TestShortestDistance_Errors(t *testing.T) {
	_, err := distance.ShortestDistance(nil, grid.Pos(1, 1), grid.Pos(1, 1))
	assert.ErrorIs(t, err, distance.ErrNilGrid)

	g, err := grid.FromRows([][]int{{0, 1}})
	require.NoError(t, err)
	_, err = distance.ShortestDistance(g, grid.Pos(1, 1), grid.Pos(5, 5))
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = distance.ShortestDistance(g, grid.Pos(1, 1), grid.Pos(1, 2))
	assert.ErrorIs(t, err, distance.ErrBlockedEndpoint)
	_, err = distance.ShortestDistance(g, grid.Pos(1, 0), grid.Pos(1, 1))
	assert.ErrorIs(t, err, distance.ErrBlockedEndpoint)
	assert.False(t, g.Labeled())
}

// TestShortestDistance_WallDetour is the 3×3 scenario with a wall across the
// middle row: the shortest route around it is 4 moves.
func TestShortestDistance_WallDetour(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	res, err := distance.ShortestDistance(g, grid.Pos(1, 1), grid.Pos(3, 3))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Distance)
	assert.Equal(t, 0, res.Relaxations)

	d, ok := g.Distance(grid.Pos(3, 3))
	require.True(t, ok)
	assert.Equal(t, 4, d)
	d, _ = g.Distance(grid.Pos(1, 1))
	assert.Equal(t, 0, d)
	_, ok = g.Distance(grid.Pos(2, 1))
	assert.False(t, ok, "walls are never labeled")

	path, err := distance.Trace(g, grid.Pos(1, 1), grid.Pos(3, 3))
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 3}}, path)
}

// TestShortestDistance_RelaxesStaleLabel: a label left larger than the true
// distance is lowered, the cell re-queued and marked Visited.
func TestShortestDistance_RelaxesStaleLabel(t *testing.T) {
	g, err := grid.New(1, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetDistance(grid.Pos(1, 3), 10))

	var labels []int
	res, err := distance.ShortestDistance(g, grid.Pos(1, 1), grid.Pos(1, 3),
		distance.WithOnLabel(func(_ grid.Position, d int) { labels = append(labels, d) }))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Distance)
	assert.Equal(t, 1, res.Relaxations)
	assert.Equal(t, 2, res.Labeled)
	assert.Equal(t, []int{0, 1, 2}, labels)

	d, ok := g.Distance(grid.Pos(1, 3))
	require.True(t, ok)
	assert.Equal(t, 2, d)
	s, err := g.At(grid.Pos(1, 3))
	require.NoError(t, err)
	assert.Equal(t, grid.Visited, s)
}

// TestShortestDistance_StaleLabelOnWall: a label on a Blocked cell never
// opens a way through it.
func TestShortestDistance_StaleLabelOnWall(t *testing.T) {
	g, err := grid.FromRows([][]int{{0, 1, 0}})
	require.NoError(t, err)
	require.NoError(t, g.SetDistance(grid.Pos(1, 2), 10))

	res, err := distance.ShortestDistance(g, grid.Pos(1, 1), grid.Pos(1, 3))
	assert.ErrorIs(t, err, distance.ErrUnreachable)
	assert.Equal(t, 0, res.Relaxations)

	d, _ := g.Distance(grid.Pos(1, 2))
	assert.Equal(t, 10, d)
	s, _ := g.At(grid.Pos(1, 2))
	assert.Equal(t, grid.Blocked, s)
}

// TestShortestDistance_EnclosedEnd: an end ringed by walls is unreachable and
// carries neither a label nor a Visited mark.
func TestShortestDistance_EnclosedEnd(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{0, 1, 0, 1},
		{0, 1, 1, 1},
	})
	require.NoError(t, err)
	end := grid.Pos(3, 3)

	res, err := distance.ShortestDistance(g, grid.Pos(1, 1), end)
	require.ErrorIs(t, err, distance.ErrUnreachable)
	assert.Equal(t, 7, res.Labeled, "the reachable L-shaped corridor")

	_, ok := g.Distance(end)
	assert.False(t, ok)
	s, _ := g.At(end)
	assert.Equal(t, grid.Free, s)

	_, err = distance.Trace(g, grid.Pos(1, 1), end)
	assert.ErrorIs(t, err, distance.ErrUnreachable)
}

func TestShortestDistance_SameCell(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)

	res, err := distance.ShortestDistance(g, grid.Pos(1, 1), grid.Pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Distance)
	assert.Equal(t, 1, res.Labeled)

	path, err := distance.Trace(g, grid.Pos(1, 1), grid.Pos(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{Row: 1, Col: 1}}, path)
}

// TestShortestDistance_Hooks checks dequeue order follows non-decreasing labels.
func TestShortestDistance_Hooks(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	var dequeued []int
	labels := 0
	_, err = distance.ShortestDistance(g, grid.Pos(1, 1), grid.Pos(3, 3),
		distance.WithOnDequeue(func(_ grid.Position, d int) { dequeued = append(dequeued, d) }),
		distance.WithOnLabel(func(grid.Position, int) { labels++ }),
	)
	require.NoError(t, err)
	assert.IsNonDecreasing(t, dequeued)
	assert.Equal(t, 4, dequeued[len(dequeued)-1])
	assert.Equal(t, 9, labels)
}

// TestShortestDistance_MatchesReference compares labels with an independent
// BFS on random mazes, and checks Trace returns a valid shortest walk.
func TestShortestDistance_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	reached := 0
	for i := 0; i < 300; i++ {
		rows, cols := 1+rng.Intn(9), 1+rng.Intn(9)
		values := randomValues(rng, rows, cols, 0.35)
		from := [2]int{rng.Intn(rows), rng.Intn(cols)}
		to := [2]int{rng.Intn(rows), rng.Intn(cols)}
		values[from[0]][from[1]] = 0
		values[to[0]][to[1]] = 0

		g, err := grid.FromRows(values)
		require.NoError(t, err)
		start, end := grid.Pos(from[0]+1, from[1]+1), grid.Pos(to[0]+1, to[1]+1)

		want := referenceBFS(values, from, to)
		res, err := distance.ShortestDistance(g, start, end)
		if want < 0 {
			assert.ErrorIs(t, err, distance.ErrUnreachable)
			_, ok := g.Distance(end)
			assert.False(t, ok)
			continue
		}
		reached++
		require.NoError(t, err)
		assert.Equal(t, want, res.Distance, "grid %v from %v to %v", values, from, to)

		path, err := distance.Trace(g, start, end)
		require.NoError(t, err)
		require.Len(t, path, want+1)
		assert.Equal(t, start, path[0])
		assert.Equal(t, end, path[len(path)-1])
		for k := 1; k < len(path); k++ {
			_, adjacent := grid.DirectionBetween(path[k-1], path[k])
			assert.True(t, adjacent)
			assert.Equal(t, 0, values[path[k].Row-1][path[k].Col-1])
		}
	}
	assert.Positive(t, reached)
}
