package basin_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"lowpoint/internal/basin"
	"lowpoint/internal/heightmap"
)

const example = `2199943210
3987894921
9856789892
8767896789
9899965678
`

func seeds(g *heightmap.Grid) []heightmap.Position {
	var out []heightmap.Position
	for p := range heightmap.Minima(g) {
		out = append(out, p)
	}

	return out
}

// reachable walks members of b from its seed and returns how many it reaches.
func reachable(g *heightmap.Grid, b basin.Basin) int {
	seen := map[heightmap.Position]bool{b.Seed: true}
	queue := []heightmap.Position{b.Seed}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for _, n := range g.Neighbors(p, nil) {
			if b.Contains(n.Position) && !seen[n.Position] {
				seen[n.Position] = true
				queue = append(queue, n.Position)
			}
		}
	}

	return len(seen)
}

func TestExpandExample(t *testing.T) {
	t.Parallel()

	g := heightmap.MustParse(example)

	var sizes []int
	for _, seed := range seeds(g) {
		b, err := basin.Expand(g, seed)
		require.NoError(t, err)
		sizes = append(sizes, b.Size())
	}

	require.Equal(t, []int{3, 9, 14, 9}, sizes)
}

func TestExpandTopLeftBasin(t *testing.T) {
	t.Parallel()

	g := heightmap.MustParse(example)
	b, err := basin.Expand(g, heightmap.Position{X: 1, Y: 0})
	require.NoError(t, err)

	require.Equal(t, []heightmap.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, slices.Collect(b.Positions()))
	require.Equal(t, heightmap.Position{X: 1, Y: 0}, b.Seed)
}

func TestExpandInvariants(t *testing.T) {
	t.Parallel()

	g := heightmap.MustParse(example)
	for _, seed := range seeds(g) {
		b, err := basin.Expand(g, seed)
		require.NoError(t, err)

		require.True(t, b.Contains(seed))

		for p := range b.Positions() {
			h, ok := g.HeightAt(p)
			require.True(t, ok)
			require.Less(t, h, heightmap.MaxHeight, "%s in basin of %s", p, seed)
		}

		require.Equal(t, b.Size(), reachable(g, b), "basin of %s is not connected", seed)
	}
}

func TestExpandIdempotent(t *testing.T) {
	t.Parallel()

	g := heightmap.MustParse(example)
	for _, seed := range seeds(g) {
		a, err := basin.Expand(g, seed)
		require.NoError(t, err)
		b, err := basin.Expand(g, seed)
		require.NoError(t, err)

		require.True(t, a.Equal(b))
	}
}

func TestExpandFromNonMinimum(t *testing.T) {
	t.Parallel()

	// any non-wall cell grows to its whole region
	g := heightmap.MustParse(example)
	b, err := basin.Expand(g, heightmap.Position{X: 4, Y: 2})
	require.NoError(t, err)
	require.Equal(t, 14, b.Size())
	require.True(t, b.Contains(heightmap.Position{X: 2, Y: 2}))
}

func TestExpandSingleCell(t *testing.T) {
	t.Parallel()

	g := heightmap.MustParse("5")
	b, err := basin.Expand(g, heightmap.Position{})
	require.NoError(t, err)
	require.Equal(t, 1, b.Size())
}

func TestExpandSeedIsAlwaysMember(t *testing.T) {
	t.Parallel()

	g := heightmap.MustParse("9")
	b, err := basin.Expand(g, heightmap.Position{})
	require.NoError(t, err)
	require.Equal(t, 1, b.Size())
	require.True(t, b.Contains(heightmap.Position{}))
}

func TestExpandStopsAtNines(t *testing.T) {
	t.Parallel()

	g := heightmap.MustParse("19\n91")
	b, err := basin.Expand(g, heightmap.Position{})
	require.NoError(t, err)
	require.Equal(t, 1, b.Size())
	require.False(t, b.Contains(heightmap.Position{X: 1, Y: 1}))
}

func TestExpandOverlappingBasins(t *testing.T) {
	t.Parallel()

	// two low points with no wall between them: both basins hold every cell
	g := heightmap.MustParse("121\n232")
	ss := seeds(g)
	require.Equal(t, []heightmap.Position{{X: 0, Y: 0}, {X: 2, Y: 0}}, ss)

	left, err := basin.Expand(g, ss[0])
	require.NoError(t, err)
	right, err := basin.Expand(g, ss[1])
	require.NoError(t, err)

	require.Equal(t, 6, left.Size())
	require.Equal(t, 6, right.Size())
	require.Equal(t, 6, left.Overlap(right))
	require.False(t, left.Equal(right), "different seeds")
}

func TestExpandSeedOutOfBounds(t *testing.T) {
	t.Parallel()

	g := heightmap.MustParse(example)
	for _, p := range []heightmap.Position{{X: -1, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 5}} {
		_, err := basin.Expand(g, p)
		require.ErrorIs(t, err, basin.ErrSeedOutOfBounds)
	}

	_, err := basin.Expand(heightmap.MustParse(""), heightmap.Position{})
	require.ErrorIs(t, err, basin.ErrSeedOutOfBounds)
}

func TestBasinContainsOutside(t *testing.T) {
	t.Parallel()

	g := heightmap.MustParse(example)
	b, err := basin.Expand(g, heightmap.Position{X: 9, Y: 0})
	require.NoError(t, err)

	require.False(t, b.Contains(heightmap.Position{X: -1, Y: 0}))
	require.False(t, b.Contains(heightmap.Position{X: 10, Y: 0}))
	require.False(t, b.Contains(heightmap.Position{X: 9, Y: -1}))
}

func TestExpandLargeGrid(t *testing.T) {
	t.Parallel()

	// a 300x300 open field would blow a recursive fill on small stacks
	rows := make([][]uint8, 300)
	for y := range rows {
		rows[y] = make([]uint8, 300)
		for x := range rows[y] {
			rows[y][x] = uint8((x + y) % 9)
		}
	}
	rows[0][0] = 0

	g, err := heightmap.New(rows)
	require.NoError(t, err)

	b, err := basin.Expand(g, heightmap.Position{})
	require.NoError(t, err)
	require.Equal(t, 300*300, b.Size())
}
