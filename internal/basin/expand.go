package basin

import (
	"fmt"

	"github.com/kelindar/bitmap"
	"github.com/negrel/assert"

	"lowpoint/internal/heightmap"
	"lowpoint/internal/pkg/as"
	"lowpoint/internal/pkg/bm"
	"lowpoint/internal/pkg/pool"
)

// scratch is the per-run working state of a flood fill: the confirmed members,
// the cells waiting on the stack, and the stack itself.
type scratch struct {
	visited bitmap.Bitmap
	pending bitmap.Bitmap
	stack   []uint32
	nbuf    [4]heightmap.Neighbor
}

// scratch larger than this is dropped instead of pooled.
const maxPooledWords = 1 << 16

var scratchPool = pool.NewWithReset(
	func() *scratch {
		return &scratch{stack: make([]uint32, 0, 64)}
	},
	func(s *scratch) bool {
		if len(s.visited) > maxPooledWords {
			return false
		}

		s.visited.Clear()
		s.pending.Clear()
		s.stack = s.stack[:0]

		return true
	},
)

// Expand grows the basin around seed. The seed is always a member; from it
// the fill spreads to every neighbour lower than 9 that is not already a
// member or already waiting to be visited.
func Expand(g *heightmap.Grid, seed heightmap.Position) (Basin, error) {
	if !g.InBounds(seed) {
		return Basin{}, fmt.Errorf("%w: %s outside %dx%d grid", ErrSeedOutOfBounds, seed, g.Width(), g.Height())
	}

	return expand(g, seed), nil
}

func expand(g *heightmap.Grid, seed heightmap.Position) Basin {
	s := scratchPool.Get()
	defer scratchPool.Put(s)

	s.visited.Grow(as.Uint32(g.Len() - 1))
	s.pending.Grow(as.Uint32(g.Len() - 1))

	members := s.fill(g, seed)
	assert.Equal(members.Count(), s.visited.Count())

	return Basin{Seed: seed, members: members, width: g.Width()}
}

func (s *scratch) fill(g *heightmap.Grid, seed heightmap.Position) bm.Set {
	first := as.Uint32(g.Offset(seed))
	s.pending.Set(first)
	s.stack = append(s.stack, first)

	for len(s.stack) > 0 {
		last := len(s.stack) - 1
		i := s.stack[last]
		s.stack = s.stack[:last]

		s.pending.Remove(i)
		s.visited.Set(i)

		for _, n := range g.Neighbors(g.PositionOf(int(i)), s.nbuf[:0]) {
			if n.Height >= heightmap.MaxHeight {
				continue
			}

			j := as.Uint32(g.Offset(n.Position))
			if s.visited.Contains(j) || s.pending.Contains(j) {
				continue
			}

			s.pending.Set(j)
			s.stack = append(s.stack, j)
		}
	}

	return bm.Freeze(s.visited)
}
