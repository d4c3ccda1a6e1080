// Package basin grows the basin around each low point of a height map by
// flood fill and ranks the basins by size.
//
// A basin is every cell reachable from its seed by up/down/left/right steps
// that never enter a cell of height 9. Basins are grown independently, so two
// basins that meet without a 9 between them both contain the shared cells.
package basin

import (
	"iter"

	"lowpoint/internal/heightmap"
	"lowpoint/internal/pkg/as"
	"lowpoint/internal/pkg/bm"
)

// Basin is the set of cells draining to Seed. It is immutable.
type Basin struct {
	members bm.Set
	Seed    heightmap.Position
	width   int
}

// Size is the number of cells in the basin, the seed included.
func (b Basin) Size() int {
	return b.members.Count()
}

func (b Basin) Contains(p heightmap.Position) bool {
	if p.X < 0 || p.X >= b.width || p.Y < 0 {
		return false
	}

	return b.members.Contains(as.Uint32(p.Y*b.width + p.X))
}

// Positions yields the members row by row.
func (b Basin) Positions() iter.Seq[heightmap.Position] {
	return func(yield func(heightmap.Position) bool) {
		for i := range b.members.All() {
			p := heightmap.Position{X: int(i) % b.width, Y: int(i) / b.width}
			if !yield(p) {
				return
			}
		}
	}
}

// Equal reports whether both basins have the same seed and the same cells.
func (b Basin) Equal(o Basin) bool {
	return b.Seed == o.Seed && b.width == o.width && b.members.Equal(o.members)
}

// Overlap counts the cells b shares with o.
func (b Basin) Overlap(o Basin) int {
	if b.width != o.width {
		return 0
	}

	return b.members.IntersectionCount(o.members)
}
