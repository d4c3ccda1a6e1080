package basin

import (
	"github.com/kelindar/bitmap"

	"lowpoint/internal/heightmap"
	"lowpoint/internal/pkg/as"
)

// Assignment maps each cell to the basin it is drawn in. It carries no
// behaviour beyond lookups and is what renderers consume.
type Assignment struct {
	owner  []int32
	minima bitmap.Bitmap
	width  int
	shared int
}

// Assign records, for every cell, the index of the last basin in basins that
// contains it, and marks each basin's seed as a low point. Cells in no basin
// have no owner.
func Assign(g *heightmap.Grid, basins []Basin) Assignment {
	a := Assignment{
		owner: make([]int32, g.Len()),
		width: g.Width(),
	}

	for i := range a.owner {
		a.owner[i] = -1
	}

	for i, b := range basins {
		for p := range b.Positions() {
			o := g.Offset(p)
			if a.owner[o] >= 0 {
				a.shared++
			}

			a.owner[o] = int32(i)
		}

		a.minima.Set(as.Uint32(g.Offset(b.Seed)))
	}

	return a
}

// Owner returns the index of the basin p is drawn in.
func (a Assignment) Owner(p heightmap.Position) (int, bool) {
	if p.X < 0 || p.X >= a.width || p.Y < 0 {
		return 0, false
	}

	o := p.Y*a.width + p.X
	if o >= len(a.owner) || a.owner[o] < 0 {
		return 0, false
	}

	return int(a.owner[o]), true
}

// IsMinimum reports whether p seeds one of the assigned basins.
func (a Assignment) IsMinimum(p heightmap.Position) bool {
	if p.X < 0 || p.X >= a.width || p.Y < 0 {
		return false
	}

	return a.minima.Contains(as.Uint32(p.Y*a.width + p.X))
}

// Shared counts the cell memberships beyond the first: a cell in three basins
// adds two.
func (a Assignment) Shared() int {
	return a.shared
}
