package heightmap

import (
	"iter"

	"github.com/samber/lo"
)

// Minimum is a low point: a cell strictly lower than each of its neighbours.
type Minimum struct {
	Position
	Height uint8 `json:"height"`
}

// RiskLevel is the height plus one.
func (m Minimum) RiskLevel() int {
	return int(m.Height) + 1
}

// Minima lazily scans g row by row and yields every low point with its
// height. A cell is a low point when every in-bounds neighbour is strictly
// higher; a neighbour of equal height disqualifies it, and a cell with no
// neighbours at all (a 1x1 grid) qualifies trivially.
func Minima(g *Grid) iter.Seq2[Position, uint8] {
	return func(yield func(Position, uint8) bool) {
		var buf [4]Neighbor

		for p := range g.Positions() {
			h, _ := g.HeightAt(p)
			if !lowerThanAll(h, g.Neighbors(p, buf[:0])) {
				continue
			}

			if !yield(p, h) {
				return
			}
		}
	}
}

func lowerThanAll(h uint8, neighbors []Neighbor) bool {
	for _, n := range neighbors {
		if n.Height <= h {
			return false
		}
	}

	return true
}

// CollectMinima drains Minima into a slice, in scan order.
func CollectMinima(g *Grid) []Minimum {
	var out []Minimum
	for p, h := range Minima(g) {
		out = append(out, Minimum{Position: p, Height: h})
	}

	return out
}

// RiskSum adds up the risk level of every low point; 0 for an empty grid.
func RiskSum(g *Grid) int {
	return lo.SumBy(CollectMinima(g), Minimum.RiskLevel)
}
