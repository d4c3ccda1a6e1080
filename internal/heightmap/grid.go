// Package heightmap holds the read-only height grid and the queries the
// basin analysis runs against it: bounded 4-directional neighbours and the
// local-minimum scan.
package heightmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/negrel/assert"
)

// MaxHeight is the tallest cell a grid may hold. Cells of this height are the
// walls between basins.
const MaxHeight uint8 = 9

// Position identifies a grid cell by column X and row Y.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Neighbor is an in-bounds cell adjacent to some position, with its height.
type Neighbor struct {
	Position
	Height uint8
}

// offsets in the order above, below, left, right.
var offsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Grid is a rectangular height map stored row-major in a single arena.
// It is never modified after construction and is safe for concurrent reads.
type Grid struct {
	cells  []uint8
	width  int
	height int
}

// New copies rows into a Grid. All rows must have the same length and every
// value must lie in 0..MaxHeight. Zero rows, or rows of zero length, make an
// empty grid.
func New(rows [][]uint8) (*Grid, error) {
	g := &Grid{height: len(rows)}
	if len(rows) == 0 {
		return g, nil
	}

	g.width = len(rows[0])
	g.cells = make([]uint8, 0, g.width*g.height)

	for y, row := range rows {
		if len(row) != g.width {
			return nil, &ParseError{
				Line:   y + 1,
				Reason: fmt.Sprintf("row has %d cells, want %d", len(row), g.width),
			}
		}

		for x, h := range row {
			if h > MaxHeight {
				return nil, fmt.Errorf("%w: %d at %s", ErrHeightOutOfRange, h, Position{X: x, Y: y})
			}
		}

		g.cells = append(g.cells, row...)
	}

	assert.Len(g.cells, g.width*g.height)

	return g, nil
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Offset maps p to its row-major index y*width+x. p must be in bounds.
func (g *Grid) Offset(p Position) int {
	return p.Y*g.width + p.X
}

// PositionOf is the inverse of Offset.
func (g *Grid) PositionOf(offset int) Position {
	return Position{X: offset % g.width, Y: offset / g.width}
}

// HeightAt returns the height at p, or false if p is outside the grid.
func (g *Grid) HeightAt(p Position) (uint8, bool) {
	if !g.InBounds(p) {
		return 0, false
	}

	return g.cells[g.Offset(p)], true
}

// Neighbors appends to buf the in-bounds cells directly above, below, left
// and right of p, and returns the extended slice. Directions that fall
// outside the grid are left out, so an edge cell has three neighbours and a
// corner two. Passing a [4]Neighbor backed buf avoids allocation.
func (g *Grid) Neighbors(p Position, buf []Neighbor) []Neighbor {
	for _, d := range offsets {
		q := Position{X: p.X + d[0], Y: p.Y + d[1]}
		if h, ok := g.HeightAt(q); ok {
			buf = append(buf, Neighbor{Position: q, Height: h})
		}
	}

	return buf
}

// Positions yields every cell once, row by row.
func (g *Grid) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for y := range g.height {
			for x := range g.width {
				if !yield(Position{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// String renders the grid back into its input form, rows joined by '\n'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Len() + g.height)

	for y := range g.height {
		if y > 0 {
			b.WriteByte('\n')
		}

		for _, h := range g.cells[y*g.width : (y+1)*g.width] {
			b.WriteByte('0' + h)
		}
	}

	return b.String()
}
