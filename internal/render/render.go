// Package render paints a height map with its basins for a terminal. It only
// reads the grid and a basin.Assignment; nothing here feeds back into the
// numbers.
package render

import (
	"io"

	"github.com/fatih/color"
	"github.com/valyala/bytebufferpool"

	"lowpoint/internal/basin"
	"lowpoint/internal/heightmap"
)

// basin colours, cycled when there are more basins than entries
var palette = []color.Attribute{
	color.FgBlue, color.FgCyan, color.FgGreen, color.FgMagenta, color.FgRed, color.FgWhite, color.FgYellow,
}

type Options struct {
	// NoColor writes bare digits.
	NoColor bool
}

func (o Options) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if o.NoColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}

	return c
}

type cellStyle struct {
	minimum *color.Color
	member  *color.Color
}

// Render writes g row by row. Low points are bold in their basin's colour,
// other basin cells faint in it, and cells outside every basin bold on black.
func Render(w io.Writer, g *heightmap.Grid, a basin.Assignment, opts Options) error {
	styles := make([]cellStyle, len(palette))
	for i, fg := range palette {
		styles[i] = cellStyle{
			minimum: opts.style(fg, color.Bold),
			member:  opts.style(fg, color.Faint),
		}
	}

	border := opts.style(color.Bold, color.BgBlack)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	digit := []byte{0}
	for y := range g.Height() {
		for x := range g.Width() {
			p := heightmap.Position{X: x, Y: y}
			h, _ := g.HeightAt(p)
			digit[0] = '0' + h

			c := border
			if owner, ok := a.Owner(p); ok {
				s := styles[owner%len(styles)]
				c = s.member
				if a.IsMinimum(p) {
					c = s.minimum
				}
			}

			_, _ = buf.WriteString(c.Sprint(string(digit)))
		}

		_ = buf.WriteByte('\n')
	}

	_, err := w.Write(buf.B)

	return err
}
