package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/docker/go-units"
)

// maxLineLength bounds a single input row.
const maxLineLength = 16 * units.MiB

// Parse reads one row per line, one ASCII digit per cell. A trailing "\r" on a
// line is ignored, as are blank lines at the very end of the input. Empty input
// gives an empty grid, not an error.
func Parse(r io.Reader) (*Grid, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineLength)

	var rows [][]uint8
	var blank int // blank lines seen since the last non-blank row

	for line := 1; s.Scan(); line++ {
		text := strings.TrimSuffix(s.Text(), "\r")
		if text == "" {
			blank++
			continue
		}

		if blank > 0 {
			return nil, &ParseError{Line: line - blank, Reason: "empty row"}
		}

		row := make([]uint8, len(text))
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c < '0' || c > '9' {
				return nil, &ParseError{
					Line:   line,
					Column: i + 1,
					Reason: fmt.Sprintf("invalid height %q", c),
				}
			}

			row[i] = c - '0'
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, &ParseError{
				Line:   line,
				Reason: fmt.Sprintf("row has %d cells, want %d", len(row), len(rows[0])),
			}
		}

		rows = append(rows, row)
	}

	if err := s.Err(); err != nil {
		return nil, err
	}

	return New(rows)
}

// MustParse is Parse for literals in tests and examples.
func MustParse(s string) *Grid {
	g, err := Parse(strings.NewReader(s))
	if err != nil {
		panic(err)
	}

	return g
}
