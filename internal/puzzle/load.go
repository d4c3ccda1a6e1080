// Package puzzle ties the pieces together for one named input: it loads the
// height map, runs both analyses and shapes the answers for output.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/trim21/errgo"

	"lowpoint/internal/heightmap"
	"lowpoint/internal/pkg/gctx"
	"lowpoint/internal/pkg/rater"
)

// Stdin is the input name that reads standard input instead of a file.
const Stdin = "-"

var ErrInputTooLarge = errors.New("puzzle: input too large")

// InputPath maps an input name to the file it is read from: <dir>/<name>.input.
func InputPath(dir, name string) string {
	if name == Stdin {
		return Stdin
	}

	return filepath.Join(dir, name+".input")
}

// Load reads and parses the height map at path, refusing inputs larger than
// maxSize bytes. Parse failures wrap heightmap.ErrMalformedInput.
func Load(ctx context.Context, path string, maxSize int64) (*heightmap.Grid, error) {
	var src io.Reader

	if path == Stdin {
		src = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errgo.Wrap(err, "failed to open input")
		}
		defer f.Close()

		st, err := f.Stat()
		if err != nil {
			return nil, errgo.Wrap(err, "failed to stat input")
		}

		if st.Size() > maxSize {
			return nil, fmt.Errorf("%w: %s is %s, limit %s",
				ErrInputTooLarge, path, humanize.IBytes(uint64(st.Size())), humanize.IBytes(uint64(maxSize)))
		}

		src = f
	}

	r := rater.NewRater(gctx.NewReader(ctx, io.LimitReader(src, maxSize+1)))

	g, err := heightmap.Parse(r)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("reading %s: %w", path, ctxErr)
		}

		if r.Count() > maxSize {
			return nil, fmt.Errorf("%w: %s exceeds %s", ErrInputTooLarge, path, humanize.IBytes(uint64(maxSize)))
		}

		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if r.Count() > maxSize {
		return nil, fmt.Errorf("%w: %s exceeds %s", ErrInputTooLarge, path, humanize.IBytes(uint64(maxSize)))
	}

	n, d := r.Rate()
	log.Debug().
		Str("path", path).
		Str("size", humanize.IBytes(uint64(n))).
		Dur("took", d).
		Int("width", g.Width()).
		Int("height", g.Height()).
		Msg("loaded height map")

	return g, nil
}
