package basin

import (
	"context"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/panics"
	"github.com/trim21/errgo"
	"go.uber.org/atomic"

	"lowpoint/internal/heightmap"
)

// ExpandAll grows one basin per seed and returns them in seed order.
//
// With workers > 1 the expansions run on a pool of that many goroutines. Each
// run has its own scratch state and only reads g, so no locking is needed. A
// panic in any run is recovered and returned as an error. Once ctx is done no
// further runs are started and ctx.Err() is returned.
func ExpandAll(ctx context.Context, g *heightmap.Grid, seeds []heightmap.Position, workers int) ([]Basin, error) {
	for _, seed := range seeds {
		if !g.InBounds(seed) {
			return nil, fmt.Errorf("%w: %s outside %dx%d grid", ErrSeedOutOfBounds, seed, g.Width(), g.Height())
		}
	}

	basins := make([]Basin, len(seeds))

	if workers <= 1 || len(seeds) < 2 {
		for i, seed := range seeds {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			basins[i] = expand(g, seed)
		}

		return basins, nil
	}

	p, err := ants.NewPool(min(workers, len(seeds)), ants.WithPreAlloc(true))
	if err != nil {
		return nil, errgo.Wrap(err, "failed to create expansion pool")
	}
	defer p.Release()

	var (
		wg    sync.WaitGroup
		pc    panics.Catcher
		cells atomic.Int64
	)

	for i, seed := range seeds {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		err := p.Submit(func() {
			defer wg.Done()
			pc.Try(func() {
				basins[i] = expand(g, seed)
				cells.Add(int64(basins[i].Size()))
			})
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, errgo.Wrap(err, "failed to submit basin expansion")
		}
	}

	wg.Wait()

	if r := pc.Recovered(); r != nil {
		return nil, r.AsError()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug().
		Int("basins", len(basins)).
		Int("workers", p.Cap()).
		Str("cells", humanize.Comma(cells.Load())).
		Msg("expanded basins")

	return basins, nil
}
