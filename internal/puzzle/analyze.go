package puzzle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/trim21/errgo"

	"lowpoint/internal/basin"
	"lowpoint/internal/heightmap"
	"lowpoint/internal/render"
)

type Options struct {
	// Workers bounds concurrent basin expansion; 0 or 1 runs sequentially.
	Workers int
	// Top is how many of the largest basins part two multiplies, basin.DefaultTop if 0.
	Top int
}

// Result is one answer, or the reason there is none.
type Result struct {
	Value int
	Err   error
}

func (r Result) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Err.Error()})
	}

	return json.Marshal(struct {
		Value int `json:"value"`
	}{r.Value})
}

// Report is everything computed for one input.
type Report struct {
	Name       string              `json:"name"`
	Width      int                 `json:"width"`
	Height     int                 `json:"height"`
	Minima     []heightmap.Minimum `json:"minima"`
	BasinSizes []int               `json:"basin_sizes"`
	PartOne    Result              `json:"part_one"`
	PartTwo    Result              `json:"part_two"`

	Basins []basin.Basin `json:"-"`
}

// Analyze computes the risk sum of the low points (part one) and the product
// of the largest basin sizes (part two). Too few basins for part two is
// reported in PartTwo.Err, not returned; only cancellation and internal
// failures are.
func Analyze(ctx context.Context, name string, g *heightmap.Grid, opts Options) (Report, error) {
	top := opts.Top
	if top == 0 {
		top = basin.DefaultTop
	}

	minima := heightmap.CollectMinima(g)
	if minima == nil {
		minima = []heightmap.Minimum{}
	}

	rep := Report{
		Name:    name,
		Width:   g.Width(),
		Height:  g.Height(),
		Minima:  minima,
		PartOne: Result{Value: lo.SumBy(minima, heightmap.Minimum.RiskLevel)},
	}

	seeds := lo.Map(minima, func(m heightmap.Minimum, _ int) heightmap.Position {
		return m.Position
	})

	basins, err := basin.ExpandAll(ctx, g, seeds, opts.Workers)
	if err != nil {
		return Report{}, errgo.Wrap(err, fmt.Sprintf("failed to expand basins of %s", name))
	}

	rep.Basins = basins
	rep.BasinSizes = basin.Sizes(basins)

	product, err := basin.Rank(basins, top)
	rep.PartTwo = Result{Value: product, Err: err}

	logger := log.With().Str("input", name).Logger()
	logger.Debug().
		Int("minima", len(minima)).
		Int("part_one", rep.PartOne.Value).
		Err(rep.PartTwo.Err).
		Msg("analyzed")

	return rep, nil
}

// WriteText prints both answers, one per line.
func (r Report) WriteText(w io.Writer, opts render.Options) error {
	_, err := fmt.Fprintf(w, "Solution to part one: %s\nSolution to part two: %s\n",
		render.Outcome(r.PartOne.Value, r.PartOne.Err, opts),
		render.Outcome(r.PartTwo.Value, r.PartTwo.Err, opts),
	)

	return err
}
