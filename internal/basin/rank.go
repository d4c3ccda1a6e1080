package basin

import (
	"fmt"

	"github.com/samber/lo"

	"lowpoint/internal/pkg/heap"
)

// DefaultTop is how many of the largest basins the report multiplies.
const DefaultTop = 3

// Sizes maps basins to their cell counts, in input order.
func Sizes(basins []Basin) []int {
	return lo.Map(basins, func(b Basin, _ int) int {
		return b.Size()
	})
}

// TopSizes returns the k largest basin sizes, largest first. Equal sizes are
// interchangeable so which basin supplied a size is not reported.
func TopSizes(basins []Basin, k int) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("basin: top must be positive, got %d", k)
	}

	if len(basins) < k {
		return nil, fmt.Errorf("%w: need %d, found %d", ErrInsufficientBasins, k, len(basins))
	}

	top := heap.NewTopK(k, func(a, b int) bool { return a < b })
	for _, b := range basins {
		top.Offer(b.Size())
	}

	return top.Desc(), nil
}

// Rank multiplies the k largest basin sizes.
func Rank(basins []Basin, k int) (int, error) {
	sizes, err := TopSizes(basins, k)
	if err != nil {
		return 0, err
	}

	product := 1
	for _, s := range sizes {
		product *= s
	}

	return product, nil
}
