package basin

import "errors"

var (
	// ErrInsufficientBasins is returned when fewer basins exist than the
	// ranking asks for. The ranking never pads with a default size.
	ErrInsufficientBasins = errors.New("basin: not enough basins")
	// ErrSeedOutOfBounds is returned for an expansion seed outside the grid.
	ErrSeedOutOfBounds = errors.New("basin: seed out of bounds")
)
