//go:build !release

// runtime check int overflow

package as

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Uint8 converts v to uint8, panics if v doesn't fit.
func Uint8[T constraints.Integer](v T) uint8 {
	if v < 0 || uint64(v) > math.MaxUint8 {
		panic(fmt.Sprintf("%d overflow uint8", v))
	}

	return uint8(v)
}

// Uint32 converts v to uint32, panics if v doesn't fit.
func Uint32[T constraints.Integer](v T) uint32 {
	if v < 0 || uint64(v) > math.MaxUint32 {
		panic(fmt.Sprintf("%d overflow uint32", v))
	}

	return uint32(v)
}

// Int64 converts v to int64, panics if v doesn't fit.
func Int64[T constraints.Integer](v T) int64 {
	if v > 0 && uint64(v) > math.MaxInt64 {
		panic(fmt.Sprintf("%d overflow int64", v))
	}

	return int64(v)
}
