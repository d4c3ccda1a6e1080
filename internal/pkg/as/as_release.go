//go:build release

package as

import "golang.org/x/exp/constraints"

func Uint8[T constraints.Integer](v T) uint8 {
	return uint8(v)
}

func Uint32[T constraints.Integer](v T) uint32 {
	return uint32(v)
}

func Int64[T constraints.Integer](v T) int64 {
	return int64(v)
}
