package bm_test

import (
	"slices"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/kelindar/bitmap"
	"github.com/stretchr/testify/require"

	"lowpoint/internal/pkg/bm"
)

func TestFreeze(t *testing.T) {
	var b bitmap.Bitmap
	b.Set(0)
	b.Set(9)
	b.Set(70)

	s := bm.Freeze(b)
	require.Equal(t, 3, s.Count())
	require.True(t, s.Contains(9))
	require.True(t, s.Contains(70))
	require.False(t, s.Contains(10))

	b.Set(10)
	b.Remove(9)
	require.True(t, s.Contains(9), "frozen set must not alias the dense bitmap")
	require.False(t, s.Contains(10))

	require.Equal(t, []uint32{0, 9, 70}, slices.Collect(s.All()))
}

func TestEqual(t *testing.T) {
	var b bitmap.Bitmap
	b.Set(3)
	b.Set(4)

	require.True(t, bm.Freeze(b).Equal(bm.Of(3, 4)))
	require.False(t, bm.Freeze(b).Equal(bm.Of(3)))
	require.True(t, bm.Set{}.Equal(bm.Of()))
	require.Equal(t, 0, bm.Set{}.Count())
	require.False(t, bm.Set{}.Contains(0))
}

func TestIntersectionCount(t *testing.T) {
	require.Equal(t, 2, bm.Of(1, 2, 3).IntersectionCount(bm.Of(2, 3, 4)))
	require.Equal(t, 0, bm.Of(1).IntersectionCount(bm.Set{}))
}

func TestCompressedBytes(t *testing.T) {
	r := roaring.New()
	require.NoError(t, r.UnmarshalBinary(bm.Of(5, 6).CompressedBytes()))
	require.Equal(t, []uint32{5, 6}, r.ToArray())
}
