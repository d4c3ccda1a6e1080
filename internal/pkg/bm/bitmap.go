package bm

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/kelindar/bitmap"
	"github.com/samber/lo"
)

// Set is an immutable set of uint32 indexes backed by a compressed roaring
// bitmap. The zero value is an empty set.
type Set struct {
	bm *roaring.Bitmap
}

// Freeze copies a dense bitmap into a Set. Later writes to b are not visible
// through the returned Set, so b may be reused.
func Freeze(b bitmap.Bitmap) Set {
	r := roaring.FromDense(b, true)
	r.RunOptimize()

	return Set{bm: r}
}

// Of returns a Set holding exactly the given indexes.
func Of(values ...uint32) Set {
	return Set{bm: roaring.BitmapOf(values...)}
}

func (s Set) Count() int {
	if s.bm == nil {
		return 0
	}

	return int(s.bm.GetCardinality())
}

func (s Set) Contains(i uint32) bool {
	return s.bm != nil && s.bm.Contains(i)
}

// All yields members in ascending order.
func (s Set) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if s.bm == nil {
			return
		}

		s.bm.Iterate(yield)
	}
}

func (s Set) Equal(o Set) bool {
	if s.Count() == 0 || o.Count() == 0 {
		return s.Count() == o.Count()
	}

	return s.bm.Equals(o.bm)
}

// IntersectionCount returns |s ∩ o| without materialising the intersection.
func (s Set) IntersectionCount(o Set) int {
	if s.bm == nil || o.bm == nil {
		return 0
	}

	return int(s.bm.AndCardinality(o.bm))
}

// CompressedBytes returns the portable roaring serialisation of the set.
func (s Set) CompressedBytes() []byte {
	if s.bm == nil {
		return lo.Must(roaring.New().MarshalBinary())
	}

	return lo.Must(s.bm.MarshalBinary())
}
