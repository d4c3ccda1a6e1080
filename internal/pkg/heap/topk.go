package heap

// TopK keeps the k largest values offered to it.
// A min-heap of at most k elements holds the current winners, so offering n
// values costs O(n log k).
type TopK[T any] struct {
	h *Heap[T]
	k int
}

// NewTopK returns a keeper of the k largest values under less.
func NewTopK[T any](k int, less func(a, b T) bool) *TopK[T] {
	if k < 0 {
		panic("negative k")
	}

	return &TopK[T]{h: New(less), k: k}
}

// Offer considers v for membership in the top k.
func (t *TopK[T]) Offer(v T) {
	if t.k == 0 {
		return
	}

	if t.h.Len() < t.k {
		t.h.Push(v)
		return
	}

	if t.h.less(t.h.Peek(), v) {
		t.h.Pop()
		t.h.Push(v)
	}
}

// Len returns how many values are currently kept, never more than k.
func (t *TopK[T]) Len() int {
	return t.h.Len()
}

// Desc drains the keeper and returns the kept values largest first.
func (t *TopK[T]) Desc() []T {
	out := make([]T, t.h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = t.h.Pop()
	}

	return out
}
