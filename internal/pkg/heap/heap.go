// Package heap provides a binary min-heap ordered by a caller supplied
// less function, and a bounded keeper of the k largest values built on it.
package heap

// Heap implements a binary heap. The element for which less reports true
// against every other element sits at the root.
type Heap[T any] struct {
	less func(a, b T) bool
	data []T
}

// New returns an empty heap ordered by less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic("missing less function")
	}

	return &Heap[T]{less: less}
}

// FromSlice heapifies data in place and uses it as the backing array.
func FromSlice[T any](data []T, less func(a, b T) bool) *Heap[T] {
	h := New(less)
	h.data = data

	for i := len(data)/2 - 1; i >= 0; i-- {
		h.down(i)
	}

	return h
}

// Push pushes the given element onto the heap.
func (h *Heap[T]) Push(x T) {
	h.data = append(h.data, x)
	h.up(len(h.data) - 1)
}

// Pop removes and returns the root element.
// panic if heap is empty
func (h *Heap[T]) Pop() T {
	x := h.data[0]

	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]

	h.down(0)

	return x
}

// Peek returns the root element without removing it.
func (h *Heap[T]) Peek() T {
	return h.data[0]
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.data)
}

func (h *Heap[T]) down(i int) {
	for {
		left, right := 2*i+1, 2*i+2
		if left >= len(h.data) || left < 0 { // `left < 0` in case of overflow
			break
		}

		j := left
		if right < len(h.data) && h.less(h.data[right], h.data[left]) {
			j = right
		}

		if !h.less(h.data[j], h.data[i]) {
			break
		}

		h.data[i], h.data[j] = h.data[j], h.data[i]
		i = j
	}
}

func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			break
		}

		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}
