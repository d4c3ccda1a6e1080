package pool

import (
	"sync"
)

// Pool is a typed sync.Pool. Values returned by Get are either fresh from the
// constructor or were handed back with Put after passing the reset hook.
type Pool[T any] struct {
	reset func(T) bool
	pool  sync.Pool
}

//nolint:forcetypeassert
func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put returns t to the pool. If the pool has a reset hook and it reports
// false, t is dropped instead.
func (p *Pool[T]) Put(t T) {
	if p.reset != nil && !p.reset(t) {
		return
	}

	p.pool.Put(t)
}

func New[T any, F func() T](fn F) *Pool[T] {
	if fn == nil {
		panic("missing new function")
	}

	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return fn()
			},
		},
	}
}

// NewWithReset is like New but runs reset on every value given to Put.
func NewWithReset[T any, F func() T, R func(T) bool](fn F, reset R) *Pool[T] {
	if reset == nil {
		panic("missing reset function")
	}

	p := New[T, F](fn)
	p.reset = reset

	return p
}
