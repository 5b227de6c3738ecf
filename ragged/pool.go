package ragged

import "sync"

// Pool provides sync.Pool-based List reuse so hot paths that build and
// discard many lists keep their buffer allocations.
type Pool[T Scalar] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T Scalar]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return NewList[T]()
			},
		},
	}
}

// Get returns an empty List, reusing a pooled one (and its buffer
// capacity) when available. Callers must return it via Put when done.
func (p *Pool[T]) Get() *List[T] {
	l := p.pool.Get().(*List[T])
	l.Clear()
	return l
}

// Put returns a List to the pool for reuse. The caller must not use the
// list, or any view into it, after calling Put.
func (p *Pool[T]) Put(l *List[T]) {
	if l == nil {
		return
	}
	p.pool.Put(l)
}
