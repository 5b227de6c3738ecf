package ragged

import (
	"github.com/cwbudde/algo-ragged/internal/elemwise"
	"github.com/cwbudde/algo-ragged/internal/flatbuf"
)

// Slice is a lightweight window over a contiguous element range of a
// List. It shares the List's storage rather than copying: bulk updates
// through a Slice mutate the owning buffer in place. Like a View, a
// Slice is invalidated by any structural mutation of its owner.
type Slice[T Scalar] struct {
	store  *flatbuf.Store[T]
	lo, hi int
	gen    uint64
}

// Len returns the number of elements in the window.
func (s Slice[T]) Len() int {
	return s.hi - s.lo
}

func (s Slice[T]) payload() ([]T, error) {
	if s.gen != s.store.Generation() {
		return nil, ErrStaleView
	}
	start, end, _ := s.store.SliceAddress(s.lo, s.hi)
	return s.store.Data()[start:end], nil
}

// At returns a mutable view of the k-th element in the window.
func (s Slice[T]) At(k int) (View[T], error) {
	if s.gen != s.store.Generation() {
		return View[T]{}, ErrStaleView
	}
	if k < 0 {
		k += s.Len()
	}
	if k < 0 || k >= s.Len() {
		return View[T]{}, ErrIndexOutOfRange
	}
	start, end, err := s.store.Address(s.lo + k)
	if err != nil {
		return View[T]{}, err
	}
	return View[T]{store: s.store, start: start, end: end, gen: s.gen}, nil
}

// Data returns the window's flat payload. Because elements are laid out
// contiguously and in order, the window always maps to one contiguous
// buffer sub-range. The slice aliases the owning buffer.
func (s Slice[T]) Data() ([]T, error) {
	return s.payload()
}

// CopyFrom overwrites the window's flat payload with src, which must
// have the window's exact payload length.
func (s Slice[T]) CopyFrom(src []T) error {
	p, err := s.payload()
	if err != nil {
		return err
	}
	if len(src) != len(p) {
		return ErrShapeMismatch
	}
	copy(p, src)
	return nil
}

// AddScalar adds k to every scalar covered by the window, in place.
func (s Slice[T]) AddScalar(k T) error {
	p, err := s.payload()
	if err != nil {
		return err
	}
	elemwise.AddScalar(p, k)
	return nil
}

// Scale multiplies every scalar covered by the window by factor, in
// place.
func (s Slice[T]) Scale(factor T) error {
	p, err := s.payload()
	if err != nil {
		return err
	}
	elemwise.Scale(p, factor)
	return nil
}

// Materialize copies the window into a new, independent List with the
// same element structure.
func (s Slice[T]) Materialize() (*List[T], error) {
	p, err := s.payload()
	if err != nil {
		return nil, err
	}
	sizes := make([]int, 0, s.Len())
	for i := s.lo; i < s.hi; i++ {
		start, end, err := s.store.Address(i)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, end-start)
	}
	out := NewList[T](WithCapacity(len(p)))
	if err := out.AppendGrouped(p, PerGroup(sizes...)); err != nil {
		return nil, err
	}
	return out, nil
}
