package ragged

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cwbudde/algo-ragged/internal/flatbuf"
)

// List is a dynamically resizable ragged container: a strongly typed
// list of variable-length elements stored back to back in one flat
// buffer. Appending is amortized O(1) per scalar; insert and delete cost
// is proportional to the payload shifted.
type List[T Scalar] struct {
	store *flatbuf.Store[T]
}

// NewList returns an empty list.
func NewList[T Scalar](opts ...ListOption) *List[T] {
	cfg := DefaultListConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &List[T]{store: flatbuf.New[T](cfg.Capacity)}
}

// ListOf returns a list holding values partitioned according to sizes.
func ListOf[T Scalar](values []T, sizes Sizes) (*List[T], error) {
	l := NewList[T](WithCapacity(len(values)))
	if err := l.AppendGrouped(values, sizes); err != nil {
		return nil, err
	}
	return l, nil
}

// FromSlices returns a list with one element per group. The groups are
// copied into the list's own buffer.
func FromSlices[T Scalar](groups ...[]T) *List[T] {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	l := NewList[T](WithCapacity(total))
	for _, g := range groups {
		l.store.Append(g)
	}
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.store.Len()
}

// Size returns the total payload length across all elements.
func (l *List[T]) Size() int {
	return l.store.Used()
}

// Capacity returns the payload capacity of the backing buffer.
func (l *List[T]) Capacity() int {
	return l.store.Capacity()
}

// Data returns the live flat payload, with no element structure. The
// slice aliases the list's buffer: writing through it writes the list,
// and it is invalidated by any structural mutation.
func (l *List[T]) Data() []T {
	return l.store.Data()
}

// Append adds values as one new element. Calling with no values appends
// a zero-length element.
func (l *List[T]) Append(values ...T) error {
	l.store.Append(values)
	return nil
}

// AppendGrouped adds values as the elements described by sizes, in one
// pass. Returns ErrBadPartition when sizes are inconsistent with
// len(values); the list is unchanged in that case.
func (l *List[T]) AppendGrouped(values []T, sizes Sizes) error {
	groups, err := sizes.resolve(len(values))
	if err != nil {
		return err
	}
	return l.store.AppendGrouped(values, groups)
}

// Insert places values before element i as one new element. i may equal
// Len, which appends; negative indices count from the end.
func (l *List[T]) Insert(i int, values ...T) error {
	return l.store.Insert(i, values, nil)
}

// InsertGrouped places values before element i as the elements described
// by sizes.
func (l *List[T]) InsertGrouped(i int, values []T, sizes Sizes) error {
	groups, err := sizes.resolve(len(values))
	if err != nil {
		return err
	}
	return l.store.Insert(i, values, groups)
}

// At returns a mutable view of element i. Negative indices count from
// the end.
func (l *List[T]) At(i int) (View[T], error) {
	start, end, err := l.store.Address(i)
	if err != nil {
		return View[T]{}, err
	}
	return View[T]{store: l.store, start: start, end: end, gen: l.store.Generation()}, nil
}

// Get returns element i's payload. The slice aliases the list's buffer.
func (l *List[T]) Get(i int) ([]T, error) {
	start, end, err := l.store.Address(i)
	if err != nil {
		return nil, err
	}
	return l.store.Data()[start:end], nil
}

// SliceRange returns a storage-sharing window over elements [lo, hi),
// clamped to the valid range. Use Materialize on the result for an
// independent copy.
func (l *List[T]) SliceRange(lo, hi int) Slice[T] {
	lo, hi = l.store.ResolveRange(lo, hi)
	return Slice[T]{store: l.store, lo: lo, hi: hi, gen: l.store.Generation()}
}

// SetAt replaces element i's content. A replacement of equal length is a
// pure in-place overwrite. A replacement of different length removes the
// element and inserts the new content at the same position, shifting all
// subsequent offsets.
func (l *List[T]) SetAt(i int, values ...T) error {
	start, end, err := l.store.Address(i)
	if err != nil {
		return err
	}
	if end-start == len(values) {
		copy(l.store.Data()[start:end], values)
		return nil
	}
	if i < 0 {
		i += l.Len()
	}
	if err := l.store.Delete(i); err != nil {
		return err
	}
	return l.store.Insert(i, values, nil)
}

// Delete removes element i, compacting the buffer.
func (l *List[T]) Delete(i int) error {
	return l.store.Delete(i)
}

// DeleteRange removes elements [lo, hi), clamped to the valid range.
func (l *List[T]) DeleteRange(lo, hi int) error {
	l.store.DeleteRange(lo, hi)
	return nil
}

// Clear removes all elements, keeping the allocated capacity.
func (l *List[T]) Clear() {
	l.store.Reset()
}

// Reserve grows the backing buffer to hold at least n payload scalars.
// Shrinking below the live payload is ignored.
func (l *List[T]) Reserve(n int) {
	if n > l.store.Capacity() {
		l.store.Reshape(n)
	}
}

// All iterates over elements in order, yielding the index and the
// element's payload. The yielded slices alias the list's buffer and must
// not be held across structural mutations.
func (l *List[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; i < l.Len(); i++ {
			start, end, err := l.store.Address(i)
			if err != nil {
				return
			}
			if !yield(i, l.store.Data()[start:end]) {
				return
			}
		}
	}
}

// String renders the list as "[ [0] [1 2] [3 4 5] ]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, elem := range l.All() {
		fmt.Fprintf(&sb, "%v ", elem)
	}
	sb.WriteString("]")
	return sb.String()
}
