package ragged

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/cwbudde/algo-ragged/internal/flatbuf"
)

// Tuple is the fixed-cardinality variant of List: the element count and
// total payload length are frozen at construction. Content can still be
// changed through same-length replacement and in-place arithmetic unless
// the tuple was constructed with WithImmutable, which permanently denies
// every write.
type Tuple[T Scalar] struct {
	store     *flatbuf.Store[T]
	immutable bool
}

// NewTuple returns a tuple holding a copy of values partitioned
// according to sizes.
func NewTuple[T Scalar](values []T, sizes Sizes, opts ...TupleOption) (*Tuple[T], error) {
	var cfg TupleConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	groups, err := sizes.resolve(len(values))
	if err != nil {
		return nil, err
	}
	store := flatbuf.New[T](len(values))
	if err := store.AppendGrouped(values, groups); err != nil {
		return nil, err
	}
	return &Tuple[T]{store: store, immutable: cfg.Immutable}, nil
}

// TupleFromSlices returns a tuple with one element per group.
func TupleFromSlices[T Scalar](groups [][]T, opts ...TupleOption) (*Tuple[T], error) {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	flat := make([]T, 0, total)
	sizes := make([]int, 0, len(groups))
	for _, g := range groups {
		flat = append(flat, g...)
		sizes = append(sizes, len(g))
	}
	return NewTuple(flat, PerGroup(sizes...), opts...)
}

// Len returns the number of elements.
func (t *Tuple[T]) Len() int {
	return t.store.Len()
}

// Size returns the total payload length across all elements.
func (t *Tuple[T]) Size() int {
	return t.store.Used()
}

// Immutable reports whether the tuple denies writes.
func (t *Tuple[T]) Immutable() bool {
	return t.immutable
}

// Data returns the flat payload. For a mutable tuple the slice aliases
// the tuple's buffer; for an immutable one it is a copy, so the frozen
// content stays unreachable for writes.
func (t *Tuple[T]) Data() []T {
	if !t.immutable {
		return t.store.Data()
	}
	out := make([]T, t.store.Used())
	copy(out, t.store.Data())
	return out
}

// At returns a view of element i. On an immutable tuple the view is
// read-only: every mutating method on it returns ErrImmutable.
func (t *Tuple[T]) At(i int) (View[T], error) {
	start, end, err := t.store.Address(i)
	if err != nil {
		return View[T]{}, err
	}
	return View[T]{
		store:    t.store,
		start:    start,
		end:      end,
		gen:      t.store.Generation(),
		readonly: t.immutable,
	}, nil
}

// Get returns element i's payload. For an immutable tuple the slice is a
// copy; otherwise it aliases the tuple's buffer.
func (t *Tuple[T]) Get(i int) ([]T, error) {
	start, end, err := t.store.Address(i)
	if err != nil {
		return nil, err
	}
	p := t.store.Data()[start:end]
	if !t.immutable {
		return p, nil
	}
	out := make([]T, len(p))
	copy(out, p)
	return out, nil
}

// Set replaces element i's content in place. The replacement must have
// the element's exact length: a tuple never resizes.
func (t *Tuple[T]) Set(i int, values ...T) error {
	if t.immutable {
		return ErrImmutable
	}
	start, end, err := t.store.Address(i)
	if err != nil {
		return err
	}
	if end-start != len(values) {
		return ErrShapeMismatch
	}
	copy(t.store.Data()[start:end], values)
	return nil
}

// Append always fails: the tuple's cardinality is fixed at construction.
func (t *Tuple[T]) Append(values ...T) error {
	return ErrFixedSize
}

// Insert always fails: the tuple's cardinality is fixed at construction.
func (t *Tuple[T]) Insert(i int, values ...T) error {
	return ErrFixedSize
}

// Delete always fails: the tuple's cardinality is fixed at construction.
func (t *Tuple[T]) Delete(i int) error {
	return ErrFixedSize
}

// All iterates over elements in order, yielding the index and the
// element's payload. For a mutable tuple the yielded slices alias the
// tuple's buffer; for an immutable one each is a copy, like Data and
// Get.
func (t *Tuple[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; i < t.store.Len(); i++ {
			start, end, err := t.store.Address(i)
			if err != nil {
				return
			}
			p := t.store.Data()[start:end]
			if t.immutable {
				p = slices.Clone(p)
			}
			if !yield(i, p) {
				return
			}
		}
	}
}

// String renders the tuple as "[ [0] [1 2] [3 4 5] ]".
func (t *Tuple[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, elem := range t.All() {
		fmt.Fprintf(&sb, "%v ", elem)
	}
	sb.WriteString("]")
	return sb.String()
}
