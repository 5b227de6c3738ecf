// Package flatbuf implements the storage core shared by the ragged
// container types: one contiguous payload buffer plus an offsets table
// that partitions it into variable-length elements.
package flatbuf

import (
	"errors"
	"slices"
)

var (
	// ErrIndexOutOfRange reports an element index or insertion point
	// outside the valid range.
	ErrIndexOutOfRange = errors.New("ragged: index out of range")

	// ErrBadPartition reports group sizes that do not partition the
	// supplied values.
	ErrBadPartition = errors.New("ragged: sizes do not partition values")
)

// Scalar is the set of element types a store can hold.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Store owns a flat payload buffer and its offsets table. Element i
// occupies payload positions [bounds[i], bounds[i+1]). The table always
// holds n+1 non-decreasing offsets with bounds[0] == 0 and
// bounds[n] == len(data), so an element-index range maps to exactly one
// contiguous payload sub-range.
//
// Structural mutations (append, insert, delete, reshape, reset) bump the
// generation counter; views hold the generation they were created under
// and refuse access once it no longer matches.
type Store[T Scalar] struct {
	data   []T   // live payload; cap(data) is the reserve
	bounds []int // n+1 offsets into data
	gen    uint64
}

// New returns an empty store with room for initialCap payload scalars.
func New[T Scalar](initialCap int) *Store[T] {
	if initialCap < 0 {
		initialCap = 0
	}
	return &Store[T]{
		data:   make([]T, 0, initialCap),
		bounds: []int{0},
	}
}

// Len returns the number of elements.
func (s *Store[T]) Len() int {
	return len(s.bounds) - 1
}

// Used returns the live payload length.
func (s *Store[T]) Used() int {
	return len(s.data)
}

// Capacity returns the payload capacity.
func (s *Store[T]) Capacity() int {
	return cap(s.data)
}

// Generation returns the structural mutation counter.
func (s *Store[T]) Generation() uint64 {
	return s.gen
}

// Data returns the live payload region. The slice aliases the store; it
// is invalidated by any structural mutation.
func (s *Store[T]) Data() []T {
	return s.data
}

// bound returns the offset of element i's first scalar and the offset
// one past its last. No range check; callers go through Address.
func (s *Store[T]) bound(i int) (int, int) {
	return s.bounds[i], s.bounds[i+1]
}

// Address resolves element index i to its half-open payload range.
// Negative indices count from the end.
func (s *Store[T]) Address(i int) (start, end int, err error) {
	n := s.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, 0, ErrIndexOutOfRange
	}
	start, end = s.bound(i)
	return start, end, nil
}

// SliceAddress resolves an element-index range [lo, hi) to the payload
// sub-range it spans and the number of elements in it. Indices follow
// slice semantics: negatives count from the end and the range is clamped
// to [0, n].
func (s *Store[T]) SliceAddress(lo, hi int) (start, end, subN int) {
	n := s.Len()
	lo, hi = clampRange(lo, hi, n)
	return s.bounds[lo], s.bounds[hi], hi - lo
}

// ResolveRange is SliceAddress restricted to the element indices.
func (s *Store[T]) ResolveRange(lo, hi int) (elemLo, elemHi int) {
	return clampRange(lo, hi, s.Len())
}

func clampRange(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo += n
	}
	if hi < 0 {
		hi += n
	}
	lo = min(max(lo, 0), n)
	hi = min(max(hi, 0), n)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// reserve grows the payload capacity to hold extra more scalars. The new
// capacity is at least double the old one so per-scalar append cost stays
// amortized constant.
func (s *Store[T]) reserve(extra int) {
	need := len(s.data) + extra
	if need <= cap(s.data) {
		return
	}
	newCap := 2 * cap(s.data)
	if newCap < need {
		newCap = need
	}
	grown := make([]T, len(s.data), newCap)
	copy(grown, s.data)
	s.data = grown
}

// Append stores values as one new element at the end. Zero-length values
// produce a legal zero-length element.
func (s *Store[T]) Append(values []T) {
	s.reserve(len(values))
	s.data = append(s.data, values...)
	s.bounds = append(s.bounds, len(s.data))
	s.gen++
}

// AppendGrouped stores values as len(sizes) new elements in one pass.
// The sizes must be non-negative and sum to len(values); otherwise the
// store is left untouched and ErrBadPartition is returned.
func (s *Store[T]) AppendGrouped(values []T, sizes []int) error {
	if err := checkPartition(values, sizes); err != nil {
		return err
	}
	if len(sizes) == 0 {
		return nil
	}
	s.reserve(len(values))
	s.data = append(s.data, values...)
	off := s.bounds[len(s.bounds)-1]
	for _, sz := range sizes {
		off += sz
		s.bounds = append(s.bounds, off)
	}
	s.gen++
	return nil
}

// Insert places values before element i as one element (sizes nil) or as
// len(sizes) elements. i may equal Len, which appends. The payload tail
// and every subsequent offset shift right by the inserted length in a
// single pass. Validation happens before any mutation, so a failed
// insert has no effect.
func (s *Store[T]) Insert(i int, values []T, sizes []int) error {
	n := s.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i > n {
		return ErrIndexOutOfRange
	}
	if sizes == nil {
		sizes = []int{len(values)}
	}
	if err := checkPartition(values, sizes); err != nil {
		return err
	}
	if len(sizes) == 0 {
		return nil
	}

	total := len(values)
	count := len(sizes)
	used := len(s.data)
	start := s.bounds[i]

	s.reserve(total)
	s.data = s.data[:used+total]
	copy(s.data[start+total:], s.data[start:used])
	copy(s.data[start:], values)

	s.bounds = slices.Insert(s.bounds, i+1, make([]int, count)...)
	off := start
	for j, sz := range sizes {
		off += sz
		s.bounds[i+1+j] = off
	}
	for j := i + 1 + count; j < len(s.bounds); j++ {
		s.bounds[j] += total
	}
	s.gen++
	return nil
}

// Delete removes element i, compacting the payload and renumbering
// subsequent offsets. Negative indices count from the end.
func (s *Store[T]) Delete(i int) error {
	n := s.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return ErrIndexOutOfRange
	}
	s.deleteElems(i, i+1)
	return nil
}

// DeleteRange removes elements [lo, hi), clamped to the valid range like
// SliceAddress. An empty range is a no-op.
func (s *Store[T]) DeleteRange(lo, hi int) {
	lo, hi = clampRange(lo, hi, s.Len())
	if lo == hi {
		return
	}
	s.deleteElems(lo, hi)
}

func (s *Store[T]) deleteElems(lo, hi int) {
	start, end := s.bounds[lo], s.bounds[hi]
	removed := end - start

	copy(s.data[start:], s.data[end:])
	newLen := len(s.data) - removed
	clear(s.data[newLen:])
	s.data = s.data[:newLen]

	s.bounds = slices.Delete(s.bounds, lo+1, hi+1)
	for j := lo + 1; j < len(s.bounds); j++ {
		s.bounds[j] -= removed
	}
	s.gen++
}

// Reshape reallocates the payload to newCap, never truncating below the
// live length. Content and element count are unchanged.
func (s *Store[T]) Reshape(newCap int) {
	used := len(s.data)
	if newCap < used {
		newCap = used
	}
	if newCap == cap(s.data) {
		return
	}
	resized := make([]T, used, newCap)
	copy(resized, s.data)
	s.data = resized
	s.gen++
}

// Reset empties the store in place, keeping the payload capacity.
func (s *Store[T]) Reset() {
	clear(s.data)
	s.data = s.data[:0]
	s.bounds = s.bounds[:1]
	s.gen++
}

func checkPartition[T Scalar](values []T, sizes []int) error {
	total := 0
	for _, sz := range sizes {
		if sz < 0 {
			return ErrBadPartition
		}
		total += sz
	}
	if total != len(values) {
		return ErrBadPartition
	}
	return nil
}
