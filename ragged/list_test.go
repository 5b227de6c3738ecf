package ragged

import (
	"errors"
	"slices"
	"testing"
)

func arange(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func mustGet[T Scalar](t *testing.T, l *List[T], i int) []T {
	t.Helper()
	elem, err := l.Get(i)
	if err != nil {
		t.Fatalf("Get(%d) error: %v", i, err)
	}
	return elem
}

func TestNewListEmpty(t *testing.T) {
	l := NewList[float64]()
	if l.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", l.Len())
	}
	if l.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", l.Size())
	}
}

func TestAppendScalarThenGroup(t *testing.T) {
	l := NewList[int]()
	if err := l.Append(0); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := l.Append(1, 2, 3); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if got := mustGet(t, l, 0); !slices.Equal(got, []int{0}) {
		t.Fatalf("Get(0) = %v, want [0]", got)
	}
	if got := mustGet(t, l, 1); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("Get(1) = %v, want [1 2 3]", got)
	}
}

func TestListOfPerGroup(t *testing.T) {
	l, err := ListOf(arange(10), PerGroup(2, 3, 5))
	if err != nil {
		t.Fatalf("ListOf error: %v", err)
	}
	if got := mustGet(t, l, 0); !slices.Equal(got, []float64{0, 1}) {
		t.Fatalf("Get(0) = %v, want [0 1]", got)
	}
	if got := mustGet(t, l, 1); !slices.Equal(got, []float64{2, 3, 4}) {
		t.Fatalf("Get(1) = %v, want [2 3 4]", got)
	}
	if got := mustGet(t, l, 2); !slices.Equal(got, []float64{5, 6, 7, 8, 9}) {
		t.Fatalf("Get(2) = %v, want [5 6 7 8 9]", got)
	}
}

func TestListOfUniform(t *testing.T) {
	l, err := ListOf(arange(10), Uniform(2))
	if err != nil {
		t.Fatalf("ListOf error: %v", err)
	}
	if l.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", l.Len())
	}
	if got := mustGet(t, l, 4); !slices.Equal(got, []float64{8, 9}) {
		t.Fatalf("Get(4) = %v, want [8 9]", got)
	}
}

func TestListOfUniformIndivisible(t *testing.T) {
	if _, err := ListOf(arange(10), Uniform(3)); !errors.Is(err, ErrBadPartition) {
		t.Fatalf("error = %v, want ErrBadPartition", err)
	}
}

func TestAppendGroupedRoundTrip(t *testing.T) {
	l := NewList[float64]()
	if err := l.AppendGrouped(arange(10), PerGroup(1, 2, 3, 4)); err != nil {
		t.Fatalf("AppendGrouped error: %v", err)
	}
	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}
	if got := mustGet(t, l, 3); !slices.Equal(got, []float64{6, 7, 8, 9}) {
		t.Fatalf("Get(3) = %v, want [6 7 8 9]", got)
	}
	wantLens := []int{1, 2, 3, 4}
	for i, w := range wantLens {
		if got := len(mustGet(t, l, i)); got != w {
			t.Fatalf("len(Get(%d)) = %d, want %d", i, got, w)
		}
	}
}

func TestAppendGroupedBadSum(t *testing.T) {
	l := NewList[float64]()
	err := l.AppendGrouped(arange(10), PerGroup(2, 3))
	if !errors.Is(err, ErrBadPartition) {
		t.Fatalf("error = %v, want ErrBadPartition", err)
	}
	if l.Len() != 0 {
		t.Fatal("failed append must leave list unchanged")
	}
}

func TestFromSlices(t *testing.T) {
	l := FromSlices([]float64{0}, []float64{1, 2}, []float64{3, 4, 5})
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if !slices.Equal(l.Data(), []float64{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("Data() = %v", l.Data())
	}
	if got := mustGet(t, l, 1); !slices.Equal(got, []float64{1, 2}) {
		t.Fatalf("Get(1) = %v, want [1 2]", got)
	}
}

func TestInsertScalar(t *testing.T) {
	l := NewList[float64]()
	if err := l.Append(1); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := l.Insert(0, 2); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if got := mustGet(t, l, 0); !slices.Equal(got, []float64{2}) {
		t.Fatalf("Get(0) = %v, want [2]", got)
	}
}

func TestInsertGroupedUniform(t *testing.T) {
	l := NewList[float64]()
	if err := l.Append(1); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := l.InsertGrouped(0, arange(10), Uniform(2)); err != nil {
		t.Fatalf("InsertGrouped error: %v", err)
	}
	if l.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", l.Len())
	}
	if got := mustGet(t, l, 4); !slices.Equal(got, []float64{8, 9}) {
		t.Fatalf("Get(4) = %v, want [8 9]", got)
	}
	if got := mustGet(t, l, 5); !slices.Equal(got, []float64{1}) {
		t.Fatalf("Get(5) = %v, want [1]", got)
	}
}

func TestInsertGroupedEmptyPartitionRejected(t *testing.T) {
	l := NewList[float64]()
	if err := l.Append(1); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	err := l.InsertGrouped(0, arange(3), PerGroup())
	if !errors.Is(err, ErrBadPartition) {
		t.Fatalf("error = %v, want ErrBadPartition", err)
	}
	if l.Len() != 1 || l.Size() != 1 {
		t.Fatal("failed insert must leave list unchanged")
	}
	// The append path must agree on the same input.
	if err := l.AppendGrouped(arange(3), PerGroup()); !errors.Is(err, ErrBadPartition) {
		t.Fatalf("append error = %v, want ErrBadPartition", err)
	}
}

func TestInsertAtLenAppends(t *testing.T) {
	l := NewList[float64]()
	if err := l.Append(1); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := l.Insert(l.Len(), 2, 3); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if got := mustGet(t, l, 1); !slices.Equal(got, []float64{2, 3}) {
		t.Fatalf("Get(1) = %v, want [2 3]", got)
	}
}

func TestDeleteFirst(t *testing.T) {
	l := FromSlices([]float64{1}, []float64{1, 2, 3}, []float64{4, 5})
	if err := l.Delete(0); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if got := mustGet(t, l, 0); !slices.Equal(got, []float64{1, 2, 3}) {
		t.Fatalf("Get(0) = %v, want [1 2 3]", got)
	}
	if got := mustGet(t, l, 1); !slices.Equal(got, []float64{4, 5}) {
		t.Fatalf("Get(1) = %v, want [4 5]", got)
	}
}

func TestDeleteRangeAllButLast(t *testing.T) {
	l, err := ListOf(arange(10), Uniform(1))
	if err != nil {
		t.Fatalf("ListOf error: %v", err)
	}
	if err := l.DeleteRange(0, -1); err != nil {
		t.Fatalf("DeleteRange error: %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	if got := mustGet(t, l, 0); !slices.Equal(got, []float64{9}) {
		t.Fatalf("Get(0) = %v, want [9]", got)
	}
}

func TestDeleteRangeTail(t *testing.T) {
	l, err := ListOf(arange(10), Uniform(1))
	if err != nil {
		t.Fatalf("ListOf error: %v", err)
	}
	if err := l.DeleteRange(1, l.Len()); err != nil {
		t.Fatalf("DeleteRange error: %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	if got := mustGet(t, l, 0); !slices.Equal(got, []float64{0}) {
		t.Fatalf("Get(0) = %v, want [0]", got)
	}
}

func TestDeleteRangeEverything(t *testing.T) {
	l, err := ListOf(arange(10), Uniform(1))
	if err != nil {
		t.Fatalf("ListOf error: %v", err)
	}
	if err := l.DeleteRange(0, l.Len()); err != nil {
		t.Fatalf("DeleteRange error: %v", err)
	}
	if l.Len() != 0 || l.Size() != 0 {
		t.Fatalf("Len() = %d, Size() = %d, want 0, 0", l.Len(), l.Size())
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	l := NewList[float64]()
	if err := l.Delete(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestSetAtSameLength(t *testing.T) {
	l, err := ListOf(arange(10), Uniform(1))
	if err != nil {
		t.Fatalf("ListOf error: %v", err)
	}
	if err := l.SetAt(0, 42); err != nil {
		t.Fatalf("SetAt error: %v", err)
	}
	if got := mustGet(t, l, 0); !slices.Equal(got, []float64{42}) {
		t.Fatalf("Get(0) = %v, want [42]", got)
	}
	if l.Data()[0] != 42 {
		t.Fatalf("Data()[0] = %v, want 42", l.Data()[0])
	}
}

func TestSetAtDifferentLengthReflows(t *testing.T) {
	l := FromSlices([]float64{0}, []float64{1, 2}, []float64{3})
	if err := l.SetAt(1, 7, 8, 9); err != nil {
		t.Fatalf("SetAt error: %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if got := mustGet(t, l, 1); !slices.Equal(got, []float64{7, 8, 9}) {
		t.Fatalf("Get(1) = %v, want [7 8 9]", got)
	}
	if !slices.Equal(l.Data(), []float64{0, 7, 8, 9, 3}) {
		t.Fatalf("Data() = %v, want [0 7 8 9 3]", l.Data())
	}
}

func TestSetAtNegativeIndex(t *testing.T) {
	l := FromSlices([]float64{0}, []float64{1, 2})
	if err := l.SetAt(-1, 5, 6); err != nil {
		t.Fatalf("SetAt error: %v", err)
	}
	if got := mustGet(t, l, 1); !slices.Equal(got, []float64{5, 6}) {
		t.Fatalf("Get(1) = %v, want [5 6]", got)
	}
}

func TestBoundsInvariantUnderMutationSequence(t *testing.T) {
	l := NewList[float64]()
	for i := 0; i < 50; i++ {
		if err := l.Append(arange(i % 5)...); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}
	if err := l.Insert(10, 1, 2, 3); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if err := l.Delete(0); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := l.DeleteRange(5, 15); err != nil {
		t.Fatalf("DeleteRange error: %v", err)
	}

	total := 0
	for i := 0; i < l.Len(); i++ {
		total += len(mustGet(t, l, i))
	}
	if total != l.Size() {
		t.Fatalf("sum of element lengths = %d, want Size() = %d", total, l.Size())
	}
}

func TestReadIdempotent(t *testing.T) {
	l, err := ListOf(arange(10), PerGroup(2, 3, 5))
	if err != nil {
		t.Fatalf("ListOf error: %v", err)
	}
	first := slices.Clone(mustGet(t, l, 1))
	second := mustGet(t, l, 1)
	if !slices.Equal(first, second) {
		t.Fatalf("repeated reads differ: %v vs %v", first, second)
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	l, err := ListOf(arange(100), Uniform(10))
	if err != nil {
		t.Fatalf("ListOf error: %v", err)
	}
	c := l.Capacity()
	l.Clear()
	if l.Len() != 0 || l.Size() != 0 {
		t.Fatalf("Len() = %d, Size() = %d after Clear, want 0, 0", l.Len(), l.Size())
	}
	if l.Capacity() != c {
		t.Fatalf("Capacity() = %d after Clear, want %d", l.Capacity(), c)
	}
}

func TestReserve(t *testing.T) {
	l := NewList[float64]()
	l.Reserve(64)
	if l.Capacity() < 64 {
		t.Fatalf("Capacity() = %d, want >= 64", l.Capacity())
	}
	if err := l.Append(1, 2, 3); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	l.Reserve(1)
	if !slices.Equal(l.Data(), []float64{1, 2, 3}) {
		t.Fatal("Reserve must never drop live payload")
	}
}

func TestAll(t *testing.T) {
	l := FromSlices([]float64{0}, []float64{1, 2}, []float64{3, 4, 5})
	var idx []int
	var lens []int
	for i, elem := range l.All() {
		idx = append(idx, i)
		lens = append(lens, len(elem))
	}
	if !slices.Equal(idx, []int{0, 1, 2}) {
		t.Fatalf("indices = %v, want [0 1 2]", idx)
	}
	if !slices.Equal(lens, []int{1, 2, 3}) {
		t.Fatalf("lengths = %v, want [1 2 3]", lens)
	}
}

func TestString(t *testing.T) {
	l := FromSlices([]float64{0}, []float64{1, 2})
	if got, want := l.String(), "[ [0] [1 2] ]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestContainerInterface(t *testing.T) {
	var c Container[float64] = NewList[float64]()
	if err := c.Append(1, 2); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}
