package ragged

import "iter"

// Container is the surface shared by List and Tuple. Both front the same
// buffer layout; a Tuple simply answers every structural mutation with
// ErrFixedSize.
type Container[T Scalar] interface {
	Len() int
	Size() int
	Data() []T
	At(i int) (View[T], error)
	Get(i int) ([]T, error)
	All() iter.Seq2[int, []T]
	Append(values ...T) error
	Insert(i int, values ...T) error
	Delete(i int) error
}

var (
	_ Container[float64] = (*List[float64])(nil)
	_ Container[int]     = (*Tuple[int])(nil)
)
