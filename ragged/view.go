package ragged

import (
	"github.com/cwbudde/algo-ragged/internal/elemwise"
	"github.com/cwbudde/algo-ragged/internal/flatbuf"
)

// View is a non-owning reference to one element's payload inside its
// container. Reads and writes go straight to the container's buffer; a
// View is never a copy.
//
// A View is transient: it records the container's generation at creation
// and every access re-checks it, so a View held across any structural
// mutation of the container (append, insert, delete, growth) fails with
// ErrStaleView instead of touching moved memory.
type View[T Scalar] struct {
	store      *flatbuf.Store[T]
	start, end int
	gen        uint64
	readonly   bool
}

// Len returns the element's payload length.
func (v View[T]) Len() int {
	return v.end - v.start
}

func (v View[T]) payload() ([]T, error) {
	if v.gen != v.store.Generation() {
		return nil, ErrStaleView
	}
	return v.store.Data()[v.start:v.end], nil
}

func (v View[T]) writable() ([]T, error) {
	if v.readonly {
		return nil, ErrImmutable
	}
	return v.payload()
}

// Values returns the element's payload. The slice aliases the
// container's buffer; mutating it mutates the container.
func (v View[T]) Values() ([]T, error) {
	return v.payload()
}

// At returns the k-th scalar of the element.
func (v View[T]) At(k int) (T, error) {
	var zero T
	p, err := v.payload()
	if err != nil {
		return zero, err
	}
	if k < 0 || k >= len(p) {
		return zero, ErrIndexOutOfRange
	}
	return p[k], nil
}

// Set stores val at the k-th scalar of the element.
func (v View[T]) Set(k int, val T) error {
	p, err := v.writable()
	if err != nil {
		return err
	}
	if k < 0 || k >= len(p) {
		return ErrIndexOutOfRange
	}
	p[k] = val
	return nil
}

// CopyFrom overwrites the element's payload with src, which must have
// the element's exact length.
func (v View[T]) CopyFrom(src []T) error {
	p, err := v.writable()
	if err != nil {
		return err
	}
	if len(src) != len(p) {
		return ErrShapeMismatch
	}
	copy(p, src)
	return nil
}

// Fill sets every scalar of the element to val.
func (v View[T]) Fill(val T) error {
	p, err := v.writable()
	if err != nil {
		return err
	}
	elemwise.Fill(p, val)
	return nil
}

// AddScalar adds k to every scalar of the element in place.
func (v View[T]) AddScalar(k T) error {
	p, err := v.writable()
	if err != nil {
		return err
	}
	elemwise.AddScalar(p, k)
	return nil
}

// Add performs an in-place elementwise addition of src, which must have
// the element's exact length.
func (v View[T]) Add(src []T) error {
	p, err := v.writable()
	if err != nil {
		return err
	}
	if len(src) != len(p) {
		return ErrShapeMismatch
	}
	elemwise.Add(p, src)
	return nil
}

// Mul performs an in-place elementwise multiplication by src, which must
// have the element's exact length.
func (v View[T]) Mul(src []T) error {
	p, err := v.writable()
	if err != nil {
		return err
	}
	if len(src) != len(p) {
		return ErrShapeMismatch
	}
	elemwise.Mul(p, src)
	return nil
}

// Scale multiplies every scalar of the element by factor in place.
func (v View[T]) Scale(factor T) error {
	p, err := v.writable()
	if err != nil {
		return err
	}
	elemwise.Scale(p, factor)
	return nil
}
