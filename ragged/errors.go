package ragged

import (
	"errors"

	"github.com/cwbudde/algo-ragged/internal/flatbuf"
)

var (
	// ErrIndexOutOfRange reports an element index outside [-n, n) or an
	// insertion point outside [0, n].
	ErrIndexOutOfRange = flatbuf.ErrIndexOutOfRange

	// ErrBadPartition reports group sizes inconsistent with the number
	// of supplied values.
	ErrBadPartition = flatbuf.ErrBadPartition

	// ErrShapeMismatch reports a replacement whose length differs from
	// the element it replaces, on a container that cannot resize.
	ErrShapeMismatch = errors.New("ragged: replacement length does not match element")

	// ErrFixedSize reports a structural mutation attempted on a
	// fixed-cardinality container.
	ErrFixedSize = errors.New("ragged: container size is fixed")

	// ErrImmutable reports a write attempted on an immutable container.
	ErrImmutable = errors.New("ragged: container is immutable")

	// ErrStaleView reports access through a view whose owning container
	// has been structurally mutated since the view was taken.
	ErrStaleView = errors.New("ragged: view invalidated by structural mutation")
)
