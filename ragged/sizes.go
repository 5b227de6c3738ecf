package ragged

// Scalar is the set of element types a container can hold: any
// fixed-size integer or floating point type. One container holds exactly
// one scalar type.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type sizesKind int

const (
	sizesWhole sizesKind = iota
	sizesUniform
	sizesPerGroup
)

// Sizes describes how a flat value slice is partitioned into elements.
// The zero value treats the whole input as a single element.
type Sizes struct {
	kind     sizesKind
	uniform  int
	perGroup []int
}

// Whole treats the entire input as one element.
func Whole() Sizes {
	return Sizes{kind: sizesWhole}
}

// Uniform partitions the input into elements of k scalars each. The
// input length must be a multiple of k.
func Uniform(k int) Sizes {
	return Sizes{kind: sizesUniform, uniform: k}
}

// PerGroup partitions the input into one element per entry, with the
// given lengths. The entries must be non-negative and sum to the input
// length.
func PerGroup(sizes ...int) Sizes {
	return Sizes{kind: sizesPerGroup, perGroup: sizes}
}

// resolve turns the descriptor into an explicit per-element size list
// for valueCount scalars.
func (s Sizes) resolve(valueCount int) ([]int, error) {
	switch s.kind {
	case sizesUniform:
		if s.uniform <= 0 || valueCount%s.uniform != 0 {
			return nil, ErrBadPartition
		}
		groups := make([]int, valueCount/s.uniform)
		for i := range groups {
			groups[i] = s.uniform
		}
		return groups, nil
	case sizesPerGroup:
		// Never nil: a nil sizes slice means "single element" to the
		// store, while PerGroup() must stay an explicit (and here
		// usually failing) empty partition.
		if s.perGroup == nil {
			return []int{}, nil
		}
		return s.perGroup, nil
	default:
		return []int{valueCount}, nil
	}
}
