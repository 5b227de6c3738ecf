// Package elemwise provides elementwise arithmetic kernels over typed
// slices. float64 slices dispatch to algo-vecmath, which selects a SIMD
// implementation where available; every other scalar type uses a plain
// loop.
package elemwise

import (
	"github.com/cwbudde/algo-vecmath"
)

// Scalar is the set of element types the kernels operate on.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add performs dst[i] += src[i]. Slices must have equal length.
func Add[T Scalar](dst, src []T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.AddBlockInPlace(d, any(src).([]float64))
		return
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

// Mul performs dst[i] *= src[i]. Slices must have equal length.
func Mul[T Scalar](dst, src []T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.MulBlockInPlace(d, any(src).([]float64))
		return
	}
	for i := range dst {
		dst[i] *= src[i]
	}
}

// Scale performs dst[i] *= factor.
func Scale[T Scalar](dst []T, factor T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlock(d, d, any(factor).(float64))
		return
	}
	for i := range dst {
		dst[i] *= factor
	}
}

// AddScalar performs dst[i] += k. algo-vecmath has no scalar-offset
// block op, so every type shares the loop.
func AddScalar[T Scalar](dst []T, k T) {
	for i := range dst {
		dst[i] += k
	}
}

// Fill sets every element of dst to v.
func Fill[T Scalar](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}
