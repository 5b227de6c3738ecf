// Package testutil provides deterministic payload and partition
// generators for container tests.
package testutil

import "math/rand"

// Arange returns [0, 1, ..., n-1] as float64.
func Arange(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// DeterministicNoise generates payload values with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// RandomPartition returns a reproducible list of non-negative group
// sizes that sums exactly to total. Group sizes range from 0 to
// maxGroup, so zero-length elements appear regularly.
func RandomPartition(seed int64, total, maxGroup int) []int {
	if maxGroup < 1 {
		maxGroup = 1
	}
	rng := rand.New(rand.NewSource(seed))
	var sizes []int
	for total > 0 {
		sz := rng.Intn(maxGroup + 1)
		if sz > total {
			sz = total
		}
		sizes = append(sizes, sz)
		total -= sz
	}
	return sizes
}
