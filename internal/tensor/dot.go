package tensor

import "math"

// Dot computes the dot product of two vectors: Σ(a[i] * b[i]).
//
// If the vectors have different lengths, the computation uses the minimum length.
// Returns 0 if either vector is empty.
//
// Example:
//
//	a := Vec[float32]{1, 2, 3}
//	b := Vec[float32]{4, 5, 6}
//	result := Dot(a, b)  // 1*4 + 2*5 + 3*6 = 32
func Dot[T Float](a, b []T) T {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]

	// Four independent accumulators, then the tail.
	var s0, s1, s2, s3 T
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return (s0 + s1) + (s2 + s3)
}

// MaxAbsDiff returns the largest |a[s][i] - b[s][i]| over the common shape of a and b,
// and the position where it occurs. A NaN difference is returned at its first position.
func MaxAbsDiff[T Float](a, b Batch[T]) (diff float64, sample, index int) {
	for s := 0; s < min(len(a), len(b)); s++ {
		for i := 0; i < min(len(a[s]), len(b[s])); i++ {
			d := math.Abs(float64(a[s][i]) - float64(b[s][i]))
			if math.IsNaN(d) {
				return d, s, i
			}
			if d > diff {
				diff, sample, index = d, s, i
			}
		}
	}
	return diff, sample, index
}
