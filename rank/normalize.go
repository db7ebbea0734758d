package rank

import "math"

// Normalize rescales v in place so its entries sum to 1, but only when the
// current sum drifts from 1 by more than SumTolerance. Vectors already within
// tolerance are left untouched, bit for bit.
//
// Both engines apply it as their final step to absorb residual
// floating-point drift. A zero-sum vector is left unchanged (there is no
// meaningful rescale for it).
func Normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x
	}

	if sum == 0 || math.Abs(sum-1.0) <= SumTolerance {
		return
	}

	for i := range v {
		v[i] /= sum
	}
}
