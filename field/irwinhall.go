package field

import (
	"fmt"
	"math/bits"
)

// MaxBlendChannels is the practical ceiling on the number of variables
// CDFIrwinHall accepts. The subset enumeration costs O(2^N * N) and the
// alternating terms grow like x^N, eroding precision well before the
// uint32 subset counter would overflow, so larger blends are a caller
// error rather than a supported slow path.
const MaxBlendChannels = 25

// CDFIrwinHall evaluates the CDF of the weighted sum of independent
// standard-uniform random variables at the realized sum itself. weights[i]
// scales samples[i]; every weight must be strictly positive and every
// sample drawn from Uniform(0,1). Under those conditions the return value
// is itself uniformly distributed, which is what lets a weighted blend of
// already-uniformized channels be re-uniformized while preserving the
// information in the weighted average.
//
// The closed form sums one signed term per subset of the weight indices:
//
//	F(x) = 1/(A * N!) * sum over S of (-1)^|S| * max(0, x - sum(a_k, k in S))^N
//
// with A the product of all weights. No shortcut is known for the general
// weighted case, so all 2^N subsets are enumerated; each uint32 counter
// value is read as a membership bit pattern and OnesCount32 gives |S|.
// Exact in exact arithmetic; any float result outside [0,1] is accumulated
// rounding, not a logic fault, and callers may clamp.
//
// Panics on mismatched slice lengths, a non-positive weight, or a variable
// count outside [1, MaxBlendChannels].
//
// Derivation: Sadooghi-Alvandi, Nematollahi & Habibi, "On the Distribution
// of the Sum of Independent Uniform Random Variables", Statistical Papers
// 50 (2009); the CDF is the integral of their density formula.
func CDFIrwinHall(weights, samples []float32) float32 {
	n := len(weights)
	if len(samples) != n {
		panic(fmt.Sprintf("field: weight/sample count mismatch: %d vs %d", n, len(samples)))
	}
	if n < 1 || n > MaxBlendChannels {
		panic(fmt.Sprintf("field: unsupported variable count %d", n))
	}

	// Accumulate in float64: the subset terms alternate in sign and grow
	// like x^N, so float32 cancellation error would swamp small results.
	var x float64
	for i, w := range weights {
		if w <= 0 {
			panic(fmt.Sprintf("field: weight %d must be positive, got %v", i, w))
		}
		x += float64(w) * float64(samples[i])
	}

	var y float64
	for subset := uint32(0); subset < 1<<n; subset++ {
		// Sum exactly the weights whose bit is set in this subset.
		var b float64
		for i := 0; i < n; i++ {
			if subset&(1<<i) != 0 {
				b += float64(weights[i])
			}
		}
		z := pown(max(0, x-b), n)
		// Parity of the subset cardinality signs the term.
		if bits.OnesCount32(subset)&1 == 0 {
			y += z
		} else {
			y -= z
		}
	}

	// Normalize by the product of the weights and by N!.
	for _, w := range weights {
		y /= float64(w)
	}
	for k := 2; k <= n; k++ {
		y /= float64(k)
	}
	return float32(y)
}

func pown(v float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= v
	}
	return r
}
