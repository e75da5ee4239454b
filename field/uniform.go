package field

import (
	"fmt"
	"math"
	"sort"
)

// Sampler produces the raw noise value for one cell. idx is the cell's flat
// index and pos its world-space position (grid coordinates scaled by the
// cell size). The second return reports presence: returning false marks the
// cell absent, which excludes it from ranking entirely. Present values must
// never be NaN; Uniformize panics if one is. Samplers must be pure - the
// same inputs always produce the same output.
type Sampler func(idx int, pos [2]float64) (float32, bool)

// UniformSample pairs a cell's uniformized rank fraction with the raw noise
// value that produced it. Keeping the raw value around lets later stages
// use both without re-invoking the sampler.
type UniformSample struct {
	Fraction float32
	Value    float32
}

// InverseCDF is the dense per-cell result of Uniformize, indexed by flat
// grid index. Present cells hold fractions in (0, 1] that are uniformly
// distributed regardless of the sampler's own distribution shape. Absent
// cells hold the zero sample, so a {0, 0} entry is ambiguous between "no
// data" and a genuinely zero-valued absent convention; callers that need to
// distinguish must track presence separately.
type InverseCDF []UniformSample

// Uniformize applies the rank transform to a sampled grid. Every cell is
// sampled exactly once; present values are sorted and each cell receives
// rank/total as its fraction, where total counts only present cells. The
// fraction is uniformly distributed over (0, 1] no matter how skewed the
// sampler's distribution is, which is what makes independently generated
// channels safe to combine by weighted sum downstream.
//
// Ties on value are broken by flat index so the ordering - and therefore
// the generated world - reproduces identically across runs and platforms.
// A NaN from the sampler is a contract violation and panics rather than
// silently corrupting every other cell's rank.
func Uniformize(g Grid, cellSize float64, sample Sampler) InverseCDF {
	type cell struct {
		idx int
		val float32
	}
	present := make([]cell, 0, g.Cells())
	for i := 0; i < g.Cells(); i++ {
		wx, wy := g.WorldPos(i, cellSize)
		v, ok := sample(i, [2]float64{wx, wy})
		if !ok {
			continue
		}
		if math.IsNaN(float64(v)) {
			panic(fmt.Sprintf("field: sampler returned NaN at index %d", i))
		}
		present = append(present, cell{idx: i, val: v})
	}

	out := make(InverseCDF, g.Cells())
	if len(present) == 0 {
		return out
	}

	// Two-key comparison: value first, flat index second. The index key
	// makes the order total and reproducible even when values tie.
	sort.Slice(present, func(i, j int) bool {
		if present[i].val != present[j].val {
			return present[i].val < present[j].val
		}
		return present[i].idx < present[j].idx
	})

	total := float32(len(present))
	for rank, c := range present {
		out[c.idx] = UniformSample{Fraction: float32(rank+1) / total, Value: c.val}
	}
	return out
}
