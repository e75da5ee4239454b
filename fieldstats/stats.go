// Package fieldstats computes distribution diagnostics for generated
// channels: percentiles, summary moments, and how far a channel's rank
// fractions deviate from the uniform distribution they are supposed to
// follow.
package fieldstats

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/strata/field"
)

// Summary describes the distribution of one channel over its present cells.
type Summary struct {
	Name    string `csv:"name"`
	Present int    `csv:"present"`
	Absent  int    `csv:"absent"`

	// Raw sampled values
	ValueMean float64 `csv:"value_mean"`
	ValueStd  float64 `csv:"value_std"`
	ValueP10  float64 `csv:"value_p10"`
	ValueP50  float64 `csv:"value_p50"`
	ValueP90  float64 `csv:"value_p90"`

	// Sup-norm distance of the fractions' empirical CDF from uniform.
	// A correctly rank-uniformized channel scores at most 1/present.
	UniformDev float64 `csv:"uniform_dev"`
}

// Percentile returns the value at percentile p (0.0 to 1.0) from sorted
// values using linear interpolation.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// UniformDeviation returns the largest distance between the empirical CDF
// of the sorted fractions and the CDF of Uniform(0,1). The empirical CDF
// steps at each sample, so both sides of every step are checked.
func UniformDeviation(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	var d float64
	for i, v := range sorted {
		lo := math.Abs(v - float64(i)/float64(n))
		hi := math.Abs(v - float64(i+1)/float64(n))
		d = math.Max(d, math.Max(lo, hi))
	}
	return d
}

// Summarize computes the distribution summary of one channel.
func Summarize(name string, cdf field.InverseCDF) Summary {
	values := make([]float64, 0, len(cdf))
	fractions := make([]float64, 0, len(cdf))
	for _, s := range cdf {
		if s.Fraction == 0 {
			continue
		}
		values = append(values, float64(s.Value))
		fractions = append(fractions, float64(s.Fraction))
	}

	sum := Summary{
		Name:    name,
		Present: len(values),
		Absent:  len(cdf) - len(values),
	}
	if len(values) == 0 {
		return sum
	}

	sum.ValueMean = stat.Mean(values, nil)
	if len(values) > 1 {
		sum.ValueStd = stat.StdDev(values, nil)
	}

	sort.Float64s(values)
	sum.ValueP10 = Percentile(values, 0.1)
	sum.ValueP50 = Percentile(values, 0.5)
	sum.ValueP90 = Percentile(values, 0.9)

	sort.Float64s(fractions)
	sum.UniformDev = UniformDeviation(fractions)
	return sum
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", s.Name),
		slog.Int("present", s.Present),
		slog.Int("absent", s.Absent),
		slog.Float64("value_mean", s.ValueMean),
		slog.Float64("value_std", s.ValueStd),
		slog.Float64("value_p50", s.ValueP50),
		slog.Float64("uniform_dev", s.UniformDev),
	)
}
