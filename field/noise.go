package field

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseField is a seeded multi-octave OpenSimplex noise source. Values are
// sampled by world position, never by walking an RNG, so the same seed and
// parameters reproduce the same field at any evaluation order.
type NoiseField struct {
	noise      opensimplex.Noise
	octaves    int
	frequency  float64
	lacunarity float64
	gain       float64
}

// NewNoiseField creates a noise field. octaves must be at least 1;
// frequency scales world coordinates into noise space; lacunarity is the
// per-octave frequency multiplier and gain the per-octave amplitude
// multiplier.
func NewNoiseField(seed int64, octaves int, frequency, lacunarity, gain float64) *NoiseField {
	if octaves < 1 {
		octaves = 1
	}
	return &NoiseField{
		noise:      opensimplex.NewNormalized(seed),
		octaves:    octaves,
		frequency:  frequency,
		lacunarity: lacunarity,
		gain:       gain,
	}
}

// Eval returns the fractal brownian motion value at a world position.
// Octave contributions are amplitude-normalized, so the result stays in
// [0, 1].
func (nf *NoiseField) Eval(x, y float64) float32 {
	var sum, norm float64
	amp := 1.0
	freq := nf.frequency
	for o := 0; o < nf.octaves; o++ {
		sum += amp * nf.noise.Eval2(x*freq, y*freq)
		norm += amp
		amp *= nf.gain
		freq *= nf.lacunarity
	}
	return float32(sum / norm)
}

// Sampler adapts the noise field to the Uniformize callback contract.
// Every cell reports present.
func (nf *NoiseField) Sampler() Sampler {
	return func(_ int, pos [2]float64) (float32, bool) {
		return nf.Eval(pos[0], pos[1]), true
	}
}

// MaskedSampler is like Sampler but reports cells whose value falls below
// cutoff as absent. Absent cells stay out of the rank ordering, the way a
// worldgen pass skips ocean cells when ranking land attributes.
func (nf *NoiseField) MaskedSampler(cutoff float32) Sampler {
	return func(_ int, pos [2]float64) (float32, bool) {
		v := nf.Eval(pos[0], pos[1])
		if v < cutoff {
			return 0, false
		}
		return v, true
	}
}
