package field

import "fmt"

// ChannelSpec describes one noise channel of a world: its name, the weight
// it carries in blends, and the sampler that produces its raw values.
type ChannelSpec struct {
	Name   string
	Weight float32
	Sample Sampler
}

// Channel is one generated, uniformized channel.
type Channel struct {
	Spec ChannelSpec
	CDF  InverseCDF
}

// World holds the uniformized channels generated over one grid. Channels
// are immutable once generated; Blend and BiomeMap only read them.
type World struct {
	Grid     Grid
	CellSize float64

	channels map[string]*Channel
	order    []string
}

// Generate samples and uniformizes every channel over the grid. Channel
// names must be unique and every spec needs a sampler and a positive
// weight.
func Generate(g Grid, cellSize float64, specs []ChannelSpec) (*World, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("field: no channels to generate")
	}
	w := &World{
		Grid:     g,
		CellSize: cellSize,
		channels: make(map[string]*Channel, len(specs)),
	}
	for _, spec := range specs {
		if spec.Sample == nil {
			return nil, fmt.Errorf("field: channel %q has no sampler", spec.Name)
		}
		if spec.Weight <= 0 {
			return nil, fmt.Errorf("field: channel %q has non-positive weight %v", spec.Name, spec.Weight)
		}
		if _, dup := w.channels[spec.Name]; dup {
			return nil, fmt.Errorf("field: duplicate channel name %q", spec.Name)
		}
		w.channels[spec.Name] = &Channel{
			Spec: spec,
			CDF:  Uniformize(g, cellSize, spec.Sample),
		}
		w.order = append(w.order, spec.Name)
	}
	return w, nil
}

// Channel returns the named channel, if it exists.
func (w *World) Channel(name string) (*Channel, bool) {
	ch, ok := w.channels[name]
	return ch, ok
}

// Names returns the channel names in generation order.
func (w *World) Names() []string {
	out := make([]string, len(w.order))
	copy(out, w.order)
	return out
}

// Blend combines the named channels into a derived uniform channel. Per
// cell, the channels' uniform fractions are summed with their spec weights
// and the sum is re-uniformized through the weighted Irwin-Hall CDF, so the
// result is again uniform on (0, 1] while still ordered by the weighted
// average. The raw weighted sum is kept as the sample's Value. A cell
// absent in any contributing channel is absent in the blend.
func (w *World) Blend(names ...string) (InverseCDF, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("field: blend needs at least one channel")
	}
	if len(names) > MaxBlendChannels {
		return nil, fmt.Errorf("field: blend of %d channels exceeds the limit of %d", len(names), MaxBlendChannels)
	}
	chans := make([]*Channel, len(names))
	weights := make([]float32, len(names))
	for i, name := range names {
		ch, ok := w.channels[name]
		if !ok {
			return nil, fmt.Errorf("field: unknown channel %q", name)
		}
		chans[i] = ch
		weights[i] = ch.Spec.Weight
	}

	out := make(InverseCDF, w.Grid.Cells())
	samples := make([]float32, len(names))
	for i := 0; i < w.Grid.Cells(); i++ {
		absent := false
		var sum float32
		for j, ch := range chans {
			s := ch.CDF[i]
			if s.Fraction == 0 {
				absent = true
				break
			}
			samples[j] = s.Fraction
			sum += weights[j] * s.Fraction
		}
		if absent {
			continue
		}
		out[i] = UniformSample{Fraction: CDFIrwinHall(weights, samples), Value: sum}
	}
	return out, nil
}
