package field

import "github.com/pthm-cable/strata/config"

// SpecsFromConfig builds channel specs from the loaded configuration.
// Each channel gets its own generator seeded with world.seed plus the
// channel's seed_offset, so channels stay decorrelated but the whole world
// reproduces from the single master seed. A non-zero mask_cutoff turns the
// channel's sampler into a masked one.
func SpecsFromConfig(cfg *config.Config, seed int64) []ChannelSpec {
	specs := make([]ChannelSpec, 0, len(cfg.Channels))
	for _, cc := range cfg.Channels {
		nf := NewNoiseField(seed+cc.SeedOffset, cc.Octaves, cc.Frequency, cc.Lacunarity, cc.Gain)
		sampler := nf.Sampler()
		if cc.MaskCutoff > 0 {
			sampler = nf.MaskedSampler(float32(cc.MaskCutoff))
		}
		specs = append(specs, ChannelSpec{
			Name:   cc.Name,
			Weight: float32(cc.Weight),
			Sample: sampler,
		})
	}
	return specs
}

// GenerateFromConfig generates a world using the configured grid, cell size
// and channels. seed overrides the configured master seed when non-zero.
func GenerateFromConfig(cfg *config.Config, seed int64) (*World, error) {
	if seed == 0 {
		seed = cfg.World.Seed
	}
	g := NewGrid(cfg.World.Width, cfg.World.Height)
	return Generate(g, cfg.World.CellSize, SpecsFromConfig(cfg, seed))
}
