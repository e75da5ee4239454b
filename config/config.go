// Package config provides configuration loading and access for the world
// field generator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all generator configuration parameters.
type Config struct {
	World    WorldConfig     `yaml:"world"`
	Channels []ChannelConfig `yaml:"channels"`
	Blend    BlendConfig     `yaml:"blend"`
	Biomes   BiomesConfig    `yaml:"biomes"`
	Export   ExportConfig    `yaml:"export"`
	Preview  PreviewConfig   `yaml:"preview"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WorldConfig holds grid dimensions, cell size and the master seed. The
// dimensions are fixed for the lifetime of a generated world.
type WorldConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"` // world units per grid cell
	Seed     int64   `yaml:"seed"`
}

// ChannelConfig describes one noise channel and its FBM parameters.
type ChannelConfig struct {
	Name       string  `yaml:"name"`
	Weight     float64 `yaml:"weight"`      // blend weight, must be positive
	SeedOffset int64   `yaml:"seed_offset"` // added to world.seed to decorrelate channels
	Octaves    int     `yaml:"octaves"`
	Frequency  float64 `yaml:"frequency"`
	Lacunarity float64 `yaml:"lacunarity"`
	Gain       float64 `yaml:"gain"`
	MaskCutoff float64 `yaml:"mask_cutoff"` // cells below this are absent; 0 disables masking
}

// BlendConfig names the derived channel and its contributors.
type BlendConfig struct {
	Name     string   `yaml:"name"`
	Channels []string `yaml:"channels"`
}

// BiomesConfig maps channel names onto the three classification axes.
type BiomesConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Elevation   string `yaml:"elevation"`
	Humidity    string `yaml:"humidity"`
	Temperature string `yaml:"temperature"`
}

// ExportConfig selects which CSV outputs genmap writes.
type ExportConfig struct {
	Cells   bool `yaml:"cells"`
	Summary bool `yaml:"summary"`
	Biomes  bool `yaml:"biomes"`
}

// PreviewConfig holds window settings for the preview tool.
type PreviewConfig struct {
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
	ViewSize     int `yaml:"view_size"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CellCount    int            // World.Width * World.Height
	ChannelIndex map[string]int // name -> position in Channels
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.World.CellSize <= 0 {
		return fmt.Errorf("world.cell_size must be positive, got %v", c.World.CellSize)
	}
	if len(c.Channels) == 0 {
		return fmt.Errorf("at least one channel is required")
	}
	seen := make(map[string]bool, len(c.Channels))
	for i, ch := range c.Channels {
		if ch.Name == "" {
			return fmt.Errorf("channel %d has no name", i)
		}
		if seen[ch.Name] {
			return fmt.Errorf("duplicate channel name %q", ch.Name)
		}
		seen[ch.Name] = true
		if ch.Weight <= 0 {
			return fmt.Errorf("channel %q: weight must be positive, got %v", ch.Name, ch.Weight)
		}
		if ch.Octaves < 1 {
			return fmt.Errorf("channel %q: octaves must be at least 1, got %d", ch.Name, ch.Octaves)
		}
		if ch.Frequency <= 0 {
			return fmt.Errorf("channel %q: frequency must be positive, got %v", ch.Name, ch.Frequency)
		}
		if ch.Gain <= 0 || ch.Gain > 1 {
			return fmt.Errorf("channel %q: gain must be in (0, 1], got %v", ch.Name, ch.Gain)
		}
		if ch.MaskCutoff < 0 || ch.MaskCutoff >= 1 {
			return fmt.Errorf("channel %q: mask_cutoff must be in [0, 1), got %v", ch.Name, ch.MaskCutoff)
		}
	}
	if len(c.Blend.Channels) > 0 {
		if c.Blend.Name == "" {
			return fmt.Errorf("blend has channels but no name")
		}
		for _, name := range c.Blend.Channels {
			if !seen[name] {
				return fmt.Errorf("blend references unknown channel %q", name)
			}
		}
	}
	if c.Biomes.Enabled {
		for _, name := range []string{c.Biomes.Elevation, c.Biomes.Humidity, c.Biomes.Temperature} {
			if !seen[name] {
				return fmt.Errorf("biomes reference unknown channel %q", name)
			}
		}
	}
	return nil
}

func (c *Config) computeDerived() {
	c.Derived.CellCount = c.World.Width * c.World.Height
	c.Derived.ChannelIndex = make(map[string]int, len(c.Channels))
	for i, ch := range c.Channels {
		c.Derived.ChannelIndex[ch.Name] = i
	}
}
