// Package main generates a world field from configuration and exports it
// as CSV.
//
// Usage: go run ./cmd/genmap -out worlds/run1 [-config custom.yaml] [-seed 42]
package main

import (
	"flag"
	"log"
	"log/slog"

	"github.com/pthm-cable/strata/config"
	"github.com/pthm-cable/strata/export"
	"github.com/pthm-cable/strata/field"
	"github.com/pthm-cable/strata/fieldstats"
)

func main() {
	configPath := flag.String("config", "", "Config YAML file (empty = use defaults)")
	outputDir := flag.String("out", "", "Output directory for CSV results")
	seed := flag.Int64("seed", 0, "Master seed override (0 = use config seed)")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("-out is required")
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	world, err := field.GenerateFromConfig(cfg, *seed)
	if err != nil {
		log.Fatalf("failed to generate world: %v", err)
	}

	var blend field.InverseCDF
	if len(cfg.Blend.Channels) > 0 {
		blend, err = world.Blend(cfg.Blend.Channels...)
		if err != nil {
			log.Fatalf("failed to blend channels: %v", err)
		}
	}

	var biomes []field.Biome
	if cfg.Biomes.Enabled {
		biomes, err = world.BiomeMap(cfg.Biomes.Elevation, cfg.Biomes.Humidity, cfg.Biomes.Temperature)
		if err != nil {
			log.Fatalf("failed to classify biomes: %v", err)
		}
	}

	om, err := export.NewOutputManager(*outputDir)
	if err != nil {
		log.Fatalf("failed to create output manager: %v", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		log.Fatalf("failed to write config snapshot: %v", err)
	}

	summaries := make([]fieldstats.Summary, 0, len(world.Names())+1)
	for _, name := range world.Names() {
		ch, _ := world.Channel(name)
		s := fieldstats.Summarize(name, ch.CDF)
		summaries = append(summaries, s)
		slog.Info("channel generated", "summary", s)
	}
	extra := map[string]field.InverseCDF{}
	if blend != nil {
		s := fieldstats.Summarize(cfg.Blend.Name, blend)
		summaries = append(summaries, s)
		extra[cfg.Blend.Name] = blend
		slog.Info("blend generated", "summary", s)
	}

	if cfg.Export.Cells {
		if err := om.WriteCells(world, extra); err != nil {
			log.Fatalf("failed to write cells: %v", err)
		}
	}
	if cfg.Export.Summary {
		if err := om.WriteSummaries(summaries); err != nil {
			log.Fatalf("failed to write summaries: %v", err)
		}
	}
	if cfg.Export.Biomes && biomes != nil {
		if err := om.WriteBiomes(world.Grid, biomes); err != nil {
			log.Fatalf("failed to write biomes: %v", err)
		}
	}

	slog.Info("world exported",
		"dir", om.Dir(),
		"grid", cfg.World.Width*cfg.World.Height,
		"channels", len(world.Names()),
	)
}
