// World field preview tool - renders generated channels interactively.
//
// Usage: go run ./cmd/preview [-config custom.yaml]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/strata/config"
	"github.com/pthm-cable/strata/field"
	"github.com/pthm-cable/strata/fieldstats"
)

// view selects what the texture shows for the current channel.
type view int

const (
	viewFraction view = iota
	viewRaw
	viewBiome
)

func (v view) String() string {
	switch v {
	case viewFraction:
		return "uniform fraction"
	case viewRaw:
		return "raw value"
	case viewBiome:
		return "biomes"
	default:
		return "unknown"
	}
}

var biomeColors = map[field.Biome]color.RGBA{
	field.BiomeVoid:      {0, 0, 0, 255},
	field.BiomeOcean:     {41, 77, 153, 255},
	field.BiomeDesert:    {210, 185, 120, 255},
	field.BiomeGrassland: {120, 170, 80, 255},
	field.BiomeForest:    {45, 110, 55, 255},
	field.BiomeTundra:    {150, 160, 150, 255},
	field.BiomeMountain:  {110, 100, 95, 255},
	field.BiomeSnow:      {235, 240, 245, 255},
}

func main() {
	configPath := flag.String("config", "", "Config YAML file (empty = use defaults)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	windowWidth := int32(cfg.Preview.WindowWidth)
	windowHeight := int32(cfg.Preview.WindowHeight)
	viewSize := float32(cfg.Preview.ViewSize)

	rl.InitWindow(windowWidth, windowHeight, "World Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	seed := cfg.World.Seed
	world, biomes := generate(cfg, seed)
	names := world.Names()
	channelIdx := 0
	mode := viewFraction

	img := rl.GenImageColor(cfg.World.Width, cfg.World.Height, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	var summary fieldstats.Summary
	needsRedraw := true
	for !rl.WindowShouldClose() {
		if needsRedraw {
			updateTexture(texture, world, names[channelIdx], mode, biomes)
			ch, _ := world.Channel(names[channelIdx])
			summary = fieldstats.Summarize(names[channelIdx], ch.CDF)
			needsRedraw = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw map
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(cfg.World.Width), Height: float32(cfg.World.Height)},
			rl.Rectangle{X: 10, Y: 10, Width: viewSize, Height: viewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, int32(viewSize), int32(viewSize), rl.DarkGray)

		// Channel summary line
		statsY := int32(viewSize + 25)
		rl.DrawText(fmt.Sprintf("%s (%s)  present: %d  mean: %.3f  dev: %.4f",
			summary.Name, mode, summary.Present, summary.ValueMean, summary.UniformDev), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Seed: %d", seed), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := viewSize + 20
		panelY := float32(10)

		rl.DrawText("World Field Preview", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Next Channel") {
			channelIdx = (channelIdx + 1) % len(names)
			needsRedraw = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "View: "+mode.String()) {
			mode = (mode + 1) % 3
			needsRedraw = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			seed = int64(rl.GetRandomValue(0, 99999))
			world, biomes = generate(cfg, seed)
			needsRedraw = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Regenerate") {
			world, biomes = generate(cfg, seed)
			needsRedraw = true
		}
		panelY += 55

		// Channel list
		rl.DrawText("Channels:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 22
		for i, name := range names {
			c := rl.Gray
			if i == channelIdx {
				c = rl.DarkGray
			}
			rl.DrawText(name, int32(panelX), int32(panelY), 14, c)
			panelY += 16
		}

		rl.EndDrawing()
	}
}

func generate(cfg *config.Config, seed int64) (*field.World, []field.Biome) {
	world, err := field.GenerateFromConfig(cfg, seed)
	if err != nil {
		log.Fatalf("failed to generate world: %v", err)
	}
	var biomes []field.Biome
	if cfg.Biomes.Enabled {
		biomes, err = world.BiomeMap(cfg.Biomes.Elevation, cfg.Biomes.Humidity, cfg.Biomes.Temperature)
		if err != nil {
			log.Fatalf("failed to classify biomes: %v", err)
		}
	}
	return world, biomes
}

func updateTexture(texture rl.Texture2D, world *field.World, channel string, mode view, biomes []field.Biome) {
	pixels := make([]color.RGBA, world.Grid.Cells())

	if mode == viewBiome && biomes != nil {
		for i, b := range biomes {
			pixels[i] = biomeColors[b]
		}
		rl.UpdateTexture(texture, pixels)
		return
	}

	ch, _ := world.Channel(channel)
	// Raw values need min/max normalization for display; fractions are
	// already in (0, 1].
	var lo, hi float32 = 1, 0
	if mode == viewRaw {
		for _, s := range ch.CDF {
			if s.Fraction == 0 {
				continue
			}
			if s.Value < lo {
				lo = s.Value
			}
			if s.Value > hi {
				hi = s.Value
			}
		}
		if hi <= lo {
			hi = lo + 1
		}
	}

	for i, s := range ch.CDF {
		if s.Fraction == 0 {
			pixels[i] = color.RGBA{255, 0, 255, 255} // absent cells in magenta
			continue
		}
		v := s.Fraction
		if mode == viewRaw {
			v = (s.Value - lo) / (hi - lo)
		}
		g := uint8(v * 255)
		pixels[i] = color.RGBA{g, g, g, 255}
	}
	rl.UpdateTexture(texture, pixels)
}
