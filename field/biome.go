package field

import "fmt"

// Biome classifies a cell from its uniformized elevation, humidity and
// temperature fractions.
type Biome uint8

const (
	BiomeVoid Biome = iota // absent in a contributing channel
	BiomeOcean
	BiomeDesert
	BiomeGrassland
	BiomeForest
	BiomeTundra
	BiomeMountain
	BiomeSnow
)

// String returns the biome's lowercase name.
func (b Biome) String() string {
	switch b {
	case BiomeVoid:
		return "void"
	case BiomeOcean:
		return "ocean"
	case BiomeDesert:
		return "desert"
	case BiomeGrassland:
		return "grassland"
	case BiomeForest:
		return "forest"
	case BiomeTundra:
		return "tundra"
	case BiomeMountain:
		return "mountain"
	case BiomeSnow:
		return "snow"
	default:
		return "unknown"
	}
}

// Classify maps uniformized elevation, humidity and temperature fractions
// to a biome. The inputs being rank fractions rather than raw noise is what
// makes these thresholds meaningful: a 0.2 elevation cutoff covers 20% of
// present cells by construction, not whatever share the raw noise happens
// to produce.
func Classify(elev, humid, temp float32) Biome {
	switch {
	case elev <= 0.2:
		return BiomeOcean
	case elev > 0.85:
		if temp < 0.3 {
			return BiomeSnow
		}
		return BiomeMountain
	case temp < 0.25:
		return BiomeTundra
	case humid < 0.3:
		return BiomeDesert
	case humid > 0.65:
		return BiomeForest
	default:
		return BiomeGrassland
	}
}

// BiomeMap classifies every cell from three named channels. Cells absent in
// any of the three are BiomeVoid.
func (w *World) BiomeMap(elevation, humidity, temperature string) ([]Biome, error) {
	var chans [3]*Channel
	for i, name := range []string{elevation, humidity, temperature} {
		ch, ok := w.channels[name]
		if !ok {
			return nil, fmt.Errorf("field: unknown channel %q", name)
		}
		chans[i] = ch
	}
	out := make([]Biome, w.Grid.Cells())
	for i := range out {
		e, h, t := chans[0].CDF[i], chans[1].CDF[i], chans[2].CDF[i]
		if e.Fraction == 0 || h.Fraction == 0 || t.Fraction == 0 {
			continue
		}
		out[i] = Classify(e.Fraction, h.Fraction, t.Fraction)
	}
	return out, nil
}
