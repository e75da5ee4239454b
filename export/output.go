// Package export writes generated world fields to disk: per-cell channel
// records and summaries as CSV, plus a YAML snapshot of the effective
// configuration so a run can be reproduced from its output directory.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/strata/config"
	"github.com/pthm-cable/strata/field"
	"github.com/pthm-cable/strata/fieldstats"
)

// CellRecord is one (cell, channel) row of the long-format cells CSV.
// Absent cells are written with present=false and zero fraction/value so
// the row count stays width*height per channel.
type CellRecord struct {
	Index    int     `csv:"index"`
	X        int     `csv:"x"`
	Y        int     `csv:"y"`
	Channel  string  `csv:"channel"`
	Present  bool    `csv:"present"`
	Fraction float32 `csv:"fraction"`
	Value    float32 `csv:"value"`
}

// BiomeRecord is one row of the biomes CSV.
type BiomeRecord struct {
	Index int    `csv:"index"`
	X     int    `csv:"x"`
	Y     int    `csv:"y"`
	Biome string `csv:"biome"`
}

// OutputManager writes generator output into a single directory.
// Returns nil from NewOutputManager if dir is empty (output disabled).
type OutputManager struct {
	dir string
}

// NewOutputManager creates the output directory.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &OutputManager{dir: dir}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	return om.dir
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	path := filepath.Join(om.dir, "config.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config.yaml: %w", err)
	}
	return nil
}

// WriteCells writes every (cell, channel) pair of the world, plus the named
// extra channels (blends), to cells.csv.
func (om *OutputManager) WriteCells(w *field.World, extra map[string]field.InverseCDF) error {
	records := make([]CellRecord, 0, w.Grid.Cells()*(len(w.Names())+len(extra)))
	appendChannel := func(name string, cdf field.InverseCDF) {
		for i, s := range cdf {
			x, y := w.Grid.Coordinate(i)
			records = append(records, CellRecord{
				Index:    i,
				X:        x,
				Y:        y,
				Channel:  name,
				Present:  s.Fraction > 0,
				Fraction: s.Fraction,
				Value:    s.Value,
			})
		}
	}
	for _, name := range w.Names() {
		ch, _ := w.Channel(name)
		appendChannel(name, ch.CDF)
	}
	for name, cdf := range extra {
		appendChannel(name, cdf)
	}

	return om.writeCSV("cells.csv", records)
}

// WriteSummaries writes per-channel distribution summaries to summary.csv.
func (om *OutputManager) WriteSummaries(summaries []fieldstats.Summary) error {
	return om.writeCSV("summary.csv", summaries)
}

// WriteBiomes writes the classified biome map to biomes.csv.
func (om *OutputManager) WriteBiomes(g field.Grid, biomes []field.Biome) error {
	records := make([]BiomeRecord, len(biomes))
	for i, b := range biomes {
		x, y := g.Coordinate(i)
		records[i] = BiomeRecord{Index: i, X: x, Y: y, Biome: b.String()}
	}
	return om.writeCSV("biomes.csv", records)
}

func (om *OutputManager) writeCSV(name string, records interface{}) error {
	path := filepath.Join(om.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err := gocsv.Marshal(records, f); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
