package export

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/strata/config"
	"github.com/pthm-cable/strata/field"
	"github.com/pthm-cable/strata/fieldstats"
)

func testWorld(t *testing.T) *field.World {
	t.Helper()
	g := field.NewGrid(2, 2)
	sampler := func(idx int, _ [2]float64) (float32, bool) {
		return float32(idx) * 0.1, true
	}
	w, err := field.Generate(g, 1.0, []field.ChannelSpec{
		{Name: "elevation", Weight: 1, Sample: sampler},
	})
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func readHeader(t *testing.T, path string) string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatalf("%s is empty", path)
	}
	return scanner.Text()
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Error("expected nil manager for empty dir")
	}
}

func TestWriteCells(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	w := testWorld(t)
	blend, err := w.Blend("elevation")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteCells(w, map[string]field.InverseCDF{"climate": blend}); err != nil {
		t.Fatal(err)
	}

	header := readHeader(t, filepath.Join(dir, "cells.csv"))
	for _, col := range []string{"index", "x", "y", "channel", "present", "fraction", "value"} {
		if !strings.Contains(header, col) {
			t.Errorf("cells.csv header %q missing column %q", header, col)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "cells.csv"))
	if err != nil {
		t.Fatal(err)
	}
	// Header + 4 cells per channel, two channels.
	lines := strings.Count(strings.TrimSpace(string(data)), "\n") + 1
	if lines != 1+4*2 {
		t.Errorf("cells.csv has %d lines, want 9", lines)
	}
}

func TestWriteSummaries(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	w := testWorld(t)
	ch, _ := w.Channel("elevation")
	summaries := []fieldstats.Summary{fieldstats.Summarize("elevation", ch.CDF)}
	if err := om.WriteSummaries(summaries); err != nil {
		t.Fatal(err)
	}

	header := readHeader(t, filepath.Join(dir, "summary.csv"))
	for _, col := range []string{"name", "present", "uniform_dev"} {
		if !strings.Contains(header, col) {
			t.Errorf("summary.csv header %q missing column %q", header, col)
		}
	}
}

func TestWriteBiomes(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	g := field.NewGrid(2, 1)
	biomes := []field.Biome{field.BiomeOcean, field.BiomeForest}
	if err := om.WriteBiomes(g, biomes); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "biomes.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "ocean") || !strings.Contains(string(data), "forest") {
		t.Errorf("biomes.csv missing biome names:\n%s", data)
	}
}

func TestWriteConfig(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "elevation") {
		t.Errorf("config.yaml missing channel config:\n%s", data)
	}
}
