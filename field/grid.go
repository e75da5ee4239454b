// Package field implements uniformized noise fields over dense 2D grids.
// Arbitrary scalar noise sampled per cell is converted into a statistically
// uniform distribution by rank transform, and blended channels are
// re-uniformized through the weighted Irwin-Hall CDF.
package field

import "fmt"

// Grid describes the fixed dimensions of a world field. All flat indices
// and grid coordinates are defined relative to it. Index and Coordinate are
// exact inverses over [0, Cells()); callers rely on lossless round-trips.
type Grid struct {
	Width  int
	Height int
}

// NewGrid returns a grid with the given dimensions. Panics if either
// dimension is not positive.
func NewGrid(width, height int) Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("field: grid dimensions must be positive, got %dx%d", width, height))
	}
	return Grid{Width: width, Height: height}
}

// Cells returns the total number of cells.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Index maps grid coordinates to a row-major flat index: y*Width + x.
// Both coordinates must be in bounds; out-of-range input is caller error.
func (g Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate maps a flat index back to its (x, y) grid coordinates.
// The index must lie in [0, Cells()).
func (g Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// InBounds reports whether (x, y) lies within the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// WorldPos returns the world-space position of a cell, scaling its grid
// coordinates by cellSize.
func (g Grid) WorldPos(idx int, cellSize float64) (wx, wy float64) {
	x, y := g.Coordinate(idx)
	return float64(x) * cellSize, float64(y) * cellSize
}
