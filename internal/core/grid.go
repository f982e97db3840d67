package core

import (
	"errors"
	"fmt"
)

// Sentinel marks a cell that has not been assigned a tile yet. It lies
// outside every valid tile range because tile identifiers start at zero.
const Sentinel int32 = -1

// MaxSize bounds the side length of a grid so that size*size cells fit in
// memory and in an int on every platform.
const MaxSize = 1 << 13

// ErrInvalidSize reports a grid dimension outside [1, MaxSize].
var ErrInvalidSize = errors.New("core: grid size out of range")

// TileGrid stores a square grid of tile identifiers in row-major order.
type TileGrid struct {
	n    int
	data []int32
}

// NewTileGrid allocates a size×size grid with every cell set to Sentinel.
func NewTileGrid(size int) (*TileGrid, error) {
	if size <= 0 || size > MaxSize {
		return nil, fmt.Errorf("new tile grid %d: %w", size, ErrInvalidSize)
	}
	g := &TileGrid{n: size, data: make([]int32, size*size)}
	g.Reset()
	return g, nil
}

// Size returns the side length of the grid.
func (g *TileGrid) Size() int { return g.n }

// Index returns the linear slice index for (row, col).
func (g *TileGrid) Index(row, col int) int { return row*g.n + col }

// Set writes a tile identifier. Coordinates outside [0, size) panic.
func (g *TileGrid) Set(row, col int, value int32) {
	g.mustContain(row, col)
	g.data[g.Index(row, col)] = value
}

// At returns the tile identifier stored at (row, col).
func (g *TileGrid) At(row, col int) int32 {
	g.mustContain(row, col)
	return g.data[g.Index(row, col)]
}

// Cells exposes the backing slice. Callers must treat it as read-only.
func (g *TileGrid) Cells() []int32 { return g.data }

// Flatten returns a row-major copy of the grid: element i holds the cell at
// (i / size, i % size).
func (g *TileGrid) Flatten() []int32 {
	out := make([]int32, len(g.data))
	copy(out, g.data)
	return out
}

// Reset fills the grid with Sentinel.
func (g *TileGrid) Reset() {
	for i := range g.data {
		g.data[i] = Sentinel
	}
}

func (g *TileGrid) mustContain(row, col int) {
	if row < 0 || row >= g.n || col < 0 || col >= g.n {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.n, g.n))
	}
}
