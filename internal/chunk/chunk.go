// Package chunk fills a square tile grid from a seeded pseudo-random source.
//
// Despite the wave-function-collapse lineage of the name, every cell is drawn
// independently and uniformly from [0, MaxTile]; there are no adjacency rules.
// The draws are consumed in row-major order, so a (seed, Config) pair always
// yields the same grid.
package chunk

import (
	"fmt"
	"log/slog"

	icore "wfc-chunk/internal/core"
	"wfc-chunk/pkg/core"
)

// State is the externally observable lifecycle of a chunk.
type State uint8

const (
	// StateUninitialized means every cell still holds the sentinel.
	StateUninitialized State = iota
	// StateGenerated means every cell was assigned by Generate.
	StateGenerated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateGenerated:
		return "generated"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Chunk owns a tile grid and regenerates it on demand. It is not safe for
// concurrent use; callers sharing one instance must serialize access.
type Chunk struct {
	cfg    Config
	grid   *icore.TileGrid
	source core.SourceFactory

	state State
	seed  int64
}

var _ icore.Generator = (*Chunk)(nil)

// New validates cfg and allocates a chunk whose cells all hold the sentinel.
func New(cfg Config) (*Chunk, error) {
	if cfg.MaxTile < 0 {
		return nil, fmt.Errorf("new chunk: max tile %d: %w", cfg.MaxTile, ErrInvalidTileRange)
	}
	source, ok := core.LookupSource(cfg.Algorithm)
	if !ok {
		return nil, fmt.Errorf("new chunk: algorithm %q: %w", cfg.Algorithm, ErrUnknownAlgorithm)
	}
	grid, err := icore.NewTileGrid(cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("new chunk: %w", err)
	}
	return &Chunk{cfg: cfg, grid: grid, source: source}, nil
}

// NewDefault returns a chunk built from DefaultConfig.
func NewDefault() *Chunk {
	c, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the generator identifier.
func (c *Chunk) Name() string { return "chunk" }

// Size reports the grid dimensions.
func (c *Chunk) Size() icore.Size { return icore.Size{W: c.cfg.Size, H: c.cfg.Size} }

// Config returns the construction-time configuration.
func (c *Chunk) Config() Config { return c.cfg }

// State reports whether Generate has run.
func (c *Chunk) State() State { return c.state }

// Seed returns the seed of the most recent Generate call.
func (c *Chunk) Seed() (int64, bool) {
	return c.seed, c.state == StateGenerated
}

// Cells exposes the live grid in row-major order for rendering.
func (c *Chunk) Cells() []int32 { return c.grid.Cells() }

// Tile returns the tile at (row, col). ok is false outside the grid.
func (c *Chunk) Tile(row, col int) (tile int32, ok bool) {
	if row < 0 || col < 0 || row >= c.cfg.Size || col >= c.cfg.Size {
		return icore.Sentinel, false
	}
	return c.grid.At(row, col), true
}

// FlatGrid returns a row-major copy of the grid.
func (c *Chunk) FlatGrid() []int32 { return c.grid.Flatten() }

// Generate overwrites every cell with a tile drawn uniformly from
// [0, MaxTile] by a PRNG keyed exactly by seed.
func (c *Chunk) Generate(seed int64) {
	rng := core.NewRNGWith(c.source(seed))
	n := c.cfg.Size
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			c.grid.Set(row, col, rng.IntRange(0, c.cfg.MaxTile))
		}
	}
	c.state = StateGenerated
	c.seed = seed

	Logger().Info("chunk generated",
		slog.Int64("seed", seed),
		slog.Int("size", n),
		slog.String("algorithm", c.cfg.Algorithm),
	)
}
