package chunk

import (
	"strconv"

	icore "wfc-chunk/internal/core"
	"wfc-chunk/pkg/core"
)

// Config holds the construction-time constants of a chunk.
type Config struct {
	// Size is the side length of the square grid.
	Size int
	// MaxTile is the inclusive upper bound of the tile identifier range.
	MaxTile int32
	// Algorithm names the registered PRNG used by Generate.
	Algorithm string
}

// DefaultConfig returns the standard 36×36 chunk with tiles 0..4.
func DefaultConfig() Config {
	return Config{Size: 36, MaxTile: 4, Algorithm: core.AlgorithmMT19937}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns c with the recognised keys of cfg applied. Malformed values
// and unknown algorithms leave the field unchanged.
func (c Config) Apply(cfg map[string]string) Config {
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= icore.MaxSize {
			c.Size = parsed
		}
	}
	if v, ok := cfg["max_tile"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 32); err == nil && parsed >= 0 {
			c.MaxTile = int32(parsed)
		}
	}
	if v, ok := cfg["algorithm"]; ok {
		if _, known := core.LookupSource(v); known {
			c.Algorithm = v
		}
	}
	return c
}
