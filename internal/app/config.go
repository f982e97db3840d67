package app

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"wfc-chunk/internal/chunk"
	"wfc-chunk/internal/platform/config"
	"wfc-chunk/pkg/core"
)

// Config represents the shared command-line parameters. Environment
// variables provide defaults; flags bound with Bind override them.
type Config struct {
	Size      int    `env:"WFC_SIZE" envDefault:"36"`
	MaxTile   int    `env:"WFC_MAX_TILE" envDefault:"4"`
	Algorithm string `env:"WFC_ALGORITHM" envDefault:"mt19937"`
	Seed      int64  `env:"WFC_SEED" envDefault:"42"`
	Random    bool   `env:"WFC_RANDOM_SEED"`

	Scale int `env:"WFC_SCALE" envDefault:"16"`
	TPS   int `env:"WFC_TPS" envDefault:"60"`
	Rate  int `env:"WFC_RATE" envDefault:"2"`

	Format string `env:"WFC_FORMAT" envDefault:"text"`
	PNG    string `env:"WFC_PNG"`
	DB     string `env:"WFC_DB"`
	Evict  bool   `env:"WFC_EVICT"`
	Stats  bool   `env:"WFC_CACHE_STATS"`

	Verbose bool `env:"WFC_VERBOSE"`

	Overrides kvList `env:"WFC_SET" envSeparator:";"`
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q: want key=value", value)
	}
	*l = append(*l, value)
	return nil
}

func (l kvList) toMap() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	return m
}

// NewConfig returns a Config populated from the environment.
func NewConfig() (*Config, error) {
	c := &Config{}
	if err := config.ParseEnv(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Bind attaches the generation and viewer parameters to the FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "chunk side length in cells")
	fs.IntVar(&c.MaxTile, "max-tile", c.MaxTile, "largest tile id (tiles are drawn from 0..max-tile)")
	fs.StringVar(&c.Algorithm, "algorithm", c.Algorithm, "random algorithm: "+strings.Join(core.SourceNames(), ", "))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed")
	fs.BoolVar(&c.Random, "random-seed", c.Random, "ignore -seed and draw a fresh seed")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "viewer ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "seeds per second when auto-advancing")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log generation details to stderr")
	fs.Var(&c.Overrides, "set", "chunk setting in key=value form, applied last (repeatable; keys: size, max_tile, algorithm)")
}

// BindOutput attaches the headless output parameters to the FlagSet.
func (c *Config) BindOutput(fs *flag.FlagSet) {
	fs.StringVar(&c.Format, "format", c.Format, "stdout format: text, json or none")
	fs.StringVar(&c.PNG, "png", c.PNG, "write a PNG rendering to this path")
	fs.StringVar(&c.DB, "db", c.DB, "SQLite chunk cache path")
	fs.BoolVar(&c.Evict, "evict", c.Evict, "drop the cached entry for this chunk before generating")
	fs.BoolVar(&c.Stats, "cache-stats", c.Stats, "report the number of cached chunks on stderr")
}

// ChunkConfig converts the generation parameters into a chunk configuration.
func (c *Config) ChunkConfig() (chunk.Config, error) {
	if c.MaxTile < 0 || int64(c.MaxTile) > int64(^uint32(0)>>1) {
		return chunk.Config{}, fmt.Errorf("max tile %d out of range: %w", c.MaxTile, chunk.ErrInvalidTileRange)
	}
	cc := chunk.Config{Size: c.Size, MaxTile: int32(c.MaxTile), Algorithm: c.Algorithm}
	return cc.Apply(c.Overrides.toMap()), nil
}

// Logger returns a stderr text logger when Verbose is set, nil otherwise.
func (c *Config) Logger() *slog.Logger {
	if !c.Verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
