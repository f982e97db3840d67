package app

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wfc-chunk/internal/chunk"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	cc, err := cfg.ChunkConfig()
	require.NoError(t, err)
	assert.Equal(t, chunk.DefaultConfig(), cc)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "text", cfg.Format)
	assert.Nil(t, cfg.Logger())
}

func TestEnvThenFlags(t *testing.T) {
	t.Setenv("WFC_SIZE", "12")
	t.Setenv("WFC_SEED", "-9")
	t.Setenv("WFC_ALGORITHM", "pcg")
	t.Setenv("WFC_DB", "/tmp/chunks.db")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Size)
	assert.Equal(t, int64(-9), cfg.Seed)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	cfg.BindOutput(fs)
	require.NoError(t, fs.Parse([]string{"-seed", "7", "-max-tile", "9", "-format", "json", "-v"}))

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 12, cfg.Size, "env value kept when no flag given")
	assert.Equal(t, "/tmp/chunks.db", cfg.DB)
	assert.Equal(t, "json", cfg.Format)
	assert.NotNil(t, cfg.Logger())

	cc, err := cfg.ChunkConfig()
	require.NoError(t, err)
	assert.Equal(t, chunk.Config{Size: 12, MaxTile: 9, Algorithm: "pcg"}, cc)
}

func TestEnvRejectsMalformedValues(t *testing.T) {
	t.Setenv("WFC_SIZE", "big")
	_, err := NewConfig()
	require.Error(t, err)
}

func TestChunkConfigRejectsNegativeMaxTile(t *testing.T) {
	cfg := &Config{Size: 4, MaxTile: -1, Algorithm: "mt19937"}
	_, err := cfg.ChunkConfig()
	assert.True(t, errors.Is(err, chunk.ErrInvalidTileRange))
}

func TestSetOverridesApplyLast(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-size", "10", "-set", "size=6", "-set", "algorithm = pcg", "-set", "max_tile=nope"}))

	cc, err := cfg.ChunkConfig()
	require.NoError(t, err)
	assert.Equal(t, chunk.Config{Size: 6, MaxTile: 4, Algorithm: "pcg"}, cc)

	require.Error(t, fs.Parse([]string{"-set", "size"}))
}

func TestSetOverridesFromEnv(t *testing.T) {
	t.Setenv("WFC_SET", "size=3;max_tile=1")
	cfg, err := NewConfig()
	require.NoError(t, err)
	cc, err := cfg.ChunkConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, cc.Size)
	assert.Equal(t, int32(1), cc.MaxTile)
}
