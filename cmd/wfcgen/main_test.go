package main

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wfc-chunk/internal/app"
	"wfc-chunk/internal/chunk"
	"wfc-chunk/internal/export"
	"wfc-chunk/internal/storage/sqlite"
)

func testConfig() *app.Config {
	return &app.Config{Size: 36, MaxTile: 4, Algorithm: "mt19937", Seed: 42, Scale: 2, Format: "text"}
}

func TestGenerateMatchesDirectChunk(t *testing.T) {
	tiles, err := generate(chunk.DefaultConfig(), 42)
	require.NoError(t, err)

	c := chunk.NewDefault()
	c.Generate(42)
	assert.Equal(t, c.FlatGrid(), tiles)
}

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), testConfig(), &out, &bytes.Buffer{}))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 36)
	assert.True(t, strings.HasPrefix(lines[0], "1 3 4 0 3 3 2 2 0 2 0 0 0 2 4 1 "))
}

func TestRunJSONWithCacheAndPNG(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	cfg.Format = "json"
	cfg.DB = filepath.Join(dir, "cache.db")
	cfg.PNG = filepath.Join(dir, "chunk.png")

	var first, second bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &first, &bytes.Buffer{}))
	require.NoError(t, run(context.Background(), cfg, &second, &bytes.Buffer{}))
	assert.Equal(t, first.String(), second.String())

	var doc export.Document
	require.NoError(t, json.Unmarshal(first.Bytes(), &doc))
	assert.Equal(t, int64(42), doc.Seed)
	assert.Len(t, doc.Tiles, 36*36)

	store, err := sqlite.Open(cfg.DB)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	f, err := os.Open(cfg.PNG)
	require.NoError(t, err)
	defer f.Close()
	pc, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 72, pc.Width)
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	cfg := testConfig()
	cfg.Format = "yaml"
	require.Error(t, run(context.Background(), cfg, &bytes.Buffer{}, &bytes.Buffer{}))
}

func TestRunRejectsUnknownAlgorithm(t *testing.T) {
	cfg := testConfig()
	cfg.Algorithm = "xorshift"
	err := run(context.Background(), cfg, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, chunk.ErrUnknownAlgorithm)
}

func TestRunEvictAndCacheStats(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.Format = "none"
	cfg.DB = filepath.Join(t.TempDir(), "cache.db")
	cfg.Stats = true

	store, err := sqlite.Open(cfg.DB)
	require.NoError(t, err)
	key := sqlite.Key{Size: 36, MaxTile: 4, Algorithm: "mt19937", Seed: 42}
	stale := make([]int32, 36*36)
	require.NoError(t, store.Put(ctx, sqlite.Record{Key: key, Tiles: stale}))
	require.NoError(t, store.Close())

	var stats bytes.Buffer
	require.NoError(t, run(ctx, cfg, &bytes.Buffer{}, &stats))
	assert.Equal(t, "cache "+cfg.DB+": 1 chunks\n", stats.String())

	cfg.Evict = true
	require.NoError(t, run(ctx, cfg, &bytes.Buffer{}, &bytes.Buffer{}))

	store, err = sqlite.Open(cfg.DB)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	rec, err := store.Get(ctx, key)
	require.NoError(t, err)

	c := chunk.NewDefault()
	c.Generate(42)
	assert.Equal(t, c.FlatGrid(), rec.Tiles, "evict replaces the stale entry with a fresh grid")
}
