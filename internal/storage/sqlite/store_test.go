package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wfc-chunk/internal/chunk"
)

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chunks.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store, path
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestOpenRunsMigrationsOnce(t *testing.T) {
	_, path := openStore(t)

	again, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, again.Close())

	sqlDB, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	var applied int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 1, applied)

	var name string
	require.NoError(t, sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'chunks'`).Scan(&name))
	assert.Equal(t, "chunks", name)
}

func TestPutGetRoundTrip(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	c := chunk.NewDefault()
	c.Generate(42)
	cfg := c.Config()
	key := Key{Size: cfg.Size, MaxTile: cfg.MaxTile, Algorithm: cfg.Algorithm, Seed: 42}

	_, err := store.Get(ctx, key)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, store.Put(ctx, Record{Key: key, Tiles: c.FlatGrid()}))
	rec, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, c.FlatGrid(), rec.Tiles)
	assert.False(t, rec.CreatedAt.IsZero())

	require.NoError(t, store.Put(ctx, Record{Key: key, Tiles: c.FlatGrid()}))
	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	other := key
	other.Algorithm = "pcg"
	_, err = store.Get(ctx, other)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Get(ctx, key)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPutRejectsShapeMismatch(t *testing.T) {
	store, _ := openStore(t)
	err := store.Put(context.Background(), Record{Key: Key{Size: 2}, Tiles: []int32{1, 2, 3}})
	require.Error(t, err)
}

func TestPutHonorsCancelledContext(t *testing.T) {
	store, _ := openStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := store.Put(ctx, Record{Key: Key{Size: 1}, Tiles: []int32{0}})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTileCodecPreservesSentinel(t *testing.T) {
	in := []int32{-1, 0, 4, 1 << 30}
	out, err := decodeTiles(encodeTiles(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = decodeTiles([]byte{1, 2, 3})
	assert.Error(t, err)
}
