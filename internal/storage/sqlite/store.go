// Package sqlite caches flattened chunks in a SQLite database keyed by the
// parameters that fully determine them.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"wfc-chunk/internal/storage/sqlite/migrations"
)

// ErrNotFound indicates no chunk is stored under the requested key.
var ErrNotFound = errors.New("sqlite: chunk not found")

// Key identifies a chunk. Generation is deterministic, so equal keys always
// describe equal tiles.
type Key struct {
	Size      int
	MaxTile   int32
	Algorithm string
	Seed      int64
}

// Record is one stored chunk.
type Record struct {
	Key       Key
	Tiles     []int32
	CreatedAt time.Time
}

// Store persists chunks in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite chunk store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := "file:" + filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Put stores rec, replacing any chunk under the same key.
func (s *Store) Put(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.Key.Size <= 0 || len(rec.Tiles) != rec.Key.Size*rec.Key.Size {
		return fmt.Errorf("put chunk: %d tiles for size %d", len(rec.Tiles), rec.Key.Size)
	}
	createdAt := rec.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT OR REPLACE INTO chunks (size, max_tile, algorithm, seed, tiles, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Key.Size, rec.Key.MaxTile, rec.Key.Algorithm, rec.Key.Seed,
		encodeTiles(rec.Tiles), createdAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put chunk: %w", err)
	}
	return nil
}

// Get loads the chunk stored under key.
func (s *Store) Get(ctx context.Context, key Key) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	var (
		blob      []byte
		createdAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT tiles, created_at FROM chunks
		 WHERE size = ? AND max_tile = ? AND algorithm = ? AND seed = ?`,
		key.Size, key.MaxTile, key.Algorithm, key.Seed,
	).Scan(&blob, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get chunk: %w", err)
	}
	tiles, err := decodeTiles(blob)
	if err != nil {
		return Record{}, fmt.Errorf("get chunk: %w", err)
	}
	return Record{Key: key, Tiles: tiles, CreatedAt: time.UnixMilli(createdAt).UTC()}, nil
}

// Delete removes the chunk stored under key. Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, key Key) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM chunks WHERE size = ? AND max_tile = ? AND algorithm = ? AND seed = ?`,
		key.Size, key.MaxTile, key.Algorithm, key.Seed,
	)
	if err != nil {
		return fmt.Errorf("delete chunk: %w", err)
	}
	return nil
}

// Count returns the number of stored chunks.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM chunks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count chunks: %w", err)
	}
	return n, nil
}

func encodeTiles(tiles []int32) []byte {
	buf := make([]byte, 0, 4*len(tiles))
	for _, t := range tiles {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(t))
	}
	return buf
}

func decodeTiles(blob []byte) ([]int32, error) {
	if len(blob)%4 != 0 {
		return nil, fmt.Errorf("tile blob length %d is not a multiple of 4", len(blob))
	}
	tiles := make([]int32, len(blob)/4)
	for i := range tiles {
		tiles[i] = int32(binary.LittleEndian.Uint32(blob[i*4:]))
	}
	return tiles, nil
}
