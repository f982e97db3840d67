package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wfc-chunk/internal/chunk"
)

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, []int32{0, 1, -1, 4}, 2))
	assert.Equal(t, "0 1\n-1 4\n", buf.String())

	err := WriteText(&buf, []int32{0, 1, 2}, 2)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestWriteJSON(t *testing.T) {
	c := chunk.NewDefault()
	c.Generate(42)
	cfg := c.Config()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Document{
		Seed:      42,
		Size:      cfg.Size,
		MaxTile:   cfg.MaxTile,
		Algorithm: cfg.Algorithm,
		Tiles:     c.FlatGrid(),
	}))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, int64(42), doc.Seed)
	assert.Equal(t, "mt19937", doc.Algorithm)
	assert.Equal(t, c.FlatGrid(), doc.Tiles)

	err := WriteJSON(&buf, Document{Size: 3, Tiles: []int32{1}})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestWritePNGDimensions(t *testing.T) {
	c := chunk.NewDefault()
	c.Generate(7)

	path := filepath.Join(t.TempDir(), "chunk.png")
	require.NoError(t, WritePNG(path, c.FlatGrid(), 36, PNGOptions{Scale: 4, MaxTile: 4, GridLines: true}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 144, cfg.Width)
	assert.Equal(t, 144, cfg.Height)
}

func TestWritePNGShapeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	err := WritePNG(path, []int32{0, 1}, 2, PNGOptions{})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWritePNGReportsSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "chunk.png")
	err := WritePNG(path, []int32{0, 1, 2, 3}, 2, PNGOptions{Scale: 2, MaxTile: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write png")
	assert.False(t, errors.Is(err, ErrShapeMismatch))
}

func TestWritePNGOverwritesAndReleasesContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunk.png")
	for i := 0; i < 3; i++ {
		require.NoError(t, WritePNG(path, []int32{0, 1, 2, 3}, 2, PNGOptions{Scale: 3, MaxTile: 3}))
	}
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Width)
}
