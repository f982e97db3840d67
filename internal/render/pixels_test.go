package render

import (
	"image/color"
	"testing"

	icore "wfc-chunk/internal/core"
)

func TestTilePaletteSize(t *testing.T) {
	if got := len(TilePalette(4)); got != 5 {
		t.Fatalf("palette length %d, expected 5", got)
	}
	if got := len(TilePalette(11)); got != 12 {
		t.Fatalf("palette length %d, expected 12", got)
	}
	if TilePalette(-1) != nil {
		t.Fatal("negative range must yield no palette")
	}
}

func TestFillTileRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 255}, {R: 4, G: 5, B: 6, A: 255}}
	cells := []int32{0, 1, icore.Sentinel, 7}
	buf := make([]byte, 4*len(cells))
	FillTileRGBA(buf, cells, palette)

	want := []byte{
		1, 2, 3, 255,
		4, 5, 6, 255,
		SentinelColor.R, SentinelColor.G, SentinelColor.B, SentinelColor.A,
		SentinelColor.R, SentinelColor.G, SentinelColor.B, SentinelColor.A,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, expected %d", i, buf[i], want[i])
		}
	}
}

func TestFillTileRGBAShortBuffer(t *testing.T) {
	buf := make([]byte, 4)
	FillTileRGBA(buf, []int32{0, 0, 0}, TilePalette(0))
	if buf[3] != 255 {
		t.Fatal("first pixel must be written")
	}
}
