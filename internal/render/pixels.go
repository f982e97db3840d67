package render

import (
	"image/color"

	icore "wfc-chunk/internal/core"
)

// SentinelColor marks cells that have not been generated yet.
var SentinelColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

var basePalette = []color.RGBA{
	{R: 40, G: 90, B: 200, A: 255},   // water
	{R: 220, G: 200, B: 120, A: 255}, // sand
	{R: 70, G: 160, B: 80, A: 255},   // grass
	{R: 40, G: 100, B: 55, A: 255},   // forest
	{R: 130, G: 130, B: 130, A: 255}, // rock
}

// TilePalette returns one color per tile id in [0, maxTile]. Ids past the
// built-in colors get a repeating gray ramp.
func TilePalette(maxTile int32) []color.RGBA {
	if maxTile < 0 {
		return nil
	}
	palette := make([]color.RGBA, int(maxTile)+1)
	for i := range palette {
		if i < len(basePalette) {
			palette[i] = basePalette[i]
			continue
		}
		shade := uint8(60 + (i*37)%160)
		palette[i] = color.RGBA{R: shade, G: shade, B: shade, A: 255}
	}
	return palette
}

// ColorFor maps a tile id to its palette color. Sentinels and ids without a
// palette entry use SentinelColor.
func ColorFor(palette []color.RGBA, tile int32) color.RGBA {
	if tile == icore.Sentinel || tile < 0 || int(tile) >= len(palette) {
		return SentinelColor
	}
	return palette[tile]
}

// FillTileRGBA converts tile ids into RGBA pixels in buf, four bytes per cell.
func FillTileRGBA(buf []byte, cells []int32, palette []color.RGBA) {
	for i, c := range cells {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		col := ColorFor(palette, c)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
