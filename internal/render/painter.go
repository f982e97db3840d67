//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a size×size image in sync with tile data.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a w×h grid.
func NewGridPainter(w, h int, palette []color.RGBA) *GridPainter {
	return &GridPainter{
		w:       w,
		h:       h,
		buf:     make([]byte, 4*w*h),
		img:     ebiten.NewImage(w, h),
		palette: palette,
	}
}

// Blit uploads the tiles into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []int32, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	FillTileRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
