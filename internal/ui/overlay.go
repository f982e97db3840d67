//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"wfc-chunk/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws cell boundaries on top of the grid. G toggles it.
type Overlay struct {
	size      core.Size
	scale     int
	showGrid  bool
	thickness float64
	col       color.RGBA

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a grid of the given size drawn at scale.
func NewOverlay(size core.Size, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{
		size:      size,
		scale:     scale,
		thickness: 1,
		col:       color.RGBA{R: 0, G: 0, B: 0, A: 96},
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the grid lines.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Visible reports whether grid lines are drawn.
func (o *Overlay) Visible() bool { return o.showGrid }

// Draw renders the overlay onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showGrid || o.size.W <= 0 || o.size.H <= 0 {
		return
	}
	// Lines are too dense to read below 4px cells.
	if o.scale < 4 {
		return
	}
	s := float64(o.scale)
	w := float64(o.size.W) * s
	h := float64(o.size.H) * s
	for x := 1; x < o.size.W; x++ {
		fx := float64(x) * s
		o.drawLine(screen, fx, 0, fx, h, o.thickness, o.col)
	}
	for y := 1; y < o.size.H; y++ {
		fy := float64(y) * s
		o.drawLine(screen, 0, fy, w, fy, o.thickness, o.col)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
