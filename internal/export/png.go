package export

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/gg"

	"wfc-chunk/internal/render"
)

// ErrShapeMismatch reports a flattened grid whose length is not size².
var ErrShapeMismatch = errors.New("export: tile count does not match grid size")

// PNGOptions controls raster export.
type PNGOptions struct {
	// Scale is the edge length in pixels of one cell.
	Scale int
	// Palette maps tile ids to colors; render.TilePalette is used when empty.
	Palette []color.RGBA
	// MaxTile sizes the default palette.
	MaxTile int32
	// GridLines draws a one-pixel border around every cell.
	GridLines bool
}

// WritePNG rasterizes a flattened size×size grid to path.
func WritePNG(path string, flat []int32, size int, opts PNGOptions) (err error) {
	if size <= 0 || len(flat) != size*size {
		return fmt.Errorf("write png %s: %d tiles for size %d: %w", path, len(flat), size, ErrShapeMismatch)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	palette := opts.Palette
	if len(palette) == 0 {
		palette = render.TilePalette(opts.MaxTile)
	}

	dc := gg.NewContext(size*scale, size*scale)
	defer func() {
		if cerr := dc.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("write png %s: close: %w", path, cerr))
		}
	}()

	s := float64(scale)
	for i, tile := range flat {
		row, col := i/size, i%size
		dc.SetColor(render.ColorFor(palette, tile))
		dc.DrawRectangle(float64(col)*s, float64(row)*s, s, s)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("write png %s: fill cell %d: %w", path, i, err)
		}
	}

	if opts.GridLines && scale > 2 {
		dc.SetColor(color.RGBA{A: 96})
		dc.SetLineWidth(1)
		for k := 0; k <= size; k++ {
			p := float64(k) * s
			dc.DrawLine(p, 0, p, float64(size)*s)
			dc.DrawLine(0, p, float64(size)*s, p)
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("write png %s: grid lines: %w", path, err)
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write png %s: %w", path, err)
	}
	return nil
}
