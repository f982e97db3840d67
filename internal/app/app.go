//go:build ebiten

package app

import (
	"fmt"
	"log/slog"
	"strconv"

	"wfc-chunk/internal/chunk"
	"wfc-chunk/internal/core"
	"wfc-chunk/internal/random"
	"wfc-chunk/internal/render"
	"wfc-chunk/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 240

// Game adapts a chunk to the ebiten.Game interface.
type Game struct {
	chunk   *chunk.Chunk
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale int
	seed  int64
	auto  bool
	pace  *core.FixedStep

	hoverRow, hoverCol int
}

// New constructs a Game and generates the first chunk from seed.
func New(c *chunk.Chunk, scale, rate int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := c.Size()
	g := &Game{
		chunk:   c,
		painter: render.NewGridPainter(size.W, size.H, render.TilePalette(c.Config().MaxTile)),
		overlay: ui.NewOverlay(size, scale),
		scale:   scale,
		pace:    core.NewFixedStep(rate),
	}
	g.hud = ui.NewHUD(g, HUDWidth)
	g.Reset(seed)
	return g
}

// Reset regenerates the chunk from seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.chunk.Generate(seed)
}

// Name identifies the panel owner for the HUD title.
func (g *Game) Name() string { return g.chunk.Name() }

// Parameters extends the chunk snapshot with the hovered cell and the
// auto-advance state.
func (g *Game) Parameters() core.ParameterSnapshot {
	snap := g.chunk.Parameters()
	tile := "--"
	if t, ok := g.chunk.Tile(g.hoverRow, g.hoverCol); ok {
		tile = strconv.Itoa(int(t))
	}
	auto := "off"
	if g.auto {
		auto = fmt.Sprintf("every %s", g.pace.Step())
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Viewer",
		Params: []core.Parameter{
			core.StringParam("cursor", "Cursor", fmt.Sprintf("%d,%d", g.hoverRow, g.hoverCol)),
			core.StringParam("tile", "Tile", tile),
			core.StringParam("auto", "Auto", auto),
		},
	})
	return snap
}

// ParameterControls exposes the seed as the only adjustable value; size and
// tile range are fixed at construction.
func (g *Game) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: "seed", Label: "Seed", Step: 1}}
}

// SetIntParameter regenerates with a new seed.
func (g *Game) SetIntParameter(key string, value int) bool {
	if key != "seed" {
		return false
	}
	g.Reset(int64(value))
	return true
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if seed, err := random.NewSeed(); err == nil {
			g.Reset(seed)
		} else {
			slog.Warn("random seed unavailable", slog.Any("err", err))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(g.seed + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.Reset(g.seed - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.auto = !g.auto
		g.pace.Restart()
	}

	mx, my := ebiten.CursorPosition()
	g.hoverRow, g.hoverCol = floorDiv(my, g.scale), floorDiv(mx, g.scale)

	g.overlay.Update()
	g.hud.Update(g.gridWidth())

	if g.auto && g.pace.ShouldStep() {
		g.Reset(g.seed + 1)
	}
	return nil
}

// Draw renders the chunk, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.chunk.Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.chunk.Size()
	return g.gridWidth() + HUDWidth, s.H * g.scale
}

func (g *Game) gridWidth() int { return g.chunk.Size().W * g.scale }

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
