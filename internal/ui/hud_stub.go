//go:build !ebiten

package ui

import "wfc-chunk/internal/core"

// Panel mirrors the GUI build's HUD owner contract.
type Panel interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Panel, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
