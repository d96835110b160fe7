//go:build !ebiten

package ui

import (
	"lifepad/internal/core"
	"lifepad/internal/life"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*life.Controller, *core.FixedStep, int) *HUD { return nil }

// SetRunning is a no-op in the headless build.
func (h *HUD) SetRunning(bool) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
