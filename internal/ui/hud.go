//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"lifepad/internal/core"
	"lifepad/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the control panel to the right of the board and routes
// its button clicks to the controller and tick timer.
type HUD struct {
	ctrl  *life.Controller
	timer *core.FixedStep
	width int

	panel      *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image

	running bool

	playRect   image.Rectangle
	stepRect   image.Rectangle
	resetRect  image.Rectangle
	minusRect  image.Rectangle
	plusRect   image.Rectangle
	rateTop    int
	readoutTop int

	panelOffsetX int
}

// NewHUD constructs a HUD for the provided controller, timer and panel
// width.
func NewHUD(ctrl *life.Controller, timer *core.FixedStep, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{ctrl: ctrl, timer: timer, width: width, running: ctrl.Running()}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.layoutControls()
	return h
}

// SetRunning records the controller state for the play button label.
// Attach it through Controller.SetStateFunc.
func (h *HUD) SetRunning(running bool) {
	if h == nil {
		return
	}
	h.running = running
}

// Update handles HUD interactions. panelOffsetX is the screen x where
// the panel starts.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	switch {
	case pointInRect(px, my, h.playRect):
		h.ctrl.ToggleRunning()
	case pointInRect(px, my, h.stepRect):
		h.ctrl.StepOnce()
	case pointInRect(px, my, h.resetRect):
		h.ctrl.Reset()
	case pointInRect(px, my, h.minusRect):
		h.adjustRate(-1)
	case pointInRect(px, my, h.plusRect):
		h.adjustRate(1)
	}
}

func (h *HUD) adjustRate(direction int) {
	target := h.timer.TPS() + direction*rateStep
	if target < rateMin {
		target = rateMin
	}
	if target > rateMax {
		target = rateMax
	}
	h.timer.SetTPS(target)
}

// Draw paints the HUD panel anchored to the right edge of the board
// view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.ctrl.Board().Height() * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Controls", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	playLabel := "Play"
	if h.running {
		playLabel = "Pause"
	}
	h.drawButton(h.playRect, playLabel, true)
	h.drawButton(h.stepRect, "Step", !h.running)
	h.drawButton(h.resetRect, "Reset", true)

	labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	labelY := h.rateTop + labelBaseline
	text.Draw(h.panel, "Rate", face, panelPadding, labelY, labelColor)
	value := strconv.Itoa(h.timer.TPS())
	bounds := text.BoundString(face, value)
	valueX := h.minusRect.Min.X - buttonGap - bounds.Dx()
	text.Draw(h.panel, value, face, valueX, labelY, labelColor)
	h.drawButton(h.minusRect, "-", h.timer.TPS() > rateMin)
	h.drawButton(h.plusRect, "+", h.timer.TPS() < rateMax)

	infoColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	genY := h.readoutTop + labelBaseline
	text.Draw(h.panel, fmt.Sprintf("Gen %d", h.ctrl.Generation()), face, panelPadding, genY, infoColor)
	text.Draw(h.panel, fmt.Sprintf("Pop %d", h.ctrl.Board().Population()), face, panelPadding, genY+infoSpacing/2, infoColor)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()
	x := rect.Min.X + (rect.Dx()-textWidth)/2
	y := rect.Min.Y + (rect.Dy()-textHeight)/2 + textHeight
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	buttons := []*image.Rectangle{&h.playRect, &h.stepRect, &h.resetRect}
	for i, rect := range buttons {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		*rect = image.Rect(panelPadding, buttonY, h.width-panelPadding, buttonY+buttonSize)
	}
	h.rateTop = controlsTop + len(buttons)*lineHeight
	buttonY := h.rateTop + (lineHeight-buttonSize)/2
	h.plusRect = image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
	h.minusRect = image.Rect(h.plusRect.Min.X-buttonGap-buttonSize, buttonY, h.plusRect.Min.X-buttonGap, buttonY+buttonSize)
	h.readoutTop = h.rateTop + lineHeight
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14

	rateMin  = 1
	rateMax  = 60
	rateStep = 1
)
