//go:build ebiten

package app

import (
	"image/color"

	"lifepad/internal/core"
	"lifepad/internal/life"
	"lifepad/internal/render"
	"lifepad/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the pixel width of the control panel.
const HUDWidth = 160

// Game adapts the board and controller to the ebiten.Game interface.
// All input events, tick scheduling and rendering run on the single
// update loop.
type Game struct {
	board   *core.Board
	ctrl    *life.Controller
	canvas  *render.CellCanvas
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	scale int
}

// New constructs a Game wired to the provided board and controller. The
// board's cell hook is attached to the canvas, so callers should finish
// seeding the board first.
func New(board *core.Board, ctrl *life.Controller, cfg *Config) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	canvas := render.NewCellCanvas(board, color.White, color.Black)
	board.SetCellFunc(canvas.SetCell)
	timer := core.NewFixedStep(cfg.TPS)
	hud := ui.NewHUD(ctrl, timer, HUDWidth)
	ctrl.SetStateFunc(hud.SetRunning)
	return &Game{
		board:   board,
		ctrl:    ctrl,
		canvas:  canvas,
		overlay: ui.NewOverlay(board.Size(), scale),
		hud:     hud,
		timer:   timer,
		scale:   scale,
	}
}

// Update services input events, then advances the simulation when the
// tick timer fires.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}

	g.overlay.Update()
	g.hud.Update(g.board.Width() * g.scale)
	g.handleBoardClick()

	if g.timer.ShouldStep() {
		g.ctrl.Tick()
	}
	return nil
}

// handleBoardClick maps a click on the board area to a cell edit.
// Clicks on the HUD panel never reach the controller from here.
func (g *Game) handleBoardClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.board.Width()*g.scale {
		return
	}
	cx, cy := mx/g.scale, my/g.scale
	if !g.board.InBounds(cx, cy) {
		return
	}
	g.ctrl.RequestEdit(cx, cy)
}

// Draw renders the board, the grid overlay and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Blit(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.board.Width()*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.board.Width()*g.scale + HUDWidth, g.board.Height() * g.scale
}
