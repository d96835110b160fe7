package life

import (
	"lifepad/internal/core"
)

// StateFunc receives running-state changes for the control surface.
type StateFunc func(running bool)

// Controller owns the play/pause state machine and drives Conway
// generations on a board. It starts paused.
type Controller struct {
	board      *core.Board
	running    bool
	generation int
	onState    StateFunc
}

// New constructs a paused Controller for the given board.
func New(board *core.Board) *Controller {
	return &Controller{board: board}
}

// SetStateFunc attaches the running-state report hook. A nil hook
// disables reports.
func (c *Controller) SetStateFunc(fn StateFunc) { c.onState = fn }

// Board returns the controlled board.
func (c *Controller) Board() *core.Board { return c.board }

// Running reports whether scheduled ticks currently advance the board.
func (c *Controller) Running() bool { return c.running }

// Generation returns the number of generations advanced since the last
// reset.
func (c *Controller) Generation() int { return c.generation }

func (c *Controller) setRunning(running bool) {
	c.running = running
	if c.onState != nil {
		c.onState(running)
	}
}

// ToggleRunning flips between paused and running and reports the new
// state.
func (c *Controller) ToggleRunning() { c.setRunning(!c.running) }

// RequestEdit flips the cell at (x, y) between dead and alive. Edits are
// honored only while paused; while running the request is ignored and
// RequestEdit returns false. Coordinates must be in bounds.
func (c *Controller) RequestEdit(x, y int) bool {
	if c.running {
		return false
	}
	if c.board.Get(x, y) == core.CellAlive {
		c.board.Set(x, y, core.CellDead)
	} else {
		c.board.Set(x, y, core.CellAlive)
	}
	return true
}

// Reset pauses the simulation, clears the board and zeroes the
// generation counter.
func (c *Controller) Reset() {
	c.setRunning(false)
	c.board.Reset()
	c.generation = 0
}

// Tick advances the board by one generation. Ticks arriving while
// paused are dropped.
func (c *Controller) Tick() {
	if !c.running {
		return
	}
	c.advance()
}

// StepOnce advances a single generation while paused. While running it
// is ignored; the scheduled ticks own the board then.
func (c *Controller) StepOnce() {
	if c.running {
		return
	}
	c.advance()
}

// advance runs the two-phase generation update. The first pass marks
// every birth and death as pending against pre-update neighbor counts;
// the second pass settles the marks. A PendingDead cell still counts as
// a living neighbor during the first pass and a PendingAlive cell does
// not, so later counts in the same pass still see the pre-update
// generation.
func (c *Controller) advance() {
	b := c.board
	w, h := b.Width(), b.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := b.LiveNeighbors(x, y)
			switch b.Get(x, y) {
			case core.CellAlive:
				if n < 2 || n > 3 {
					b.Set(x, y, core.CellPendingDead)
				}
			case core.CellDead:
				if n == 3 {
					b.Set(x, y, core.CellPendingAlive)
				}
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cell := b.Get(x, y); !cell.Settled() {
				b.Set(x, y, cell.Resolve())
			}
		}
	}
	c.generation++
}
