package core

import (
	"errors"
	"fmt"
)

// ErrOutOfRange reports a coordinate outside the board bounds.
var ErrOutOfRange = errors.New("coordinate out of range")

// CellFunc receives cell updates for rendering. Only settled states are
// reported; pending writes stay internal to the update.
type CellFunc func(x, y int, c Cell)

// Board stores a 2D grid of cells in row-major order. Dimensions are
// fixed at construction.
type Board struct {
	w, h   int
	cells  []Cell
	onCell CellFunc
}

// NewBoard allocates an all-dead board with the given dimensions.
func NewBoard(w, h int) *Board {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Board{w: w, h: h, cells: make([]Cell, w*h)}
}

// SetCellFunc attaches the render report hook. A nil hook disables
// reports.
func (b *Board) SetCellFunc(fn CellFunc) { b.onCell = fn }

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// Size returns the board dimensions.
func (b *Board) Size() Size { return Size{W: b.w, H: b.h} }

// Cells exposes the backing slice for read-only scans. Writes through it
// bypass bounds checks and render reports; use Set for mutations.
func (b *Board) Cells() []Cell { return b.cells }

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

func (b *Board) mustInBounds(x, y int) {
	if !b.InBounds(x, y) {
		panic(fmt.Errorf("cell (%d,%d) outside %dx%d board: %w", x, y, b.w, b.h, ErrOutOfRange))
	}
}

func (b *Board) index(x, y int) int {
	b.mustInBounds(x, y)
	return y*b.w + x
}

// Get returns the state of the cell at (x, y). Out-of-range coordinates
// are a caller defect and panic with ErrOutOfRange.
func (b *Board) Get(x, y int) Cell { return b.cells[b.index(x, y)] }

// Set overwrites the cell at (x, y). Settled states are reported through
// the cell hook; pending states are not. Same range contract as Get.
func (b *Board) Set(x, y int, c Cell) {
	b.cells[b.index(x, y)] = c
	if b.onCell != nil && c.Settled() {
		b.onCell(x, y, c)
	}
}

// IsAlive reports whether the cell at (x, y) counts as living.
func (b *Board) IsAlive(x, y int) bool { return b.Get(x, y).Live() }

// LiveNeighbors counts the living cells at Chebyshev distance 1 from
// (x, y). The neighborhood is clipped at the board edges, never wrapped:
// corner cells see at most 3 neighbors, edge cells at most 5.
func (b *Board) LiveNeighbors(x, y int) int {
	b.mustInBounds(x, y)
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= b.h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= b.w {
				continue
			}
			if b.cells[ny*b.w+nx].Live() {
				count++
			}
		}
	}
	return count
}

// Reset forces every cell to Dead and reports each cell through the
// hook.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = CellDead
	}
	if b.onCell == nil {
		return
	}
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			b.onCell(x, y, CellDead)
		}
	}
}

// Population counts the cells currently alive.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cells {
		if c == CellAlive {
			n++
		}
	}
	return n
}
