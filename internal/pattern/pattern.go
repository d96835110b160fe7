package pattern

import (
	"sort"

	"lifepad/internal/core"
)

// Pattern is a named arrangement of live cells. Cell offsets are
// relative to the top-left corner of the W x H bounding box.
type Pattern struct {
	Name  string
	W, H  int
	Cells [][2]int
}

var patterns = map[string]Pattern{}

func register(p Pattern) { patterns[p.Name] = p }

func init() {
	register(Pattern{Name: "block", W: 2, H: 2, Cells: [][2]int{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
	}})
	register(Pattern{Name: "blinker", W: 3, H: 1, Cells: [][2]int{
		{0, 0}, {1, 0}, {2, 0},
	}})
	register(Pattern{Name: "toad", W: 4, H: 2, Cells: [][2]int{
		{1, 0}, {2, 0}, {3, 0},
		{0, 1}, {1, 1}, {2, 1},
	}})
	register(Pattern{Name: "beacon", W: 4, H: 4, Cells: [][2]int{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
		{2, 2}, {3, 2},
		{2, 3}, {3, 3},
	}})
	register(Pattern{Name: "glider", W: 3, H: 3, Cells: [][2]int{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}})
	register(Pattern{Name: "r-pentomino", W: 3, H: 3, Cells: [][2]int{
		{1, 0}, {2, 0},
		{0, 1}, {1, 1},
		{1, 2},
	}})
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp writes the pattern onto the board with its top-left corner at
// (ox, oy). Cells falling outside the board are skipped.
func (p Pattern) Stamp(b *core.Board, ox, oy int) {
	for _, cell := range p.Cells {
		x, y := ox+cell[0], oy+cell[1]
		if !b.InBounds(x, y) {
			continue
		}
		b.Set(x, y, core.CellAlive)
	}
}

// StampCentered writes the pattern centered on the board.
func (p Pattern) StampCentered(b *core.Board) {
	p.Stamp(b, (b.Width()-p.W)/2, (b.Height()-p.H)/2)
}
