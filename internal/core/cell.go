package core

// Cell is the state of a single board cell. The pending states appear
// only inside a generation update: the first pass marks transitions, the
// second pass applies them.
type Cell uint8

const (
	// CellDead marks an empty cell.
	CellDead Cell = iota
	// CellAlive marks a living cell.
	CellAlive
	// CellPendingDead marks a living cell due to die when the update settles.
	CellPendingDead
	// CellPendingAlive marks an empty cell due to come alive when the update settles.
	CellPendingAlive
)

// Live reports whether the cell counts as a living neighbor. A
// PendingDead cell was alive when the current update began and still
// counts; a PendingAlive cell was dead and does not.
func (c Cell) Live() bool { return c == CellAlive || c == CellPendingDead }

// Settled reports whether the cell is in a final state. Only settled
// states are visible between updates and only they are rendered.
func (c Cell) Settled() bool { return c == CellDead || c == CellAlive }

// Resolve returns the final state a pending cell transitions to. Settled
// cells resolve to themselves.
func (c Cell) Resolve() Cell {
	switch c {
	case CellPendingDead:
		return CellDead
	case CellPendingAlive:
		return CellAlive
	default:
		return c
	}
}
