package core

import (
	"errors"
	"testing"
)

func TestBoardRoundTrip(t *testing.T) {
	b := NewBoard(4, 3)
	states := []Cell{CellDead, CellAlive, CellPendingDead, CellPendingAlive}
	for i, state := range states {
		x, y := i%4, i%3
		b.Set(x, y, state)
		if got := b.Get(x, y); got != state {
			t.Fatalf("cell (%d,%d) = %d after Set(%d), expected round trip", x, y, got, state)
		}
	}
}

func TestBoardClampsDimensions(t *testing.T) {
	b := NewBoard(0, -5)
	if b.Width() != 1 || b.Height() != 1 {
		t.Fatalf("board size = %dx%d, expected clamp to 1x1", b.Width(), b.Height())
	}
	if len(b.Cells()) != 1 {
		t.Fatalf("backing slice has %d cells, expected 1", len(b.Cells()))
	}
}

func TestLiveNeighborsAllDead(t *testing.T) {
	b := NewBoard(5, 4)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if n := b.LiveNeighbors(x, y); n != 0 {
				t.Fatalf("cell (%d,%d) has %d live neighbors on an empty board", x, y, n)
			}
		}
	}
}

func TestLiveNeighborsClippedAtEdges(t *testing.T) {
	b := NewBoard(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			b.Set(x, y, CellAlive)
		}
	}

	cases := []struct {
		x, y int
		want int
	}{
		{0, 0, 3},
		{3, 0, 3},
		{0, 3, 3},
		{3, 3, 3},
		{1, 0, 5},
		{0, 2, 5},
		{3, 1, 5},
		{2, 3, 5},
		{1, 1, 8},
		{2, 2, 8},
	}
	for _, tc := range cases {
		if n := b.LiveNeighbors(tc.x, tc.y); n != tc.want {
			t.Fatalf("cell (%d,%d) has %d live neighbors, expected %d", tc.x, tc.y, n, tc.want)
		}
	}
}

func TestLiveNeighborsCountsPendingDeadOnly(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(0, 1, CellPendingDead)
	b.Set(2, 1, CellPendingAlive)

	if n := b.LiveNeighbors(1, 1); n != 1 {
		t.Fatalf("center has %d live neighbors, expected 1 (pending-dead counts, pending-alive does not)", n)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	b := NewBoard(3, 3)
	probes := []func(){
		func() { b.Get(3, 0) },
		func() { b.Get(0, -1) },
		func() { b.Set(-1, 0, CellAlive) },
		func() { b.LiveNeighbors(0, 3) },
	}
	for i, probe := range probes {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("probe %d did not panic on out-of-range coordinates", i)
				}
				err, ok := r.(error)
				if !ok {
					t.Fatalf("probe %d panicked with %v, expected an error", i, r)
				}
				if !errors.Is(err, ErrOutOfRange) {
					t.Fatalf("probe %d panic %v does not wrap ErrOutOfRange", i, err)
				}
			}()
			probe()
		}()
	}
}

func TestSetReportsSettledStatesOnly(t *testing.T) {
	b := NewBoard(3, 3)
	type report struct {
		x, y int
		c    Cell
	}
	var reports []report
	b.SetCellFunc(func(x, y int, c Cell) {
		reports = append(reports, report{x, y, c})
	})

	b.Set(1, 1, CellPendingAlive)
	b.Set(2, 0, CellPendingDead)
	if len(reports) != 0 {
		t.Fatalf("pending writes produced %d reports, expected none", len(reports))
	}

	b.Set(1, 1, CellAlive)
	b.Set(2, 0, CellDead)
	if len(reports) != 2 {
		t.Fatalf("settled writes produced %d reports, expected 2", len(reports))
	}
	if reports[0] != (report{1, 1, CellAlive}) {
		t.Fatalf("first report = %+v, expected alive cell (1,1)", reports[0])
	}
	if reports[1] != (report{2, 0, CellDead}) {
		t.Fatalf("second report = %+v, expected dead cell (2,0)", reports[1])
	}
}

func TestResetClearsAndReports(t *testing.T) {
	b := NewBoard(3, 2)
	b.Set(0, 0, CellAlive)
	b.Set(2, 1, CellAlive)

	reports := 0
	b.SetCellFunc(func(x, y int, c Cell) {
		if c != CellDead {
			t.Fatalf("reset reported cell (%d,%d) as %d, expected dead", x, y, c)
		}
		reports++
	})
	b.Reset()

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Get(x, y) != CellDead {
				t.Fatalf("cell (%d,%d) = %d after reset, expected dead", x, y, b.Get(x, y))
			}
		}
	}
	if reports != 6 {
		t.Fatalf("reset produced %d reports, expected one per cell (6)", reports)
	}
}

func TestPopulation(t *testing.T) {
	b := NewBoard(4, 4)
	if b.Population() != 0 {
		t.Fatalf("empty board population = %d, expected 0", b.Population())
	}
	b.Set(0, 0, CellAlive)
	b.Set(1, 2, CellAlive)
	b.Set(3, 3, CellAlive)
	b.Set(2, 2, CellPendingAlive)
	if got := b.Population(); got != 3 {
		t.Fatalf("population = %d, expected 3 (pending cells excluded)", got)
	}
}
