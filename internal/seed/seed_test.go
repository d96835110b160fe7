package seed

import (
	"slices"
	"testing"

	"lifepad/internal/core"
)

func TestFillRandomDeterministic(t *testing.T) {
	a := core.NewBoard(32, 24)
	b := core.NewBoard(32, 24)
	FillRandom(a, 99, 0.5)
	FillRandom(b, 99, 0.5)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different boards")
	}

	c := core.NewBoard(32, 24)
	FillRandom(c, 100, 0.5)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds produced identical boards")
	}
}

func TestFillRandomDensityBounds(t *testing.T) {
	b := core.NewBoard(16, 16)
	FillRandom(b, 7, 0)
	if b.Population() != 0 {
		t.Fatalf("density 0 left %d live cells", b.Population())
	}
	FillRandom(b, 7, 1)
	if b.Population() != 16*16 {
		t.Fatalf("density 1 produced %d live cells, expected %d", b.Population(), 16*16)
	}
	FillRandom(b, 7, 0.5)
	if b.Population() == 0 || b.Population() == 16*16 {
		t.Fatalf("density 0.5 produced a uniform board (population %d)", b.Population())
	}
}

func TestFillRandomReseedsUsedBoard(t *testing.T) {
	b := core.NewBoard(16, 16)
	FillRandom(b, 3, 1)
	FillRandom(b, 3, 0)
	if b.Population() != 0 {
		t.Fatalf("reseed left %d live cells, expected a full overwrite", b.Population())
	}
}

func TestFillNoiseDeterministic(t *testing.T) {
	a := core.NewBoard(32, 24)
	b := core.NewBoard(32, 24)
	FillNoise(a, 7, 8, 0)
	FillNoise(b, 7, 8, 0)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different noise boards")
	}
	if a.Population() == 0 || a.Population() == 32*24 {
		t.Fatalf("noise fill produced a uniform board (population %d)", a.Population())
	}
}
