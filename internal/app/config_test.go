package app

import (
	"flag"
	"testing"

	"lifepad/internal/core"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-width", "80", "-height", "60", "-tps", "20", "-pattern", "glider", "-fill", "random", "-density", "0.25", "-seed", "7"})
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Width != 80 || cfg.Height != 60 {
		t.Fatalf("board size = %dx%d, expected 80x60", cfg.Width, cfg.Height)
	}
	if cfg.TPS != 20 {
		t.Fatalf("TPS = %d, expected 20", cfg.TPS)
	}
	if cfg.Pattern != "glider" || cfg.Fill != "random" {
		t.Fatalf("pattern/fill = %q/%q, expected glider/random", cfg.Pattern, cfg.Fill)
	}
	if cfg.Density != 0.25 || cfg.Seed != 7 {
		t.Fatalf("density/seed = %v/%v, expected 0.25/7", cfg.Density, cfg.Seed)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.TPS != core.DefaultTPS {
		t.Fatalf("default TPS = %d, expected %d", cfg.TPS, core.DefaultTPS)
	}
	if cfg.Fill != "none" {
		t.Fatalf("default fill = %q, expected none", cfg.Fill)
	}
}

func TestPopulateNone(t *testing.T) {
	b := core.NewBoard(10, 10)
	if err := Populate(b, "none", 0.5, 1, ""); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if b.Population() != 0 {
		t.Fatalf("fill none left %d live cells", b.Population())
	}
}

func TestPopulatePattern(t *testing.T) {
	b := core.NewBoard(10, 10)
	if err := Populate(b, "", 0, 1, "block"); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if b.Population() != 4 {
		t.Fatalf("block stamp left %d live cells, expected 4", b.Population())
	}
}

func TestPopulateRandom(t *testing.T) {
	b := core.NewBoard(16, 16)
	if err := Populate(b, "random", 1, 1, ""); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if b.Population() != 16*16 {
		t.Fatalf("density 1 fill left %d live cells, expected full board", b.Population())
	}
}

func TestPopulateRejectsUnknown(t *testing.T) {
	b := core.NewBoard(10, 10)
	if err := Populate(b, "stripes", 0.5, 1, ""); err == nil {
		t.Fatal("unknown fill accepted")
	}
	if err := Populate(b, "none", 0.5, 1, "spaceship"); err == nil {
		t.Fatal("unknown pattern accepted")
	}
}
