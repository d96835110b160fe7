package app

import (
	"flag"
	"fmt"
	"strings"

	"lifepad/internal/core"
	"lifepad/internal/pattern"
	"lifepad/internal/seed"
)

const (
	noiseScale     = 8.0
	noiseThreshold = 0.05
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	Pattern string
	Fill    string
	Density float64
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   64,
		Height:  48,
		Scale:   10,
		TPS:     core.DefaultTPS,
		Fill:    "none",
		Density: 0.3,
		Seed:    42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern stamped at board center ("+strings.Join(pattern.Names(), ", ")+")")
	fs.StringVar(&c.Fill, "fill", c.Fill, "initial fill: none, random or noise")
	fs.Float64Var(&c.Density, "density", c.Density, "alive fraction for -fill random")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for -fill random and noise")
}

// Populate seeds a board from the configured fill, then stamps the
// configured pattern over it.
func Populate(b *core.Board, fill string, density float64, seedVal int64, patternName string) error {
	switch fill {
	case "", "none":
	case "random":
		seed.FillRandom(b, seedVal, density)
	case "noise":
		seed.FillNoise(b, seedVal, noiseScale, noiseThreshold)
	default:
		return fmt.Errorf("unknown fill %q", fill)
	}
	if patternName != "" {
		p, ok := pattern.Lookup(patternName)
		if !ok {
			return fmt.Errorf("unknown pattern %q (have %s)", patternName, strings.Join(pattern.Names(), ", "))
		}
		p.StampCentered(b)
	}
	return nil
}
