package seed

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"

	"lifepad/internal/core"
)

const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinDepth = 3
)

// FillRandom overwrites every cell, setting each alive with probability
// density. The same seed always produces the same board.
func FillRandom(b *core.Board, seed int64, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if rng.Float64() < density {
				b.Set(x, y, core.CellAlive)
			} else {
				b.Set(x, y, core.CellDead)
			}
		}
	}
}

// FillNoise overwrites every cell from a Perlin field sampled every
// 1/scale cells; cells whose noise value exceeds threshold start alive.
// Noise values span roughly [-1, 1], so a threshold near 0 gives a
// balanced soup and higher thresholds sparser, blobbier ones.
func FillNoise(b *core.Board, seed int64, scale, threshold float64) {
	if scale <= 0 {
		scale = 8
	}
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinDepth, seed)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if p.Noise2D(float64(x)/scale, float64(y)/scale) > threshold {
				b.Set(x, y, core.CellAlive)
			} else {
				b.Set(x, y, core.CellDead)
			}
		}
	}
}
