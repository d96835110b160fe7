//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifepad/internal/app"
	"lifepad/internal/core"
	"lifepad/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

const displayTPS = 60

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}

	board := core.NewBoard(cfg.Width, cfg.Height)
	if err := app.Populate(board, cfg.Fill, cfg.Density, cfg.Seed, cfg.Pattern); err != nil {
		log.Fatalf("populate board: %v", err)
	}
	ctrl := life.New(board)

	game := app.New(board, ctrl, cfg)

	ebiten.SetWindowTitle("lifepad")
	ebiten.SetTPS(displayTPS)
	ebiten.SetWindowSize(board.Width()*cfg.Scale+app.HUDWidth, board.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
