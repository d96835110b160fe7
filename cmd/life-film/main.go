package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"log"
	"os"

	"github.com/icza/mjpeg"
	"github.com/wcharczuk/go-chart/v2"

	"lifepad/internal/app"
	"lifepad/internal/core"
	"lifepad/internal/life"
	"lifepad/internal/render"
)

func main() {
	width := flag.Int("width", 128, "board width in cells")
	height := flag.Int("height", 96, "board height in cells")
	scale := flag.Int("scale", 4, "pixel scale of the recorded frames")
	gens := flag.Int("gens", 300, "generations to record")
	fps := flag.Int("fps", 10, "playback frames per second")
	patternName := flag.String("pattern", "", "pattern stamped at board center")
	fill := flag.String("fill", "random", "initial fill: none, random or noise")
	density := flag.Float64("density", 0.3, "alive fraction for -fill random")
	seedVal := flag.Int64("seed", 42, "seed for -fill random and noise")
	out := flag.String("out", "life.avi", "output AVI path")
	chartPath := flag.String("chart", "", "write a population chart PNG to this path")
	flag.Parse()

	board := core.NewBoard(*width, *height)
	if err := app.Populate(board, *fill, *density, *seedVal, *patternName); err != nil {
		log.Fatalf("populate board: %v", err)
	}
	ctrl := life.New(board)
	ctrl.ToggleRunning()

	if err := record(board, ctrl, *gens, *scale, *fps, *out, *chartPath); err != nil {
		log.Fatalf("record: %v", err)
	}
}

func record(board *core.Board, ctrl *life.Controller, gens, scale, fps int, out, chartPath string) error {
	if gens < 0 {
		gens = 0
	}
	if scale <= 0 {
		scale = 1
	}
	if fps <= 0 {
		fps = core.DefaultTPS
	}
	w, h := board.Width(), board.Height()

	writer, err := mjpeg.New(out, int32(w*scale), int32(h*scale), int32(fps))
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}

	population := make([]float64, 0, gens+1)
	var jpegBuf bytes.Buffer
	frame := image.NewRGBA(image.Rect(0, 0, w, h))

	addFrame := func() error {
		render.FillCells(frame.Pix, board.Cells(), color.White, color.Black)
		jpegBuf.Reset()
		if err := jpeg.Encode(&jpegBuf, render.Upscale(frame, scale), &jpeg.Options{Quality: 85}); err != nil {
			return fmt.Errorf("encode frame: %w", err)
		}
		return writer.AddFrame(jpegBuf.Bytes())
	}

	for i := 0; i <= gens; i++ {
		if i > 0 {
			ctrl.Tick()
		}
		population = append(population, float64(board.Population()))
		if err := addFrame(); err != nil {
			writer.Close()
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize %s: %w", out, err)
	}

	log.Printf("wrote %d frames to %s (final population %d)", gens+1, out, board.Population())

	if chartPath != "" {
		if err := writePopulationChart(chartPath, population); err != nil {
			return err
		}
		log.Printf("wrote population chart to %s", chartPath)
	}
	return nil
}

func writePopulationChart(path string, population []float64) error {
	xs := make([]float64, len(population))
	for i := range xs {
		xs[i] = float64(i)
	}

	graph := chart.Chart{
		Title:  "Population by generation",
		Width:  900,
		Height: 500,
		XAxis:  chart.XAxis{Name: "generation"},
		YAxis:  chart.YAxis{Name: "alive cells"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "population",
				XValues: xs,
				YValues: population,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2.0,
				},
			},
		},
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	defer file.Close()
	if err := graph.Render(chart.PNG, file); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
