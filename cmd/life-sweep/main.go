package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/sync/errgroup"

	"lifepad/internal/core"
	"lifepad/internal/life"
	"lifepad/internal/seed"
)

type dims struct {
	w, h int
}

type sweepResult struct {
	w, h       int
	gens       int
	elapsed    time.Duration
	gensPerSec float64
	cellRate   float64
	finalPop   int
}

func main() {
	sizes := flag.String("sizes", "32x24,64x48,128x96,256x192", "comma separated WxH board sizes")
	gens := flag.Int("gens", 500, "generations to run per size")
	density := flag.Float64("density", 0.3, "alive fraction of the seeded soup")
	seedVal := flag.Int64("seed", 42, "soup seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent runs")
	csvPath := flag.String("csv", "", "append results to this CSV file")
	chartPath := flag.String("chart", "", "write a throughput chart PNG to this path")
	flag.Parse()

	sweep, err := parseSizes(*sizes)
	if err != nil {
		log.Fatalf("parse sizes: %v", err)
	}
	if *workers < 1 {
		*workers = 1
	}

	log.Printf("sweeping %d board sizes (%d generations each, %d workers)", len(sweep), *gens, *workers)

	// The first sample sets the baseline for the post-run delta reading.
	if _, err := cpu.Percent(0, false); err != nil {
		log.Printf("cpu sampling unavailable: %v", err)
	}

	results := make([]sweepResult, len(sweep))
	var g errgroup.Group
	g.SetLimit(*workers)
	start := time.Now()
	for i, d := range sweep {
		g.Go(func() error {
			results[i] = runSweep(d.w, d.h, *gens, *seedVal, *density)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("sweep: %v", err)
	}
	elapsed := time.Since(start)

	cpuAvg := 0.0
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		cpuAvg = pcts[0]
	}

	ranked := append([]sweepResult(nil), results...)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].cellRate > ranked[j].cellRate })

	fmt.Printf("\nResults (elapsed %s, cpu %.1f%%):\n", elapsed.Round(time.Millisecond), cpuAvg)
	for i, r := range ranked {
		fmt.Printf("%2d) %4dx%-4d %8.0f gens/s %7.2fM cells/s final pop %d\n",
			i+1, r.w, r.h, r.gensPerSec, r.cellRate/1e6, r.finalPop)
	}

	if *csvPath != "" {
		if err := appendCSV(*csvPath, results, cpuAvg); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		log.Printf("appended %d rows to %s", len(results), *csvPath)
	}
	if *chartPath != "" {
		if err := writeChart(*chartPath, results); err != nil {
			log.Fatalf("write chart: %v", err)
		}
		log.Printf("wrote throughput chart to %s", *chartPath)
	}
}

func parseSizes(raw string) ([]dims, error) {
	var out []dims
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		wh := strings.SplitN(part, "x", 2)
		if len(wh) != 2 {
			return nil, fmt.Errorf("size %q is not WxH", part)
		}
		w, err := strconv.Atoi(wh[0])
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		h, err := strconv.Atoi(wh[1])
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("size %q must be positive", part)
		}
		out = append(out, dims{w: w, h: h})
	}
	if len(out) == 0 {
		return nil, errors.New("no sizes given")
	}
	return out, nil
}

func runSweep(w, h, gens int, seedVal int64, density float64) sweepResult {
	board := core.NewBoard(w, h)
	seed.FillRandom(board, seedVal, density)
	ctrl := life.New(board)
	ctrl.ToggleRunning()

	start := time.Now()
	for i := 0; i < gens; i++ {
		ctrl.Tick()
	}
	elapsed := time.Since(start)

	secs := elapsed.Seconds()
	if secs <= 0 {
		secs = 1e-9
	}
	gps := float64(gens) / secs
	return sweepResult{
		w:          w,
		h:          h,
		gens:       gens,
		elapsed:    elapsed,
		gensPerSec: gps,
		cellRate:   gps * float64(w*h),
		finalPop:   board.Population(),
	}
}

func appendCSV(path string, results []sweepResult, cpuPct float64) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat csv: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if info.Size() == 0 {
		header := []string{"width", "height", "generations", "elapsed_ms", "gens_per_sec", "cells_per_sec", "final_pop", "cpu_percent"}
		if err := writer.Write(header); err != nil {
			return err
		}
	}
	for _, r := range results {
		record := []string{
			strconv.Itoa(r.w),
			strconv.Itoa(r.h),
			strconv.Itoa(r.gens),
			strconv.FormatInt(r.elapsed.Milliseconds(), 10),
			strconv.FormatFloat(r.gensPerSec, 'f', 2, 64),
			strconv.FormatFloat(r.cellRate, 'f', 0, 64),
			strconv.Itoa(r.finalPop),
			strconv.FormatFloat(cpuPct, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeChart(path string, results []sweepResult) error {
	sorted := append([]sweepResult(nil), results...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].w*sorted[i].h < sorted[j].w*sorted[j].h })

	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	for i, r := range sorted {
		xs[i] = float64(r.w * r.h)
		ys[i] = r.gensPerSec
	}

	graph := chart.Chart{
		Title:  "Tick throughput by board size",
		Width:  900,
		Height: 500,
		XAxis:  chart.XAxis{Name: "cells"},
		YAxis:  chart.YAxis{Name: "generations/sec"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "throughput",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
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
