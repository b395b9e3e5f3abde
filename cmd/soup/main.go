// Command soup runs many random boards concurrently and reports how
// each settles: extinction, still life, oscillator, or still active
// when the step budget runs out.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"torlife/pkg/life"
)

type soupResult struct {
	seed   int64
	result life.Result
}

func main() {
	soups := flag.Int("soups", 200, "number of random soups to run")
	width := flag.Int("width", 48, "grid width")
	height := flag.Int("height", 48, "grid height")
	density := flag.Float64("density", life.DefaultSoupDensity, "initial alive density")
	steps := flag.Int("steps", 2000, "step budget per soup")
	seed := flag.Int64("seed", 1, "base seed; soup i runs with seed+i")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "oscillators to list in the report")
	flag.Parse()

	if *soups < 1 || *width < 1 || *height < 1 || *steps < 1 {
		fmt.Fprintln(os.Stderr, "soups, width, height and steps must all be positive")
		os.Exit(2)
	}

	results := make([]soupResult, *soups)

	var eg errgroup.Group
	eg.SetLimit(*workers)
	for i := 0; i < *soups; i++ {
		eg.Go(func() error {
			s := *seed + int64(i)
			board := life.NewBoard(*width, *height, life.RandomSoup(*density), s)
			results[i] = soupResult{seed: s, result: life.Classify(board, *steps)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	report(results, *width, *height, *density, *steps, *top)
}

func report(results []soupResult, w, h int, density float64, steps, top int) {
	counts := map[life.Outcome]int{}
	var oscillators []soupResult
	for _, r := range results {
		counts[r.result.Outcome]++
		if r.result.Outcome == life.OutcomeOscillator {
			oscillators = append(oscillators, r)
		}
	}

	fmt.Printf("%d soups on a %dx%d torus, density %.2f, budget %d steps\n",
		len(results), w, h, density, steps)
	for _, o := range []life.Outcome{life.OutcomeExtinct, life.OutcomeStill, life.OutcomeOscillator, life.OutcomeActive} {
		fmt.Printf("  %-10s %d\n", o, counts[o])
	}

	if len(oscillators) == 0 {
		return
	}
	sort.Slice(oscillators, func(i, j int) bool {
		if oscillators[i].result.Period != oscillators[j].result.Period {
			return oscillators[i].result.Period > oscillators[j].result.Period
		}
		return oscillators[i].seed < oscillators[j].seed
	})
	if top > len(oscillators) {
		top = len(oscillators)
	}
	fmt.Printf("top oscillators:\n")
	for _, r := range oscillators[:top] {
		fmt.Printf("  period %-4d seed %-8d settled at step %d with %d cells\n",
			r.result.Period, r.seed, r.result.Steps, r.result.Population)
	}
}
