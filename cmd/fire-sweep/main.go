package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/sync/errgroup"

	"gridca/internal/sims/forestfire"
)

func main() {
	runs := flag.Int("runs", 20, "seeded runs per parameter set")
	steps := flag.Int("steps", 500, "maximum generations per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seedBase := flag.Int64("seed-base", 42, "seed of the first run")
	width := flag.Int("w", 60, "forest width")
	height := flag.Int("h", 40, "forest height")
	neighborhood := flag.Int("neighborhood", 4, "neighborhood size (4, 6 or 8)")
	densities := flag.String("density", "40,60,80", "comma-separated initial forest densities")
	spreads := flag.String("spread", "20,40,60", "comma-separated spread probabilities")
	westWind := flag.Int("west-wind", 0, "west wind speed (negative for east wind)")
	southWind := flag.Int("south-wind", 0, "south wind speed (negative for north wind)")
	flag.Parse()

	if *runs <= 0 || *steps <= 0 || *workers <= 0 {
		log.Fatal("-runs, -steps and -workers must be > 0")
	}
	densityList, err := parseIntList(*densities)
	if err != nil {
		log.Fatalf("-density: %v", err)
	}
	spreadList, err := parseIntList(*spreads)
	if err != nil {
		log.Fatalf("-spread: %v", err)
	}

	base := forestfire.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Params.Neighborhood = *neighborhood
	base.Params.WestWind = *westWind
	base.Params.SouthWind = *southWind
	if err := base.Validate(); err != nil {
		log.Fatal(err)
	}

	sets := paramGrid(densityList, spreadList)
	jobs := make([]job, 0, len(sets)**runs)
	for _, params := range sets {
		for i := 0; i < *runs; i++ {
			jobs = append(jobs, job{params: params, seed: *seedBase + int64(i)})
		}
	}

	fmt.Printf("Sweeping %d parameter sets x %d runs (%d workers, max %d steps)\n",
		len(sets), *runs, *workers, *steps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bar := pb.New(len(jobs))
	bar.SetWriter(os.Stderr)
	bar.Start()

	start := time.Now()
	results := make([]runResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runScenario(base, j, *steps)
			if err != nil {
				return err
			}
			results[i] = res
			bar.Increment()
			return nil
		})
	}
	err = g.Wait()
	bar.Finish()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nResults (elapsed %s), sorted by mean burned:\n", time.Since(start).Round(time.Millisecond))
	for i, s := range summarize(results) {
		fmt.Printf("%2d) %s\n", i+1, s)
	}
}
