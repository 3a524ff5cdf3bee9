package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"gridca/internal/sims/forestfire"
)

type paramSet struct {
	density int
	spread  int
}

func (p paramSet) String() string {
	return fmt.Sprintf("density=%d spread=%d", p.density, p.spread)
}

type job struct {
	params paramSet
	seed   int64
}

type runResult struct {
	params paramSet
	seed   int64
	burned int
	steps  int
}

type summary struct {
	params     paramSet
	runs       int
	noForest   int
	meanBurned float64
	minBurned  int
	maxBurned  int
	meanSteps  float64
}

func (s summary) String() string {
	return fmt.Sprintf("%s runs=%d burned mean=%.1f%% min=%d%% max=%d%% steps=%.1f noForest=%d",
		s.params, s.runs, s.meanBurned, s.minBurned, s.maxBurned, s.meanSteps, s.noForest)
}

// runScenario plays one seeded forest until the fire dies out or maxSteps
// generations have passed.
func runScenario(base forestfire.Config, j job, maxSteps int) (runResult, error) {
	cfg := base
	cfg.Seed = j.seed
	cfg.Params.Density = j.params.density
	cfg.Params.Spread = j.params.spread

	world, err := forestfire.NewWithConfig(cfg)
	if err != nil {
		return runResult{}, errors.Wrapf(err, "[runScenario] %s seed=%d", j.params, j.seed)
	}
	steps := 0
	for steps < maxSteps && world.StillBurning() {
		world.Step()
		steps++
	}
	return runResult{params: j.params, seed: j.seed, burned: world.PercentageBurned(), steps: steps}, nil
}

// summarize groups results by parameter set. Runs without any forest are
// counted separately and left out of the burned statistics.
func summarize(results []runResult) []summary {
	byParams := map[paramSet]*summary{}
	var order []paramSet
	burnedRuns := map[paramSet]int{}
	for _, r := range results {
		s, ok := byParams[r.params]
		if !ok {
			s = &summary{params: r.params}
			byParams[r.params] = s
			order = append(order, r.params)
		}
		s.runs++
		s.meanSteps += float64(r.steps)
		if r.burned == forestfire.NoForest {
			s.noForest++
			continue
		}
		if burnedRuns[r.params] == 0 || r.burned < s.minBurned {
			s.minBurned = r.burned
		}
		if r.burned > s.maxBurned {
			s.maxBurned = r.burned
		}
		s.meanBurned += float64(r.burned)
		burnedRuns[r.params]++
	}

	out := make([]summary, 0, len(order))
	for _, p := range order {
		s := byParams[p]
		s.meanSteps /= float64(s.runs)
		if n := burnedRuns[p]; n > 0 {
			s.meanBurned /= float64(n)
		}
		out = append(out, *s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].meanBurned > out[j].meanBurned })
	return out
}

func paramGrid(densities, spreads []int) []paramSet {
	sets := make([]paramSet, 0, len(densities)*len(spreads))
	for _, d := range densities {
		for _, s := range spreads {
			sets = append(sets, paramSet{density: d, spread: s})
		}
	}
	return sets
}

func parseIntList(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "[parseIntList] %q", field)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.Errorf("[parseIntList] no values in %q", s)
	}
	return out, nil
}
