package main

import (
	"slices"
	"testing"

	"gridca/internal/sims/forestfire"
)

func TestParseIntList(t *testing.T) {
	got, err := parseIntList(" 10, 20 ,,30")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{10, 20, 30}) {
		t.Fatalf("parseIntList = %v", got)
	}
	if _, err := parseIntList("1,x"); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := parseIntList(" , "); err == nil {
		t.Fatal("expected empty list error")
	}
}

func TestParamGrid(t *testing.T) {
	sets := paramGrid([]int{40, 60}, []int{10, 20, 30})
	if len(sets) != 6 {
		t.Fatalf("expected 6 sets, got %d", len(sets))
	}
	if sets[0] != (paramSet{density: 40, spread: 10}) || sets[5] != (paramSet{density: 60, spread: 30}) {
		t.Fatalf("unexpected ordering %v", sets)
	}
}

func TestSummarize(t *testing.T) {
	low := paramSet{density: 40, spread: 10}
	high := paramSet{density: 80, spread: 60}
	results := []runResult{
		{params: low, burned: 10, steps: 2},
		{params: low, burned: 30, steps: 4},
		{params: low, burned: forestfire.NoForest, steps: 0},
		{params: high, burned: 90, steps: 50},
		{params: high, burned: 70, steps: 30},
	}
	got := summarize(results)
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if got[0].params != high || got[1].params != low {
		t.Fatalf("summaries not sorted by mean burned: %v", got)
	}
	h := got[0]
	if h.runs != 2 || h.meanBurned != 80 || h.minBurned != 70 || h.maxBurned != 90 || h.meanSteps != 40 {
		t.Fatalf("unexpected high summary %+v", h)
	}
	l := got[1]
	if l.runs != 3 || l.noForest != 1 || l.meanBurned != 20 || l.minBurned != 10 || l.maxBurned != 30 || l.meanSteps != 2 {
		t.Fatalf("unexpected low summary %+v", l)
	}
}

func TestRunScenarioNoSpread(t *testing.T) {
	base := forestfire.DefaultConfig()
	base.Width = 8
	base.Height = 4
	res, err := runScenario(base, job{params: paramSet{density: 100, spread: 0}, seed: 3}, 100)
	if err != nil {
		t.Fatal(err)
	}
	if res.steps != 1 {
		t.Fatalf("fire without spread should die after 1 step, took %d", res.steps)
	}
	if res.burned != 12 {
		t.Fatalf("burned = %d, want 12", res.burned)
	}

	if _, err := runScenario(base, job{params: paramSet{density: 150}}, 10); err == nil {
		t.Fatal("expected invalid density to be rejected")
	}
}
