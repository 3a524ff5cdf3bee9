package elementary

import (
	"slices"
	"testing"

	"github.com/pkg/errors"

	"gridca/internal/core"
)

func TestRuleTableLSBFirst(t *testing.T) {
	got := RuleTable(30)
	want := [8]uint8{0, 1, 1, 1, 1, 0, 0, 0}
	if got != want {
		t.Fatalf("rule 30 table = %v, want %v", got, want)
	}
	if RuleTable(0) != [8]uint8{} {
		t.Fatal("rule 0 must map every pattern to 0")
	}
	if RuleTable(255) != [8]uint8{1, 1, 1, 1, 1, 1, 1, 1} {
		t.Fatal("rule 255 must map every pattern to 1")
	}
}

func TestInitialGenerationSeedsMiddle(t *testing.T) {
	e, err := New(7, 30)
	if err != nil {
		t.Fatal(err)
	}
	if want := []uint8{0, 0, 0, 1, 0, 0, 0}; !slices.Equal(e.Cells(), want) {
		t.Fatalf("initial generation %v, want %v", e.Cells(), want)
	}
	if e.String() != "   *   " {
		t.Fatalf("unexpected render %q", e.String())
	}

	even, err := New(4, 30)
	if err != nil {
		t.Fatal(err)
	}
	if want := []uint8{0, 0, 1, 0}; !slices.Equal(even.Cells(), want) {
		t.Fatalf("even-size seed %v, want %v", even.Cells(), want)
	}
}

func TestRule30KnownGenerations(t *testing.T) {
	e, err := New(7, 30)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]uint8{
		{0, 0, 1, 1, 1, 0, 0},
		{0, 1, 1, 0, 0, 1, 0},
		{1, 1, 0, 1, 1, 1, 1},
		// The row now wraps around the ring.
		{0, 0, 0, 1, 0, 0, 0},
	}
	for gen, row := range want {
		e.Step()
		if !slices.Equal(e.Cells(), row) {
			t.Fatalf("generation %d = %v, want %v", gen+1, e.Cells(), row)
		}
	}
}

func TestRule90Symmetry(t *testing.T) {
	e, err := New(9, 90)
	if err != nil {
		t.Fatal(err)
	}
	e.Step()
	if want := []uint8{0, 0, 0, 1, 0, 1, 0, 0, 0}; !slices.Equal(e.Cells(), want) {
		t.Fatalf("rule 90 step = %v, want %v", e.Cells(), want)
	}
}

func TestRingWraparound(t *testing.T) {
	e, err := New(6, 30)
	if err != nil {
		t.Fatal(err)
	}
	for step := 0; step < 10; step++ {
		cells := e.Cells()
		n := len(cells)
		first := e.pattern(0)
		if got := first >> 2; got != cells[n-1] {
			t.Fatalf("step %d: first cell left=%d, want last value %d", step, got, cells[n-1])
		}
		last := e.pattern(core.Ref(n - 1))
		if got := last & 1; got != cells[0] {
			t.Fatalf("step %d: last cell right=%d, want first value %d", step, got, cells[0])
		}
		e.Step()
	}
}

func TestCellCountInvariant(t *testing.T) {
	e, err := New(33, 110)
	if err != nil {
		t.Fatal(err)
	}
	for step := 0; step < 20; step++ {
		if got := e.Grid().Len(); got != 33 {
			t.Fatalf("step %d: %d cells, want 33", step, got)
		}
		e.Step()
	}
}

func TestSingleCellRing(t *testing.T) {
	e, err := New(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	// 111 -> bit 7 of rule 2 is 0.
	e.Step()
	if e.Cells()[0] != 0 {
		t.Fatalf("expected single cell to die, got %d", e.Cells()[0])
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []Config{
		{Size: 0, Rule: 30},
		{Size: -3, Rule: 30},
		{Size: 10, Rule: -1},
		{Size: 10, Rule: 256},
	}
	for _, c := range cases {
		if _, err := NewWithConfig(c); !errors.Is(err, core.ErrConfigOutOfRange) {
			t.Fatalf("config %+v: expected out-of-range error, got %v", c, err)
		}
	}
}

func TestFromMap(t *testing.T) {
	c, err := FromMap(map[string]string{"size": "11", "rule": "110"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Size != 11 || c.Rule != 110 {
		t.Fatalf("unexpected config %+v", c)
	}
	if _, err := FromMap(map[string]string{"rule": "300"}); !errors.Is(err, core.ErrConfigOutOfRange) {
		t.Fatalf("expected rule 300 to be rejected, got %v", err)
	}
	if _, err := FromMap(map[string]string{"size": "abc"}); err == nil {
		t.Fatal("expected parse error for size")
	}
	if d, err := FromMap(nil); err != nil || d != DefaultConfig() {
		t.Fatalf("nil map should yield defaults, got %+v, %v", d, err)
	}
}

func TestRegistered(t *testing.T) {
	sim, err := core.NewSim("elementary", map[string]string{"size": "5"})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size() != (core.Size{W: 5, H: 1}) {
		t.Fatalf("unexpected size %+v", sim.Size())
	}
}
