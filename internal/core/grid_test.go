package core

import (
	"slices"
	"testing"
)

func rowMajor(n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i
	}
	return vals
}

func TestNeighborSymmetry(t *testing.T) {
	for _, size := range []Size{{W: 1, H: 1}, {W: 5, H: 1}, {W: 1, H: 4}, {W: 4, H: 3}, {W: 7, H: 7}} {
		g, err := FromRowMajor(size.W, size.H, rowMajor(size.W*size.H))
		if err != nil {
			t.Fatalf("%dx%d: build failed: %v", size.W, size.H, err)
		}
		if g.Len() != size.W*size.H {
			t.Fatalf("%dx%d: expected %d cells, got %d", size.W, size.H, size.W*size.H, g.Len())
		}
		for i := 0; i < g.Len(); i++ {
			c := g.Cell(Ref(i))
			if r, ok := c.Right(); ok {
				if l, ok := r.Left(); !ok || l.Ref() != c.Ref() {
					t.Fatalf("%dx%d: right of %d does not link back", size.W, size.H, i)
				}
			}
			if b, ok := c.Bottom(); ok {
				if top, ok := b.Top(); !ok || top.Ref() != c.Ref() {
					t.Fatalf("%dx%d: bottom of %d does not link back", size.W, size.H, i)
				}
			}
			if l, ok := c.Left(); ok {
				if r, ok := l.Right(); !ok || r.Ref() != c.Ref() {
					t.Fatalf("%dx%d: left of %d does not link back", size.W, size.H, i)
				}
			}
			if top, ok := c.Top(); ok {
				if b, ok := top.Bottom(); !ok || b.Ref() != c.Ref() {
					t.Fatalf("%dx%d: top of %d does not link back", size.W, size.H, i)
				}
			}
		}
	}
}

func TestHardEdges(t *testing.T) {
	g, err := FromRowMajor(3, 2, rowMajor(6))
	if err != nil {
		t.Fatal(err)
	}

	corner := g.At(0, 0)
	if _, ok := corner.Left(); ok {
		t.Fatal("top-left cell must have no left neighbor")
	}
	if _, ok := corner.Top(); ok {
		t.Fatal("top-left cell must have no top neighbor")
	}
	if r, ok := corner.Right(); !ok || r.Value() != 1 {
		t.Fatalf("expected right neighbor value 1, got %v (ok=%v)", r, ok)
	}
	if b, ok := corner.Bottom(); !ok || b.Value() != 3 {
		t.Fatalf("expected bottom neighbor value 3, got ok=%v", ok)
	}

	last := g.At(2, 1)
	if _, ok := last.Right(); ok {
		t.Fatal("bottom-right cell must have no right neighbor")
	}
	if _, ok := last.Bottom(); ok {
		t.Fatal("bottom-right cell must have no bottom neighbor")
	}

	// The end of row 0 must not leak into row 1.
	if _, ok := g.At(2, 0).Right(); ok {
		t.Fatal("row end must not link to the next row")
	}
	if _, ok := g.At(0, 1).Left(); ok {
		t.Fatal("row start must not link to the previous row")
	}
}

func TestRowExtremities(t *testing.T) {
	g, err := FromRowMajor(4, 3, rowMajor(12))
	if err != nil {
		t.Fatal(err)
	}
	mid := g.At(2, 1)
	if got := mid.FirstOfRow().Value(); got != 4 {
		t.Fatalf("expected first of row 4, got %d", got)
	}
	if got := mid.LastOfRow().Value(); got != 7 {
		t.Fatalf("expected last of row 7, got %d", got)
	}
}

func TestRingWrap(t *testing.T) {
	g, err := FromRowMajor(5, 1, rowMajor(5))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.RingLeft(0); got != 4 {
		t.Fatalf("ring left of first cell should be last, got %d", got)
	}
	if got := g.RingRight(4); got != 0 {
		t.Fatalf("ring right of last cell should be first, got %d", got)
	}
	if got := g.RingRight(2); got != 3 {
		t.Fatalf("ring right of 2 should be 3, got %d", got)
	}
}

func TestSetValue(t *testing.T) {
	g, err := FromRowMajor(2, 2, []int{0, 0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	g.At(1, 1).SetValue(9)
	if !slices.Equal(g.Values(), []int{0, 0, 0, 9}) {
		t.Fatalf("unexpected values %v", g.Values())
	}
}
