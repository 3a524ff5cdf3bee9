package core

// Ref addresses one cell of a Grid by its row-major index.
type Ref int

// Grid stores cell values of type V in row-major order. Neighbor relations
// are derived from coordinates, so left/right and top/bottom links are
// symmetric by construction.
//
// Edges are hard: a cell in column 0 has no left neighbor, a cell in the
// last row has no bottom neighbor. Consumers that need a ring use RingLeft
// and RingRight.
type Grid[V any] struct {
	w, h int
	data []V
}

// newGrid wraps a row-major slice. Callers guarantee len(data) == w*h.
func newGrid[V any](w, h int, data []V) *Grid[V] {
	return &Grid[V]{w: w, h: h, data: data}
}

// Width returns the number of columns.
func (g *Grid[V]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[V]) Height() int { return g.h }

// Len returns the number of cells, always Width()*Height().
func (g *Grid[V]) Len() int { return len(g.data) }

// Values exposes the backing slice in row-major order.
func (g *Grid[V]) Values() []V { return g.data }

// Index returns the reference for coordinates (x, y).
func (g *Grid[V]) Index(x, y int) Ref { return Ref(y*g.w + x) }

// Coords returns the column and row of r.
func (g *Grid[V]) Coords(r Ref) (x, y int) {
	return int(r) % g.w, int(r) / g.w
}

// Cell returns a handle for r.
func (g *Grid[V]) Cell(r Ref) Cell[V] { return Cell[V]{g: g, ref: r} }

// At returns a handle for coordinates (x, y).
func (g *Grid[V]) At(x, y int) Cell[V] { return g.Cell(g.Index(x, y)) }

// Left returns the cell to the left of r, if any.
func (g *Grid[V]) Left(r Ref) (Ref, bool) {
	if int(r)%g.w == 0 {
		return 0, false
	}
	return r - 1, true
}

// Right returns the cell to the right of r, if any.
func (g *Grid[V]) Right(r Ref) (Ref, bool) {
	if int(r)%g.w == g.w-1 {
		return 0, false
	}
	return r + 1, true
}

// Top returns the cell above r, if any.
func (g *Grid[V]) Top(r Ref) (Ref, bool) {
	if int(r) < g.w {
		return 0, false
	}
	return r - Ref(g.w), true
}

// Bottom returns the cell below r, if any.
func (g *Grid[V]) Bottom(r Ref) (Ref, bool) {
	if int(r)+g.w >= len(g.data) {
		return 0, false
	}
	return r + Ref(g.w), true
}

// FirstOfRow returns the leftmost cell of the row containing r.
func (g *Grid[V]) FirstOfRow(r Ref) Ref {
	return r - Ref(int(r)%g.w)
}

// LastOfRow returns the rightmost cell of the row containing r.
func (g *Grid[V]) LastOfRow(r Ref) Ref {
	return g.FirstOfRow(r) + Ref(g.w-1)
}

// RingLeft returns the left neighbor of r, wrapping to the end of the row.
func (g *Grid[V]) RingLeft(r Ref) Ref {
	x, y := g.Coords(r)
	return g.Index((x-1+g.w)%g.w, y)
}

// RingRight returns the right neighbor of r, wrapping to the start of the row.
func (g *Grid[V]) RingRight(r Ref) Ref {
	x, y := g.Coords(r)
	return g.Index((x+1)%g.w, y)
}

// Cell is a lightweight handle on one position of a Grid.
type Cell[V any] struct {
	g   *Grid[V]
	ref Ref
}

// Ref returns the cell's index in its grid.
func (c Cell[V]) Ref() Ref { return c.ref }

// Value returns the cell value.
func (c Cell[V]) Value() V { return c.g.data[c.ref] }

// SetValue replaces the cell value.
func (c Cell[V]) SetValue(v V) { c.g.data[c.ref] = v }

// Left returns the neighbor to the left, or false at the left edge.
func (c Cell[V]) Left() (Cell[V], bool) { return c.follow(c.g.Left(c.ref)) }

// Right returns the neighbor to the right, or false at the right edge.
func (c Cell[V]) Right() (Cell[V], bool) { return c.follow(c.g.Right(c.ref)) }

// Top returns the neighbor above, or false in the first row.
func (c Cell[V]) Top() (Cell[V], bool) { return c.follow(c.g.Top(c.ref)) }

// Bottom returns the neighbor below, or false in the last row.
func (c Cell[V]) Bottom() (Cell[V], bool) { return c.follow(c.g.Bottom(c.ref)) }

// FirstOfRow returns the leftmost cell of this cell's row.
func (c Cell[V]) FirstOfRow() Cell[V] { return c.g.Cell(c.g.FirstOfRow(c.ref)) }

// LastOfRow returns the rightmost cell of this cell's row.
func (c Cell[V]) LastOfRow() Cell[V] { return c.g.Cell(c.g.LastOfRow(c.ref)) }

func (c Cell[V]) follow(r Ref, ok bool) (Cell[V], bool) {
	if !ok {
		return Cell[V]{}, false
	}
	return c.g.Cell(r), true
}
