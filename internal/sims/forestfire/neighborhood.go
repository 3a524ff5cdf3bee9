package forestfire

import "gridca/internal/core"

type direction uint8

const (
	left direction = iota
	up
	right
	down
)

// probe reaches a neighbor by following path from the cell. A burning
// neighbor adds west*WestWind + south*SouthWind to the spread probability.
type probe struct {
	path  []direction
	west  int
	south int
}

func (p probe) walk(c core.Cell[State]) (core.Cell[State], bool) {
	ok := true
	for _, d := range p.path {
		switch d {
		case left:
			c, ok = c.Left()
		case up:
			c, ok = c.Top()
		case right:
			c, ok = c.Right()
		case down:
			c, ok = c.Bottom()
		}
		if !ok {
			return c, false
		}
	}
	return c, true
}

// neighborhoods maps a neighborhood size to its probes. The 4-neighborhood
// adds both winds unsigned; the 6 and 8 variants subtract the wind for
// neighbors lying downwind. Diagonals never adjust the probability.
var neighborhoods = map[int][]probe{
	4: {
		{path: []direction{left}, west: 1},
		{path: []direction{up}, south: 1},
		{path: []direction{right}, west: 1},
		{path: []direction{down}, south: 1},
	},
	6: {
		{path: []direction{left}, west: 1},
		{path: []direction{left, up}},
		{path: []direction{up}, south: -1},
		{path: []direction{right}, west: -1},
		{path: []direction{right, down}},
		{path: []direction{down}, south: 1},
	},
	8: {
		{path: []direction{left}, west: 1},
		{path: []direction{left, down}},
		{path: []direction{left, up}},
		{path: []direction{up}, south: -1},
		{path: []direction{up, right}},
		{path: []direction{right}, west: -1},
		{path: []direction{right, down}},
		{path: []direction{down}, south: 1},
	},
}
