package forestfire

import (
	"github.com/pkg/errors"

	"gridca/internal/core"
)

// State enumerates the cell values of the forest.
type State uint8

const (
	Empty State = iota
	Forest
	Fire
	// Burned is absorbing: a burned cell never changes again.
	Burned
)

var stateNames = [...]string{"empty", "forest", "fire", "burned"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// NoForest is returned by PercentageBurned when the grid holds neither
// forest nor burned cells.
const NoForest = -1

// Rand is the random source consumed by the model. *rand.Rand and
// *core.RNG both satisfy it.
type Rand interface {
	IntN(n int) int
}

// World is a two-dimensional stochastic forest fire. Edges are hard: cells
// on the border simply have fewer neighbors.
type World struct {
	cfg Config

	w, h int

	cells   *core.Grid[State]
	next    []State
	display []uint8

	rng Rand
}

// New returns a forest with the provided dimensions using default parameters.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a forest seeded from cfg.Seed.
func NewWithConfig(cfg Config) (*World, error) {
	return NewWithRand(cfg, core.NewRNG(cfg.Seed))
}

// NewWithRand returns a forest drawing all randomness from rng.
func NewWithRand(cfg Config, rng Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[forestfire.New]")
	}
	if rng == nil {
		return nil, errors.Wrap(core.ErrConfigOutOfRange, "[forestfire.New] nil random source")
	}
	total := cfg.Width * cfg.Height
	w := &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		next:    make([]State, total),
		display: make([]uint8, total),
		rng:     rng,
	}
	w.plant()
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "forestfire" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Cells exposes the current generation as raw State values.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the current generation.
func (w *World) Grid() *core.Grid[State] { return w.cells }

// States returns a copy of the current generation indexed as [y][x].
func (w *World) States() [][]State {
	vals := w.cells.Values()
	out := make([][]State, w.h)
	for y := range out {
		out[y] = append([]State(nil), vals[y*w.w:(y+1)*w.w]...)
	}
	return out
}

// Reset replants the forest from a fresh generator seeded with seed, or
// with the configured seed when seed is zero.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.plant()
}

// plant builds the initial generation. One density draw is taken per cell
// in insertion order; the leftmost column is then forced to Fire, except
// when it is also the row start of a one-column forest.
func (w *World) plant() {
	b, err := core.NewBuilder[State](w.w, w.h)
	if err != nil {
		panic(errors.Wrap(err, "[forestfire] plant"))
	}
	for y := w.h - 1; y >= 0; y-- {
		for x := w.w - 1; x >= 0; x-- {
			s := w.seedState()
			switch {
			case x == w.w-1:
				err = b.InsertLeftNewRow(s)
			case x == 0:
				err = b.InsertLeft(Fire)
			default:
				err = b.InsertLeft(s)
			}
			if err != nil {
				panic(errors.Wrapf(err, "[forestfire] plant (%d,%d)", x, y))
			}
		}
	}
	g, err := b.Build()
	if err != nil {
		panic(errors.Wrap(err, "[forestfire] plant"))
	}
	w.swap(g)
}

func (w *World) seedState() State {
	if w.percent() <= w.cfg.Params.Density {
		return Forest
	}
	return Empty
}

func (w *World) percent() int {
	return w.rng.IntN(100) + 1
}

// Step computes every next state from a read-only pass over the current
// generation, then replaces the grid with one built from that buffer.
func (w *World) Step() {
	for i := range w.next {
		w.next[i] = w.nextState(w.cells.Cell(core.Ref(i)))
	}
	g, err := core.FromRowMajor(w.w, w.h, append([]State(nil), w.next...))
	if err != nil {
		panic(errors.Wrap(err, "[forestfire] step"))
	}
	w.swap(g)
}

func (w *World) swap(g *core.Grid[State]) {
	w.cells = g
	for i, s := range g.Values() {
		w.display[i] = uint8(s)
	}
}

// nextState consumes exactly one draw in [1,100] for every cell.
//
// A forest cell ignites when draw <= fires * probability, where fires is
// the number of burning neighbors and probability is the base spread
// adjusted by wind for each burning orthogonal neighbor. The threshold
// scales with the neighbor count; there is no independent trial per
// neighbor.
func (w *World) nextState(c core.Cell[State]) State {
	draw := w.percent()
	switch c.Value() {
	case Fire, Burned:
		return Burned
	case Forest:
		fires, probability := w.exposure(c)
		if draw <= fires*probability {
			return Fire
		}
		return Forest
	default:
		return c.Value()
	}
}

// exposure counts burning neighbors of c and accumulates the wind-adjusted
// spread probability.
func (w *World) exposure(c core.Cell[State]) (fires, probability int) {
	probability = w.cfg.Params.Spread
	for _, p := range neighborhoods[w.cfg.Params.Neighborhood] {
		n, ok := p.walk(c)
		if !ok || n.Value() != Fire {
			continue
		}
		fires++
		probability += p.west*w.cfg.Params.WestWind + p.south*w.cfg.Params.SouthWind
	}
	return fires, probability
}

// Census counts cells per state.
type Census struct {
	Empty, Forest, Fire, Burned int
}

// Census tallies the current generation.
func (w *World) Census() Census {
	var c Census
	for _, s := range w.cells.Values() {
		switch s {
		case Empty:
			c.Empty++
		case Forest:
			c.Forest++
		case Fire:
			c.Fire++
		case Burned:
			c.Burned++
		}
	}
	return c
}

// PercentageBurned returns burned*100/(burned+forest) using integer
// division, or NoForest when both counts are zero. Cells currently on fire
// count toward neither term.
func (w *World) PercentageBurned() int {
	c := w.Census()
	total := c.Burned + c.Forest
	if total == 0 {
		return NoForest
	}
	return c.Burned * 100 / total
}

// StillBurning reports whether any cell is on fire.
func (w *World) StillBurning() bool {
	for _, s := range w.cells.Values() {
		if s == Fire {
			return true
		}
	}
	return false
}

// Parameters describes the forest configuration.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.cfg.Width),
				core.IntParam("h", "Height", w.cfg.Height),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				core.IntParam("neighborhood", "Neighborhood", p.Neighborhood),
				core.IntParam("density", "Density %", p.Density),
				core.IntParam("spread", "Spread %", p.Spread),
				core.IntParam("west_wind", "West wind", p.WestWind),
				core.IntParam("south_wind", "South wind", p.SouthWind),
			},
		},
	}}
}

func init() {
	core.Register("forestfire", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		w, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
