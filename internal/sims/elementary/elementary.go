package elementary

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"gridca/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Size int `json:"size"`
	Rule int `json:"rule"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Size: 100, Rule: 30}
}

// Validate reports whether c describes a constructible automaton.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return errors.Wrapf(core.ErrConfigOutOfRange, "size %d must be positive", c.Size)
	}
	if c.Rule < 0 || c.Rule > 255 {
		return errors.Wrapf(core.ErrConfigOutOfRange, "rule %d outside [0,255]", c.Rule)
	}
	return nil
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["size"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "[FromMap] size %q", v)
		}
		c.Size = parsed
	}
	if v, ok := cfg["rule"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "[FromMap] rule %q", v)
		}
		c.Rule = parsed
	}
	return c, c.Validate()
}

// RuleTable expands a Wolfram rule number into its eight outputs. Index i
// holds the next value for the neighborhood whose left,center,right bits
// read as the binary number i.
func RuleTable(rule uint8) [8]uint8 {
	var table [8]uint8
	for i := range table {
		table[i] = (rule >> i) & 1
	}
	return table
}

// Elementary is a one-dimensional, two-state automaton on a single ring row.
type Elementary struct {
	size  int
	rule  uint8
	table [8]uint8
	cells *core.Grid[uint8]
	next  []uint8
}

// New creates an automaton with the given size and rule.
func New(size, rule int) (*Elementary, error) {
	return NewWithConfig(Config{Size: size, Rule: rule})
}

// NewWithConfig creates an automaton from cfg and seeds its first generation.
func NewWithConfig(cfg Config) (*Elementary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[elementary.New]")
	}
	e := &Elementary{
		size:  cfg.Size,
		rule:  uint8(cfg.Rule),
		table: RuleTable(uint8(cfg.Rule)),
		next:  make([]uint8, cfg.Size),
	}
	e.Reset(0)
	return e, nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.size, H: 1} }

// Rule returns the Wolfram rule number.
func (e *Elementary) Rule() uint8 { return e.rule }

// Cells exposes the current generation.
func (e *Elementary) Cells() []uint8 { return e.cells.Values() }

// Grid exposes the current generation as a grid.
func (e *Elementary) Grid() *core.Grid[uint8] { return e.cells }

// Reset seeds a single active cell at index size/2. The seed is unused.
func (e *Elementary) Reset(seed int64) {
	first := make([]uint8, e.size)
	first[e.size/2] = 1
	e.rebuild(first)
}

// Step computes the next generation from a read-only pass over the current
// one, then replaces the grid wholesale.
func (e *Elementary) Step() {
	g := e.cells
	for i := 0; i < g.Len(); i++ {
		e.next[i] = e.nextValue(core.Ref(i))
	}
	e.rebuild(e.next)
}

func (e *Elementary) nextValue(r core.Ref) uint8 {
	return e.table[e.pattern(r)]
}

// pattern reads the left,center,right neighborhood of r as a number in
// [0,7]. The row is a ring: the first cell's left neighbor is the last cell
// and vice versa.
func (e *Elementary) pattern(r core.Ref) uint8 {
	vals := e.cells.Values()
	left := vals[e.cells.RingLeft(r)]
	center := vals[r]
	right := vals[e.cells.RingRight(r)]
	return (left << 2) | (center << 1) | right
}

// rebuild replaces the grid with a fresh one holding vals.
func (e *Elementary) rebuild(vals []uint8) {
	g, err := core.FromRowMajor(e.size, 1, slices.Clone(vals))
	if err != nil {
		panic(errors.Wrap(err, "[elementary] rebuild"))
	}
	e.cells = g
}

// String renders the generation as '*' for live cells and ' ' otherwise.
func (e *Elementary) String() string {
	var sb strings.Builder
	sb.Grow(e.size)
	for _, v := range e.cells.Values() {
		if v == 1 {
			sb.WriteByte('*')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Parameters describes the automaton configuration.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Elementary",
		Params: []core.Parameter{
			core.IntParam("size", "Size", e.size),
			core.IntParam("rule", "Rule", int(e.rule)),
		},
	}}}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		e, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return e, nil
	})
}
