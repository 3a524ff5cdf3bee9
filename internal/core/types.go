package core

import (
	"sort"

	"github.com/pkg/errors"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the capability set shared by every automaton variant.
type Sim interface {
	Name() string
	Size() Size
	// Reset rebuilds the initial generation. Deterministic variants ignore seed.
	Reset(seed int64)
	// Step advances one generation.
	Step()
	// Cells exposes the current generation in row-major order.
	Cells() []uint8
}

// Factory constructs a Sim from a flag-style configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in lexical order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSim looks up name in the registry and constructs it.
func NewSim(name string, cfg map[string]string) (Sim, error) {
	factory, ok := sims[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSim, "[NewSim] %q", name)
	}
	sim, err := factory(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewSim] %s", name)
	}
	return sim, nil
}
