// Package life reserves the Game of Life variant of the automaton family.
// It is registered so that drivers can list it, but constructing it fails
// with core.ErrNotImplemented.
package life

import (
	"github.com/pkg/errors"

	"gridca/internal/core"
)

// New always fails: the variant has no behavior yet.
func New(w, h int) (core.Sim, error) {
	return nil, errors.Wrapf(core.ErrNotImplemented, "[life.New] %dx%d", w, h)
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(0, 0)
	})
}
