package core

import "github.com/pkg/errors"

var (
	// ErrBuilderInconsistency reports an insertion sequence that cannot
	// produce a well-formed grid. It always indicates a programming error.
	ErrBuilderInconsistency = errors.New("grid builder inconsistency")

	// ErrConfigOutOfRange reports a construction parameter outside its domain.
	ErrConfigOutOfRange = errors.New("configuration out of range")

	// ErrNotImplemented is returned by registered variants that have no behavior yet.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnknownSim is returned when looking up an unregistered simulation.
	ErrUnknownSim = errors.New("unknown sim")
)
