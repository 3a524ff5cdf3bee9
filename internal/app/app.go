package app

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"gridca/internal/core"
	"gridca/internal/render"
)

// fireReporter is implemented by sims that track an active fire.
type fireReporter interface {
	StillBurning() bool
	PercentageBurned() int
}

// Runner drives a core simulation headlessly, rendering each generation
// as text.
type Runner struct {
	sim   core.Sim
	out   io.Writer
	pacer *core.FixedStep

	emoji      bool
	generation int
}

// New constructs a Runner for the provided simulation.
func New(sim core.Sim, out io.Writer, tps int, emoji bool) *Runner {
	return &Runner{
		sim:   sim,
		out:   out,
		pacer: core.NewFixedStep(tps),
		emoji: emoji,
	}
}

// Generation returns the number of steps taken since the last reset.
func (r *Runner) Generation() int { return r.generation }

// Reset reinitializes the simulation state with the provided seed.
func (r *Runner) Reset(seed int64) {
	r.sim.Reset(seed)
	r.generation = 0
}

// Header writes the simulation name and its parameters.
func (r *Runner) Header() error {
	if _, err := fmt.Fprintf(r.out, "# %s %dx%d\n", r.sim.Name(), r.sim.Size().W, r.sim.Size().H); err != nil {
		return errors.Wrap(err, "[Runner.Header]")
	}
	p, ok := r.sim.(core.ParameterProvider)
	if !ok {
		return nil
	}
	for _, g := range p.Parameters().Groups {
		line := "# " + g.Name + ":"
		for _, param := range g.Params {
			line += fmt.Sprintf(" %s=%s", param.Key, param.Value)
		}
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return errors.Wrap(err, "[Runner.Header]")
		}
	}
	return nil
}

// Update advances the simulation by one generation.
func (r *Runner) Update() {
	r.sim.Step()
	r.generation++
}

// Draw renders the current generation.
func (r *Runner) Draw() error {
	g, ok := r.sim.(render.Glyphed)
	if !ok {
		return errors.Errorf("[Runner.Draw] %s cannot be rendered as text", r.sim.Name())
	}
	if err := render.Text(r.out, g, r.emoji); err != nil {
		return err
	}
	f, ok := r.sim.(fireReporter)
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(r.out, "generation=%d burning=%t burned=%d%%\n\n",
		r.generation, f.StillBurning(), f.PercentageBurned())
	return errors.Wrap(err, "[Runner.Draw]")
}

// Run draws the current generation and then steps and draws steps more,
// stopping early if ctx is cancelled between generations.
func (r *Runner) Run(ctx context.Context, steps int) error {
	if err := r.Draw(); err != nil {
		return err
	}
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.pacer.Wait()
		r.Update()
		if err := r.Draw(); err != nil {
			return err
		}
	}
	return nil
}
