package core

import "time"

// FixedStep paces simulation updates at a steady ticks-per-second rate.
// A zero-valued or non-positive rate disables pacing.
type FixedStep struct {
	step time.Duration
	last time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(tps)
}

// Wait blocks until one tick has elapsed since the previous call.
func (f *FixedStep) Wait() {
	if f.step == 0 {
		return
	}
	now := time.Now()
	if !f.last.IsZero() {
		if remaining := f.step - now.Sub(f.last); remaining > 0 {
			time.Sleep(remaining)
			now = now.Add(remaining)
		}
	}
	f.last = now
}
