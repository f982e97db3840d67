package core

import "time"

// FixedStep paces periodic work, such as auto-advancing seeds in the viewer,
// at a steady rate independent of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep firing rate times per second.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(rate)
	return fs
}

// SetRate changes the firing rate. Non-positive rates fall back to 1 per second.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 1
	}
	f.step = time.Second / time.Duration(rate)
}

// Step returns the configured interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// Due reports whether at least one interval has elapsed at now. The first
// call only records the reference time.
func (f *FixedStep) Due(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
		return false
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// ShouldStep is Due evaluated at the current wall-clock time.
func (f *FixedStep) ShouldStep() bool {
	return f.Due(time.Now())
}

// Restart drops accumulated time so the next interval starts now.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}
