// Package tick defines fixed-interval tick sources. A source repeatedly
// invokes one step function while started; stopping it releases whatever
// timer backs it so no step fires afterwards.
package tick

import "time"

// Source is a fixed-interval trigger for a single step function.
// Start and Stop are idempotent. Implementations invoke the step on the
// owner's event goroutine, never concurrently with other steps.
type Source interface {
	Start()
	Stop()
	Active() bool
}

// Factory builds a stopped source that calls fn every interval.
// The name identifies the source in logs and messages.
type Factory func(name string, interval time.Duration, fn func()) Source

// Stepped is a source driven by explicit Fire calls instead of a clock.
// Tests use it to step a simulation deterministically; frame-locked
// frontends fire it once per frame.
type Stepped struct {
	name     string
	interval time.Duration
	fn       func()
	active   bool
	fired    int
}

// NewStepped creates a stopped Stepped source.
func NewStepped(name string, interval time.Duration, fn func()) *Stepped {
	return &Stepped{name: name, interval: interval, fn: fn}
}

// SteppedFactory adapts NewStepped to Factory and records every source it
// builds so the caller can fire them.
type SteppedFactory struct {
	Sources map[string]*Stepped
}

// NewSteppedFactory creates an empty SteppedFactory.
func NewSteppedFactory() *SteppedFactory {
	return &SteppedFactory{Sources: make(map[string]*Stepped)}
}

// Build implements Factory.
func (f *SteppedFactory) Build(name string, interval time.Duration, fn func()) Source {
	s := NewStepped(name, interval, fn)
	f.Sources[name] = s
	return s
}

// Start arms the source.
func (s *Stepped) Start() {
	s.active = true
}

// Stop disarms the source; subsequent Fire calls do nothing.
func (s *Stepped) Stop() {
	s.active = false
}

// Active reports whether the source is started.
func (s *Stepped) Active() bool {
	return s.active
}

// Fire runs the step once if the source is active and reports whether it ran.
func (s *Stepped) Fire() bool {
	if !s.active {
		return false
	}
	s.fired++
	s.fn()
	return true
}

// Fired returns how many times the step has run.
func (s *Stepped) Fired() int {
	return s.fired
}

// Name returns the source name.
func (s *Stepped) Name() string {
	return s.name
}

// Interval returns the nominal interval between fires.
func (s *Stepped) Interval() time.Duration {
	return s.interval
}
