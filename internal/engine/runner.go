// Package engine drives a flappy simulation from two fixed-interval tick
// sources and owns their lifecycle: both start with an attempt and are
// released as soon as the attempt ends or the runner is closed.
package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/tick"
)

// Tick source names.
const (
	SourcePhysics = "physics"
	SourcePipes   = "pipes"
)

// Runner connects input hooks and tick sources to a Simulation.
// All methods, and the step functions it hands to its sources, must run on
// the frontend's single event goroutine.
type Runner struct {
	sim     *flappy.Simulation
	physics tick.Source
	pipes   tick.Source
	logger  *log.Logger
	best    int
}

// NewRunner builds both tick sources through build. A nil logger discards output.
func NewRunner(sim *flappy.Simulation, build tick.Factory, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Runner{
		sim:    sim,
		logger: logger,
	}

	cfg := sim.Config()
	r.physics = build(SourcePhysics, cfg.PhysicsInterval(), func() {
		r.after(sim.StepPhysics())
	})
	r.pipes = build(SourcePipes, cfg.PipesInterval(), func() {
		r.after(sim.StepPipes())
	})
	return r
}

// Start begins a new attempt and (re)starts both tick sources.
func (r *Runner) Start() {
	r.sim.OnStart()
	r.physics.Start()
	r.pipes.Start()
	r.logger.Debug("attempt started", "attempt", r.sim.Snapshot().Attempts)
}

// Jump forwards a flap to the simulation.
func (r *Runner) Jump() {
	r.after(r.sim.OnJump())
}

// Close releases both tick sources. The runner can be started again.
func (r *Runner) Close() {
	r.halt()
}

// Running reports whether an attempt is in progress.
func (r *Runner) Running() bool {
	return r.sim.Running()
}

// Snapshot returns a read-only copy of the simulation state.
func (r *Runner) Snapshot() flappy.Snapshot {
	return r.sim.Snapshot()
}

// Simulation returns the driven simulation.
func (r *Runner) Simulation() *flappy.Simulation {
	return r.sim
}

// Best returns the highest score reached during this process.
func (r *Runner) Best() int {
	return r.best
}

func (r *Runner) after(out flappy.Outcome) {
	if out.Scored > 0 {
		r.logger.Debug("pipe passed", "score", r.sim.Score())
	}
	if !out.Stopped() {
		return
	}

	r.halt()
	score := r.sim.Score()
	if score > r.best {
		r.best = score
	}
	cause := "pipe"
	if out.HitFloor {
		cause = "ground"
	}
	r.logger.Info("attempt ended", "score", score, "cause", cause, "best", r.best)
}

func (r *Runner) halt() {
	r.physics.Stop()
	r.pipes.Stop()
}
