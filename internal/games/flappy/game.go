// Package flappy implements a Flappy Bird simulation.
// The player keeps a bird subject to gravity inside the gaps of a stream of
// scrolling pipes. All motion happens on fixed ticks; rendering only reads
// snapshots.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Simulation owns the state and applies the four step functions: jump,
// physics, pipes and evaluation. It is not safe for concurrent use; the
// caller serializes every call on one goroutine.
type Simulation struct {
	cfg      config.FlappyConfig
	rng      RandSource
	state    State
	attempts int
}

// New creates a stopped simulation. A nil rng is replaced by a source seeded
// from cfg.Seed, or from the wall clock when the seed is 0.
func New(cfg config.FlappyConfig, rng RandSource) *Simulation {
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	return &Simulation{
		cfg: cfg,
		rng: rng,
		state: State{
			BirdY: cfg.Bird.StartY,
		},
	}
}

// ID returns the unique identifier for this game.
func (g *Simulation) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Simulation) Title() string {
	return "Flappy Bird"
}

// Config returns the configuration the simulation runs with.
func (g *Simulation) Config() config.FlappyConfig {
	return g.cfg
}

// OnStart begins a fresh attempt, discarding the previous state.
// It is valid at any time, including mid-attempt.
func (g *Simulation) OnStart() {
	g.state = State{
		BirdY:    g.cfg.Bird.StartY,
		Velocity: 0,
		Pipes:    make([]Pipe, 0, 8),
		Score:    0,
		Running:  true,
	}
	g.attempts++
}

// OnJump applies the upward impulse. Does nothing while stopped.
func (g *Simulation) OnJump() Outcome {
	if !g.state.Running {
		return Outcome{}
	}
	jump(&g.state, g.cfg.Physics)
	return evaluate(&g.state, g.cfg)
}

// StepPhysics runs one physics tick followed by evaluation.
func (g *Simulation) StepPhysics() Outcome {
	if !g.state.Running {
		return Outcome{}
	}
	integrate(&g.state, g.cfg.Physics)
	return evaluate(&g.state, g.cfg)
}

// StepPipes runs one pipe tick followed by evaluation.
func (g *Simulation) StepPipes() Outcome {
	if !g.state.Running {
		return Outcome{}
	}
	advancePipes(&g.state, g.cfg.Field, g.cfg.Obstacles, g.rng)
	return evaluate(&g.state, g.cfg)
}

// Running reports whether an attempt is in progress.
func (g *Simulation) Running() bool {
	return g.state.Running
}

// Score returns the current score.
func (g *Simulation) Score() int {
	return g.state.Score
}

// Snapshot returns a copy of the state for presentation.
func (g *Simulation) Snapshot() Snapshot {
	return g.state.snapshot(g.attempts)
}
