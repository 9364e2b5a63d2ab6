package engine

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/tick"
)

// HeadlessOptions configures a run without a frontend.
type HeadlessOptions struct {
	Frames    int  // Frames to run, each FrameInterval long
	Autopilot bool // Let flappy.Autopilot decide when to flap
	Restart   bool // Start a new attempt whenever one ends
}

// HeadlessResult summarizes a headless run.
type HeadlessResult struct {
	Frames   int
	Attempts int
	Score    int // Score of the last attempt
	Best     int
	Running  bool
}

// FrameInterval is the shorter of the two tick intervals. Frame-driven
// frontends advance their sources by this much per frame.
func FrameInterval(cfg config.FlappyConfig) time.Duration {
	return min(cfg.PhysicsInterval(), cfg.PipesInterval())
}

// RunHeadless drives sim from Stepped sources as fast as possible. It
// returns early when an attempt ends and Restart is off.
func RunHeadless(sim *flappy.Simulation, opts HeadlessOptions, logger *log.Logger) HeadlessResult {
	f := tick.NewSteppedFactory()
	r := NewRunner(sim, f.Build, logger)
	defer r.Close()

	cfg := sim.Config()
	pump := tick.NewPump(f.Sources[SourcePhysics], f.Sources[SourcePipes])
	frame := FrameInterval(cfg)

	var pilot *flappy.Autopilot
	if opts.Autopilot {
		pilot = flappy.NewAutopilot(cfg)
	}

	r.Start()
	frames := 0
	for frames < opts.Frames {
		if !r.Running() {
			if !opts.Restart {
				break
			}
			r.Start()
		}
		if pilot != nil && pilot.ShouldJump(r.Snapshot()) {
			r.Jump()
		}
		pump.Advance(frame)
		frames++
	}

	snap := r.Snapshot()
	return HeadlessResult{
		Frames:   frames,
		Attempts: snap.Attempts,
		Score:    snap.Score,
		Best:     max(r.Best(), snap.Score),
		Running:  snap.Running,
	}
}
