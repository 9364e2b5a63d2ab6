package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Autopilot is a simple controller for headless runs: it flaps whenever the
// bird sinks below the lower edge of the next gap, minus a safety margin.
type Autopilot struct {
	cfg    config.FlappyConfig
	Margin float64 // Distance above the gap's lower edge that triggers a flap
}

// NewAutopilot creates an autopilot for the given configuration.
func NewAutopilot(cfg config.FlappyConfig) *Autopilot {
	return &Autopilot{cfg: cfg, Margin: cfg.Bird.Size / 3}
}

// ShouldJump decides from a snapshot whether to flap now. It only flaps
// while falling so a single impulse is never cut short.
func (a *Autopilot) ShouldJump(snap Snapshot) bool {
	if !snap.Running || snap.Velocity < 0 {
		return false
	}
	return snap.BirdY+a.cfg.Bird.Size > a.floor(snap)-a.Margin
}

// floor returns the lower edge of the gap the bird is heading for: the
// first pipe whose trailing edge is not yet behind the bird, or the field
// centre line plus half a gap when no pipe is ahead.
func (a *Autopilot) floor(snap Snapshot) float64 {
	for _, p := range snap.Pipes {
		if p.TrailingEdge(a.cfg.Obstacles.PipeWidth) >= a.cfg.Bird.X {
			return a.cfg.Field.Height - p.BottomHeight
		}
	}
	return (a.cfg.Field.Height + a.cfg.Obstacles.GapHeight) / 2
}
