package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// RandSource supplies uniform values in [0, 1) for gap placement.
// *rand.Rand satisfies it; tests supply fixed sequences.
type RandSource interface {
	Float64() float64
}

// advancePipes scrolls, culls and spawns pipes for one pipe tick.
func advancePipes(s *State, f config.FieldConfig, o config.ObstaclesConfig, rng RandSource) {
	// Shift left and drop pipes whose trailing edge left the field, in place
	kept := s.Pipes[:0]
	for _, p := range s.Pipes {
		p.X -= o.StepPx
		if p.TrailingEdge(o.PipeWidth) > 0 {
			kept = append(kept, p)
		}
	}
	// Clear the tail so dropped pipes don't linger in the backing array
	for i := len(kept); i < len(s.Pipes); i++ {
		s.Pipes[i] = Pipe{}
	}
	s.Pipes = kept

	if len(s.Pipes) == 0 || s.Pipes[len(s.Pipes)-1].X < f.Width-o.SpawnThresholdPx {
		s.Pipes = append(s.Pipes, spawnPipe(f, o, rng))
	}
}

// spawnPipe creates a pipe at the right edge of the field with its gap
// placed uniformly so that the gap plus margin always fits.
func spawnPipe(f config.FieldConfig, o config.ObstaclesConfig, rng RandSource) Pipe {
	topHeight := rng.Float64() * (f.Height - o.GapHeight - o.GapMargin)
	return Pipe{
		X:            f.Width,
		TopHeight:    topHeight,
		BottomHeight: f.Height - (topHeight + o.GapHeight),
		Passed:       false,
	}
}
