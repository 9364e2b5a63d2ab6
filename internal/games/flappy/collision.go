package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Outcome describes what one evaluation decided.
type Outcome struct {
	Scored   int  // Pipes newly marked as passed
	HitPipe  bool // Bird overlapped a pipe obstacle
	HitFloor bool // Bird reached the ground
}

// Stopped reports whether the evaluation ended the attempt.
func (o Outcome) Stopped() bool {
	return o.HitPipe || o.HitFloor
}

// birdRect returns the bird's hitbox in field units.
func birdRect(s *State, cfg config.FlappyConfig) core.RectF {
	return core.NewRectF(cfg.Bird.X, s.BirdY, cfg.Bird.Size, cfg.Bird.Size)
}

// hitsPipe reports whether the bird overlaps the pipe's horizontal span while
// outside its gap.
func hitsPipe(bird core.RectF, p Pipe, cfg config.FlappyConfig) bool {
	span := core.NewRectF(p.X, 0, cfg.Obstacles.PipeWidth, cfg.Field.Height)
	if !bird.OverlapsX(span) {
		return false
	}
	return bird.Y < p.TopHeight || bird.Bottom() > cfg.Field.Height-p.BottomHeight
}

// evaluate checks collisions and scoring after a mutation. It is the only
// place that stops an attempt or increments the score. Every pipe is
// inspected independently, so the result does not depend on pipe order.
func evaluate(s *State, cfg config.FlappyConfig) Outcome {
	var out Outcome
	if !s.Running {
		return out
	}

	bird := birdRect(s, cfg)
	for i := range s.Pipes {
		p := &s.Pipes[i]
		if hitsPipe(bird, *p, cfg) {
			out.HitPipe = true
		}
		// Strictly left of the bird; a trailing edge exactly at BirdX has not passed
		if !p.Passed && p.TrailingEdge(cfg.Obstacles.PipeWidth) < cfg.Bird.X {
			p.Passed = true
			out.Scored++
		}
	}
	s.Score += out.Scored

	if s.BirdY >= cfg.GroundY() {
		out.HitFloor = true
	}
	if out.Stopped() {
		s.Running = false
	}
	return out
}
