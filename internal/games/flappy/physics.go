package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// integrate advances the bird by one physics tick.
//
// With lagged integration the position moves by the velocity from before
// this tick's gravity increment. The top of the field is a floor at 0; the
// ground is left to the evaluator.
func integrate(s *State, p config.PhysicsConfig) {
	prev := s.Velocity
	s.Velocity += p.Gravity

	delta := s.Velocity
	if p.LaggedIntegration {
		delta = prev
	}
	s.BirdY = math.Max(0, s.BirdY+delta)
}

// jump overrides the accumulated velocity with the upward impulse.
func jump(s *State, p config.PhysicsConfig) {
	s.Velocity = p.JumpImpulse
}
