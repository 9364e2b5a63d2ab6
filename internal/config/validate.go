package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the geometry leaves room to play and that both tick
// sources have a positive interval.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %gx%g", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Bird.Size <= 0:
		return fmt.Errorf("%w: bird.size must be positive, got %g", ErrInvalidConfig, c.Bird.Size)
	case c.Bird.X < 0 || c.Bird.X+c.Bird.Size > c.Field.Width:
		return fmt.Errorf("%w: bird.x %g puts the bird outside the field", ErrInvalidConfig, c.Bird.X)
	case c.Bird.StartY < 0 || c.Bird.StartY >= c.GroundY():
		return fmt.Errorf("%w: bird.start_y %g must be in [0, %g)", ErrInvalidConfig, c.Bird.StartY, c.GroundY())
	case c.Obstacles.PipeWidth <= 0:
		return fmt.Errorf("%w: obstacles.pipe_width must be positive, got %g", ErrInvalidConfig, c.Obstacles.PipeWidth)
	case c.Obstacles.GapHeight < c.Bird.Size:
		return fmt.Errorf("%w: obstacles.gap_height %g is smaller than the bird", ErrInvalidConfig, c.Obstacles.GapHeight)
	case c.Obstacles.GapMargin < 0:
		return fmt.Errorf("%w: obstacles.gap_margin must not be negative, got %g", ErrInvalidConfig, c.Obstacles.GapMargin)
	case c.Obstacles.GapHeight+c.Obstacles.GapMargin > c.Field.Height:
		return fmt.Errorf("%w: gap plus margin (%g) exceeds field height %g",
			ErrInvalidConfig, c.Obstacles.GapHeight+c.Obstacles.GapMargin, c.Field.Height)
	case c.Obstacles.StepPx <= 0:
		return fmt.Errorf("%w: obstacles.step_px must be positive, got %g", ErrInvalidConfig, c.Obstacles.StepPx)
	case c.Obstacles.SpawnThresholdPx <= 0:
		return fmt.Errorf("%w: obstacles.spawn_threshold_px must be positive, got %g", ErrInvalidConfig, c.Obstacles.SpawnThresholdPx)
	case c.Physics.TickIntervalMs <= 0 || c.Obstacles.TickIntervalMs <= 0:
		return fmt.Errorf("%w: tick intervals must be positive, got physics=%d obstacles=%d",
			ErrInvalidConfig, c.Physics.TickIntervalMs, c.Obstacles.TickIntervalMs)
	}
	return nil
}
