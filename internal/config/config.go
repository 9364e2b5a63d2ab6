// Package config provides YAML-based configuration for the flappy simulation:
// play-field geometry, physics constants, pipe parameters and tick intervals.
package config

import "time"

// FlappyConfig contains all configuration for the simulation.
type FlappyConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Bird      BirdConfig      `yaml:"bird"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Seed      int64           `yaml:"seed"` // 0 means seed from the wall clock
}

// FieldConfig defines the play-field size in field units (pixels in the
// window frontend, scaled to cells in the terminal).
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the bird's fixed column, hitbox and spawn height.
type BirdConfig struct {
	X      float64 `yaml:"x"`
	Size   float64 `yaml:"size"`
	StartY float64 `yaml:"start_y"`
}

// PhysicsConfig defines the vertical motion parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every physics tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set on jump (negative = up)
	// LaggedIntegration advances the bird by the velocity from before this
	// tick's gravity increment.
	LaggedIntegration bool `yaml:"lagged_integration"`
	TickIntervalMs    int  `yaml:"tick_interval_ms"`
}

// ObstaclesConfig defines pipe geometry, scroll speed and spawn distance.
type ObstaclesConfig struct {
	PipeWidth        float64 `yaml:"pipe_width"`
	GapHeight        float64 `yaml:"gap_height"`
	GapMargin        float64 `yaml:"gap_margin"` // Space kept below the lowest possible gap
	StepPx           float64 `yaml:"step_px"`
	SpawnThresholdPx float64 `yaml:"spawn_threshold_px"`
	TickIntervalMs   int     `yaml:"tick_interval_ms"`
}

// PhysicsInterval returns the physics tick interval.
func (c FlappyConfig) PhysicsInterval() time.Duration {
	return time.Duration(c.Physics.TickIntervalMs) * time.Millisecond
}

// PipesInterval returns the pipe tick interval.
func (c FlappyConfig) PipesInterval() time.Duration {
	return time.Duration(c.Obstacles.TickIntervalMs) * time.Millisecond
}

// GroundY returns the lowest top-edge position the bird can reach before
// touching the ground.
func (c FlappyConfig) GroundY() float64 {
	return c.Field.Height - c.Bird.Size
}
