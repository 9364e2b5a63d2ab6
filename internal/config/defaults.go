package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration: a 400x500 field
// ticked every 20ms.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FieldConfig{
			Width:  400,
			Height: 500,
		},
		Bird: BirdConfig{
			X:      50,
			Size:   30,
			StartY: 250,
		},
		Physics: PhysicsConfig{
			Gravity:           0.4,
			JumpImpulse:       -6,
			LaggedIntegration: true,
			TickIntervalMs:    20,
		},
		Obstacles: ObstaclesConfig{
			PipeWidth:        60,
			GapHeight:        150,
			GapMargin:        50,
			StepPx:           3,
			SpawnThresholdPx: 200,
			TickIntervalMs:   20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
