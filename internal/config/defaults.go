package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  32,
			Height: 32,
		},
		Timing: TimingConfig{
			TickRate:  60,
			FrameRate: 60,
		},
		Motion: MotionConfig{
			InitialSpeed:   0.2,
			SpeedIncrement: 0.02,
			MaxSpeed:       1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
