// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
// Values are fixed at process start.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Motion MotionConfig `yaml:"motion"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the independent tick and frame schedules.
type TimingConfig struct {
	TickRate  int `yaml:"tick_rate"`  // Simulation ticks per second
	FrameRate int `yaml:"frame_rate"` // Render frames per second
}

// MotionConfig defines snake speed and its growth policy.
// Speeds are in cells per tick; each food adds SpeedIncrement up to MaxSpeed.
type MotionConfig struct {
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	MaxSpeed       float64 `yaml:"max_speed"`
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Width < 2 || c.Grid.Height < 2:
		return fmt.Errorf("%w: grid must be at least 2x2, got %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Timing.TickRate)
	case c.Timing.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalidConfig, c.Timing.FrameRate)
	case c.Motion.InitialSpeed <= 0:
		return fmt.Errorf("%w: initial_speed must be positive, got %g", ErrInvalidConfig, c.Motion.InitialSpeed)
	case c.Motion.SpeedIncrement < 0:
		return fmt.Errorf("%w: speed_increment must not be negative, got %g", ErrInvalidConfig, c.Motion.SpeedIncrement)
	case c.Motion.MaxSpeed < c.Motion.InitialSpeed:
		return fmt.Errorf("%w: max_speed %g below initial_speed %g", ErrInvalidConfig, c.Motion.MaxSpeed, c.Motion.InitialSpeed)
	case c.Motion.MaxSpeed > 1:
		// Faster than a cell per tick would let the head skip cells.
		return fmt.Errorf("%w: max_speed must not exceed 1 cell per tick, got %g", ErrInvalidConfig, c.Motion.MaxSpeed)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}

// presetScale returns the factor applied to speed and speed increment.
func presetScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}
