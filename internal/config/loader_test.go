package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	if got, want := embeddedDefault(), DefaultSnakeConfig(); got != want {
		t.Errorf("embedded defaults = %+v, expected %+v", got, want)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("Validate() on defaults failed: %v", err)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("grid:\n  width: 12\nmotion:\n  initial_speed: 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Grid.Width != 12 {
		t.Errorf("Grid.Width = %d, expected 12", cfg.Grid.Width)
	}
	if cfg.Motion.InitialSpeed != 0.5 {
		t.Errorf("InitialSpeed = %v, expected 0.5", cfg.Motion.InitialSpeed)
	}
	// Keys missing from the file keep their defaults.
	def := DefaultSnakeConfig()
	if cfg.Grid.Height != def.Grid.Height || cfg.Timing != def.Timing {
		t.Errorf("unset keys = %+v, expected defaults", cfg)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml")},
		{"malformed yaml", bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadSnake(tt.path); err == nil {
				t.Errorf("LoadSnake(%q) succeeded, expected error", tt.path)
			}
		})
	}
}

func TestLoadSnakeLocalConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("timing:\n  tick_rate: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Timing.TickRate)
	}
}

func TestLoadSnakeFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Chdir(dir)

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("LoadSnake() = %+v, expected defaults", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		valid  bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"minimal grid", func(c *SnakeConfig) { c.Grid = GridConfig{Width: 2, Height: 2} }, true},
		{"narrow grid", func(c *SnakeConfig) { c.Grid.Width = 1 }, false},
		{"zero tick rate", func(c *SnakeConfig) { c.Timing.TickRate = 0 }, false},
		{"negative frame rate", func(c *SnakeConfig) { c.Timing.FrameRate = -1 }, false},
		{"zero speed", func(c *SnakeConfig) { c.Motion.InitialSpeed = 0 }, false},
		{"negative increment", func(c *SnakeConfig) { c.Motion.SpeedIncrement = -0.1 }, false},
		{"max below initial", func(c *SnakeConfig) { c.Motion.MaxSpeed = 0.1 }, false},
		{"max above one cell", func(c *SnakeConfig) { c.Motion.MaxSpeed = 1.5 }, false},
		{"no speed-up", func(c *SnakeConfig) { c.Motion.SpeedIncrement = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPresets(t *testing.T) {
	tests := []struct {
		flag      string
		preset    DifficultyPreset
		speed     float64
		increment float64
	}{
		{"", DifficultyNormal, 0.2, 0.02},
		{"normal", DifficultyNormal, 0.2, 0.02},
		{"easy", DifficultyEasy, 0.1, 0.01},
		{"hard", DifficultyHard, 0.2 * 1.5, 0.02 * 1.5},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset)+tt.flag, func(t *testing.T) {
			preset, err := ParsePreset(tt.flag)
			if err != nil {
				t.Fatalf("ParsePreset(%q) failed: %v", tt.flag, err)
			}
			if preset != tt.preset {
				t.Errorf("ParsePreset(%q) = %v, expected %v", tt.flag, preset, tt.preset)
			}

			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, preset)
			if !approxEqual(cfg.Motion.InitialSpeed, tt.speed) {
				t.Errorf("InitialSpeed = %v, expected %v", cfg.Motion.InitialSpeed, tt.speed)
			}
			if !approxEqual(cfg.Motion.SpeedIncrement, tt.increment) {
				t.Errorf("SpeedIncrement = %v, expected %v", cfg.Motion.SpeedIncrement, tt.increment)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() after preset failed: %v", err)
			}
		})
	}

	if _, err := ParsePreset("fixed"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePreset(\"fixed\") = %v, expected ErrInvalidConfig", err)
	}
}

func TestPresetCapsAtMaxSpeed(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Motion.InitialSpeed = 0.9
	ApplySnakePreset(&cfg, DifficultyHard)
	if cfg.Motion.InitialSpeed != cfg.Motion.MaxSpeed {
		t.Errorf("InitialSpeed = %v, expected capped at %v", cfg.Motion.InitialSpeed, cfg.Motion.MaxSpeed)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Grid.Width = 17
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := parse(data)
	if err != nil {
		t.Fatalf("parse() failed: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, expected %+v", got, cfg)
	}
}

func TestDefaultYAMLParsesToDefaults(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("DefaultYAML() = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}
