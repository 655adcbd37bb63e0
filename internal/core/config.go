package core

// RuntimeConfig contains process-level settings fixed at startup.
// Grid dimensions live in the game config; this carries scheduling and seeding.
type RuntimeConfig struct {
	TickRate  int   // Simulation ticks per second
	FrameRate int   // Render frames per second
	Seed      int64 // RNG seed for deterministic food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:  60,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}
