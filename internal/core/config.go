package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for spawn positions

	// FixedStep, when positive, replaces the measured frame delta with a
	// constant. Used for deterministic test runs and the headless simulator.
	FixedStep time.Duration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameInterval returns the wall-clock period between frames.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// FrameDelta returns the delta to feed into the simulation for a frame
// that took measured wall time.
func (c RuntimeConfig) FrameDelta(measured time.Duration) time.Duration {
	if c.FixedStep > 0 {
		return c.FixedStep
	}
	if measured < 0 {
		return 0
	}
	return measured
}
