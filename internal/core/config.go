package core

// RuntimeConfig contains settings a backend passes to the world at startup.
type RuntimeConfig struct {
	ScreenW int   // Host surface width (cells for terminals, pixels for windows)
	ScreenH int   // Host surface height
	Seed    int64 // RNG seed for ball velocities; 0 means time based
}

// DefaultConfig returns a RuntimeConfig sized for a standard terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}

// ResolvedSeed returns Seed, or a time-based seed when Seed is 0.
func (c RuntimeConfig) ResolvedSeed(now func() int64) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now()
}
