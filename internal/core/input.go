package core

// Direction is the horizontal paddle movement intent: -1 left, 0 idle, 1 right.
type Direction int8

const (
	DirLeft  Direction = -1
	DirNone  Direction = 0
	DirRight Direction = 1
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirNone:
		return "None"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Command is the input snapshot for one tick.
// Samplers build it from platform events; the world consumes it without
// knowing which backend produced it.
type Command struct {
	// Quit requests the loop to stop (close request or escape key).
	Quit bool

	// SpawnBall is edge-triggered: true once per key-down of the spawn key.
	SpawnBall bool

	// PaddleDir is the level state of the movement keys at sample time.
	PaddleDir Direction
}

// Sampler produces one Command per tick.
// Implementations must drain all pending platform events before returning.
type Sampler interface {
	Sample() Command
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func() Command

// Sample calls f.
func (f SamplerFunc) Sample() Command {
	return f()
}
