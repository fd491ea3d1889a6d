// Package world holds the paddle-and-ball simulation state and its
// per-tick physics. It is pure in-memory mutation: nothing here blocks,
// fails, or touches a platform API.
package world

import "github.com/vovakirdan/paddleball/internal/core"

// Play field geometry, in pixels.
const (
	WindowWidth  = 1024.0
	WindowHeight = 768.0
	Thickness    = 15.0
	PaddleWidth  = 6 * Thickness
)

// PaddleSpeed is the paddle's horizontal speed in pixels per second.
const PaddleSpeed = 800.0

// MaxBalls caps the number of simultaneous balls.
const MaxBalls = 5

// Paddle center limits; the paddle never overlaps the side walls.
const (
	PaddleMinX = Thickness + PaddleWidth/2
	PaddleMaxX = WindowWidth - Thickness - PaddleWidth/2
)

// Frame colors.
var (
	BackgroundColor = core.RGB(124, 199, 232)
	ForegroundColor = core.ColorWhite
)
