package world

import (
	"math/rand"

	"github.com/vovakirdan/paddleball/internal/core"
)

// Ball is a square ball centered on Pos.
type Ball struct {
	Pos core.Vec2
	Vel core.Vec2 // pixels per second
}

// RandomVelocity draws a launch velocity for a new ball.
//
// Vertical speed is always upward, in [-400, -201]. Horizontal speed is
// bimodal, [-399, -200] or [200, 399], so a ball never launches nearly
// straight up.
func RandomVelocity(rng *rand.Rand) core.Vec2 {
	spX := rng.Intn(400)
	spY := rng.Intn(200) - 400

	if spX < 200 {
		spX = -(spX + 200)
	}

	return core.Vec2{X: float64(spX), Y: float64(spY)}
}

// step integrates the ball over dt seconds and applies wall and paddle
// reflections. Reflections flip velocity only; the position is never
// pushed back inside the field.
func (b *Ball) step(dt float64, paddle *Paddle) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	// Side walls
	if (b.Pos.X <= Thickness && b.Vel.X < 0) ||
		(b.Pos.X >= WindowWidth-Thickness && b.Vel.X > 0) {
		b.Vel.X = -b.Vel.X
	}

	// Top wall. There is no bottom wall: a missed ball keeps going.
	if b.Pos.Y <= Thickness && b.Vel.Y < 0 {
		b.Vel.Y = -b.Vel.Y
	}

	// Paddle, single-frame check while moving down
	if paddle.covers(b.Pos.X) &&
		b.Pos.Y >= WindowHeight-Thickness &&
		b.Pos.Y <= WindowHeight &&
		b.Vel.Y > 0 {
		b.Vel.Y = -b.Vel.Y
	}
}
