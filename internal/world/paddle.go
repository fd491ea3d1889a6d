package world

import (
	"math"

	"github.com/vovakirdan/paddleball/internal/core"
)

// Paddle is the player's paddle, centered horizontally on Pos.X with its
// top edge at Pos.Y.
type Paddle struct {
	Pos core.Vec2
	Dir core.Direction
}

func newPaddle() Paddle {
	return Paddle{
		Pos: core.Vec2{X: WindowWidth / 2, Y: WindowHeight - Thickness},
	}
}

// move applies the current direction for dt seconds and hard-clamps the
// paddle between the side walls.
func (p *Paddle) move(dt float64) {
	if p.Dir == core.DirNone {
		return
	}
	p.Pos.X += float64(p.Dir) * PaddleSpeed * dt
	p.Pos.X = core.ClampF(p.Pos.X, PaddleMinX, PaddleMaxX)
}

// covers reports whether x lies within the paddle's horizontal extent.
func (p *Paddle) covers(x float64) bool {
	return math.Abs(p.Pos.X-x) <= PaddleWidth/2
}
