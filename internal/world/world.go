package world

import (
	"math/rand"

	"github.com/vovakirdan/paddleball/internal/core"
)

// Spawn points for the two balls a new world starts with.
var (
	initialSpawns = []core.Vec2{
		{X: WindowWidth * 3 / 4, Y: WindowHeight / 2},
		{X: WindowWidth / 4, Y: WindowHeight / 2},
	}
	centerSpawn = core.Vec2{X: WindowWidth / 2, Y: WindowHeight / 2}
)

// World owns the paddle and the ordered ball collection.
// It is not safe for concurrent use; the game loop is its only owner.
type World struct {
	paddle Paddle
	balls  ballRing
	rng    *rand.Rand
}

// New creates a world seeded with seed, holding the paddle at the bottom
// center and two balls with random velocities.
func New(seed int64) *World {
	w := &World{}
	w.Reset(seed)
	return w
}

// Reset restores the startup state with a fresh RNG.
func (w *World) Reset(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
	w.paddle = newPaddle()
	w.balls.Clear()
	for _, pos := range initialSpawns {
		w.balls.PushFront(Ball{Pos: pos, Vel: RandomVelocity(w.rng)})
	}
}

// SpawnBall inserts a ball at the field center at the front of the
// collection. When the collection is full the oldest ball (the back) is
// evicted first; evicted reports whether that happened.
func (w *World) SpawnBall() (evicted bool) {
	if w.balls.Full() {
		w.balls.PopBack()
		evicted = true
	}
	w.balls.PushFront(Ball{Pos: centerSpawn, Vel: RandomVelocity(w.rng)})
	return evicted
}

// Advance moves the world forward by dt seconds using cmd's paddle
// direction. dt is used as given; callers bound it.
func (w *World) Advance(dt float64, cmd core.Command) {
	w.paddle.Dir = cmd.PaddleDir
	w.paddle.move(dt)

	for i := 0; i < w.balls.Len(); i++ {
		w.balls.At(i).step(dt, &w.paddle)
	}
}

// BallCount returns the number of live balls.
func (w *World) BallCount() int {
	return w.balls.Len()
}

// Ball returns a pointer to the i-th ball, front (newest) first.
// It panics if i is out of range.
func (w *World) Ball(i int) *Ball {
	if i < 0 || i >= w.balls.Len() {
		panic("world: ball index out of range")
	}
	return w.balls.At(i)
}

// Balls returns a copy of the balls, front (newest) first.
func (w *World) Balls() []Ball {
	out := make([]Ball, w.balls.Len())
	for i := range out {
		out[i] = *w.balls.At(i)
	}
	return out
}

// Paddle returns a pointer to the paddle.
func (w *World) Paddle() *Paddle {
	return &w.paddle
}
