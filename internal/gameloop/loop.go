// Package gameloop runs the sample -> advance -> render cycle with frame
// pacing and a bounded time step.
package gameloop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/world"
)

const (
	// FrameInterval is the minimum time between two ticks (~60 Hz).
	FrameInterval = 16 * time.Millisecond

	// MaxDelta bounds the step fed to the world after a stall
	// (breakpoint, suspend, slow terminal).
	MaxDelta = 50 * time.Millisecond
)

// State is the loop's lifecycle state.
type State int

const (
	Running State = iota
	Stopped
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Loop owns the world for the lifetime of a session and drives it one
// tick at a time. It is single-threaded: Tick and Run must be called from
// one goroutine.
type Loop struct {
	world   *world.World
	sampler core.Sampler
	surface core.Surface
	clock   Clock
	logger  *log.Logger

	state   State
	started bool
	last    time.Time // timestamp of the previous tick
	ticks   uint64
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// WithLogger sets the logger. Without it the loop logs nothing.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// New creates a running loop. The first tick measures its elapsed time
// from the moment New returns.
func New(w *world.World, sampler core.Sampler, surface core.Surface, opts ...Option) *Loop {
	l := &Loop{
		world:   w,
		sampler: sampler,
		surface: surface,
		clock:   SystemClock{},
		state:   Running,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	l.last = l.clock.Now()
	return l
}

// Tick runs one iteration: sample input, wait out the frame interval,
// apply a spawn request, advance physics, draw. A quit command stops the
// loop before anything else happens. Ticking a stopped loop does nothing.
func (l *Loop) Tick() State {
	if l.state == Stopped {
		return l.state
	}
	if !l.started {
		l.started = true
		l.logger.Info("loop started", "frame", FrameInterval, "max_delta", MaxDelta)
	}

	cmd := l.sampler.Sample()
	if cmd.Quit {
		l.stop("quit requested")
		return l.state
	}

	dt := l.waitFrame()

	if cmd.SpawnBall {
		evicted := l.world.SpawnBall()
		l.logger.Debug("ball spawned", "balls", l.world.BallCount(), "evicted", evicted)
	}

	l.world.Advance(dt.Seconds(), cmd)
	l.world.Draw(l.surface)
	l.ticks++

	return l.state
}

// Run ticks until the loop stops or ctx is done. ctx is checked once per
// tick; a tick in progress always completes.
func (l *Loop) Run(ctx context.Context) error {
	for l.state == Running {
		if err := ctx.Err(); err != nil {
			l.stop("context done")
			return err
		}
		l.Tick()
	}
	return nil
}

// Stop moves the loop to Stopped, as a quit command would.
func (l *Loop) Stop() {
	l.stop("stopped by host")
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Ticks returns how many frames have been advanced and drawn.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// World returns the world driven by this loop.
func (l *Loop) World() *world.World {
	return l.world
}

// waitFrame blocks until FrameInterval has passed since the previous
// tick, records the new timestamp, and returns the step to simulate.
func (l *Loop) waitFrame() time.Duration {
	elapsed := l.clock.Now().Sub(l.last)
	for elapsed < FrameInterval {
		l.clock.Sleep(FrameInterval - elapsed)
		elapsed = l.clock.Now().Sub(l.last)
	}
	l.last = l.last.Add(elapsed)

	return min(elapsed, MaxDelta)
}

func (l *Loop) stop(reason string) {
	if l.state == Stopped {
		return
	}
	l.state = Stopped
	l.logger.Info("loop stopped", "reason", reason, "ticks", l.ticks)
}
