package keys

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
)

// Timing describes the terminal's key repeat train: a key-down, a pause of
// up to RepeatDelay, then repeats spaced well under Hold.
type Timing struct {
	Hold        time.Duration // gap tolerated between repeats
	RepeatDelay time.Duration // gap tolerated between key-down and the first repeat
}

// TimingFrom reads the timing from the input configuration.
func TimingFrom(cfg config.InputConfig) Timing {
	return Timing{Hold: cfg.Hold(), RepeatDelay: cfg.RepeatDelay()}
}

// keyHold tracks one key's repeat train.
type keyHold struct {
	last      time.Time
	repeating bool
}

// press records an event and reports whether it started a new hold.
func (h *keyHold) press(now time.Time, t Timing) bool {
	continued := h.held(now, t)
	h.last = now
	h.repeating = continued
	return !continued
}

func (h *keyHold) held(now time.Time, t Timing) bool {
	if h.last.IsZero() {
		return false
	}
	window := t.RepeatDelay
	if h.repeating {
		window = t.Hold
	}
	return now.Sub(h.last) < window
}

// HoldSampler accumulates key presses between ticks and reports them as a
// core.Command. Movement keys are level state derived from the repeat
// train; spawn fires once per key-down, never for its repeats.
type HoldSampler struct {
	keys   KeyMap
	timing Timing
	now    func() time.Time

	left  keyHold
	right keyHold
	spawn keyHold

	spawnPending bool
	quit         bool
}

// NewHoldSampler creates a sampler. now defaults to time.Now.
func NewHoldSampler(km KeyMap, t Timing, now func() time.Time) *HoldSampler {
	if now == nil {
		now = time.Now
	}
	return &HoldSampler{keys: km, timing: t, now: now}
}

// Press records one key-down or repeat event. It reports whether the key
// is bound to an action.
func (s *HoldSampler) Press(k fmt.Stringer) bool {
	now := s.now()

	switch {
	case key.Matches(k, s.keys.Quit):
		s.quit = true
	case key.Matches(k, s.keys.Left):
		s.left.press(now, s.timing)
	case key.Matches(k, s.keys.Right):
		s.right.press(now, s.timing)
	case key.Matches(k, s.keys.Spawn):
		if s.spawn.press(now, s.timing) {
			s.spawnPending = true
		}
	default:
		return false
	}
	return true
}

// RequestQuit makes the next Sample report Quit, for close requests that
// do not come from a key.
func (s *HoldSampler) RequestQuit() {
	s.quit = true
}

// Sample reports the accumulated state and consumes one-shot events.
func (s *HoldSampler) Sample() core.Command {
	now := s.now()

	cmd := core.Command{Quit: s.quit, SpawnBall: s.spawnPending}
	// right is checked last and wins when both are held
	if s.left.held(now, s.timing) {
		cmd.PaddleDir = core.DirLeft
	}
	if s.right.held(now, s.timing) {
		cmd.PaddleDir = core.DirRight
	}

	s.spawnPending = false
	return cmd
}

var _ core.Sampler = (*HoldSampler)(nil)
