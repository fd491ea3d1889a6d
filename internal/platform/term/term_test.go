package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/gameloop"
	"github.com/vovakirdan/paddleball/internal/platform/keys"
	"github.com/vovakirdan/paddleball/internal/render"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time        { return c.now }
func (c *stepClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func newTestSession(t *testing.T) (*Session, tcell.SimulationScreen) {
	t.Helper()
	screen := newSimScreen(t)
	cfg := config.Default()
	s := NewSession(screen, Options{
		Seed:   5,
		Keys:   cfg.Input.Keys,
		Timing: keys.TimingFrom(cfg.Input),
		Clock:  &stepClock{now: time.Unix(0, 0)},
	})
	return s, screen
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a"},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), "d"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc"},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "ctrl+c"},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "left"},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), "right"},
		{"unmapped", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyName(tt.ev).String(); got != tt.expected {
				t.Errorf("keyName() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSessionTickDrawsFrame(t *testing.T) {
	s, screen := newTestSession(t)

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	if got := s.Loop.Tick(); got != gameloop.Running {
		t.Fatalf("Tick() = %v, expected Running", got)
	}

	if x := s.Loop.World().Paddle().Pos.X; x <= 512 {
		t.Errorf("paddle X = %v, expected it to move right", x)
	}

	cells, w, h := screen.GetContents()
	if w != 80 || h != 24 {
		t.Fatalf("screen size = %dx%d, expected 80x24", w, h)
	}
	if len(cells[0].Runes) == 0 || cells[0].Runes[0] != render.HalfBlock {
		t.Errorf("top-left cell = %q, expected half block", cells[0].Runes)
	}
}

func TestSessionQuitKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
	}{
		{"escape", tcell.KeyEscape},
		{"ctrl+c", tcell.KeyCtrlC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, screen := newTestSession(t)

			screen.InjectKey(tt.key, 0, tcell.ModNone)
			if got := s.Loop.Tick(); got != gameloop.Stopped {
				t.Errorf("Tick() = %v, expected Stopped", got)
			}
			if s.Loop.Ticks() != 0 {
				t.Errorf("Ticks() = %d, expected 0", s.Loop.Ticks())
			}
		})
	}
}

func TestSessionRunUntilQuit(t *testing.T) {
	s, screen := newTestSession(t)

	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	s.Loop.Tick()
	if n := s.Loop.World().BallCount(); n != 3 {
		t.Fatalf("BallCount() = %d, expected 3", n)
	}

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if s.Loop.State() != gameloop.Stopped {
		t.Errorf("State() = %v, expected Stopped", s.Loop.State())
	}
}

func TestTcellColor(t *testing.T) {
	c := tcellColor(core.RGB(124, 199, 232))
	r, g, b := c.RGB()
	if r != 124 || g != 199 || b != 232 {
		t.Errorf("RGB() = (%d,%d,%d), expected (124,199,232)", r, g, b)
	}
}

func TestSessionRunCancelledIsCleanStop(t *testing.T) {
	s, _ := newTestSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Run(ctx); err != nil {
		t.Errorf("Run() error = %v, expected nil for a cancelled context", err)
	}
	if s.Loop.State() != gameloop.Stopped {
		t.Errorf("State() = %v, expected Stopped", s.Loop.State())
	}
}
