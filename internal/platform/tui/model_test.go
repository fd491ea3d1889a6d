package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/gameloop"
	"github.com/vovakirdan/paddleball/internal/platform/keys"
	"github.com/vovakirdan/paddleball/internal/render"
)

// stepClock advances by exactly the requested sleep.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time        { return c.now }
func (c *stepClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func newTestModel() Model {
	cfg := config.Default()
	return NewModel(Options{
		Runtime: core.RuntimeConfig{ScreenW: 64, ScreenH: 24, Seed: 3},
		Keys:    cfg.Input.Keys,
		Timing:  keys.TimingFrom(cfg.Input),
		Clock:   &stepClock{now: time.Unix(0, 0)},
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelTickAdvancesWorld(t *testing.T) {
	m := newTestModel()
	if m.Init() == nil {
		t.Fatal("Init() returned no tick command")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m, cmd := update(t, m, TickMsg(time.Now()))

	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	if m.Loop().Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", m.Loop().Ticks())
	}
	if x := m.Loop().World().Paddle().Pos.X; x <= 512 {
		t.Errorf("paddle X = %v, expected it to move right", x)
	}

	view := m.View()
	if lines := strings.Split(view, "\n"); len(lines) != 24 {
		t.Errorf("View() has %d lines, expected 24", len(lines))
	}
	if !strings.ContainsRune(view, render.HalfBlock) {
		t.Error("View() has no half-block cells")
	}
}

func TestModelQuitKeyStopsOnNextTick(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("key press returned a command; quit must wait for the tick")
	}

	m, cmd = update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("command produced %T, expected tea.QuitMsg", cmd())
	}
	if m.Loop().State() != gameloop.Stopped {
		t.Errorf("State() = %v, expected Stopped", m.Loop().State())
	}
	if m.Loop().Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected no frame after quit", m.Loop().Ticks())
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	m, _ = update(t, m, TickMsg(time.Now()))

	if cols, rows := m.canvas.Size(); cols != 40 || rows != 10 {
		t.Errorf("canvas size = %dx%d, expected 40x10", cols, rows)
	}
	if lines := strings.Split(m.View(), "\n"); len(lines) != 10 {
		t.Errorf("View() has %d lines, expected 10", len(lines))
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.Set(1, 0, core.Cell{Rune: render.HalfBlock, Fg: core.ColorWhite, Bg: core.ColorBlack})

	// tests run without a color profile, so only runes remain
	expected := " ▀ \n   "
	if got := RenderScreen(s); got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestRenderScreenCachesStyles(t *testing.T) {
	s := core.NewScreen(4, 1)
	for x := range 4 {
		s.Set(x, 0, core.Cell{Rune: 'x', Fg: core.RGB(1, 2, 3), Bg: core.RGB(uint8(x%2), 0, 0)})
	}

	sr := newScreenRenderer(nil)
	sr.Render(s)
	if len(sr.styles) != 2 {
		t.Errorf("cached %d styles, expected 2", len(sr.styles))
	}
}

func TestSSHServerConfigFrom(t *testing.T) {
	cfg := config.Default()
	cfg.SSH.Address = "127.0.0.1:2222"
	cfg.SSH.IdleTimeout = time.Minute

	sc := SSHServerConfigFrom(cfg, 99)
	if sc.Address != "127.0.0.1:2222" || sc.IdleTimeout != time.Minute || sc.Seed != 99 {
		t.Errorf("SSHServerConfigFrom() = %+v", sc)
	}
	if sc.Timing.Hold != 150*time.Millisecond || sc.Timing.RepeatDelay != 600*time.Millisecond {
		t.Errorf("Timing = %+v, expected 150ms hold and 600ms repeat delay", sc.Timing)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := SSHServerConfigFrom(config.Default(), 1)
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_ed25519")

	srv, err := NewSSHServer(cfg, nil)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
}
