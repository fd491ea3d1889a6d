// Package term runs paddleball directly on a tcell screen. The game loop
// owns timing; the screen is only read for events and written on present.
package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/gameloop"
	"github.com/vovakirdan/paddleball/internal/platform/keys"
	"github.com/vovakirdan/paddleball/internal/render"
	"github.com/vovakirdan/paddleball/internal/world"
)

// Options configures the term backend.
type Options struct {
	Seed   int64
	Keys   config.KeyConfig
	Timing keys.Timing
	Logger *log.Logger
	Clock  gameloop.Clock
}

// Run takes over the terminal and plays until quit or ctx is done.
func Run(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	return NewSession(screen, opts).Run(ctx)
}

// Session wires a world and loop to an initialized tcell screen.
type Session struct {
	Loop   *gameloop.Loop
	canvas *render.Canvas
	screen tcell.Screen
	styles map[[2]core.Color]tcell.Style
}

// NewSession creates a session on screen. The caller owns Init and Fini.
func NewSession(screen tcell.Screen, opts Options) *Session {
	seed := core.RuntimeConfig{Seed: opts.Seed}.ResolvedSeed(func() int64 { return time.Now().UnixNano() })

	cols, rows := screen.Size()
	s := &Session{
		canvas: render.NewCanvas(int(world.WindowWidth), int(world.WindowHeight), cols, rows),
		screen: screen,
		styles: make(map[[2]core.Color]tcell.Style),
	}
	s.canvas.OnPresent = s.show

	hold := keys.NewHoldSampler(keys.NewKeyMap(opts.Keys), opts.Timing, nil)
	sampler := NewSampler(screen, hold, s.canvas.Resize)

	loopOpts := []gameloop.Option{}
	if opts.Logger != nil {
		loopOpts = append(loopOpts, gameloop.WithLogger(opts.Logger.With("seed", seed, "backend", config.BackendTerm)))
	}
	if opts.Clock != nil {
		loopOpts = append(loopOpts, gameloop.WithClock(opts.Clock))
	}
	s.Loop = gameloop.New(world.New(seed), sampler, s.canvas, loopOpts...)
	return s
}

// Run plays until quit or ctx is done. A done ctx is a normal stop, not
// an error.
func (s *Session) Run(ctx context.Context) error {
	err := s.Loop.Run(ctx)
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return nil
	}
	return err
}

// show copies the presented cell buffer to the terminal.
func (s *Session) show(buf *core.Screen) {
	for y := range buf.Height() {
		for x := range buf.Width() {
			c := buf.GetCell(x, y)
			s.screen.SetContent(x, y, c.Rune, nil, s.style(c.Fg, c.Bg))
		}
	}
	s.screen.Show()
}

func (s *Session) style(fg, bg core.Color) tcell.Style {
	k := [2]core.Color{fg, bg}
	if st, ok := s.styles[k]; ok {
		return st
	}
	st := tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
	s.styles[k] = st
	return st
}

func tcellColor(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
