// Package window runs paddleball in a desktop window through ebiten.
// Ebiten's Update drives one loop tick; Draw replays the last presented
// frame, so extra Draw calls between ticks are harmless.
package window

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/gameloop"
	"github.com/vovakirdan/paddleball/internal/render"
	"github.com/vovakirdan/paddleball/internal/world"
)

// Options configures the window backend.
type Options struct {
	Seed    int64
	Title   string
	Scale   float64
	Keys    config.KeyConfig
	Logger  *log.Logger
	Clock   gameloop.Clock
	Sampler core.Sampler // nil reads the configured keys from ebiten
}

// Game adapts the game loop to ebiten.Game.
type Game struct {
	ctx  context.Context
	loop *gameloop.Loop
	rec  *render.Recorder
}

// NewGame creates a game with a fresh world. The game ends when ctx is
// done, as if the player had quit.
func NewGame(ctx context.Context, opts Options) (*Game, error) {
	sampler := opts.Sampler
	if sampler == nil {
		s, err := NewSampler(opts.Keys)
		if err != nil {
			return nil, err
		}
		sampler = s
	}

	seed := core.RuntimeConfig{Seed: opts.Seed}.ResolvedSeed(func() int64 { return time.Now().UnixNano() })

	loopOpts := []gameloop.Option{}
	if opts.Logger != nil {
		loopOpts = append(loopOpts, gameloop.WithLogger(opts.Logger.With("seed", seed, "backend", config.BackendWindow)))
	}
	if opts.Clock != nil {
		loopOpts = append(loopOpts, gameloop.WithClock(opts.Clock))
	}

	rec := render.NewRecorder()
	return &Game{
		ctx:  ctx,
		loop: gameloop.New(world.New(seed), sampler, rec, loopOpts...),
		rec:  rec,
	}, nil
}

// Update runs one loop tick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		g.loop.Stop()
	}
	if g.loop.Tick() == gameloop.Stopped {
		return ebiten.Termination
	}
	return nil
}

// Draw replays the last presented frame onto screen. Before the first
// tick there is no frame yet and only the background is shown.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.rec.Presents() == 0 {
		imageSurface{screen}.Clear(world.BackgroundColor)
		return
	}
	g.rec.Last().Replay(imageSurface{screen})
}

// Layout fixes the logical screen at the world size; ebiten scales it to
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(world.WindowWidth), int(world.WindowHeight)
}

// Loop returns the game loop.
func (g *Game) Loop() *gameloop.Loop {
	return g.loop
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, opts Options) error {
	g, err := NewGame(ctx, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(world.WindowWidth*opts.Scale), int(world.WindowHeight*opts.Scale))
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// imageSurface draws onto an ebiten image.
type imageSurface struct {
	img *ebiten.Image
}

func (s imageSurface) Clear(c core.Color) {
	s.img.Fill(rgba(c))
}

func (s imageSurface) FillRect(r core.Rect, c core.Color) {
	b := s.img.Bounds()
	r = r.Intersect(core.NewRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy()))
	if r.Empty() {
		return
	}
	sub := s.img.SubImage(image.Rect(r.X, r.Y, r.Right(), r.Bottom())).(*ebiten.Image)
	sub.Fill(rgba(c))
}

// Present is a no-op; ebiten shows the screen after Draw returns.
func (s imageSurface) Present() {}

func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
