package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
)

// keyState is the slice of ebiten's input API the sampler reads.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Closing() bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) Closing() bool                 { return ebiten.IsWindowBeingClosed() }

// Sampler reads true key levels from ebiten. It must be sampled from
// within Update, where ebiten has already collected the frame's input.
type Sampler struct {
	state keyState

	left  []ebiten.Key
	right []ebiten.Key
	spawn []ebiten.Key
	quit  []ebiten.Key
}

// NewSampler resolves the configured bindings to ebiten keys.
func NewSampler(cfg config.KeyConfig) (*Sampler, error) {
	return newSampler(cfg, ebitenKeys{})
}

func newSampler(cfg config.KeyConfig, state keyState) (*Sampler, error) {
	s := &Sampler{state: state}

	var err error
	if s.left, err = parseKeys(cfg.Left); err != nil {
		return nil, err
	}
	if s.right, err = parseKeys(cfg.Right); err != nil {
		return nil, err
	}
	if s.spawn, err = parseKeys(cfg.Spawn); err != nil {
		return nil, err
	}
	if s.quit, err = parseKeys(cfg.Quit); err != nil {
		return nil, err
	}
	return s, nil
}

// Sample implements core.Sampler.
func (s *Sampler) Sample() core.Command {
	cmd := core.Command{
		Quit:      s.state.Closing() || s.any(s.state.JustPressed, s.quit),
		SpawnBall: s.any(s.state.JustPressed, s.spawn),
	}
	if s.any(s.state.Pressed, s.left) {
		cmd.PaddleDir = core.DirLeft
	}
	if s.any(s.state.Pressed, s.right) {
		cmd.PaddleDir = core.DirRight
	}
	return cmd
}

func (s *Sampler) any(fn func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if fn(k) {
			return true
		}
	}
	return false
}

var _ core.Sampler = (*Sampler)(nil)
