package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/gameloop"
	"github.com/vovakirdan/paddleball/internal/platform/keys"
	"github.com/vovakirdan/paddleball/internal/render"
	"github.com/vovakirdan/paddleball/internal/world"
)

// Options configures a game model.
type Options struct {
	Runtime core.RuntimeConfig
	Keys    config.KeyConfig
	Timing  keys.Timing

	Logger   *log.Logger        // nil discards
	Renderer *lipgloss.Renderer // nil uses the default renderer
	Clock    gameloop.Clock     // nil uses the system clock
}

// Model is the Bubble Tea model for one paddleball session. Tick messages
// drive the game loop; key messages feed the hold sampler in between.
type Model struct {
	loop     *gameloop.Loop
	canvas   *render.Canvas
	sampler  *keys.HoldSampler
	renderer *screenRenderer
	quitting bool
}

// NewModel creates a model with a fresh world.
func NewModel(opts Options) Model {
	seed := opts.Runtime.ResolvedSeed(func() int64 { return time.Now().UnixNano() })

	canvas := render.NewCanvas(int(world.WindowWidth), int(world.WindowHeight),
		opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	sampler := keys.NewHoldSampler(keys.NewKeyMap(opts.Keys), opts.Timing, nil)

	loopOpts := []gameloop.Option{}
	if opts.Logger != nil {
		loopOpts = append(loopOpts, gameloop.WithLogger(opts.Logger.With("seed", seed)))
	}
	if opts.Clock != nil {
		loopOpts = append(loopOpts, gameloop.WithClock(opts.Clock))
	}

	return Model{
		loop:     gameloop.New(world.New(seed), sampler, canvas, loopOpts...),
		canvas:   canvas,
		sampler:  sampler,
		renderer: newScreenRenderer(opts.Renderer),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(gameloop.FrameInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.sampler.Press(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one loop iteration and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.loop.Tick() == gameloop.Stopped {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(gameloop.FrameInterval)
}

// View renders the last presented frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(m.canvas.Screen())
}

// Loop exposes the game loop, mainly for tests.
func (m Model) Loop() *gameloop.Loop {
	return m.loop
}
