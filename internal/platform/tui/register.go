package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/platform/keys"
	"github.com/vovakirdan/paddleball/internal/registry"
)

func init() {
	registry.Register(registry.BackendInfo{
		Name:         config.BackendTUI,
		Title:        "Bubble Tea in the current terminal",
		OwnsTerminal: true,
	}, runBackend)
}

func runBackend(ctx context.Context, env registry.Env) error {
	rc := core.DefaultConfig()
	rc.Seed = env.Seed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	p := tea.NewProgram(
		NewModel(Options{
			Runtime: rc,
			Keys:    env.Config.Input.Keys,
			Timing:  keys.TimingFrom(env.Config.Input),
			Logger:  env.Logger,
		}),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return programResult(ctx, err)
}

// programResult treats a program killed by a done ctx (SIGINT, SIGTERM) as
// a normal stop.
func programResult(ctx context.Context, err error) error {
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
