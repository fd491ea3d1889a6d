package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/registry"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play paddleball locally",
	Long: `Start a local game.

Backends:
  tui     - Bubble Tea in the current terminal (default)
  term    - tcell directly in the current terminal
  window  - Desktop window at 1024x768 (times display.scale)

Terminals never report key releases, so the terminal backends treat a key
as held for input.repeat_delay_ms after it goes down and for input.hold_ms
after each repeat.

Examples:
  paddleball play
  paddleball play --backend term
  paddleball play --backend window --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "", "Display backend: tui, term, window")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagBackend)
	if err != nil {
		return err
	}

	info, run, err := registry.Lookup(cfg.Display.Backend)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, !info.OwnsTerminal)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded", "source", cfg.Source, "backend", info.Name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, registry.Env{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})
}

// loadConfig loads the configuration and applies a backend override.
func loadConfig(backend string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if backend != "" {
		cfg.Display.Backend = backend
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
