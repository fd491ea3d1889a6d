package term

import (
	"context"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/platform/keys"
	"github.com/vovakirdan/paddleball/internal/registry"
)

func init() {
	registry.Register(registry.BackendInfo{
		Name:         config.BackendTerm,
		Title:        "tcell in the current terminal",
		OwnsTerminal: true,
	}, func(ctx context.Context, env registry.Env) error {
		return Run(ctx, Options{
			Seed:   env.Seed,
			Keys:   env.Config.Input.Keys,
			Timing: keys.TimingFrom(env.Config.Input),
			Logger: env.Logger,
		})
	})
}
