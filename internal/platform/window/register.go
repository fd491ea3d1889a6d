package window

import (
	"context"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/registry"
)

func init() {
	registry.Register(registry.BackendInfo{
		Name:  config.BackendWindow,
		Title: "Desktop window (ebiten)",
	}, func(ctx context.Context, env registry.Env) error {
		return Run(ctx, Options{
			Seed:   env.Seed,
			Title:  env.Config.Display.Title,
			Scale:  env.Config.Display.Scale,
			Keys:   env.Config.Input.Keys,
			Logger: env.Logger,
		})
	})
}
