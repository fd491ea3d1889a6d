package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/paddleball.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches
// defaults/paddleball.yaml and is used when the embedded file fails to parse.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Backend: BackendTUI,
			Title:   "paddleball",
			Scale:   1.0,
		},
		Input: InputConfig{
			HoldMS:        150,
			RepeatDelayMS: 600,
			Keys: KeyConfig{
				Left:  []string{"a", "left"},
				Right: []string{"d", "right"},
				Spawn: []string{"r"},
				Quit:  []string{"esc", "ctrl+c"},
			},
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKey:     ".ssh/paddleball_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
		Source: "builtin",
	}
}
