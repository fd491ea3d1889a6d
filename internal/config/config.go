// Package config provides YAML-based configuration loading for paddleball.
// Physics is fixed; only the host side (display, input, logging, ssh) is
// configurable.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Display backends.
const (
	BackendTUI    = "tui"
	BackendTerm   = "term"
	BackendWindow = "window"
)

// Backends lists every supported display backend.
var Backends = []string{BackendTUI, BackendTerm, BackendWindow}

// Config is the full paddleball configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`

	// Source names where the config was loaded from.
	Source string `yaml:"-"`
}

// DisplayConfig selects and sizes the host backend.
type DisplayConfig struct {
	Backend string  `yaml:"backend"`
	Title   string  `yaml:"title"`
	Scale   float64 `yaml:"scale"` // window size multiplier
}

// InputConfig holds key bindings and terminal key repeat timing.
type InputConfig struct {
	HoldMS        int       `yaml:"hold_ms"`
	RepeatDelayMS int       `yaml:"repeat_delay_ms"`
	Keys          KeyConfig `yaml:"keys"`
}

// KeyConfig maps each action to one or more key names ("a", "left",
// "esc", "ctrl+c").
type KeyConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Spawn []string `yaml:"spawn"`
	Quit  []string `yaml:"quit"`
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SSHConfig configures the serve command.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Hold returns the longest gap between two repeats of a held key.
func (c InputConfig) Hold() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// RepeatDelay returns the longest pause between a key-down and its first
// repeat.
func (c InputConfig) RepeatDelay() time.Duration {
	return time.Duration(c.RepeatDelayMS) * time.Millisecond
}

// ParsedLevel returns the configured log level, InfoLevel if unparsable.
func (c LogConfig) ParsedLevel() log.Level {
	lvl, err := log.ParseLevel(c.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Validate checks the configuration for values no backend can run with.
func (c Config) Validate() error {
	if !isBackend(c.Display.Backend) {
		return fmt.Errorf("config: unknown display backend %q (want one of %v)", c.Display.Backend, Backends)
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("config: display.scale must be positive, got %v", c.Display.Scale)
	}
	if c.Input.HoldMS <= 0 {
		return fmt.Errorf("config: input.hold_ms must be positive, got %d", c.Input.HoldMS)
	}
	if c.Input.RepeatDelayMS < c.Input.HoldMS {
		return fmt.Errorf("config: input.repeat_delay_ms must be at least hold_ms (%d), got %d",
			c.Input.HoldMS, c.Input.RepeatDelayMS)
	}

	keys := map[string][]string{
		"left":  c.Input.Keys.Left,
		"right": c.Input.Keys.Right,
		"spawn": c.Input.Keys.Spawn,
		"quit":  c.Input.Keys.Quit,
	}
	for _, action := range []string{"left", "right", "spawn", "quit"} {
		if len(keys[action]) == 0 {
			return fmt.Errorf("config: input.keys.%s has no keys", action)
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout must not be negative")
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func isBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}
