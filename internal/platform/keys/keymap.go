// Package keys turns terminal key presses into paddle commands.
//
// Terminals report key-down and auto-repeat but never key-up, so a key is
// treated as held while its latest press is younger than a hold window.
package keys

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/paddleball/internal/config"
)

// KeyMap holds the bindings for every paddleball action.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Spawn key.Binding
	Quit  key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys(cfg.Left...), key.WithHelp(first(cfg.Left), "left")),
		Right: key.NewBinding(key.WithKeys(cfg.Right...), key.WithHelp(first(cfg.Right), "right")),
		Spawn: key.NewBinding(key.WithKeys(cfg.Spawn...), key.WithHelp(first(cfg.Spawn), "spawn ball")),
		Quit:  key.NewBinding(key.WithKeys(cfg.Quit...), key.WithHelp(first(cfg.Quit), "quit")),
	}
}

// ShortHelp returns the bindings in display order.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Spawn, km.Quit}
}

// Name is a key name such as "a" or "ctrl+c", for backends whose events
// are not tea.KeyMsg.
type Name string

func (n Name) String() string {
	return string(n)
}

// Describe renders the bindings as a one-line hint.
func (km KeyMap) Describe() string {
	parts := make([]string, 0, 4)
	for _, b := range km.ShortHelp() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ")
}

func first(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
