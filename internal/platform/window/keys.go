package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyNames maps binding names to ebiten keys. Terminal-only names such as
// "ctrl+c" have no entry and are skipped.
var keyNames = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"esc":   ebiten.KeyEscape,
	"enter": ebiten.KeyEnter,
	"space": ebiten.KeySpace,
	" ":     ebiten.KeySpace,
	"tab":   ebiten.KeyTab,
}

// parseKeys resolves binding names. At least one name must resolve.
func parseKeys(names []string) ([]ebiten.Key, error) {
	out := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		if k, ok := keyNames[strings.ToLower(name)]; ok {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("window: no usable key in %v", names)
	}
	return out, nil
}
