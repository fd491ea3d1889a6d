package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/platform/keys"
)

// Sampler drains the tcell event queue each tick and reports the
// resulting command.
type Sampler struct {
	screen   tcell.Screen
	hold     *keys.HoldSampler
	onResize func(cols, rows int)
}

// NewSampler creates a sampler reading from screen.
func NewSampler(screen tcell.Screen, hold *keys.HoldSampler, onResize func(cols, rows int)) *Sampler {
	return &Sampler{screen: screen, hold: hold, onResize: onResize}
}

// Sample handles every pending event without blocking, then samples the
// key state.
func (s *Sampler) Sample() core.Command {
	for s.screen.HasPendingEvent() {
		s.handle(s.screen.PollEvent())
	}
	return s.hold.Sample()
}

func (s *Sampler) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if name := keyName(ev); name != "" {
			s.hold.Press(name)
		}
	case *tcell.EventResize:
		s.screen.Sync()
		if s.onResize != nil {
			s.onResize(ev.Size())
		}
	case nil:
		// screen finalized
		s.hold.RequestQuit()
	}
}

// keyName converts a tcell key event to the names used in key bindings.
func keyName(ev *tcell.EventKey) keys.Name {
	switch ev.Key() {
	case tcell.KeyRune:
		return keys.Name(string(unicode.ToLower(ev.Rune())))
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEnter:
		return "enter"
	}
	return ""
}

var _ core.Sampler = (*Sampler)(nil)
