package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paddleball/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// screenRenderer converts a Screen buffer to styled text. Styles are cached
// per foreground/background pair since a frame uses only a handful.
type screenRenderer struct {
	r      *lipgloss.Renderer
	styles map[colorPair]lipgloss.Style
}

func newScreenRenderer(r *lipgloss.Renderer) *screenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &screenRenderer{r: r, styles: make(map[colorPair]lipgloss.Style)}
}

func (sr *screenRenderer) style(p colorPair) lipgloss.Style {
	if st, ok := sr.styles[p]; ok {
		return st
	}
	st := sr.r.NewStyle().
		Foreground(lipgloss.Color(p.fg.Hex())).
		Background(lipgloss.Color(p.bg.Hex()))
	sr.styles[p] = st
	return st
}

// Render groups adjacent cells with the same colors to minimize ANSI
// escape sequences.
func (sr *screenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*3 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{cell.Fg, cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Fg, cell.Bg}) != pair {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(sr.style(pair).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default lipgloss renderer.
func RenderScreen(s *core.Screen) string {
	return newScreenRenderer(nil).Render(s)
}
