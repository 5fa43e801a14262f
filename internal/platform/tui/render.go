package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// ScreenRenderer converts a Screen buffer to a styled string. Styles are
// cached per color pair; a renderer belongs to one session.
type ScreenRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil r uses the default renderer
// of the local terminal.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

func (sr *ScreenRenderer) style(p colorPair) lipgloss.Style {
	if st, ok := sr.styles[p]; ok {
		return st
	}
	st := sr.renderer.NewStyle()
	if !p.fg.IsZero() {
		st = st.Foreground(lipgloss.Color(p.fg.Hex()))
	}
	if !p.bg.IsZero() {
		st = st.Background(lipgloss.Color(p.bg.Hex()))
	}
	sr.styles[p] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
