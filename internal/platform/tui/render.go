package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/merge2048/internal/core"
)

// Renderer turns screen buffers into styled strings. Its styles are bound to
// one lipgloss renderer, so each SSH session needs its own.
type Renderer struct {
	styles [256]lipgloss.Style
}

// NewRenderer prepares one style per ANSI 256 color. A nil lr uses the
// default lipgloss renderer for the local terminal.
func NewRenderer(lr *lipgloss.Renderer) *Renderer {
	if lr == nil {
		lr = lipgloss.DefaultRenderer()
	}
	r := &Renderer{}
	for i := range r.styles {
		c := core.Color(i)
		if c == core.ColorDefault {
			r.styles[i] = lr.NewStyle()
			continue
		}
		r.styles[i] = lr.NewStyle().Foreground(lipgloss.Color(c.Code()))
	}
	return r
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.styles[color].Render(run.String()))
		}
	}
	return sb.String()
}
