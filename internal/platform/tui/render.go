package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/firewall/internal/core"
)

// palette maps core.Color to terminal colors. ColorDefault has no entry and
// leaves the terminal's own color in place.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:      lipgloss.Color("1"),
	core.ColorGreen:    lipgloss.Color("2"),
	core.ColorYellow:   lipgloss.Color("3"),
	core.ColorMagenta:  lipgloss.Color("5"),
	core.ColorCyan:     lipgloss.Color("6"),
	core.ColorWhite:    lipgloss.Color("7"),
	core.ColorGray:     lipgloss.Color("245"),
	core.ColorDarkGray: lipgloss.Color("236"),
	core.ColorBlack:    lipgloss.Color("16"),
}

type colorPair struct {
	fg, bg core.Color
}

// Renderer turns screen buffers into styled strings, caching one style per
// color pair. Use one Renderer per output: over SSH each session needs styles
// built for its own terminal.
type Renderer struct {
	base   *lipgloss.Renderer
	styles map[colorPair]lipgloss.Style
}

// NewRenderer creates a renderer on top of a lipgloss renderer. A nil base
// uses lipgloss's default renderer for stdout.
func NewRenderer(base *lipgloss.Renderer) *Renderer {
	if base == nil {
		base = lipgloss.DefaultRenderer()
	}
	return &Renderer{base: base, styles: make(map[colorPair]lipgloss.Style)}
}

func (r *Renderer) style(p colorPair) lipgloss.Style {
	if s, ok := r.styles[p]; ok {
		return s
	}
	s := r.base.NewStyle()
	if c, ok := palette[p.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := palette[p.bg]; ok {
		s = s.Background(c)
	}
	r.styles[p] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			pair := colorPair{start.Fg, start.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if pair == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(pair).Render(run.String()))
		}
	}
	return sb.String()
}
