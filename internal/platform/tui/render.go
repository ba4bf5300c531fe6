package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kemono/internal/core"
)

// Theme maps core colors to lipgloss styles. It is passed by value to the
// renderer; there is no global palette.
type Theme struct {
	Name   string
	styles map[core.Color]lipgloss.Style
}

// DefaultTheme is the full-color palette.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
			core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
			core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
			core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorGold:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
			core.ColorPink:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		},
	}
}

// MonoTheme drops colors but keeps emphasis, for terminals without color.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	bold := lipgloss.NewStyle().Bold(true)
	return Theme{
		Name: "mono",
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault: plain,
			core.ColorGray:    lipgloss.NewStyle().Faint(true),
			core.ColorGold:    bold,
			core.ColorRed:     bold,
		},
	}
}

// ThemeByName returns the named theme, falling back to the default.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonoTheme()
	}
	return DefaultTheme()
}

// Style returns the style for a color, or the plain style for unmapped ones.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
