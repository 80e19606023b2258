package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitlit/internal/constants"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 2).
			MarginRight(1)

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	cardValueStyle = lipgloss.NewStyle().
			Bold(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

// swatch renders s in the terminal color mapped to a gradient token.
func swatch(color, s string) string {
	code, ok := constants.ColorSwatches[color]
	if !ok {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code)).Render(s)
}
