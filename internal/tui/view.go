package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitlit/internal/constants"
	"github.com/julianstephens/habitlit/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateAddHabit, StateEditHabit:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = docStyle.Render(m.list.View())
	}

	parts := []string{m.viewHeader(), m.viewStats(), content}
	if m.status != "" {
		parts = append(parts, warningStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// chromeHeight is the number of lines around the list.
func chromeHeight(m Model) int {
	h := lipgloss.Height(m.viewHeader()) + lipgloss.Height(m.viewStats()) + lipgloss.Height(m.help.View(m))
	// docStyle padding plus a status line.
	return h + 3
}

func (m Model) viewHeader() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render(constants.AppName),
		dateStyle.Render(utils.FormatLongDate(m.now())),
	)
}

func (m Model) viewStats() string {
	s := m.manager.Stats()
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Today", fmt.Sprintf("%d/%d", s.CompletedToday, s.TotalHabits)),
		card("Best Streak", fmt.Sprintf("%d days", s.BestStreak)),
		card("Total Streaks", fmt.Sprintf("%d", s.TotalStreak)),
	)
}

func card(label, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardLabelStyle.Render(label),
		cardValueStyle.Render(value),
	))
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, max(m.height-chromeHeight(m), 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q?", m.deleteName)),
			"Its streak and history will be lost.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
