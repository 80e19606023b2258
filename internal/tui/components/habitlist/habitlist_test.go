package habitlist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitlit/internal/models"
)

func sample() []models.Habit {
	return []models.Habit{
		{ID: "1", Name: "Drink Water", Icon: "💧", Streak: 1, TotalCompleted: 4, CompletedToday: true},
		{ID: "2", Name: "Exercise", Icon: "💪", Streak: 3, TotalCompleted: 9},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestItemRendering(t *testing.T) {
	done := Item{Habit: sample()[0]}
	assert.Equal(t, "✓ 💧 Drink Water", done.Title())
	assert.Equal(t, "🔥 1 day · 4 total", done.Description())

	open := Item{Habit: sample()[1]}
	assert.Equal(t, "○ 💪 Exercise", open.Title())
	assert.Equal(t, "🔥 3 days · 9 total", open.Description())
	assert.Equal(t, "Exercise", open.FilterValue())
}

func TestKeysEmitMessages(t *testing.T) {
	m := New(sample(), 80, 20)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want tea.Msg
	}{
		{"space toggles", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ToggleHabitMsg{ID: "1"}},
		{"enter toggles", tea.KeyMsg{Type: tea.KeyEnter}, ToggleHabitMsg{ID: "1"}},
		{"add", runes("a"), AddHabitMsg{}},
		{"edit", runes("e"), EditHabitMsg{Habit: sample()[0]}},
		{"delete", runes("d"), DeleteHabitMsg{Habit: sample()[0]}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := m.Update(tt.msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}
}

func TestCursorMovesSelection(t *testing.T) {
	m := New(sample(), 80, 20)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	h, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "2", h.ID)

	// Shrinking the list keeps the cursor on a valid row.
	m.SetHabits(sample()[:1])
	h, ok = m.Selected()
	require.True(t, ok)
	assert.Equal(t, "1", h.ID)
}

func TestEmptyList(t *testing.T) {
	m := New(nil, 80, 20)
	assert.Contains(t, m.View(), "No habits yet.")

	_, ok := m.Selected()
	assert.False(t, ok)

	_, cmd := m.Update(runes("d"))
	assert.Nil(t, cmd)

	_, cmd = m.Update(runes("a"))
	require.NotNil(t, cmd)
	assert.Equal(t, AddHabitMsg{}, cmd())
}
