package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitlit/internal/constants"
	"github.com/julianstephens/habitlit/internal/habits"
	"github.com/julianstephens/habitlit/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateList SessionState = iota
	StateAddHabit
	StateEditHabit
	StateConfirmDelete
)

// HabitFormModel backs the add and edit forms.
type HabitFormModel struct {
	Name  string
	Icon  string
	Color string
	Image string
}

type Model struct {
	manager *habits.Manager
	now     func() time.Time

	state     SessionState
	keys      KeyMap
	help      help.Model
	list      habitlist.Model
	form      *huh.Form
	habitForm *HabitFormModel

	editingID     string
	habitToDelete string
	deleteName    string
	status        string
	quitting      bool
	width         int
	height        int
}

func NewModel(manager *habits.Manager, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	return Model{
		manager: manager,
		now:     now,
		state:   StateList,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		list:    habitlist.New(manager.Habits(), 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case StateAddHabit, StateEditHabit:
		return []key.Binding{m.keys.Back}
	case StateConfirmDelete:
		return []key.Binding{m.keys.Confirm, m.keys.Cancel}
	}
	return []key.Binding{m.keys.Toggle, m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	if m.state != StateList {
		return [][]key.Binding{m.ShortHelp()}
	}
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down},
		{m.keys.Toggle, m.keys.Add, m.keys.Edit, m.keys.Delete},
		{m.keys.Quit, m.keys.Help},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(constants.AppName)
}

func (m *Model) refresh() {
	m.list.SetHabits(m.manager.Habits())
}
