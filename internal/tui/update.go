package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitlit/internal/constants"
	"github.com/julianstephens/habitlit/internal/habits"
	"github.com/julianstephens/habitlit/internal/models"
	"github.com/julianstephens/habitlit/internal/tui/components/habitlist"
	"github.com/julianstephens/habitlit/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	}

	switch m.state {
	case StateAddHabit, StateEditHabit:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m.updateList(msg)
}

func (m *Model) resize() {
	h := m.height - chromeHeight(*m)
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
	if m.form != nil {
		m.form = m.form.WithWidth(m.width - 4)
	}
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if !m.list.Filtering() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				m.resize()
				return m, nil
			}
		}

	case habitlist.ToggleHabitMsg:
		m.status = saveStatus(m.manager.Toggle(msg.ID))
		m.refresh()
		return m, nil

	case habitlist.AddHabitMsg:
		m.status = ""
		return m, m.openForm(StateAddHabit, "", HabitFormModel{
			Icon:  constants.Icons[0],
			Color: constants.Colors[0],
		})

	case habitlist.EditHabitMsg:
		m.status = ""
		h := msg.Habit
		return m, m.openForm(StateEditHabit, h.ID, HabitFormModel{
			Name:  h.Name,
			Icon:  h.Icon,
			Color: h.Color,
			Image: h.Image,
		})

	case habitlist.DeleteHabitMsg:
		m.status = ""
		m.habitToDelete = msg.Habit.ID
		m.deleteName = msg.Habit.Name
		m.state = StateConfirmDelete
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) openForm(state SessionState, id string, fm HabitFormModel) tea.Cmd {
	m.habitForm = &fm
	m.editingID = id

	title := "New habit"
	if state == StateEditHabit {
		title = "Edit habit"
	}
	manager := m.manager
	m.form = NewHabitForm(m.habitForm, title, func(name string) error {
		return checkName(manager, name, id)
	})
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width - 4)
	}
	m.state = state
	return m.form.Init()
}

func (m *Model) closeForm() {
	m.form = nil
	m.habitForm = nil
	m.editingID = ""
	m.state = StateList
}

// checkName rejects a name used by any habit other than exceptID.
func checkName(manager *habits.Manager, name, exceptID string) error {
	if other, ok := manager.FindByName(name); ok && other.ID != exceptID {
		return nameTakenError(strings.TrimSpace(name))
	}
	return nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.status = saveStatus(m.saveForm())
		m.closeForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

// saveForm applies the submitted form through the manager.
func (m *Model) saveForm() error {
	fm := m.habitForm

	if m.state == StateAddHabit {
		in := models.NewHabit{Name: fm.Name, Icon: fm.Icon, Color: fm.Color, Image: fm.Image}
		if err := validation.ValidateNewHabit(&in); err != nil {
			return err
		}
		if err := checkName(m.manager, in.Name, ""); err != nil {
			return err
		}
		_, err := m.manager.Add(in)
		m.refresh()
		m.list.Select(len(m.manager.Habits()) - 1)
		return err
	}

	u := models.HabitUpdate{Name: &fm.Name, Icon: &fm.Icon, Color: &fm.Color, Image: &fm.Image}
	if err := validation.ValidateUpdate(&u); err != nil {
		return err
	}
	if err := checkName(m.manager, *u.Name, m.editingID); err != nil {
		return err
	}
	err := m.manager.Edit(m.editingID, u)
	m.refresh()
	return err
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		m.status = saveStatus(m.manager.Delete(m.habitToDelete))
		m.refresh()
	case key.Matches(keyMsg, m.keys.Cancel):
	default:
		return m, nil
	}

	m.habitToDelete = ""
	m.deleteName = ""
	m.state = StateList
	return m, nil
}

func saveStatus(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("⚠ %v", err)
}
