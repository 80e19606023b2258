// Package habits owns the habit collection: daily rollover, streak
// accounting and persistence of every change.
package habits

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitlit/internal/constants"
	"github.com/julianstephens/habitlit/internal/logger"
	"github.com/julianstephens/habitlit/internal/models"
	"github.com/julianstephens/habitlit/internal/storage"
	"github.com/julianstephens/habitlit/internal/utils"
)

// Manager holds the ordered habit collection in memory and writes it back
// to the store after every mutation. The in-memory copy is authoritative.
type Manager struct {
	habits *storage.Value[[]models.Habit]
	marker *storage.Value[string]

	items  []models.Habit
	source storage.Source

	now   func() time.Time
	newID func() string
	loc   *time.Location
}

type Option func(*Manager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithIDGenerator replaces the uuid-based id generator.
func WithIDGenerator(gen func() string) Option {
	return func(m *Manager) {
		m.newID = gen
	}
}

// WithLocation sets the timezone that decides where one day ends.
func WithLocation(loc *time.Location) Option {
	return func(m *Manager) {
		if loc != nil {
			m.loc = loc
		}
	}
}

// New loads the collection from store and runs the daily rollover once.
func New(store storage.Provider, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, errors.New("habits: nil store")
	}

	m := &Manager{
		now:   time.Now,
		newID: uuid.NewString,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.habits = storage.NewValue(store, constants.HabitsKey, func() []models.Habit {
		return models.DefaultHabits(m.now())
	}, validateStored)
	m.marker = storage.NewValue(store, constants.LastSavedDateKey, func() string { return "" }, nil)

	m.load()
	m.rollover()

	return m, nil
}

func (m *Manager) load() {
	m.items, m.source = m.habits.Read()
	switch m.source {
	case storage.Missing:
		// Persist the seed so its createdAt stays put across runs.
		if err := m.persist(); err != nil {
			logger.Warn("Failed to persist default habits", "error", err)
		}
	case storage.Corrupt:
		logger.Warn("Stored habits are unusable, showing defaults until the next change")
	case storage.Failed:
		// The stored collection may still be fine; never overwrite it from here.
		logger.Warn("Could not read stored habits, showing defaults until the next change")
	}
}

// rollover clears completedToday when the calendar day has advanced since
// the stored marker, then moves the marker to now. Counters are untouched.
func (m *Manager) rollover() {
	now := m.now()

	last, ok := m.lastSaved()
	if ok && now.After(last) && !utils.SameDay(last, now, m.loc) {
		reset := 0
		for i := range m.items {
			if m.items[i].CompletedToday {
				m.items[i].CompletedToday = false
				reset++
			}
		}
		logger.Info("New day, resetting completions", "last", utils.FormatISO(last), "reset", reset)
		if reset > 0 {
			if err := m.persist(); err != nil {
				logger.Warn("Failed to persist rollover", "error", err)
			}
		}
	}

	if ok && now.Before(last) {
		logger.Warn("Clock is behind the last saved date, keeping marker", "last", utils.FormatISO(last))
		return
	}
	if err := m.marker.Write(utils.FormatISO(now)); err != nil {
		logger.Error("Failed to write last saved date", "error", err)
	}
}

func (m *Manager) lastSaved() (time.Time, bool) {
	raw, src := m.marker.Read()
	if src != storage.FromStore || raw == "" {
		return time.Time{}, false
	}
	t, err := utils.ParseISO(raw)
	if err != nil {
		logger.Warn("Ignoring unparseable last saved date", "value", raw, "error", err)
		return time.Time{}, false
	}
	return t, true
}

// LastSaved returns the stored day marker, if any.
func (m *Manager) LastSaved() (time.Time, bool) {
	return m.lastSaved()
}

// Source reports how the collection was obtained when the manager started.
func (m *Manager) Source() storage.Source {
	return m.source
}

func (m *Manager) persist() error {
	if err := m.habits.Write(m.items); err != nil {
		logger.Error("Failed to persist habits", "error", err)
		return err
	}
	return nil
}

func (m *Manager) indexOf(id string) int {
	for i := range m.items {
		if m.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Toggle flips completedToday. Completing adds one to streak and
// totalCompleted; undoing subtracts one from each, never below zero.
// Unknown ids are ignored.
func (m *Manager) Toggle(id string) error {
	i := m.indexOf(id)
	if i < 0 {
		return nil
	}

	h := &m.items[i]
	if h.CompletedToday {
		h.CompletedToday = false
		h.Streak = max(0, h.Streak-1)
		h.TotalCompleted = max(0, h.TotalCompleted-1)
	} else {
		h.CompletedToday = true
		h.Streak++
		h.TotalCompleted++
	}
	logger.Debug("Toggled habit", "id", id, "completed", h.CompletedToday, "streak", h.Streak)

	return m.persist()
}

// Add appends a new habit with zeroed progress and returns it.
func (m *Manager) Add(in models.NewHabit) (models.Habit, error) {
	h := models.Habit{
		ID:        m.uniqueID(),
		Name:      in.Name,
		Icon:      in.Icon,
		Color:     in.Color,
		Image:     in.Image,
		CreatedAt: m.now(),
	}
	m.items = append(m.items, h)
	logger.Debug("Added habit", "id", h.ID, "name", h.Name)

	return h, m.persist()
}

func (m *Manager) uniqueID() string {
	for {
		id := m.newID()
		if id != "" && m.indexOf(id) < 0 {
			return id
		}
	}
}

// Delete removes the habit with id. Unknown ids are ignored.
func (m *Manager) Delete(id string) error {
	i := m.indexOf(id)
	if i < 0 {
		return nil
	}

	items := make([]models.Habit, 0, len(m.items)-1)
	items = append(items, m.items[:i]...)
	items = append(items, m.items[i+1:]...)
	m.items = items
	logger.Debug("Deleted habit", "id", id)

	return m.persist()
}

// Edit applies the presentational fields of u. Unknown ids are ignored.
func (m *Manager) Edit(id string, u models.HabitUpdate) error {
	i := m.indexOf(id)
	if i < 0 || u.IsEmpty() {
		return nil
	}

	u.Apply(&m.items[i])
	logger.Debug("Edited habit", "id", id)

	return m.persist()
}

// Import replaces the whole collection after checking its invariants.
func (m *Manager) Import(habits []models.Habit) error {
	if err := ValidateCollection(habits); err != nil {
		return err
	}

	m.items = append(make([]models.Habit, 0, len(habits)), habits...)
	logger.Info("Imported habits", "count", len(habits))

	return m.persist()
}

// Stats is derived from the current collection on every call.
func (m *Manager) Stats() models.Stats {
	return models.ComputeStats(m.items)
}

// Habits returns a copy of the collection in display order.
func (m *Manager) Habits() []models.Habit {
	return append([]models.Habit(nil), m.items...)
}

func (m *Manager) Get(id string) (models.Habit, bool) {
	if i := m.indexOf(id); i >= 0 {
		return m.items[i], true
	}
	return models.Habit{}, false
}

// FindByName matches names case-insensitively, ignoring surrounding space.
func (m *Manager) FindByName(name string) (models.Habit, bool) {
	name = strings.TrimSpace(name)
	for _, h := range m.items {
		if strings.EqualFold(strings.TrimSpace(h.Name), name) {
			return h, true
		}
	}
	return models.Habit{}, false
}

// validateStored guards what is read back from the store. Names are not
// checked because Add itself does not validate them.
func validateStored(habits []models.Habit) error {
	if habits == nil {
		return errors.New("habits is null")
	}
	seen := make(map[string]struct{}, len(habits))
	for i, h := range habits {
		if h.ID == "" {
			return fmt.Errorf("habit %d has no id", i)
		}
		if _, dup := seen[h.ID]; dup {
			return fmt.Errorf("duplicate habit id %q", h.ID)
		}
		seen[h.ID] = struct{}{}
		if h.Streak < 0 || h.TotalCompleted < 0 {
			return fmt.Errorf("habit %q has negative counters", h.ID)
		}
	}
	return nil
}

// ValidateCollection checks a full collection supplied from outside, such as
// an import file.
func ValidateCollection(habits []models.Habit) error {
	if err := validateStored(habits); err != nil {
		return err
	}
	for _, h := range habits {
		if strings.TrimSpace(h.Name) == "" {
			return fmt.Errorf("habit %q has an empty name", h.ID)
		}
	}
	return nil
}
