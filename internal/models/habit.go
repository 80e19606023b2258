package models

import (
	"fmt"
	"time"
)

// Habit represents a daily practice and its completion progress
type Habit struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Icon           string    `json:"icon" yaml:"icon"`
	Color          string    `json:"color" yaml:"color"`
	Image          string    `json:"image,omitempty" yaml:"image,omitempty"`
	Streak         int       `json:"streak" yaml:"streak"`
	CompletedToday bool      `json:"completedToday" yaml:"completedToday"`
	TotalCompleted int       `json:"totalCompleted" yaml:"totalCompleted"`
	CreatedAt      time.Time `json:"createdAt" yaml:"createdAt"`
}

// NewHabit holds the caller-supplied fields of a habit being added.
// Everything else is assigned by the manager.
type NewHabit struct {
	Name  string
	Icon  string
	Color string
	Image string
}

// HabitUpdate is a partial edit. Nil fields are left untouched.
type HabitUpdate struct {
	Name  *string
	Icon  *string
	Color *string
	Image *string
}

// IsEmpty reports whether the update would change nothing.
func (u HabitUpdate) IsEmpty() bool {
	return u.Name == nil && u.Icon == nil && u.Color == nil && u.Image == nil
}

// Apply copies the set fields of u onto h.
func (u HabitUpdate) Apply(h *Habit) {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Icon != nil {
		h.Icon = *u.Icon
	}
	if u.Color != nil {
		h.Color = *u.Color
	}
	if u.Image != nil {
		h.Image = *u.Image
	}
}

// Progress is the completion percentage for the current day.
func (h Habit) Progress() int {
	if h.CompletedToday {
		return 100
	}
	return 0
}

// StreakLabel renders the streak as "1 day" / "N days".
func (h Habit) StreakLabel() string {
	if h.Streak == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", h.Streak)
}

// Stats summarizes a habit collection. It is always derived, never stored.
type Stats struct {
	CompletedToday int `json:"completedToday" yaml:"completedToday"`
	TotalHabits    int `json:"totalHabits" yaml:"totalHabits"`
	TotalStreak    int `json:"totalStreak" yaml:"totalStreak"`
	BestStreak     int `json:"bestStreak" yaml:"bestStreak"`
}

// ComputeStats derives Stats from habits. BestStreak is 0 for an empty slice.
func ComputeStats(habits []Habit) Stats {
	stats := Stats{TotalHabits: len(habits)}
	for _, h := range habits {
		if h.CompletedToday {
			stats.CompletedToday++
		}
		stats.TotalStreak += h.Streak
		if h.Streak > stats.BestStreak {
			stats.BestStreak = h.Streak
		}
	}
	return stats
}

// CompletionPercent returns the share of habits completed today, 0-100.
func (s Stats) CompletionPercent() int {
	if s.TotalHabits == 0 {
		return 0
	}
	return s.CompletedToday * 100 / s.TotalHabits
}

// DefaultHabits returns the seed collection shown on first use.
func DefaultHabits(now time.Time) []Habit {
	return []Habit{
		{
			ID:        "1",
			Name:      "Drink Water",
			Icon:      "💧",
			Color:     "from-blue-400 to-cyan-400",
			Image:     "/3d-rendering-young-tiger.jpg",
			CreatedAt: now,
		},
		{
			ID:        "2",
			Name:      "Exercise",
			Icon:      "💪",
			Color:     "from-orange-400 to-red-400",
			Image:     "/cartoon-animated-penguin-with-headphones.jpg",
			CreatedAt: now,
		},
		{
			ID:        "3",
			Name:      "Read Books",
			Icon:      "📚",
			Color:     "from-purple-400 to-pink-400",
			CreatedAt: now,
		},
	}
}
