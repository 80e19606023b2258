package models

import (
	"testing"
	"time"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		habits   []Habit
		expected Stats
	}{
		{
			name:     "empty collection",
			habits:   nil,
			expected: Stats{},
		},
		{
			name: "best streak is the maximum",
			habits: []Habit{
				{ID: "a", Streak: 2},
				{ID: "b", Streak: 5, CompletedToday: true},
				{ID: "c", Streak: 1},
			},
			expected: Stats{CompletedToday: 1, TotalHabits: 3, TotalStreak: 8, BestStreak: 5},
		},
		{
			name: "all zero streaks",
			habits: []Habit{
				{ID: "a"},
				{ID: "b"},
			},
			expected: Stats{TotalHabits: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.habits)
			if got != tt.expected {
				t.Errorf("ComputeStats() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestCompletionPercent(t *testing.T) {
	if got := (Stats{}).CompletionPercent(); got != 0 {
		t.Errorf("expected 0 for empty stats, got %d", got)
	}
	if got := (Stats{CompletedToday: 1, TotalHabits: 3}).CompletionPercent(); got != 33 {
		t.Errorf("expected 33, got %d", got)
	}
	if got := (Stats{CompletedToday: 2, TotalHabits: 2}).CompletionPercent(); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestHabitUpdateApply(t *testing.T) {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	h := Habit{ID: "1", Name: "Read", Icon: "📚", Color: "c1", Streak: 4, TotalCompleted: 9, CreatedAt: created}

	name := "Read Books"
	image := "/img.jpg"
	HabitUpdate{Name: &name, Image: &image}.Apply(&h)

	if h.Name != "Read Books" || h.Image != "/img.jpg" {
		t.Errorf("update not applied: %+v", h)
	}
	if h.Icon != "📚" || h.Color != "c1" {
		t.Errorf("unset fields changed: %+v", h)
	}
	if h.ID != "1" || h.Streak != 4 || h.TotalCompleted != 9 || !h.CreatedAt.Equal(created) {
		t.Errorf("immutable fields changed: %+v", h)
	}
}

func TestStreakLabel(t *testing.T) {
	cases := map[int]string{0: "0 days", 1: "1 day", 7: "7 days"}
	for streak, want := range cases {
		if got := (Habit{Streak: streak}).StreakLabel(); got != want {
			t.Errorf("StreakLabel(%d) = %q, want %q", streak, got, want)
		}
	}
}

func TestDefaultHabits(t *testing.T) {
	now := time.Now()
	habits := DefaultHabits(now)
	if len(habits) != 3 {
		t.Fatalf("expected 3 seed habits, got %d", len(habits))
	}
	names := []string{"Drink Water", "Exercise", "Read Books"}
	for i, h := range habits {
		if h.Name != names[i] {
			t.Errorf("habit %d: expected %q, got %q", i, names[i], h.Name)
		}
		if h.Streak != 0 || h.TotalCompleted != 0 || h.CompletedToday {
			t.Errorf("habit %d: expected zeroed progress, got %+v", i, h)
		}
		if !h.CreatedAt.Equal(now) {
			t.Errorf("habit %d: unexpected createdAt %v", i, h.CreatedAt)
		}
	}
}
