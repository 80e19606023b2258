package validation

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/habitlit/internal/constants"
	"github.com/julianstephens/habitlit/internal/models"
)

const MaxNameLength = 64

var (
	ErrEmptyName   = errors.New("name is required")
	ErrNameTooLong = fmt.Errorf("name must be at most %d characters", MaxNameLength)
	ErrEmptyIcon   = errors.New("icon is required")
	ErrEmptyColor  = errors.New("color is required")
)

// ValidateName checks a name as typed into a form or flag.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func ValidateIcon(icon string) error {
	if strings.TrimSpace(icon) == "" {
		return ErrEmptyIcon
	}
	return nil
}

func ValidateColor(color string) error {
	if strings.TrimSpace(color) == "" {
		return ErrEmptyColor
	}
	return nil
}

// ValidateNewHabit trims the input in place and checks every field.
func ValidateNewHabit(in *models.NewHabit) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Icon = strings.TrimSpace(in.Icon)
	in.Color = strings.TrimSpace(in.Color)
	in.Image = strings.TrimSpace(in.Image)

	return errors.Join(ValidateName(in.Name), ValidateIcon(in.Icon), ValidateColor(in.Color))
}

// ValidateUpdate trims the set fields of u in place and checks them.
func ValidateUpdate(u *models.HabitUpdate) error {
	var errs []error
	if u.Name != nil {
		*u.Name = strings.TrimSpace(*u.Name)
		errs = append(errs, ValidateName(*u.Name))
	}
	if u.Icon != nil {
		*u.Icon = strings.TrimSpace(*u.Icon)
		errs = append(errs, ValidateIcon(*u.Icon))
	}
	if u.Color != nil {
		*u.Color = strings.TrimSpace(*u.Color)
		errs = append(errs, ValidateColor(*u.Color))
	}
	if u.Image != nil {
		*u.Image = strings.TrimSpace(*u.Image)
	}
	return errors.Join(errs...)
}

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateID        ConflictType = "duplicate_id"
	ConflictMissingID          ConflictType = "missing_id"
	ConflictDuplicateName      ConflictType = "duplicate_name"
	ConflictEmptyName          ConflictType = "empty_name"
	ConflictNegativeCounter    ConflictType = "negative_counter"
	ConflictStreakExceedsTotal ConflictType = "streak_exceeds_total"
	ConflictFutureCreatedAt    ConflictType = "future_created_at"
	ConflictUnknownPalette     ConflictType = "unknown_palette"
)

// Severity separates data that breaks invariants from cosmetic oddities.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// Conflict represents a problem detected in the habit collection
type Conflict struct {
	Type        ConflictType
	Severity    Severity
	Description string
	HabitIDs    []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// HasErrors returns true if any conflict breaks a data invariant.
func (vr *ValidationResult) HasErrors() bool {
	for _, c := range vr.Conflicts {
		if c.Severity == SeverityError {
			return true
		}
	}
	return false
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range vr.Conflicts {
		prefix := "warning"
		if c.Severity == SeverityError {
			prefix = "error"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", prefix, c.Description)
	}
	return b.String()
}

// Validator checks a habit collection against its invariants.
type Validator struct {
	now func() time.Time
}

// New creates a new Validator
func New() *Validator {
	return &Validator{now: time.Now}
}

// WithClock returns a copy of v that uses now for the future-date check.
func (v *Validator) WithClock(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// ValidateHabits reports every conflict in habits, ordered by collection position.
func (v *Validator) ValidateHabits(habits []models.Habit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	now := v.now()

	idCount := make(map[string]int)
	nameIDs := make(map[string][]string)
	var names []string

	for i, h := range habits {
		label := h.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}

		if h.ID == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingID,
				Severity:    SeverityError,
				Description: fmt.Sprintf("Habit %q has no id", label),
			})
		} else {
			idCount[h.ID]++
			if idCount[h.ID] == 2 {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDuplicateID,
					Severity:    SeverityError,
					Description: fmt.Sprintf("Duplicate habit id: %q", h.ID),
					HabitIDs:    []string{h.ID},
				})
			}
		}

		if strings.TrimSpace(h.Name) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyName,
				Severity:    SeverityError,
				Description: fmt.Sprintf("Habit %q has an empty name", h.ID),
				HabitIDs:    []string{h.ID},
			})
		} else {
			key := strings.ToLower(strings.TrimSpace(h.Name))
			if _, seen := nameIDs[key]; !seen {
				names = append(names, key)
			}
			nameIDs[key] = append(nameIDs[key], h.ID)
		}

		if h.Streak < 0 || h.TotalCompleted < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNegativeCounter,
				Severity:    SeverityError,
				Description: fmt.Sprintf("Habit %q has negative counters (streak %d, total %d)", label, h.Streak, h.TotalCompleted),
				HabitIDs:    []string{h.ID},
			})
		} else if h.Streak > h.TotalCompleted {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictStreakExceedsTotal,
				Severity:    SeverityWarning,
				Description: fmt.Sprintf("Habit %q has a streak (%d) above its total completions (%d)", label, h.Streak, h.TotalCompleted),
				HabitIDs:    []string{h.ID},
			})
		}

		if h.CreatedAt.After(now) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictFutureCreatedAt,
				Severity:    SeverityWarning,
				Description: fmt.Sprintf("Habit %q was created in the future (%s)", label, h.CreatedAt.Format(constants.DateFormat)),
				HabitIDs:    []string{h.ID},
			})
		}

		if !slices.Contains(constants.Icons, h.Icon) || !slices.Contains(constants.Colors, h.Color) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownPalette,
				Severity:    SeverityWarning,
				Description: fmt.Sprintf("Habit %q uses an icon or color outside the built-in palette", label),
				HabitIDs:    []string{h.ID},
			})
		}
	}

	sort.Strings(names)
	for _, name := range names {
		if ids := nameIDs[name]; len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateName,
				Severity:    SeverityWarning,
				Description: fmt.Sprintf("Duplicate habit name: %q (IDs: %v)", name, ids),
				HabitIDs:    ids,
			})
		}
	}

	return result
}
