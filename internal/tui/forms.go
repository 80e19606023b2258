package tui

import (
	"fmt"
	"path"
	"slices"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitlit/internal/constants"
	"github.com/julianstephens/habitlit/internal/validation"
)

// withCurrent keeps a value that is not in the palette selectable.
func withCurrent(values []string, current string) []string {
	if current == "" || slices.Contains(values, current) {
		return values
	}
	return append([]string{current}, values...)
}

func iconOptions(current string) []huh.Option[string] {
	return huh.NewOptions(withCurrent(constants.Icons, current)...)
}

func colorOptions(current string) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, c := range withCurrent(constants.Colors, current) {
		opts = append(opts, huh.NewOption(swatch(c, "■")+" "+c, c))
	}
	return opts
}

func imageOptions(current string) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("None", "")}
	for _, img := range withCurrent(constants.Images, current) {
		opts = append(opts, huh.NewOption(path.Base(img), img))
	}
	return opts
}

// NewHabitForm builds the add/edit form. nameFree rejects names already
// taken by another habit.
func NewHabitForm(fm *HabitFormModel, title string, nameFree func(string) error) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("Habit name").
				CharLimit(validation.MaxNameLength).
				Value(&fm.Name).
				Validate(func(s string) error {
					if err := validation.ValidateName(s); err != nil {
						return err
					}
					return nameFree(s)
				}),
			huh.NewSelect[string]().
				Title("Icon").
				Options(iconOptions(fm.Icon)...).
				Value(&fm.Icon),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions(fm.Color)...).
				Value(&fm.Color),
			huh.NewSelect[string]().
				Title("Image").
				Options(imageOptions(fm.Image)...).
				Value(&fm.Image),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(true)
}

func nameTakenError(name string) error {
	return fmt.Errorf("a habit named %q already exists", name)
}
