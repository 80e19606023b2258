package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/habitlit/internal/constants"
	"github.com/julianstephens/habitlit/internal/models"
	"github.com/julianstephens/habitlit/internal/validation"
)

type ListCmd struct {
	IDs bool `help:"Show habit ids."`
}

func (c *ListCmd) Run(ctx *Context) error {
	m, err := ctx.Manager()
	if err != nil {
		return err
	}

	habits := m.Habits()
	if len(habits) == 0 {
		ctx.println("No habits yet. Add one with 'habitlit add NAME'.")
		return nil
	}

	for _, h := range habits {
		mark := "○"
		if h.CompletedToday {
			mark = "✓"
		}
		ctx.printf("  %s %s %s  🔥 %s · %d total", mark, h.Icon, h.Name, h.StreakLabel(), h.TotalCompleted)
		if c.IDs {
			ctx.printf("  [%s]", h.ID)
		}
		ctx.println()
	}
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	m, err := ctx.Manager()
	if err != nil {
		return err
	}

	s := m.Stats()
	ctx.printf("Today:         %d/%d (%d%%)\n", s.CompletedToday, s.TotalHabits, s.CompletionPercent())
	ctx.printf("Best Streak:   %d days\n", s.BestStreak)
	ctx.printf("Total Streaks: %d\n", s.TotalStreak)
	return nil
}

type AddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Icon  string `short:"i" help:"Icon (emoji)." default:"💧"`
	Color string `short:"c" help:"Color token." default:"from-blue-400 to-cyan-400"`
	Image string `help:"Optional image reference."`
}

func (c *AddCmd) Run(ctx *Context) error {
	in := models.NewHabit{Name: c.Name, Icon: c.Icon, Color: c.Color, Image: c.Image}
	if err := validation.ValidateNewHabit(&in); err != nil {
		return err
	}

	m, err := ctx.Manager()
	if err != nil {
		return err
	}
	if _, exists := m.FindByName(in.Name); exists {
		return fmt.Errorf("habit with name %q already exists", in.Name)
	}

	h, err := m.Add(in)
	if err != nil {
		return err
	}
	ctx.printf("Added habit: %s %s (%s)\n", h.Icon, h.Name, h.ID)
	return nil
}

type EditCmd struct {
	Ref        string `arg:"" help:"Habit id or name."`
	Name       string `help:"New name."`
	Icon       string `help:"New icon."`
	Color      string `help:"New color token."`
	Image      string `help:"New image reference."`
	ClearImage bool   `help:"Remove the image."`
}

func (c *EditCmd) Validate() error {
	if c.Image != "" && c.ClearImage {
		return errors.New("--image and --clear-image are mutually exclusive")
	}
	return nil
}

func (c *EditCmd) update() models.HabitUpdate {
	var u models.HabitUpdate
	if c.Name != "" {
		u.Name = &c.Name
	}
	if c.Icon != "" {
		u.Icon = &c.Icon
	}
	if c.Color != "" {
		u.Color = &c.Color
	}
	if c.Image != "" {
		u.Image = &c.Image
	}
	if c.ClearImage {
		empty := ""
		u.Image = &empty
	}
	return u
}

func (c *EditCmd) Run(ctx *Context) error {
	u := c.update()
	if u.IsEmpty() {
		return errors.New("nothing to change, pass at least one of --name, --icon, --color, --image or --clear-image")
	}
	if err := validation.ValidateUpdate(&u); err != nil {
		return err
	}

	m, err := ctx.Manager()
	if err != nil {
		return err
	}
	h, err := resolve(m, c.Ref)
	if err != nil {
		return err
	}
	if u.Name != nil {
		if other, exists := m.FindByName(*u.Name); exists && other.ID != h.ID {
			return fmt.Errorf("habit with name %q already exists", *u.Name)
		}
	}

	if err := m.Edit(h.ID, u); err != nil {
		return err
	}
	h, _ = m.Get(h.ID)
	ctx.printf("Updated habit: %s %s\n", h.Icon, h.Name)
	return nil
}

type ToggleCmd struct {
	Ref string `arg:"" help:"Habit id or name."`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	m, err := ctx.Manager()
	if err != nil {
		return err
	}
	h, err := resolve(m, c.Ref)
	if err != nil {
		return err
	}

	if err := m.Toggle(h.ID); err != nil {
		return err
	}
	h, _ = m.Get(h.ID)
	if h.CompletedToday {
		ctx.printf("✓ %s %s done for today. 🔥 %s\n", h.Icon, h.Name, h.StreakLabel())
	} else {
		ctx.printf("○ %s %s marked as not done. 🔥 %s\n", h.Icon, h.Name, h.StreakLabel())
	}
	return nil
}

type DeleteCmd struct {
	Ref string `arg:"" help:"Habit id or name."`
	Yes bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	m, err := ctx.Manager()
	if err != nil {
		return err
	}
	h, err := resolve(m, c.Ref)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := ctx.confirm(fmt.Sprintf("Delete %s %s? Its streak and history will be lost.", h.Icon, h.Name))
		if err != nil {
			return err
		}
		if !ok {
			ctx.println("Delete cancelled.")
			return nil
		}
	}

	if err := m.Delete(h.ID); err != nil {
		return err
	}
	ctx.printf("Deleted habit: %s\n", h.Name)
	return nil
}

type PaletteCmd struct{}

func (c *PaletteCmd) Run(ctx *Context) error {
	ctx.println("Icons:")
	for _, icon := range constants.Icons {
		ctx.printf("  %s", icon)
	}
	ctx.println()
	ctx.println("Colors:")
	for _, color := range constants.Colors {
		ctx.printf("  %s\n", color)
	}
	ctx.println("Images:")
	for _, img := range constants.Images {
		ctx.printf("  %s\n", img)
	}
	return nil
}
