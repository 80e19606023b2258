package cli

import (
	"errors"

	"github.com/julianstephens/habitlit/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	m, err := ctx.Manager()
	if err != nil {
		return err
	}

	ctx.println("Validating habits...")
	result := validation.New().WithClock(ctx.now).ValidateHabits(m.Habits())

	ctx.println()
	ctx.println(result.FormatReport())

	if result.HasErrors() {
		return errors.New("habit data has errors")
	}
	return nil
}
