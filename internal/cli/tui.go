package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitlit/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	m, err := ctx.Manager()
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	now := func() time.Time { return ctx.now().In(ctx.location()) }
	p := tea.NewProgram(tui.NewModel(m, now), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
