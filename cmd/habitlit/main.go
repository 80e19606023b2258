package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitlit/internal/cli"
	"github.com/julianstephens/habitlit/internal/config"
	"github.com/julianstephens/habitlit/internal/constants"
	"github.com/julianstephens/habitlit/internal/errors"
	"github.com/julianstephens/habitlit/internal/logger"
	"github.com/julianstephens/habitlit/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Storage location: a .db/.bolt/.json path, a PostgreSQL URL, 'keyring' or ':memory:'." default:"${defaultConfig}" env:"HABITLIT_CONFIG"`
	DebugLog bool   `name:"debug" help:"Log debug output to stderr." env:"HABITLIT_DEBUG"`
	Timezone string `help:"IANA timezone that decides when a day ends." default:"Local" env:"HABITLIT_TIMEZONE"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize habitlit storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	List     cli.ListCmd     `cmd:"" help:"List habits and today's progress."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show today's summary."`
	Add      cli.AddCmd      `cmd:"" help:"Add a habit."`
	Edit     cli.EditCmd     `cmd:"" help:"Edit a habit's name, icon, color or image."`
	Toggle   cli.ToggleCmd   `cmd:"" help:"Mark a habit done for today, or undo it."`
	Delete   cli.DeleteCmd   `cmd:"" help:"Delete a habit."`
	Palette  cli.PaletteCmd  `cmd:"" help:"List the available icons, colors and images."`
	Export   cli.ExportCmd   `cmd:"" help:"Export habits as JSON or YAML."`
	Import   cli.ImportCmd   `cmd:"" help:"Replace habits with an export file."`
	Validate cli.ValidateCmd `cmd:"" help:"Check stored habits for conflicts."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
	Debug    cli.DebugCmd    `cmd:"" help:"Inspect raw storage."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup now."`
		List    cli.BackupListCmd    `cmd:"" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a backup."`
	} `cmd:"" help:"Manage SQLite backups."`
	Keyring struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string."`
		Get    cli.KeyringGetCmd    `cmd:"" help:"Show the stored connection string, password masked."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status cli.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage credentials in the OS keyring."`
}

func main() {
	config.LoadEnv()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily habit tracker with streaks"),
		kong.UsageOnError(),
		kong.Vars{
			"version":       constants.Version,
			"defaultConfig": constants.DefaultConfigPath,
		},
	)

	configDir, err := config.Dir(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: CLI.DebugLog, ConfigDir: configDir}); err != nil {
		errors.Fatal(err)
	}
	logger.Debug("Starting", "version", constants.Version, "command", ctx.Command())

	loc, err := utils.LoadLocation(CLI.Timezone)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		ConfigDir: configDir,
		Location:  loc,
	}
	// Keyring commands manage the credentials OpenStore would need.
	if !strings.HasPrefix(ctx.Command(), "keyring") {
		if appCtx.Store, err = cli.OpenStore(CLI.Config); err != nil {
			errors.Fatal(err)
		}
	}
	err = ctx.Run(appCtx)
	if cerr := appCtx.Close(); cerr != nil {
		logger.Warn("Failed to close storage", "error", cerr)
	}
	errors.Fatal(err)
}
