package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/habitlit/internal/backup"
	"github.com/julianstephens/habitlit/internal/constants"
	"github.com/julianstephens/habitlit/internal/lock"
	"github.com/julianstephens/habitlit/internal/models"
	"github.com/julianstephens/habitlit/internal/storage"
	"github.com/julianstephens/habitlit/internal/storage/sqlite"
	"github.com/julianstephens/habitlit/internal/utils"
	"github.com/julianstephens/habitlit/internal/validation"
)

// errWarning marks a check that found something worth mentioning but not
// a failure.
type errWarning struct{ msg string }

func (e errWarning) Error() string { return e.msg }

func warnf(format string, args ...any) error {
	return errWarning{msg: fmt.Sprintf(format, args...)}
}

type schemaVersioner interface {
	SchemaVersion() (current, latest int, err error)
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	report := func(name string, err error) {
		var w errWarning
		switch {
		case err == nil:
			ctx.printf("✓ %s: OK\n", name)
		case errors.As(err, &w):
			ctx.printf("⚠ %s: WARNING\n", name)
			ctx.printf("   %v\n", err)
		default:
			ctx.printf("❌ %s: FAIL\n", name)
			ctx.printf("   Error: %v\n", err)
			hasError = true
		}
	}

	reachable := checkStoreReachable(ctx)
	report("Storage reachable", reachable)

	if reachable == nil {
		report("Schema version", checkSchemaVersion(ctx))
		report("Data validation", checkData(ctx))
		report("Last saved date", checkMarker(ctx))
	} else {
		ctx.println("⊘ Schema version: SKIPPED (storage not reachable)")
		ctx.println("⊘ Data validation: SKIPPED (storage not reachable)")
	}

	if _, ok := ctx.Store.(*sqlite.Store); ok {
		report("Backups present", checkBackupsPresent(ctx))
	}
	report("Lockfile", checkLock(ctx))
	report("Clock/timezone", checkClockTimezone(ctx))

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	ctx.println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	ctx.loaded = true
	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to query storage: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	sv, ok := ctx.Store.(schemaVersioner)
	if !ok {
		return nil
	}
	current, latest, err := sv.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

// checkData reads the stored collection without going through the manager,
// so nothing is written.
func checkData(ctx *Context) error {
	v := storage.NewValue(ctx.Store, constants.HabitsKey, func() []models.Habit { return nil }, nil)
	habits, src := v.Read()
	switch src {
	case storage.Missing:
		return warnf("no habits stored yet, defaults will be created on first use")
	case storage.Corrupt:
		return errors.New("stored habits cannot be parsed, the next change will overwrite them with defaults")
	case storage.Failed:
		return errors.New("stored habits could not be read from the backend")
	}

	result := validation.New().WithClock(ctx.now).ValidateHabits(habits)
	if result.HasErrors() {
		return errors.New(result.FormatReport())
	}
	if result.HasConflicts() {
		return warnf("%s", result.FormatReport())
	}
	return nil
}

func checkMarker(ctx *Context) error {
	raw, err := ctx.Store.Get(constants.LastSavedDateKey)
	if errors.Is(err, storage.ErrNotFound) {
		return warnf("not recorded yet")
	}
	if err != nil {
		return err
	}

	v := storage.NewValue(ctx.Store, constants.LastSavedDateKey, func() string { return "" }, nil)
	s, src := v.Read()
	if src != storage.FromStore {
		return fmt.Errorf("unreadable value %q", raw)
	}
	t, err := utils.ParseISO(s)
	if err != nil {
		return fmt.Errorf("unparseable timestamp %q", s)
	}
	if t.After(ctx.now().Add(time.Minute)) {
		return warnf("last saved date %s is in the future, daily reset is paused until then", utils.FormatISO(t))
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return warnf("no backups found, consider creating one with 'habitlit backup create'")
	}
	return nil
}

func checkLock(ctx *Context) error {
	if ctx.ConfigDir == "" {
		return nil
	}
	path := lock.Path(ctx.ConfigDir)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	l, err := lock.Acquire(path)
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return warnf("%v", err)
		}
		return err
	}
	return l.Release()
}

func checkClockTimezone(ctx *Context) error {
	now := ctx.now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	loc := ctx.location()
	if loc == time.UTC {
		return warnf("timezone is UTC, days roll over at UTC midnight")
	}
	return nil
}
