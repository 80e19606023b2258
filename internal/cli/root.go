package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/habitlit/internal/backup"
	"github.com/julianstephens/habitlit/internal/habits"
	"github.com/julianstephens/habitlit/internal/lock"
	"github.com/julianstephens/habitlit/internal/logger"
	"github.com/julianstephens/habitlit/internal/models"
	"github.com/julianstephens/habitlit/internal/storage"
	"github.com/julianstephens/habitlit/internal/storage/sqlite"
)

// Context is handed to every command's Run method.
type Context struct {
	Store storage.Provider
	// ConfigDir holds the lockfile. Locking is skipped when empty.
	ConfigDir string
	Location  *time.Location
	Now       func() time.Time

	Out io.Writer
	In  io.Reader

	manager *habits.Manager
	lock    *lock.Lock
	loaded  bool
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

func (c *Context) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *Context) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// Load opens the store, creating it on first use.
func (c *Context) Load() error {
	if c.loaded {
		return nil
	}
	err := c.Store.Load()
	if errors.Is(err, storage.ErrNotInitialized) {
		logger.Info("Storage not found, initializing", "path", c.Store.GetConfigPath())
		err = c.Store.Init()
	}
	if err != nil {
		return err
	}
	c.loaded = true
	return nil
}

// Manager loads the store, takes the single-writer lock and builds the
// habit manager. The daily rollover runs here, once per process.
func (c *Context) Manager() (*habits.Manager, error) {
	if c.manager != nil {
		return c.manager, nil
	}
	if err := c.Load(); err != nil {
		return nil, err
	}

	if err := c.acquireLock(); err != nil {
		return nil, err
	}

	m, err := habits.New(c.Store, habits.WithClock(c.now), habits.WithLocation(c.location()))
	if err != nil {
		return nil, err
	}
	c.manager = m
	return m, nil
}

// acquireLock takes the single-writer lock for the rest of the process.
// It is a no-op when the lock is already held or ConfigDir is empty.
func (c *Context) acquireLock() error {
	if c.ConfigDir == "" || c.lock != nil {
		return nil
	}
	l, err := lock.Acquire(lock.Path(c.ConfigDir))
	if err != nil {
		return err
	}
	c.lock = l
	return nil
}

// closeStore closes the store but keeps the lock.
func (c *Context) closeStore() error {
	c.manager = nil
	c.loaded = false
	return c.Store.Close()
}

// Close releases the lock and the store.
func (c *Context) Close() error {
	var errs []error
	if c.lock != nil {
		errs = append(errs, c.lock.Release())
		c.lock = nil
	}
	if c.Store != nil {
		errs = append(errs, c.Store.Close())
	}
	c.manager = nil
	c.loaded = false
	return errors.Join(errs...)
}

// PerformAutomaticBackup takes the day's first backup of a SQLite store and
// only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.EnsureDaily(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// resolve finds a habit by id, then by case-insensitive name.
func resolve(m *habits.Manager, ref string) (models.Habit, error) {
	if h, ok := m.Get(ref); ok {
		return h, nil
	}
	if h, ok := m.FindByName(ref); ok {
		return h, nil
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", ref)
}

// confirm asks a yes/no question on In, defaulting to no.
func (c *Context) confirm(prompt string) (bool, error) {
	c.printf("%s [y/N]: ", prompt)

	in := c.In
	if in == nil {
		in = os.Stdin
	}
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
