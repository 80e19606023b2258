// Package lock keeps a second habitlit process from writing the same store.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitlit/internal/constants"
	"github.com/julianstephens/habitlit/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

// ErrLocked is returned when another live habitlit process holds the lock.
var ErrLocked = errors.New("another habitlit process is using this store")

// Lock is a held lockfile. The file holds "pid|executable".
type Lock struct {
	path string
	pid  int
}

// Path returns the lockfile location inside configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, constants.LockfileName)
}

// Acquire creates the lockfile at path. A lockfile left behind by a process
// that no longer runs, or whose pid now belongs to another program, is
// replaced.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	for attempt := 0; attempt < 2; attempt++ {
		l, err := tryCreate(path)
		if err == nil {
			return l, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("failed to create lockfile: %w", err)
		}

		pid, alive := holder(path)
		if alive {
			return nil, fmt.Errorf("%w (pid %d)", ErrLocked, pid)
		}
		logger.Warn("Removing stale lockfile", "path", path, "pid", pid)
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to remove stale lockfile: %w", err)
		}
	}
	return nil, ErrLocked
}

func tryCreate(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pid := getpidFunc()
	exe := constants.AppName
	if p, err := findProcessFunc(pid); err == nil && p != nil {
		exe = p.Executable()
	}
	if _, err := fmt.Fprintf(f, "%d|%s", pid, exe); err != nil {
		os.Remove(path)
		return nil, err
	}
	return &Lock{path: path, pid: pid}, nil
}

// holder reads the lockfile and reports whether its owner still runs.
func holder(path string) (int, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	parts := strings.SplitN(strings.TrimSpace(string(content)), "|", 2)
	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return 0, false
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return pid, false
	}
	if len(parts) == 2 && parts[1] != "" && process.Executable() != parts[1] {
		// pid was reused by something else
		return pid, false
	}
	return pid, true
}

// Release removes the lockfile if it still belongs to this lock.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	content, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	parts := strings.SplitN(strings.TrimSpace(string(content)), "|", 2)
	if parts[0] != strconv.Itoa(l.pid) {
		return nil
	}
	return os.Remove(l.path)
}
