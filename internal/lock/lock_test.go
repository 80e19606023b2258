package lock

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	ps "github.com/mitchellh/go-ps"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

// withProcesses fakes the process table for the duration of a test.
func withProcesses(t *testing.T, self int, table map[int]string) {
	t.Helper()
	oldFind, oldPid := findProcessFunc, getpidFunc
	t.Cleanup(func() {
		findProcessFunc = oldFind
		getpidFunc = oldPid
	})

	getpidFunc = func() int { return self }
	findProcessFunc = func(pid int) (ps.Process, error) {
		if exe, ok := table[pid]; ok {
			return &mockProcess{pid: pid, executable: exe}, nil
		}
		return nil, nil
	}
}

func TestAcquireAndRelease(t *testing.T) {
	withProcesses(t, 100, map[int]string{100: "habitlit"})
	path := Path(t.TempDir())

	l, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("lockfile missing: %v", err)
	}
	if string(content) != "100|habitlit" {
		t.Errorf("unexpected lockfile content %q", content)
	}

	if err := l.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("lockfile should be removed after Release")
	}
}

func TestAcquireHeldByLiveProcess(t *testing.T) {
	withProcesses(t, 100, map[int]string{100: "habitlit", 200: "habitlit"})
	path := Path(t.TempDir())

	if err := os.WriteFile(path, []byte("200|habitlit"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Acquire(path)
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestAcquireReclaimsStaleLock(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "dead pid", content: "300|habitlit"},
		{name: "pid reused by another program", content: "200|habitlit"},
		{name: "garbage", content: "not a pid"},
		{name: "empty", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withProcesses(t, 100, map[int]string{100: "habitlit", 200: "bash"})
			path := filepath.Join(t.TempDir(), "habitlit.lock")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			l, err := Acquire(path)
			if err != nil {
				t.Fatalf("Acquire failed: %v", err)
			}
			defer l.Release()

			content, _ := os.ReadFile(path)
			if string(content) != "100|habitlit" {
				t.Errorf("lockfile not rewritten, got %q", content)
			}
		})
	}
}

func TestReleaseLeavesForeignLock(t *testing.T) {
	withProcesses(t, 100, map[int]string{100: "habitlit"})
	path := Path(t.TempDir())

	l, err := Acquire(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("999|habitlit"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := l.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("a lock owned by another process must not be removed")
	}

	var nilLock *Lock
	if err := nilLock.Release(); err != nil {
		t.Errorf("nil Release should be a no-op, got %v", err)
	}
}
