package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitlit/internal/storage"
	"github.com/julianstephens/habitlit/internal/storage/bolt"
	"github.com/julianstephens/habitlit/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Delete an existing local store before initializing."`
	Source string `help:"Store to copy every key from (path, PostgreSQL URL or 'keyring')."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force || c.Source != "" {
		if err := ctx.acquireLock(); err != nil {
			return err
		}
	}
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.loaded = true
	ctx.printf("Initialized habitlit storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source == "" {
		return nil
	}

	ctx.printf("Copying data from: %s\n", c.Source)
	source, err := OpenStore(c.Source)
	if err != nil {
		return err
	}
	n, err := copyKeys(source, ctx.Store)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	ctx.printf("Copied %d keys.\n", n)
	return nil
}

// reset removes the destination file. Remote stores are never dropped.
func (c *InitCmd) reset(ctx *Context) error {
	switch ctx.Store.(type) {
	case *sqlite.Store, *bolt.Store, *storage.JSONStore:
	default:
		return errors.New("--force only applies to local file stores")
	}
	path := ctx.Store.GetConfigPath()

	if c.Source != "" {
		absDest, err1 := filepath.Abs(path)
		absSource, err2 := filepath.Abs(c.Source)
		if err1 == nil && err2 == nil && absDest == absSource {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
		}
	}

	if err := ctx.closeStore(); err != nil {
		return fmt.Errorf("failed to close existing store: %w", err)
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to delete existing store: %w", err)
	}
	ctx.printf("Deleted existing store at: %s\n", path)
	return nil
}

// copyKeys writes every key of src into dst and returns how many were copied.
func copyKeys(src, dst storage.Provider) (int, error) {
	if err := src.Load(); err != nil {
		return 0, fmt.Errorf("failed to load source store: %w", err)
	}
	defer src.Close()

	keys, err := src.Keys()
	if err != nil {
		return 0, fmt.Errorf("failed to list source keys: %w", err)
	}
	for i, key := range keys {
		value, err := src.Get(key)
		if err != nil {
			return i, fmt.Errorf("failed to read %s: %w", key, err)
		}
		if err := dst.Set(key, value); err != nil {
			return i, fmt.Errorf("failed to write %s: %w", key, err)
		}
	}
	return len(keys), nil
}
