package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/habitlit/internal/storage"
)

type DebugCmd struct {
	DBPath  *DebugDBPathCmd  `cmd:"" help:"Show storage location."`
	DumpKey *DebugDumpKeyCmd `cmd:"" help:"Print the raw value stored under a key."`
	Keys    *DebugKeysCmd    `cmd:"" help:"List stored keys."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.println(string(jsonBytes))
	return nil
}

type DebugDumpKeyCmd struct {
	Key string `arg:"" help:"Store key, e.g. habits or lastSavedDate."`
}

func (cmd *DebugDumpKeyCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	raw, err := ctx.Store.Get(cmd.Key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("key not found: %s", cmd.Key)
		}
		return err
	}

	var pretty any
	if err := json.Unmarshal([]byte(raw), &pretty); err != nil {
		// Not JSON: print it untouched.
		ctx.println(raw)
		return nil
	}
	jsonBytes, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	ctx.println(string(jsonBytes))
	return nil
}

type DebugKeysCmd struct{}

func (cmd *DebugKeysCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	keys, err := ctx.Store.Keys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		ctx.println(k)
	}
	return nil
}
