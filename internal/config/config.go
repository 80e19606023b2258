// Package config resolves where habitlit keeps its data.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/julianstephens/habitlit/internal/constants"
)

// Backend identifies which storage implementation a config value selects.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendBolt     Backend = "bolt"
	BackendJSON     Backend = "json"
	BackendMemory   Backend = "memory"
)

var userHomeDirFunc = os.UserHomeDir

// LoadEnv reads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func LoadEnv() {
	_ = godotenv.Load(".env")
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := userHomeDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// BackendFor maps a --config value to its storage backend.
func BackendFor(value string) Backend {
	lower := strings.ToLower(strings.TrimSpace(value))
	switch {
	case lower == constants.KeyringConfigValue,
		strings.HasPrefix(lower, "postgres://"),
		strings.HasPrefix(lower, "postgresql://"):
		return BackendPostgres
	case lower == constants.MemoryConfigValue:
		return BackendMemory
	case strings.HasSuffix(lower, ".bolt"), strings.HasSuffix(lower, ".bbolt"):
		return BackendBolt
	case strings.HasSuffix(lower, ".json"):
		return BackendJSON
	default:
		return BackendSQLite
	}
}

// IsFileBackend reports whether b keeps its data in a local file.
func (b Backend) IsFileBackend() bool {
	return b == BackendSQLite || b == BackendBolt || b == BackendJSON
}

// Dir returns the directory used for logs, backups and the lockfile. File
// backends use the directory of their file; the others use the default
// config directory.
func Dir(value string) (string, error) {
	if BackendFor(value).IsFileBackend() {
		path, err := ExpandPath(value)
		if err != nil {
			return "", err
		}
		return filepath.Dir(path), nil
	}

	path, err := ExpandPath(constants.DefaultConfigPath)
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}
