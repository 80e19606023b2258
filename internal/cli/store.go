package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/habitlit/internal/config"
	"github.com/julianstephens/habitlit/internal/constants"
	"github.com/julianstephens/habitlit/internal/keyring"
	"github.com/julianstephens/habitlit/internal/storage"
	"github.com/julianstephens/habitlit/internal/storage/bolt"
	"github.com/julianstephens/habitlit/internal/storage/postgres"
	"github.com/julianstephens/habitlit/internal/storage/sqlite"
)

// OpenStore builds the Provider selected by cfg without opening it.
//
// A PostgreSQL URL given on the command line must not carry a password.
// With cfg set to "keyring" the connection string comes from
// HABITLIT_DB_CONNECTION or, failing that, the OS keyring, and may carry a
// password.
func OpenStore(cfg string) (storage.Provider, error) {
	switch config.BackendFor(cfg) {
	case config.BackendMemory:
		return storage.NewMemoryStore(), nil
	case config.BackendPostgres:
		return openPostgres(cfg)
	}

	path, err := config.ExpandPath(cfg)
	if err != nil {
		return nil, err
	}
	switch config.BackendFor(cfg) {
	case config.BackendBolt:
		return bolt.NewStore(path), nil
	case config.BackendJSON:
		return storage.NewJSONStore(path), nil
	default:
		return sqlite.NewStore(path), nil
	}
}

func openPostgres(cfg string) (storage.Provider, error) {
	if cfg != constants.KeyringConfigValue {
		if err := postgres.ValidateConnString(cfg); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w; store it with 'habitlit keyring set' or %s and use --config=keyring", err, constants.EnvDBConnection)
			}
			return nil, err
		}
		return postgres.New(cfg), nil
	}

	connStr := os.Getenv(constants.EnvDBConnection)
	if connStr == "" {
		var err error
		connStr, err = keyring.GetConnectionString()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return nil, errors.New("no connection string in keyring, run 'habitlit keyring set' first")
			}
			return nil, err
		}
	}

	if err := postgres.ValidateConnString(connStr); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
		return nil, err
	}
	return postgres.New(connStr), nil
}
