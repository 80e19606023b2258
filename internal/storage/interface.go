package storage

import "errors"

var (
	// ErrNotFound is returned by Get when a key has never been written.
	ErrNotFound = errors.New("key not found")
	// ErrNotLoaded is returned when a store is used before Init or Load.
	ErrNotLoaded = errors.New("storage not loaded")
	// ErrNotInitialized is returned by Load when the backing store does not exist yet.
	ErrNotInitialized = errors.New("storage not initialized, run 'habitlit init' first")
)

// Provider is a string key/value store. Values are opaque to the store;
// callers serialize them (see Value).
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key/value access
	Get(key string) (string, error)
	Set(key, value string) error
	// Keys returns every stored key in ascending order.
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
