package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/habitlit/internal/logger"
)

// Source reports where a Value.Read result came from.
type Source int

const (
	// FromStore means the stored value was parsed and accepted.
	FromStore Source = iota
	// Missing means the key was absent and the default was used.
	Missing
	// Corrupt means a stored value existed but could not be used; the default was used.
	Corrupt
	// Failed means the provider returned an error; the default was used and
	// nothing is known about the stored value.
	Failed
)

func (s Source) String() string {
	switch s {
	case FromStore:
		return "store"
	case Missing:
		return "missing"
	case Corrupt:
		return "corrupt"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Value binds a typed, JSON-encoded value to a single key of a Provider.
type Value[T any] struct {
	store    Provider
	key      string
	def      func() T
	validate func(T) error
}

// NewValue returns a Value for key. def builds the fallback returned when the
// key is missing or unusable. validate may be nil.
func NewValue[T any](store Provider, key string, def func() T, validate func(T) error) *Value[T] {
	return &Value[T]{
		store:    store,
		key:      key,
		def:      def,
		validate: validate,
	}
}

// Key returns the store key this value is bound to.
func (v *Value[T]) Key() string {
	return v.key
}

// Read never fails: any problem reading or decoding yields the default.
func (v *Value[T]) Read() (T, Source) {
	raw, err := v.store.Get(v.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return v.def(), Missing
		}
		logger.Warn("Failed to read value, using default", "key", v.key, "error", err)
		return v.def(), Failed
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logger.Warn("Stored value is not valid JSON, using default", "key", v.key, "error", err)
		return v.def(), Corrupt
	}
	if v.validate != nil {
		if err := v.validate(out); err != nil {
			logger.Warn("Stored value failed validation, using default", "key", v.key, "error", err)
			return v.def(), Corrupt
		}
	}

	return out, FromStore
}

// Write serializes val and stores it, regardless of the current contents.
func (v *Value[T]) Write(val T) error {
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", v.key, err)
	}
	if err := v.store.Set(v.key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", v.key, err)
	}
	return nil
}
