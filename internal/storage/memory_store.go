package storage

import (
	"sort"

	"github.com/julianstephens/habitlit/internal/constants"
)

// MemoryStore keeps values in a map. Nothing survives Close.
type MemoryStore struct {
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init() error {
	s.data = make(map[string]string)
	return nil
}

func (s *MemoryStore) Load() error {
	if s.data == nil {
		s.data = make(map[string]string)
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) Get(key string) (string, error) {
	if s.data == nil {
		return "", ErrNotLoaded
	}
	v, ok := s.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(key, value string) error {
	if s.data == nil {
		return ErrNotLoaded
	}
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Keys() ([]string, error) {
	if s.data == nil {
		return nil, ErrNotLoaded
	}
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *MemoryStore) GetConfigPath() string {
	return constants.MemoryConfigValue
}
