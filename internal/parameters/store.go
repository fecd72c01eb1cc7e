package parameters

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Reader resolves named text parameters.
type Reader interface {
	ReadText(key string) (string, error)
}

// Store keeps parameters in-memory and guards access with a RWMutex.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStore initialises a store with a copy of the provided values.
func NewStore(values map[string]string) *Store {
	return &Store{
		values: cloneValues(values),
	}
}

// ReadText returns the value stored under key, or ErrParameterNotFound.
func (s *Store) ReadText(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", notFound(key)
	}
	return value, nil
}

// Set validates the key and stores value under it, replacing any previous value.
func (s *Store) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	s.mu.Unlock()

	return nil
}

// Keys returns the stored parameter names in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func cloneValues(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	return nil
}

func notFound(key string) error {
	return fmt.Errorf("%w: %q", ErrParameterNotFound, key)
}
