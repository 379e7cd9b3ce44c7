// Package settings provides the personal settings overlay: a key-value
// mapping loaded once from a JSON object on disk.
//
// The store keeps the file's key order for iteration and tracks whether it
// was modified in memory. Nothing is ever written back to disk.
package settings

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"slices"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/barstatus/internal/logging"
	"github.com/wizzomafizzo/barstatus/internal/storage"
)

var (
	// ErrKeyNotFound is returned by strict access to an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNotObject is returned by key operations when the settings document
	// is valid JSON but not an object at the top level.
	ErrNotObject = errors.New("settings document is not a JSON object")

	// ErrInvalidJSON is returned by Load when the settings file exists but
	// does not hold a single valid JSON document.
	ErrInvalidJSON = errors.New("invalid settings JSON")
)

// Store is a JSON-backed mapping from string keys to JSON values.
type Store struct {
	entries map[string]any
	// document holds a non-object top-level value; entries is nil then.
	document any
	path     string
	keys     []string
	dirty    bool
}

// Load reads the settings file at path, or ~/.i3/local_settings.json when path is empty.
// A missing file yields an empty store.
func Load(ctx context.Context, fs afero.Fs, path string) (*Store, error) {
	if path == "" {
		path = storage.DefaultSettingsPath()
	}
	log := logging.Get(ctx).With().Str("settings_path", path).Logger()

	s := &Store{path: path, entries: map[string]any{}}

	info, err := fs.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Debug().Msg("settings file not found, using empty settings")
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to stat settings file %s: %w", path, err)
	case info.IsDir():
		log.Debug().Msg("settings path is a directory, using empty settings")
		return s, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	keys, entries, document, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON from %s: %w", path, err)
	}
	s.keys, s.entries, s.document = keys, entries, document

	if entries == nil {
		log.Warn().Msg("settings file is not a JSON object")
	} else {
		log.Debug().Int("keys", len(keys)).Msg("settings loaded")
	}
	return s, nil
}

// New returns an empty store that reports path as its source.
func New(path string) *Store {
	return &Store{path: path, entries: map[string]any{}}
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Dirty reports whether Set or Delete changed the store since it was loaded.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (any, error) {
	if s.entries == nil {
		return nil, ErrNotObject
	}
	value, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return value, nil
}

// GetOr returns the value stored under key, or def when there is none.
// A missing key is never an error; a non-object document is.
func (s *Store) GetOr(key string, def any) (any, error) {
	if s.entries == nil {
		return nil, ErrNotObject
	}
	if value, ok := s.entries[key]; ok {
		return value, nil
	}
	return def, nil
}

// Lookup returns the value stored under key and whether it was present.
func (s *Store) Lookup(key string) (any, bool) {
	value, ok := s.entries[key]
	return value, ok
}

// Set stores value under key. New keys are appended to the iteration order.
func (s *Store) Set(key string, value any) error {
	if s.entries == nil {
		return ErrNotObject
	}
	if _, ok := s.entries[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.entries[key] = value
	s.dirty = true
	return nil
}

// Delete removes key from the store.
func (s *Store) Delete(key string) error {
	if s.entries == nil {
		return ErrNotObject
	}
	if _, ok := s.entries[key]; !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	delete(s.entries, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
	s.dirty = true
	return nil
}

// Keys returns the keys in insertion order.
func (s *Store) Keys() []string {
	return slices.Clone(s.keys)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.keys)
}

// All iterates over entries in insertion order.
func (s *Store) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, key := range s.keys {
			if !yield(key, s.entries[key]) {
				return
			}
		}
	}
}

// Document returns the raw top-level value when the file did not hold a
// JSON object, and nil otherwise.
func (s *Store) Document() any {
	return s.document
}
