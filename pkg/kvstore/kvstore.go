// Package kvstore is a file-backed key-value store of JSON values. It
// stands in for the browser-local storage of the original client: every
// value lives under a single string key, the whole keyspace is loaded at
// Open and rewritten on each mutation.
package kvstore

import (
	"os"
	"path/filepath"
	"sync"

	"agriquest/pkg/logger"
	"go.uber.org/zap"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ErrCorrupted marks a key whose stored bytes exist but do not decode
// into the requested shape. Callers may treat it as absence, but unlike
// absence it is reported rather than swallowed.
var ErrCorrupted = errors.New("corrupted value")

type Store struct {
	path string

	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// Open loads the store file at path. A missing file yields an empty
// store. An unreadable or undecodable file also yields an empty store,
// logged at warn level: persisted state is disposable demo data and
// start-up must not fail on it.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrap(err, "failed to read store file")
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		logger.Logger().Warn("store file is corrupted, starting empty",
			zap.String("path", path), zap.Error(err))
		s.data = make(map[string]json.RawMessage)
	}
	if s.data == nil {
		s.data = make(map[string]json.RawMessage)
	}

	return s, nil
}

// Get decodes the value stored under key into out. The boolean reports
// presence: (false, nil) means the key was never set, while a non-nil
// error wrapping ErrCorrupted means bytes exist but do not decode.
func (s *Store) Get(key string, out interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		logger.Logger().Warn("failed to decode stored value",
			zap.String("key", key), zap.Error(err))
		return false, errors.Wrapf(ErrCorrupted, "key %q: %v", key, err)
	}

	return true, nil
}

// Has reports whether any bytes are stored under key, decodable or not.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok
}

// Set encodes v and persists the whole keyspace synchronously.
func (s *Store) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode value for key %q", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = raw
	return s.persistLocked()
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.persistLocked()
}

// Clear wipes every key.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string]json.RawMessage)
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "failed to create store directory")
		}
	}

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode store")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrap(err, "failed to write store file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "failed to replace store file")
	}
	return nil
}
