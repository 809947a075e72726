// Package file is the persisted Store implementation. All keys live in
// one JSON document flushed after every write, the service analogue of
// the browser's extension-local storage area.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/store"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/log"
)

// Store persists keys to a single JSON file.
type Store struct {
	l    log.Logger
	path string

	mu       sync.RWMutex
	data     map[string]json.RawMessage
	watchers map[string][]store.WatchFunc

	// writeLocks serialize Set per key, end to end through watcher
	// dispatch, so callbacks observe writes in commit order. Keys are
	// independent channels: a watcher may write a different key but
	// must not write the one it watches.
	lockMu     sync.Mutex
	writeLocks map[string]*sync.Mutex
}

// NewStore opens (or creates) the store file at path.
func NewStore(l log.Logger, path string) (*Store, error) {
	s := &Store{
		l:          l,
		path:       path,
		data:       make(map[string]json.RawMessage),
		watchers:   make(map[string][]store.WatchFunc),
		writeLocks: make(map[string]*sync.Mutex),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		l.Infof(context.Background(), "store file %s not found, starting empty", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
		}
	}
	return s, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	wl := s.writeLock(key)
	wl.Lock()
	defer wl.Unlock()

	s.mu.Lock()
	s.data[key] = stored
	err := s.flushLocked()
	fns := append([]store.WatchFunc(nil), s.watchers[key]...)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	for _, fn := range fns {
		fn(stored)
	}
	return nil
}

// Remove deletes keys in one critical section and one flush, so a
// subsequent read observes either all removals or none of them.
func (s *Store) Remove(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return s.flushLocked()
}

func (s *Store) Watch(key string, fn store.WatchFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers[key] = append(s.watchers[key], fn)
}

func (s *Store) writeLock(key string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	wl, ok := s.writeLocks[key]
	if !ok {
		wl = &sync.Mutex{}
		s.writeLocks[key] = wl
	}
	return wl
}

// flushLocked writes the whole document atomically via rename.
// Caller holds mu.
func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
