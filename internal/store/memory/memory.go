// Package memory is an in-memory Store used by tests and the one-shot
// CLI, where persistence across runs is not needed.
package memory

import (
	"context"
	"sync"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/store"
)

// Store is an in-memory key-value store with change notification.
type Store struct {
	mu       sync.RWMutex
	data     map[string][]byte
	watchers map[string][]store.WatchFunc

	// writeLocks serialize Set per key, end to end through watcher
	// dispatch, so callbacks observe writes in commit order. Keys are
	// independent channels: a watcher may write a different key but
	// must not write the one it watches.
	lockMu     sync.Mutex
	writeLocks map[string]*sync.Mutex
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{
		data:       make(map[string][]byte),
		watchers:   make(map[string][]store.WatchFunc),
		writeLocks: make(map[string]*sync.Mutex),
	}
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
	fns := append([]store.WatchFunc(nil), s.watchers[key]...)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(stored)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
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
