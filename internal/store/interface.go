// Package store defines the persisted key-value store shared by the
// extraction and form components. It is the only mutable state shared
// between the HTTP/CLI front and the pipeline; discipline is last
// write wins per key, no transactions across keys.
package store

import "context"

// Keys of interest. Draft and extraction are independent channels:
// a write to one never fires the other's watchers.
const (
	KeyDraft      = "draft"
	KeyExtraction = "extraction"
	KeyCredential = "credential-config"
)

// WatchFunc receives the new raw value after a committed write.
// Callbacks for a given key fire in commit order, on the writer's
// goroutine.
type WatchFunc func(value []byte)

// Store is an asynchronous key-value store with change notification.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value for key, or ok=false when absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key and notifies watchers of that key.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the given keys in a single critical section.
	// Removal does not fire watchers.
	Remove(ctx context.Context, keys ...string) error

	// Watch registers fn to run after every committed Set on key.
	Watch(key string, fn WatchFunc)
}
