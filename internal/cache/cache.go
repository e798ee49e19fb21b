// Package cache provides a small read-through query cache: values fetched
// from the store stay fresh for a fixed window, concurrent loads of the same
// key are coalesced into one fetch, and mutation paths invalidate keys
// explicitly. The store is constructed and injected, never a package global.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Query cache keys. List keys are invalidated after a successful
// registration; per-id keys expire on their own.
const (
	UsersKey  = "users"
	SkillsKey = "skills"
)

// UserKey returns the cache key for a single user fetch.
func UserKey(id uint64) string {
	return fmt.Sprintf("users/%d", id)
}

type entry struct {
	value     any
	fetchedAt time.Time
}

// Store is a TTL cache with per-key load coalescing.
type Store struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]entry
	group   singleflight.Group
}

// New creates a Store whose entries stay fresh for ttl.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Get returns the cached value for key if it is still fresh, otherwise runs
// load and caches the result. Concurrent callers for the same key share one
// load. Load errors are returned as-is and never cached.
func Get[T any](ctx context.Context, s *Store, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if value, ok := s.lookup(key); ok {
		return value.(T), nil
	}

	result, err, _ := s.group.Do(key, func() (any, error) {
		// A concurrent caller may have populated the entry while this
		// one waited on the flight group.
		if value, ok := s.lookup(key); ok {
			return value, nil
		}

		value, err := load(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.entries[key] = entry{value: value, fetchedAt: time.Now()}
		s.mu.Unlock()

		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result.(T), nil
}

// Invalidate drops the given keys so the next read hits the store.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.entries, key)
	}
}

func (s *Store) lookup(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(e.fetchedAt) >= s.ttl {
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}
