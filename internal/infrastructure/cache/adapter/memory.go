package adapter

import (
	"context"
	"sync"
	"time"

	"github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/cache/port"
)

// MemoryCache is a process-local port.Cache for tests and dev runs.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero means no expiration
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

var _ port.Cache = (*MemoryCache)(nil)

func (m *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return "", port.ErrMiss
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(m.entries, key)
		return "", port.ErrMiss
	}
	return e.value, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	m.entries[key] = e
	return nil
}

func (m *MemoryCache) Del(ctx context.Context, keys ...string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := m.entries[k]; ok {
			delete(m.entries, k)
			n++
		}
	}
	return n, nil
}

func (m *MemoryCache) Ping(ctx context.Context) error { return nil }

func (m *MemoryCache) Close() error { return nil }
