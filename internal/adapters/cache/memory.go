// Package cache provides last-response caches backing ports.Cache.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/leonardomurakami/murakams-home/internal/domain"
)

// Memory is an in-process cache with per-entry TTL expiry.
// It is the default backend; suitable for a single-instance deployment.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	// now is overridable for testing.
	now func() time.Time
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get retrieves a value. Returns domain.ErrNotFound on a miss or after expiry.
// Implements ports.Cache.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, domain.ErrNotFound
	}

	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()

		return nil, domain.ErrNotFound
	}

	return entry.value, nil
}

// Set stores a value with a TTL. A zero TTL means no expiry.
// Implements ports.Cache.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()

	return nil
}
