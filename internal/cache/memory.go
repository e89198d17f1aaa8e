package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCache is used when no Redis instance is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]entry), now: time.Now}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && m.now().After(e.expiresAt) {
		m.Delete(context.Background(), key)
		return nil, false
	}
	return e.data, true
}

func (m *MemoryCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) {
	e := entry{data: data}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
}

func (m *MemoryCache) Delete(_ context.Context, key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

func (m *MemoryCache) DeletePrefix(_ context.Context, prefix string) {
	m.mu.Lock()
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	m.mu.Unlock()
}
