package repository

import (
	"context"
	"sync"
	"time"

	"roombook/internal/models"
)

// MemoryCache is the in-process fallback behind the Redis cache. Safe for
// concurrent use.
type MemoryCache struct {
	mu         sync.RWMutex
	rooms      []models.Room
	roomsUntil time.Time
	ttl        time.Duration

	rateLimits sync.Map
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl}
}

func (m *MemoryCache) GetRooms(ctx context.Context) ([]models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.rooms == nil || time.Now().After(m.roomsUntil) {
		return nil, nil
	}
	out := make([]models.Room, len(m.rooms))
	copy(out, m.rooms)
	return out, nil
}

func (m *MemoryCache) SetRooms(ctx context.Context, rooms []models.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms = make([]models.Room, len(rooms))
	copy(m.rooms, rooms)
	m.roomsUntil = time.Now().Add(m.ttl)
	return nil
}

type rateLimitEntry struct {
	mu        sync.Mutex
	count     int
	expiresAt time.Time
}

func (m *MemoryCache) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	val, _ := m.rateLimits.LoadOrStore(key, &rateLimitEntry{})
	entry := val.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.count == 0 || now.After(entry.expiresAt) {
		entry.count = 1
		entry.expiresAt = now.Add(window)
	} else {
		entry.count++
	}

	return entry.count <= limit, nil
}
