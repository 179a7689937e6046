package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

type memoryEntry struct {
	intervals []domain.BookedInterval
	expiresAt time.Time
}

// MemoryCache кеш снапшотов в памяти процесса
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

// NewMemoryCache создает пустой кеш в памяти
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

// Get возвращает копию снапшота или ErrCacheMiss
func (c *MemoryCache) Get(_ context.Context, key string) ([]domain.BookedInterval, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.expired(entry) {
		return nil, ErrCacheMiss
	}

	return copyIntervals(entry.intervals), nil
}

// Set сохраняет снапшот на ttl
func (c *MemoryCache) Set(_ context.Context, key string, intervals []domain.BookedInterval, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &memoryEntry{
		intervals: copyIntervals(intervals),
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

// Append добавляет интервал в существующий снапшот, не продлевая ttl
// Если снапшота нет, возвращает false: следующий Get все равно сходит в бэкенд
func (c *MemoryCache) Append(_ context.Context, key string, interval domain.BookedInterval) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || c.expired(entry) {
		return false, nil
	}

	entry.intervals = append(entry.intervals, interval)
	return true, nil
}

// Delete удаляет снапшот
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

// Sweep удаляет истекшие записи и возвращает их количество
func (c *MemoryCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if c.expired(entry) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *MemoryCache) expired(entry *memoryEntry) bool {
	return !c.now().Before(entry.expiresAt)
}

func copyIntervals(intervals []domain.BookedInterval) []domain.BookedInterval {
	result := make([]domain.BookedInterval, len(intervals))
	copy(result, intervals)
	return result
}
