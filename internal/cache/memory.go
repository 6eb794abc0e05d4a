package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore implements in-memory caching
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates a memory store with the given default TTL.
func NewMemoryStore(defaultTTL, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	if val, found := s.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a value with the default TTL
func (s *MemoryStore) Set(key string, value []byte) bool {
	s.cache.SetDefault(key, value)
	return true
}

// Delete removes a value from the cache
func (s *MemoryStore) Delete(key string) bool {
	s.cache.Delete(key)
	return true
}

// Clear removes all values from the cache
func (s *MemoryStore) Clear() bool {
	s.cache.Flush()
	return true
}
