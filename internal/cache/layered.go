package cache

import "time"

// LayeredStore combines a memory layer over the disk store. Reads check
// memory first and promote disk hits; writes go to both layers.
type LayeredStore struct {
	memory Store
	disk   *DiskStore
}

// NewLayeredStore creates a layered store.
func NewLayeredStore(memoryTTL time.Duration, diskDir string, expiryDays int) *LayeredStore {
	return &LayeredStore{
		memory: NewMemoryStore(memoryTTL, 10*time.Minute),
		disk:   NewDiskStore(diskDir, expiryDays),
	}
}

// Get checks memory first, then disk, promoting disk hits to memory.
func (s *LayeredStore) Get(key string) ([]byte, bool) {
	if val, found := s.memory.Get(key); found {
		return val, true
	}

	if val, found := s.disk.Get(key); found {
		s.memory.Set(key, val)
		return val, true
	}

	return nil, false
}

// Set stores a value in both layers. The disk layer is authoritative for the
// success result.
func (s *LayeredStore) Set(key string, value []byte) bool {
	s.memory.Set(key, value)
	return s.disk.Set(key, value)
}

// Delete removes a value from both layers.
func (s *LayeredStore) Delete(key string) bool {
	s.memory.Delete(key)
	return s.disk.Delete(key)
}

// Clear empties both layers.
func (s *LayeredStore) Clear() bool {
	s.memory.Clear()
	return s.disk.Clear()
}

// Stats reports the persistent layer's state.
func (s *LayeredStore) Stats() Stats {
	return s.disk.Stats()
}
