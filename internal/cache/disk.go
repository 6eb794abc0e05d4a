package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const fileExt = ".json"

// DiskStore implements persistent disk-based caching: one JSON file per key,
// with the file's modification time as the authoritative write timestamp.
// Expiry is lazy; the Get that observes an expired entry deletes it. There is
// no locking: concurrent writers to the same key may interleave, which is an
// accepted weak-consistency point.
type DiskStore struct {
	dir    string
	expiry time.Duration
}

// NewDiskStore creates a disk store with a TTL measured in days.
func NewDiskStore(dir string, expiryDays int) *DiskStore {
	return &DiskStore{
		dir:    dir,
		expiry: time.Duration(expiryDays) * 24 * time.Hour,
	}
}

// Get retrieves a value. Returns false when the entry is missing, expired,
// or unreadable.
func (s *DiskStore) Get(key string) ([]byte, bool) {
	path := s.path(key)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}

	if time.Since(info.ModTime()) > s.expiry {
		_ = os.Remove(path)
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cache: read %s: %v\n", key, err)
		return nil, false
	}
	return data, true
}

// Set stores a value, fully overwriting any existing entry.
func (s *DiskStore) Set(key string, value []byte) bool {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "cache: create dir: %v\n", err)
		return false
	}

	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "cache: write %s: %v\n", key, err)
		return false
	}
	return true
}

// Delete removes an entry. Removing a missing entry succeeds.
func (s *DiskStore) Delete(key string) bool {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "cache: delete %s: %v\n", key, err)
		return false
	}
	return true
}

// Clear removes all cache files in the directory.
func (s *DiskStore) Clear() bool {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return os.IsNotExist(err)
	}

	ok := true
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			fmt.Fprintf(os.Stderr, "cache: clear: %v\n", err)
			ok = false
		}
	}
	return ok
}

// Stats reports entry count and total size of the cache directory.
func (s *DiskStore) Stats() Stats {
	var stats Stats

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return stats
	}

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		stats.EntryCount++
		stats.TotalSize += info.Size()
	}
	return stats
}

func (s *DiskStore) path(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+fileExt)
}
