package cache

import "strings"

// Store is the interface for result caching. Failures are reported as
// booleans or absence, never as errors: callers proceed without cache
// benefit when the store misbehaves.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) bool
	Delete(key string) bool
	Clear() bool
}

// Stats describes the state of a persistent store.
type Stats struct {
	EntryCount int   `json:"entry_count"`
	TotalSize  int64 `json:"total_size"`
}

// Key builds a cache key from its parts, e.g. Key("search", query, "1825").
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// sanitizeKey turns a key into a filesystem-safe token by replacing path
// separators. Not injective: two keys differing only in separator characters
// collide. Key construction keeps collisions benign; switch to hashing here
// if that ever stops being true.
func sanitizeKey(key string) string {
	key = strings.ReplaceAll(key, "/", "_")
	key = strings.ReplaceAll(key, "\\", "_")
	return key
}
