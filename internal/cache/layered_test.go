package cache

import (
	"testing"
	"time"
)

func TestLayeredStore_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	store := NewLayeredStore(time.Minute, dir, 30)

	// Write through another handle so the value exists only on disk
	NewDiskStore(dir, 30).Set("key", []byte("value"))

	got, found := store.Get("key")
	if !found || string(got) != "value" {
		t.Fatalf("Expected disk hit, got %q (found=%v)", got, found)
	}

	// Now present in the memory layer
	if _, found := store.memory.Get("key"); !found {
		t.Error("Expected disk hit to be promoted to memory")
	}
}

func TestLayeredStore_WriteGoesToBothLayers(t *testing.T) {
	dir := t.TempDir()
	store := NewLayeredStore(time.Minute, dir, 30)

	if !store.Set("key", []byte("value")) {
		t.Fatal("Set failed")
	}

	if _, found := store.memory.Get("key"); !found {
		t.Error("Expected value in memory layer")
	}
	if _, found := store.disk.Get("key"); !found {
		t.Error("Expected value in disk layer")
	}

	if !store.Delete("key") {
		t.Error("Delete failed")
	}
	if _, found := store.Get("key"); found {
		t.Error("Expected miss after delete")
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)

	store.Set("key", []byte("value"))
	got, found := store.Get("key")
	if !found || string(got) != "value" {
		t.Errorf("Round trip failed: got %q (found=%v)", got, found)
	}

	store.Clear()
	if _, found := store.Get("key"); found {
		t.Error("Expected miss after clear")
	}
}
