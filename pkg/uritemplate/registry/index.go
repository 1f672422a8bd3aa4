package registry

import (
	"cmp"
	"slices"
	"sync"
)

// index is a thread-safe map for read-heavy workloads.
type index[K cmp.Ordered, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

func newIndex[K cmp.Ordered, V any]() *index[K, V] {
	return &index[K, V]{entries: make(map[K]V)}
}

func (ix *index[K, V]) get(key K) (V, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	v, ok := ix.entries[key]
	return v, ok
}

// swap stores value under key and returns the value it replaced.
func (ix *index[K, V]) swap(key K, value V) (old V, loaded bool) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	old, loaded = ix.entries[key]
	ix.entries[key] = value
	return old, loaded
}

// remove deletes key and returns the value it held.
func (ix *index[K, V]) remove(key K) (old V, ok bool) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	old, ok = ix.entries[key]
	delete(ix.entries, key)
	return old, ok
}

func (ix *index[K, V]) len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// sortedKeys returns the keys in ascending order.
func (ix *index[K, V]) sortedKeys() []K {
	ix.mu.RLock()
	keys := make([]K, 0, len(ix.entries))
	for k := range ix.entries {
		keys = append(keys, k)
	}
	ix.mu.RUnlock()

	slices.Sort(keys)
	return keys
}

// snapshot copies the entries so callers can iterate without the lock.
func (ix *index[K, V]) snapshot() map[K]V {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make(map[K]V, len(ix.entries))
	for k, v := range ix.entries {
		out[k] = v
	}
	return out
}
