// Package gsync provides synchronization abstractions for code that records
// or shares state across concurrently processed sub-ranges.
package gsync

import (
	"sync"
	"sync/atomic"
)

// Map is a type-safe version of sync.Map.
type Map[K comparable, V any] sync.Map

func (m *Map[K, V]) Delete(key K) {
	(*sync.Map)(m).Delete(key)
}

func (m *Map[K, V]) Load(key K) (value V, ok bool) {
	v, ok := (*sync.Map)(m).Load(key)
	if ok {
		return v.(V), true
	}
	return
}

func (m *Map[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	v, loaded := (*sync.Map)(m).LoadOrStore(key, value)
	return v.(V), loaded
}

func (m *Map[K, V]) Range(f func(K, V) bool) {
	(*sync.Map)(m).Range(func(k any, v any) bool {
		return f(k.(K), v.(V))
	})
}

func (m *Map[K, V]) Store(key K, value V) {
	(*sync.Map)(m).Store(key, value)
}

// Counter counts occurrences of keys. Add may be called from any number of
// goroutines concurrently; operators running under a parallel backend can
// use it to record their invocations as a multiset.
type Counter[K comparable] struct {
	m Map[K, *int64]
}

// Add increments the count for key by one.
func (c *Counter[K]) Add(key K) {
	n, _ := c.m.LoadOrStore(key, new(int64))
	atomic.AddInt64(n, 1)
}

// Counts returns a snapshot of all counts. It is not synchronized with
// concurrent Add calls; take the snapshot after the producing work has
// completed.
func (c *Counter[K]) Counts() map[K]int64 {
	counts := make(map[K]int64)
	c.m.Range(func(k K, n *int64) bool {
		counts[k] = atomic.LoadInt64(n)
		return true
	})
	return counts
}
