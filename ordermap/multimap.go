package ordermap

import (
	"iter"

	"github.com/ortreego/ortree/sortedlist"
)

// MultiMap groups values per key using a plain slice as the per-key
// collection, the simplest faithful collaborator satisfying "a list" for
// that role. The group type is always []V: values are appended in Add
// order, duplicates are kept, and no set or sorted-list grouping is
// offered.
type MultiMap[K any, V any] struct {
	inner *Map[K, []V]
}

// NewMulti returns an empty multi-map ordered by cmp over keys.
func NewMulti[K any, V any](cmp sortedlist.Comparator[K], opts ...Option[K, []V]) *MultiMap[K, V] {
	return &MultiMap[K, V]{inner: New[K, []V](cmp, opts...)}
}

func (mm *MultiMap[K, V]) Size() int { return mm.inner.Size() }

// Add appends value to key's group, creating the group if this is its
// first value.
func (mm *MultiMap[K, V]) Add(key K, value V) {
	if vs, ok := mm.inner.Get(key); ok {
		mm.inner.Put(key, append(vs, value))
		return
	}
	mm.inner.Put(key, []V{value})
}

// Get returns key's value group, if any.
func (mm *MultiMap[K, V]) Get(key K) ([]V, bool) { return mm.inner.Get(key) }

// Delete removes key's entire value group.
func (mm *MultiMap[K, V]) Delete(key K) bool { return mm.inner.Delete(key) }

// Keys iterates keys in comparator order.
func (mm *MultiMap[K, V]) Keys() iter.Seq[K] { return mm.inner.Keys() }
