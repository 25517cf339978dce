package ordermap

import (
	"iter"

	"github.com/ortreego/ortree/list"
	"github.com/ortreego/ortree/sortedlist"
)

// entry is the internal key/value pair the backing sorted set actually
// stores; comparator and iteration both key off entry.key, never value, so
// Put's in-place value replacement never disturbs order.
type entry[K any, V any] struct {
	key   K
	value V
}

// Map adapts a distinct sortedlist.SortedList of key/value entries,
// ordered by a key comparator, into map semantics: lookup, put, delete and
// entry/key/value views, none of which need a second index structure since
// the entry set is already ordered and searchable by key.
type Map[K any, V any] struct {
	entries *sortedlist.SortedList[entry[K, V]]
	keyCmp  sortedlist.Comparator[K]
}

// New returns an empty map ordered by cmp over keys.
func New[K any, V any](cmp sortedlist.Comparator[K], opts ...Option[K, V]) *Map[K, V] {
	o := defaultOptions[K, V]()
	for _, opt := range opts {
		opt(&o)
	}
	entryCmp := func(a, b entry[K, V]) int { return cmp(a.key, b.key) }
	m := &Map[K, V]{
		entries: sortedlist.New[entry[K, V]](entryCmp,
			sortedlist.WithDistinct[entry[K, V]](true),
			sortedlist.WithLocker[entry[K, V]](o.locker),
			sortedlist.WithIdentity[entry[K, V]](o.identity)),
		keyCmp: cmp,
	}
	for _, kv := range o.initialValues {
		m.Put(kv.Key, kv.Value)
	}
	return m
}

func (m *Map[K, V]) probe(key K) func(candidate entry[K, V]) int {
	return func(candidate entry[K, V]) int { return m.keyCmp(key, candidate.key) }
}

// Size returns the number of entries in the map.
func (m *Map[K, V]) Size() int { return m.entries.Size() }

// Get returns the value stored for key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	id, ok := m.entries.Search(m.probe(key), sortedlist.Exact)
	if !ok {
		return zero, false
	}
	return id.Value().value, true
}

// Put stores value under key, replacing any existing value in place
// (preserving the entry's tree position and identity) rather than
// removing and re-adding. existed reports whether key was already present.
func (m *Map[K, V]) Put(key K, value V) (existed bool) {
	id, ok := m.entries.Search(m.probe(key), sortedlist.Exact)
	if ok {
		m.entries.List().Set(id, entry[K, V]{key: key, value: value})
		return true
	}
	m.entries.Add(entry[K, V]{key: key, value: value}, nil, nil, true)
	return false
}

// Delete removes key's entry, if present, reporting whether it existed.
func (m *Map[K, V]) Delete(key K) bool {
	id, ok := m.entries.Search(m.probe(key), sortedlist.Exact)
	if !ok {
		return false
	}
	m.entries.Remove(id)
	return true
}

// Keys iterates keys in comparator order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range m.entries.List().All() {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Values iterates values in key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range m.entries.List().All() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Entries iterates key/value pairs in key order.
func (m *Map[K, V]) Entries() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for e := range m.entries.List().All() {
			if !yield(Entry[K, V]{Key: e.key, Value: e.value}) {
				return
			}
		}
	}
}

// EntryHandle is a mutable view onto one map entry: its value can be
// replaced in place, and removing it removes the entry from the map.
type EntryHandle[K any, V any] struct {
	m  *Map[K, V]
	id list.ID[entry[K, V]]
}

// Entry returns a mutable handle to key's entry, if present.
func (m *Map[K, V]) Entry(key K) (EntryHandle[K, V], bool) {
	id, ok := m.entries.Search(m.probe(key), sortedlist.Exact)
	if !ok {
		return EntryHandle[K, V]{}, false
	}
	return EntryHandle[K, V]{m: m, id: id}, true
}

func (h EntryHandle[K, V]) Key() K   { return h.id.Value().key }
func (h EntryHandle[K, V]) Value() V { return h.id.Value().value }

// SetValue replaces the entry's value in place without disturbing its
// position (the key, and therefore order, is unchanged).
func (h EntryHandle[K, V]) SetValue(v V) error {
	cur := h.id.Value()
	return h.m.entries.List().Set(h.id, entry[K, V]{key: cur.key, value: v})
}

// Remove deletes this entry from the map.
func (h EntryHandle[K, V]) Remove() error { return h.m.entries.Remove(h.id) }

// KeySet is a read-only sorted-set view over a map's keys. Key order and
// indexing delegate to the underlying entry set; it has no standalone add
// path since a bare key has no value to pair it with.
type KeySet[K any, V any] struct {
	m *Map[K, V]
}

func (m *Map[K, V]) KeySet() KeySet[K, V] { return KeySet[K, V]{m: m} }

func (k KeySet[K, V]) Size() int         { return k.m.Size() }
func (k KeySet[K, V]) All() iter.Seq[K]  { return k.m.Keys() }
func (k KeySet[K, V]) Contains(key K) bool {
	_, ok := k.m.Get(key)
	return ok
}

// Add always fails: the key set is read-only, mirroring the "unsupported
// operation" configuration spec.md allows in place of "add with default
// value" for callers that have no sensible default to pair a bare key
// with.
func (k KeySet[K, V]) Add(key K) error { return ErrUnsupportedOperation }
