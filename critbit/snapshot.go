package critbit

import "iter"

// Snapshot is a read-only view of a tree as of one instant. It holds no
// reference to the Tree it came from.
type Snapshot[V any] struct {
	v    *version[V]
	opts Options
}

// Size returns the number of entries in the snapshot.
func (s Snapshot[V]) Size() int {
	if s.v == nil {
		return 0
	}
	return s.v.size
}

func (s Snapshot[V]) root() node[V] {
	if s.v == nil {
		return nil
	}
	return s.v.root
}

// Contains reports whether key is present. See Tree.Contains.
func (s Snapshot[V]) Contains(key uint64) bool {
	return find[V](s.root(), key) != nil
}

// Get returns the value stored for key. See Tree.Get.
func (s Snapshot[V]) Get(key uint64) (V, bool) {
	if l := find[V](s.root(), key); l != nil {
		return l.value, true
	}
	var zero V
	return zero, false
}

// First returns the entry with the smallest key.
func (s Snapshot[V]) First() (Entry[V], bool) {
	return edgeEntry[V](s.root(), 0)
}

// Last returns the entry with the largest key.
func (s Snapshot[V]) Last() (Entry[V], bool) {
	return edgeEntry[V](s.root(), 1)
}

func edgeEntry[V any](root node[V], d uint8) (Entry[V], bool) {
	l := edge[V](root, d)
	if l == nil {
		return Entry[V]{}, false
	}
	return Entry[V]{key: l.key, value: l.value}, true
}

// Iterator returns an iterator over every entry in ascending key order.
func (s Snapshot[V]) Iterator() *Iterator[V] {
	return newIterator[V](s.root(), 0, ^uint64(0))
}

// Range returns an iterator over the entries with min <= key <= max.
func (s Snapshot[V]) Range(min, max uint64) *Iterator[V] {
	return newIterator[V](s.root(), min, max)
}

// All returns a sequence over every entry in ascending key order.
func (s Snapshot[V]) All() iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		it := s.Iterator()
		for {
			e, ok := it.Next()
			if !ok || !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Tree returns a new mutable tree starting from this snapshot.
func (s Snapshot[V]) Tree() *Tree[V] {
	v := s.v
	if v == nil {
		v = &version[V]{}
	}
	return newTree(v, s.opts)
}
