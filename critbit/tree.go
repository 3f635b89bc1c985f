package critbit

import (
	"iter"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Tree is a copy-on-write crit-bit tree mapping uint64 keys to values of type V.
//
// The zero value is not usable; create trees with New, Copy or Builder.Finalize.
// All methods are safe for concurrent use.
type Tree[V any] struct {
	// mu serializes mutators. Readers never take it.
	mu  sync.Mutex
	cur atomic.Pointer[version[V]]

	id   uuid.UUID
	opts Options
}

// New returns an empty tree.
func New[V any](opts ...Option) *Tree[V] {
	return newTree(&version[V]{}, NewOptions(opts...))
}

func newTree[V any](v *version[V], opts Options) *Tree[V] {
	t := &Tree[V]{
		id:   uuid.New(),
		opts: opts,
	}
	t.cur.Store(v)
	return t
}

// ID identifies this handle. Copies get their own id.
func (t *Tree[V]) ID() uuid.UUID {
	return t.id
}

// Size returns the number of entries.
func (t *Tree[V]) Size() int {
	return t.cur.Load().size
}

// Copy returns an independent tree holding the same entries. It shares the
// current root, so the cost does not depend on the tree size.
func (t *Tree[V]) Copy() *Tree[V] {
	v := t.cur.Load()
	c := newTree(v, t.opts)
	t.opts.debugf("critbit: copy %s -> %s size=%d", t.id, c.id, v.size)
	return c
}

// Snapshot captures the current contents as a read-only view.
func (t *Tree[V]) Snapshot() Snapshot[V] {
	return Snapshot[V]{v: t.cur.Load(), opts: t.opts}
}

// Contains reports whether key is present.
func (t *Tree[V]) Contains(key uint64) bool {
	return t.Snapshot().Contains(key)
}

// Get returns the value stored for key.
func (t *Tree[V]) Get(key uint64) (V, bool) {
	return t.Snapshot().Get(key)
}

// First returns the entry with the smallest key.
func (t *Tree[V]) First() (Entry[V], bool) {
	return t.Snapshot().First()
}

// Last returns the entry with the largest key.
func (t *Tree[V]) Last() (Entry[V], bool) {
	return t.Snapshot().Last()
}

// Iterator returns an iterator over the entries present now, in ascending key
// order. Later mutations of t are not visible to it.
func (t *Tree[V]) Iterator() *Iterator[V] {
	return t.Snapshot().Iterator()
}

// Range returns an iterator over the entries with min <= key <= max, as of now.
func (t *Tree[V]) Range(min, max uint64) *Iterator[V] {
	return t.Snapshot().Range(min, max)
}

// All returns a sequence over the entries present when iteration starts.
func (t *Tree[V]) All() iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		t.Snapshot().All()(yield)
	}
}

// publish installs a new version. The caller holds t.mu.
func (t *Tree[V]) publish(root node[V], size int) {
	t.cur.Store(&version[V]{root: root, size: size})
}
