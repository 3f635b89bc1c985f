package critbit

// node is either a *leaf or a *branch. Nodes are immutable once built; every
// "update" below constructs a replacement.
type node[V any] interface {
	// lo and hi bound the keys stored in the subtree.
	lo() uint64
	hi() uint64
}

type leaf[V any] struct {
	key   uint64
	value V
}

func (l *leaf[V]) lo() uint64 { return l.key }
func (l *leaf[V]) hi() uint64 { return l.key }

type branch[V any] struct {
	// bit is the critical bit this branch decides on.
	bit uint8
	// prefix holds the key bits above bit shared by the whole subtree.
	prefix uint64
	// child[0] holds keys with a 0 at bit, child[1] keys with a 1.
	child [2]node[V]
}

func (b *branch[V]) lo() uint64 { return b.prefix }
func (b *branch[V]) hi() uint64 { return b.prefix | lowMask(b.bit) }

func newLeaf[V any](key uint64, value V) *leaf[V] {
	return &leaf[V]{key: key, value: value}
}

// newBranch joins a leaf for key with an existing subtree that differs from
// key first at bit.
func newBranch[V any](bit uint8, key uint64, nl *leaf[V], other node[V]) *branch[V] {
	b := &branch[V]{bit: bit, prefix: prefixAbove(key, bit)}
	d := bitAt(key, bit)
	b.child[d] = nl
	b.child[1-d] = other
	return b
}

// withChild clones b with child[d] replaced. The bit, prefix and the other
// child are shared with b.
func (b *branch[V]) withChild(d uint8, n node[V]) *branch[V] {
	nb := &branch[V]{bit: b.bit, prefix: b.prefix, child: b.child}
	nb.child[d] = n
	return nb
}

// version is the unit published by a mutation. root and size always travel
// together so a single load yields a consistent pair.
type version[V any] struct {
	root node[V]
	size int
}
