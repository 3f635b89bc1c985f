package critbit

// Entry is a key and the value stored under it.
type Entry[V any] struct {
	key   uint64
	value V
}

func (e Entry[V]) Key() uint64 { return e.key }
func (e Entry[V]) Value() V    { return e.value }

// Iterator walks a captured root depth first, zero child before one child,
// which yields entries in ascending key order. It is finite and cannot be
// restarted. An Iterator must not be shared between goroutines, but any
// number of iterators may walk the same tree concurrently with mutations.
type Iterator[V any] struct {
	min, max uint64
	// stack holds subtrees still to visit; the top is visited next.
	stack []node[V]
	next  *leaf[V]
}

func newIterator[V any](root node[V], min, max uint64) *Iterator[V] {
	it := &Iterator[V]{min: min, max: max}
	if root != nil && min <= max {
		it.stack = make([]node[V], 0, MaxDepth+1)
		it.push(root)
	}
	it.advance()
	return it
}

// push queues n unless its key range misses [min,max].
func (it *Iterator[V]) push(n node[V]) {
	if n.hi() < it.min || n.lo() > it.max {
		return
	}
	it.stack = append(it.stack, n)
}

// advance moves to the next leaf in range, leaving it in it.next.
func (it *Iterator[V]) advance() {
	it.next = nil
	for len(it.stack) > 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		switch x := n.(type) {
		case *leaf[V]:
			it.next = x
			return
		case *branch[V]:
			it.push(x.child[1])
			it.push(x.child[0])
		}
	}
}

// HasNext reports whether Next will return an entry.
func (it *Iterator[V]) HasNext() bool {
	return it.next != nil
}

// Next returns the next entry, or ok=false when the iterator is exhausted.
func (it *Iterator[V]) Next() (Entry[V], bool) {
	l := it.next
	if l == nil {
		return Entry[V]{}, false
	}
	it.advance()
	return Entry[V]{key: l.key, value: l.value}, true
}
