package critbit

// Remove deletes key. It returns the removed value and true, or the zero value
// and false if key was not present.
func (t *Tree[V]) Remove(key uint64) (V, bool) {
	var zero V

	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.cur.Load()
	switch r := cur.root.(type) {
	case nil:
		return zero, false
	case *leaf[V]:
		if r.key != key {
			return zero, false
		}
		t.publish(nil, 0)
		return r.value, true
	}

	var path [MaxDepth]*branch[V]
	var dirs [MaxDepth]uint8
	depth := 0

	n := cur.root
	for {
		b, ok := n.(*branch[V])
		if !ok {
			break
		}
		d := bitAt(key, b.bit)
		path[depth] = b
		dirs[depth] = d
		depth++
		n = b.child[d]
	}

	l := n.(*leaf[V])
	if l.key != key {
		return zero, false
	}

	// The parent collapses: its other child takes its place.
	parent := path[depth-1]
	repl := parent.child[1-dirs[depth-1]]
	for i := depth - 2; i >= 0; i-- {
		repl = path[i].withChild(dirs[i], repl)
	}

	t.publish(repl, cur.size-1)
	return l.value, true
}
