package critbit

// Put stores value under key. It returns the value previously stored under
// key and true, or the zero value and false if key was not present.
func (t *Tree[V]) Put(key uint64, value V) (V, bool) {
	var zero V

	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.cur.Load()
	if cur.root == nil {
		t.publish(newLeaf(key, value), 1)
		return zero, false
	}

	l := descend[V](cur.root, key)
	nl := newLeaf(key, value)

	bit, differs := critBit(key, l.key)
	if !differs {
		// Same shape; only the path down to l is rebuilt.
		t.publish(replacePath(cur.root, key, nil, nl), cur.size)
		return l.value, true
	}

	t.publish(replacePath(cur.root, key, &bit, nl), cur.size+1)
	return zero, false
}

// replacePath descends from root following key and rebuilds the visited
// branches bottom up.
//
// With splice nil the descent runs to the leaf, which is replaced by nl. With
// splice set it stops at the first node whose branch bit is below *splice (or
// at a leaf) and a new branch at *splice joins nl with that node.
func replacePath[V any](root node[V], key uint64, splice *uint8, nl *leaf[V]) node[V] {
	var path [MaxDepth]*branch[V]
	var dirs [MaxDepth]uint8
	depth := 0

	n := root
	for {
		b, ok := n.(*branch[V])
		if !ok {
			break
		}
		if splice != nil && b.bit < *splice {
			break
		}
		d := bitAt(key, b.bit)
		path[depth] = b
		dirs[depth] = d
		depth++
		n = b.child[d]
	}

	var repl node[V] = nl
	if splice != nil {
		repl = newBranch(*splice, key, nl, n)
	}
	for i := depth - 1; i >= 0; i-- {
		repl = path[i].withChild(dirs[i], repl)
	}
	return repl
}
