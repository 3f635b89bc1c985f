package critbit

// descend follows the bits of key from n down to a leaf. The leaf is the only
// candidate for key, but its key is not verified. nil is returned for an empty
// tree.
func descend[V any](n node[V], key uint64) *leaf[V] {
	for n != nil {
		switch x := n.(type) {
		case *leaf[V]:
			return x
		case *branch[V]:
			n = x.child[bitAt(key, x.bit)]
		}
	}
	return nil
}

// find returns the leaf holding exactly key, or nil.
func find[V any](root node[V], key uint64) *leaf[V] {
	l := descend[V](root, key)
	if l == nil || l.key != key {
		return nil
	}
	return l
}

// edge returns the leftmost (d=0) or rightmost (d=1) leaf below n.
func edge[V any](n node[V], d uint8) *leaf[V] {
	for n != nil {
		switch x := n.(type) {
		case *leaf[V]:
			return x
		case *branch[V]:
			n = x.child[d]
		}
	}
	return nil
}
