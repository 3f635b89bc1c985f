package critbit

import "fmt"

// Verify walks the snapshot and checks the structural invariants: branch bits
// in range and strictly decreasing on every path, every key agreeing with the
// prefix and direction of each branch above it, and the leaf count matching
// Size.
func (s Snapshot[V]) Verify() error {
	root := s.root()
	count := 0
	if root != nil {
		var err error
		count, err = verifyNode[V](root, KeyBits)
		if err != nil {
			s.opts.debugf("critbit: verify: %v", err)
			return err
		}
	}
	if count != s.Size() {
		err := fmt.Errorf("%w: %d leaves, size %d", ErrSizeMismatch, count, s.Size())
		s.opts.debugf("critbit: verify: %v", err)
		return err
	}
	return nil
}

// Verify checks the current contents of t. See Snapshot.Verify.
func (t *Tree[V]) Verify() error {
	return t.Snapshot().Verify()
}

// verifyNode returns the number of leaves below n. above is the bit of the
// parent branch, or KeyBits for the root.
func verifyNode[V any](n node[V], above int) (int, error) {
	switch x := n.(type) {
	case *leaf[V]:
		return 1, nil
	case *branch[V]:
		if int(x.bit) >= KeyBits {
			return 0, fmt.Errorf("%w: %d", ErrInvalidBranchBit, x.bit)
		}
		if int(x.bit) >= above {
			return 0, fmt.Errorf("%w: %d below %d", ErrBranchOrder, x.bit, above)
		}
		if x.prefix&lowMask(x.bit) != 0 {
			return 0, fmt.Errorf("%w: prefix %#x has bits at or below %d", ErrPrefixMismatch, x.prefix, x.bit)
		}
		total := 0
		for d := uint8(0); d < 2; d++ {
			c := x.child[d]
			if c == nil {
				return 0, fmt.Errorf("%w: bit %d side %d", ErrNilChild, x.bit, d)
			}
			cnt, err := verifyNode[V](c, int(x.bit))
			if err != nil {
				return 0, err
			}
			// c is valid, so its bounds cover every key below it.
			for _, k := range [2]uint64{c.lo(), c.hi()} {
				if prefixAbove(k, x.bit) != x.prefix || bitAt(k, x.bit) != d {
					return 0, fmt.Errorf("%w: key %#x under bit %d side %d", ErrPrefixMismatch, k, x.bit, d)
				}
			}
			total += cnt
		}
		return total, nil
	}
	return 0, fmt.Errorf("critbit: unknown node type %T", n)
}
