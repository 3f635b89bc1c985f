package critbit

// frame is an open branch whose zero side is complete.
type frame[V any] struct {
	bit  uint8
	left node[V]
}

// Builder performs append-only construction of a tree from strictly
// increasing keys in O(n), without the per-insert path copying of Put.
//
// Builder is not safe for concurrent use. The tree returned by Finalize is.
type Builder[V any] struct {
	opts Options

	// pending is the rightmost subtree built so far.
	pending node[V]
	lastKey uint64
	count   int
	done    bool

	depth  int
	frames [MaxDepth]frame[V]
}

// NewBuilder returns an empty builder. Trees it finalizes carry opts.
func NewBuilder[V any](opts ...Option) *Builder[V] {
	return &Builder[V]{opts: NewOptions(opts...)}
}

// InsertMonotone appends (key,value).
//
// key MUST be greater than every key previously inserted.
func (b *Builder[V]) InsertMonotone(key uint64, value V) error {
	if b.done {
		return ErrBuilderFinalized
	}
	nl := newLeaf(key, value)

	// First insert is trivial: pending is the only subtree.
	if b.count == 0 {
		b.pending = nl
		b.lastKey = key
		b.count++
		return nil
	}

	if key < b.lastKey {
		return ErrOutOfOrderKey
	}
	l, ok := critBit(b.lastKey, key)
	if !ok {
		return ErrDuplicateKey
	}

	// Frames below l are complete: nothing later can land inside them.
	for b.depth > 0 && b.frames[b.depth-1].bit < l {
		top := b.frames[b.depth-1]
		b.depth--
		b.pending = b.closeFrame(top, b.pending)
	}

	// Open a new frame at l if it sits below the current top.
	if b.depth == 0 || b.frames[b.depth-1].bit > l {
		b.frames[b.depth] = frame[V]{bit: l, left: b.pending}
		b.depth++
	}

	// The new key is now the rightmost subtree.
	b.pending = nl
	b.lastKey = key
	b.count++
	return nil
}

// Len returns the number of keys inserted so far.
func (b *Builder[V]) Len() int {
	return b.count
}

// Finalize closes any remaining open frames and returns the tree. The builder
// cannot be used afterwards.
func (b *Builder[V]) Finalize() (*Tree[V], error) {
	if b.done {
		return nil, ErrBuilderFinalized
	}
	b.done = true

	for b.depth > 0 {
		top := b.frames[b.depth-1]
		b.depth--
		b.pending = b.closeFrame(top, b.pending)
	}

	t := newTree(&version[V]{root: b.pending, size: b.count}, b.opts)
	b.opts.debugf("critbit: built %s size=%d", t.id, b.count)
	b.pending = nil
	return t, nil
}

func (b *Builder[V]) closeFrame(f frame[V], right node[V]) node[V] {
	return &branch[V]{
		bit:    f.bit,
		prefix: prefixAbove(b.lastKey, f.bit),
		child:  [2]node[V]{f.left, right},
	}
}
