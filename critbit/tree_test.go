package critbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertDelete(t *testing.T) {
	tree := New[int]()
	tree.Iterator()
	size := 100

	for i := 0; i < size; i++ {
		_, replaced := tree.Put(uint64(i), i)
		require.False(t, replaced)
	}
	require.Equal(t, size, tree.Size())
	require.NoError(t, tree.Verify())

	for i := 0; i < size; i++ {
		require.True(t, tree.Contains(uint64(i)))
	}
	require.False(t, tree.Contains(uint64(size)))

	for i := 0; i < size; i++ {
		v, ok := tree.Remove(uint64(i))
		require.True(t, ok)
		require.Equal(t, i, v)
		require.False(t, tree.Contains(uint64(i)))
		require.NoError(t, tree.Verify())
	}
	for i := 0; i < size; i++ {
		require.False(t, tree.Contains(uint64(i)))
	}
	require.Equal(t, 0, tree.Size())
}

func TestPutReplaceReturnsPrevious(t *testing.T) {
	tree := New[string]()

	_, replaced := tree.Put(7, "a")
	require.False(t, replaced)

	prev, replaced := tree.Put(7, "b")
	require.True(t, replaced)
	require.Equal(t, "a", prev)

	v, ok := tree.Get(7)
	require.True(t, ok)
	require.Equal(t, "b", v)
	require.Equal(t, 1, tree.Size())

	// Replace deep in a larger tree keeps the size and the shape.
	for k := uint64(0); k < 32; k++ {
		tree.Put(k, "x")
	}
	prev, replaced = tree.Put(7, "c")
	require.True(t, replaced)
	require.Equal(t, "x", prev)
	require.Equal(t, 32, tree.Size())
	require.NoError(t, tree.Verify())
}

func TestGetMissing(t *testing.T) {
	tree := New[int]()
	_, ok := tree.Get(1)
	require.False(t, ok)

	tree.Put(1, 10)
	_, ok = tree.Get(3)
	require.False(t, ok)

	// 3 shares the longest prefix with 1 so the descent lands on leaf 1.
	tree.Put(8, 80)
	_, ok = tree.Get(3)
	require.False(t, ok)
}

func TestRemoveMissing(t *testing.T) {
	tree := New[int]()
	_, ok := tree.Remove(5)
	require.False(t, ok)

	tree.Put(5, 5)
	_, ok = tree.Remove(6)
	require.False(t, ok)
	require.Equal(t, 1, tree.Size())

	tree.Put(9, 9)
	before := tree.cur.Load()
	_, ok = tree.Remove(13)
	require.False(t, ok)
	// No structural change means no new version either.
	require.Same(t, before, tree.cur.Load())
}

func TestRemoveTwoNodeTreePromotesSibling(t *testing.T) {
	tree := New[int]()
	tree.Put(1, 1)
	tree.Put(2, 2)

	_, ok := tree.cur.Load().root.(*branch[int])
	require.True(t, ok)

	v, ok := tree.Remove(1)
	require.True(t, ok)
	require.Equal(t, 1, v)

	l, ok := tree.cur.Load().root.(*leaf[int])
	require.True(t, ok)
	require.Equal(t, uint64(2), l.key)
}

func TestBranchBitsFollowCriticalBit(t *testing.T) {
	tree := New[int]()
	tree.Put(0b0100, 0)
	tree.Put(0b0110, 0)

	b := tree.cur.Load().root.(*branch[int])
	assert.Equal(t, uint8(1), b.bit)
	assert.Equal(t, uint64(0b0100), b.prefix)

	// 0b1000 differs from both at bit 3, above the existing branch.
	tree.Put(0b1000, 0)
	b = tree.cur.Load().root.(*branch[int])
	assert.Equal(t, uint8(3), b.bit)
	assert.Equal(t, uint64(0), b.prefix)
	require.IsType(t, &branch[int]{}, b.child[0])
	require.IsType(t, &leaf[int]{}, b.child[1])

	// 0b0101 splices below the bit 1 branch.
	tree.Put(0b0101, 0)
	require.NoError(t, tree.Verify())
	inner := b.child[0].(*branch[int])
	assert.Equal(t, uint8(1), inner.bit)
}

func TestMutationSharesUntouchedSubtrees(t *testing.T) {
	tree := New[int]()
	for k := uint64(0); k < 16; k++ {
		tree.Put(k, int(k))
	}
	before := tree.cur.Load().root.(*branch[int])
	require.Equal(t, uint8(3), before.bit)

	// Key 3 lives under child[0]; child[1] must be reused as is.
	tree.Put(3, 300)
	after := tree.cur.Load().root.(*branch[int])
	require.NotSame(t, before, after)
	require.Same(t, before.child[1], after.child[1])
	require.NotSame(t, before.child[0], after.child[0])

	tree.Remove(12)
	again := tree.cur.Load().root.(*branch[int])
	require.Same(t, after.child[0], again.child[0])

	// The published nodes of the old version are untouched.
	v, ok := Snapshot[int]{v: &version[int]{root: before, size: 16}}.Get(3)
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestSignedKeysUseBitPatternOrder(t *testing.T) {
	tree := New[int64]()
	for _, k := range []int64{-1, 5, -100, 0, 1} {
		tree.Put(uint64(k), k)
	}

	var got []int64
	for _, v := range tree.All() {
		got = append(got, v)
	}
	// Negative values have the top bit set and sort after the positives.
	require.Equal(t, []int64{0, 1, 5, -100, -1}, got)
}

func TestFirstLast(t *testing.T) {
	tree := New[int]()
	_, ok := tree.First()
	require.False(t, ok)
	_, ok = tree.Last()
	require.False(t, ok)

	for _, k := range []uint64{40, 3, 1 << 60, 17} {
		tree.Put(k, int(k%1000))
	}
	e, ok := tree.First()
	require.True(t, ok)
	require.Equal(t, uint64(3), e.Key())
	e, ok = tree.Last()
	require.True(t, ok)
	require.Equal(t, uint64(1<<60), e.Key())
}

func TestCopyIsIndependent(t *testing.T) {
	tree := New[int]()
	for k := uint64(0); k < 10; k++ {
		tree.Put(k, int(k))
	}
	cp := tree.Copy()
	require.NotEqual(t, tree.ID(), cp.ID())
	require.Equal(t, tree.Size(), cp.Size())
	require.Same(t, tree.cur.Load().root, cp.cur.Load().root)

	tree.Put(100, 100)
	cp.Remove(0)

	require.True(t, tree.Contains(0))
	require.False(t, cp.Contains(0))
	require.False(t, cp.Contains(100))
	require.Equal(t, 11, tree.Size())
	require.Equal(t, 9, cp.Size())
}

func TestSnapshotTree(t *testing.T) {
	tree := New[int]()
	tree.Put(1, 1)
	s := tree.Snapshot()
	tree.Put(2, 2)

	fork := s.Tree()
	require.Equal(t, 1, fork.Size())
	fork.Put(3, 3)
	require.False(t, tree.Contains(3))
	require.False(t, fork.Contains(2))

	empty := Snapshot[int]{}.Tree()
	require.Equal(t, 0, empty.Size())
	empty.Put(1, 1)
	require.True(t, empty.Contains(1))
}
