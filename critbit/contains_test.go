package critbit_test

import (
	"testing"

	"github.com/forestrie/go-critbit/critbit"
	"github.com/forestrie/go-critbit/critbittesting"
	"github.com/stretchr/testify/require"
)

// Keys that were never inserted must not be reported present, even when the
// descent lands on a leaf sharing a long prefix with them.
func TestContainsFalseForKeysNeverInserted(t *testing.T) {
	tc := critbittesting.NewTestContext(t, critbittesting.TestConfig{
		Seed: 3, TestLabelPrefix: "TestContainsFalseForKeysNeverInserted",
	})
	keys := tc.DistinctKeys(4000)
	present, absent := keys[:2000], keys[2000:]

	tree := critbit.New[uint64]()
	for _, k := range present {
		tree.Put(k, k)
	}
	require.Equal(t, len(present), tree.Size())

	for _, k := range present {
		v, ok := tree.Get(k)
		require.True(t, ok)
		require.Equal(t, k, v)
	}
	for _, k := range absent {
		require.False(t, tree.Contains(k), "key %#x", k)
		_, ok := tree.Get(k)
		require.False(t, ok)
		// Flipping the lowest bit gives a neighbour sharing 63 bits of prefix.
		if n := k ^ 1; !tree.Contains(n) {
			_, ok := tree.Remove(n)
			require.False(t, ok)
		}
	}

	// Dense keys leave near misses at every depth.
	dense := critbit.New[int]()
	for k := uint64(0); k < 256; k += 2 {
		dense.Put(k, int(k))
	}
	for k := uint64(1); k < 256; k += 2 {
		require.False(t, dense.Contains(k))
	}
	require.False(t, dense.Contains(1<<63))
}

func TestRandomOpsMatchMap(t *testing.T) {
	tc := critbittesting.NewTestContext(t, critbittesting.TestConfig{
		Seed: 11, TestLabelPrefix: "TestRandomOpsMatchMap",
	})
	masks := []uint64{0xff, 0xffff, 0xff000000000000ff, ^uint64(0)}

	for _, mask := range masks {
		tree := critbit.New[uint64]()
		want := map[uint64]uint64{}

		for i := 0; i < 5000; i++ {
			k := tc.Rand.Uint64() & mask
			if tc.Rand.Intn(3) == 0 {
				prev, ok := tree.Remove(k)
				wv, wok := want[k]
				require.Equal(t, wok, ok)
				require.Equal(t, wv, prev)
				delete(want, k)
				continue
			}
			v := tc.Rand.Uint64()
			prev, replaced := tree.Put(k, v)
			wv, wok := want[k]
			require.Equal(t, wok, replaced)
			require.Equal(t, wv, prev)
			want[k] = v
		}

		require.Equal(t, len(want), tree.Size())
		require.NoError(t, tree.Verify())
		require.Equal(t, want, critbittesting.Collect(tree.Iterator()))

		for i := 0; i < 50; i++ {
			lo, hi := tc.Rand.Uint64()&mask, tc.Rand.Uint64()&mask
			if lo > hi {
				lo, hi = hi, lo
			}
			inRange := map[uint64]uint64{}
			for k, v := range want {
				if k >= lo && k <= hi {
					inRange[k] = v
				}
			}
			require.Equal(t, inRange, critbittesting.Collect(tree.Range(lo, hi)))
		}
	}
}
