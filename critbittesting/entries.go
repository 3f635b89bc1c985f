package critbittesting

import (
	"github.com/forestrie/go-critbit/critbit"
)

// Collect drains it into a map.
func Collect[V any](it *critbit.Iterator[V]) map[uint64]V {
	entries := make(map[uint64]V)
	for it.HasNext() {
		e, _ := it.Next()
		entries[e.Key()] = e.Value()
	}
	return entries
}

// Keys drains it and returns the keys in the order they were produced.
func Keys[V any](it *critbit.Iterator[V]) []uint64 {
	var keys []uint64
	for {
		e, ok := it.Next()
		if !ok {
			return keys
		}
		keys = append(keys, e.Key())
	}
}

// Identity returns a map from each key to itself.
func Identity(keys ...uint64) map[uint64]uint64 {
	m := make(map[uint64]uint64, len(keys))
	for _, k := range keys {
		m[k] = k
	}
	return m
}
