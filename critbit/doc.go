package critbit

/*

# Copy-on-write crit-bit tree over 64-bit keys

This package provides an ordered index from uint64 keys to arbitrary values,
built as a binary crit-bit (PATRICIA) trie whose nodes are never modified once
published.

- small immutable node values (a leaf or a branch)
- mutations rebuild only the root-to-change path and share everything else
- one atomic pointer swap publishes each mutation

## Bit numbering

Bit 0 is the least significant bit and bit 63 the most significant. A branch
tests the key's bit at its `bit` position: 0 goes to child[0], 1 to child[1].
Keys are compared as raw bit patterns, so iteration is unsigned ascending
order. Callers with signed keys convert with uint64(k); -1 sorts last.

## Core invariants

1. on every root-to-leaf path, branch bits strictly decrease
2. a node reachable from a published root is never mutated
3. every key below a branch agrees with the branch prefix above its bit

Invariant (1) is what lets a guided descent, which reads only the query key,
land on the single leaf sharing the longest prefix with it. The leaf key must
still be compared for equality.

## Concurrency

Put and Remove on one Tree serialize on the tree's mutex for the whole
load-build-publish sequence. Everything else (Get, Contains, Size, Copy,
Snapshot, iterator construction and traversal) performs exactly one atomic
load of the current version and then walks immutable nodes. Readers never
block writers and never observe a partially applied mutation.

An Iterator captures a version when it is created and is unaffected by any
later mutation of the tree that produced it. Copy shares the root in O(1);
the two trees diverge as each builds its own new paths.

*/
