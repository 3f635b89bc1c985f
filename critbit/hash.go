package critbit

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/fxamacker/cbor/v2"
)

const (
	hashTagLeaf   = 0x00
	hashTagBranch = 0x01
)

var digestEncMode cbor.EncMode

func init() {
	var err error
	digestEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// Digest returns a merkle digest of the snapshot contents.
//
//	leaf   = H(0x00 || key_be8 || cbor(value))
//	branch = H(0x01 || bit || left || right)
//
// Values are encoded with deterministic (core) CBOR. The shape of a crit-bit
// tree depends only on its key set, so two snapshots holding the same entries
// have the same digest whatever sequence of mutations produced them. The empty
// tree digests to all zeros.
func (s Snapshot[V]) Digest(hasher hash.Hash) ([HashBytes]byte, error) {
	var out [HashBytes]byte
	if hasher.Size() != HashBytes {
		return out, ErrBadHashSize
	}
	root := s.root()
	if root == nil {
		return out, nil
	}
	return digestNode[V](hasher, root)
}

// Digest returns the digest of the current contents of t. See Snapshot.Digest.
func (t *Tree[V]) Digest(hasher hash.Hash) ([HashBytes]byte, error) {
	return t.Snapshot().Digest(hasher)
}

func digestNode[V any](hasher hash.Hash, n node[V]) ([HashBytes]byte, error) {
	switch x := n.(type) {
	case *leaf[V]:
		return HashLeaf(hasher, x.key, x.value)
	case *branch[V]:
		left, err := digestNode[V](hasher, x.child[0])
		if err != nil {
			return [HashBytes]byte{}, err
		}
		right, err := digestNode[V](hasher, x.child[1])
		if err != nil {
			return [HashBytes]byte{}, err
		}
		return HashBranch(hasher, x.bit, left, right)
	}
	return [HashBytes]byte{}, fmt.Errorf("critbit: unknown node type %T", n)
}

// HashLeaf computes the leaf hash committed by Digest:
//
//	H( 0x00 || key_be8 || cbor(value) )
func HashLeaf[V any](hasher hash.Hash, key uint64, value V) ([HashBytes]byte, error) {
	valueBytes, err := digestEncMode.Marshal(value)
	if err != nil {
		return [HashBytes]byte{}, err
	}
	hasher.Reset()
	_, _ = hasher.Write([]byte{hashTagLeaf})
	HashWriteUint64(hasher, key)
	_, _ = hasher.Write(valueBytes)
	return sum32(hasher)
}

// HashBranch computes the branch hash committed by Digest:
//
//	H( 0x01 || bit_u8 || leftHash[32] || rightHash[32] )
func HashBranch(hasher hash.Hash, bit uint8, left, right [HashBytes]byte) ([HashBytes]byte, error) {
	hasher.Reset()
	_, _ = hasher.Write([]byte{hashTagBranch, bit})
	_, _ = hasher.Write(left[:])
	_, _ = hasher.Write(right[:])
	return sum32(hasher)
}

func sum32(hasher hash.Hash) ([HashBytes]byte, error) {
	var out [HashBytes]byte
	sum := hasher.Sum(out[:0])
	if len(sum) != HashBytes {
		return [HashBytes]byte{}, ErrBadHashSize
	}
	copy(out[:], sum)
	return out, nil
}

// HashWriteUint64 writes value to hasher in big endian order.
func HashWriteUint64(hasher hash.Hash, value uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], value)
	_, _ = hasher.Write(b[:])
}
