package critbit

import "errors"

// KeyBits is the fixed key width.
const KeyBits = 64

// MaxDepth bounds the number of branches on any root-to-leaf path.
const MaxDepth = KeyBits

// HashBytes is the digest width produced by Digest.
const HashBytes = 32

var (
	ErrBadHashSize      = errors.New("critbit: hasher output must be 32 bytes")
	ErrOutOfOrderKey    = errors.New("critbit: key out of order")
	ErrDuplicateKey     = errors.New("critbit: duplicate key")
	ErrBuilderFinalized = errors.New("critbit: builder already finalized")
	ErrInvalidBranchBit = errors.New("critbit: invalid branch bit")
	ErrBranchOrder      = errors.New("critbit: branch bits not strictly decreasing")
	ErrPrefixMismatch   = errors.New("critbit: key does not match branch prefix")
	ErrSizeMismatch     = errors.New("critbit: leaf count does not match size")
	ErrNilChild         = errors.New("critbit: branch has a nil child")
)
