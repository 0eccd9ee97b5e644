package flatrb

import "cmp"

// Index is the constraint satisfied by a tree's link/index type. A link
// field that equals the all-ones pattern of I is the NIL sentinel and never
// names a real slot.
type Index interface {
	~uint16 | ~uint32 | ~uint64
}

// nilIndex returns the reserved sentinel value for I: the maximum
// representable value of the width, used where the spec calls for NIL.
func nilIndex[I Index]() I {
	return ^I(0)
}

// maxCount returns MAX_COUNT(width) = 2^width - 1, the largest capacity a
// tree of index width I can address. This equals nilIndex's value: a live
// slot's index only ever ranges over [0, capacity), so a capacity of
// nilIndex's value never puts a real slot at that index — the sentinel
// stays unambiguous even at the top capacity.
func maxCount[I Index]() I {
	return nilIndex[I]()
}

// Tree16 is a flatrb tree with 16-bit links, addressing up to 65535 slots.
type Tree16[K cmp.Ordered, V any] = Tree[uint16, K, V]

// Tree32 is a flatrb tree with 32-bit links, addressing up to 2^32-1 slots.
type Tree32[K cmp.Ordered, V any] = Tree[uint32, K, V]

// Tree64 is a flatrb tree with 64-bit links, addressing up to 2^64-1 slots.
type Tree64[K cmp.Ordered, V any] = Tree[uint64, K, V]
