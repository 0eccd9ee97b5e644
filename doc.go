// Package flatrb provides a generic, single-owner, ordered associative
// container backed by one contiguous slice of fixed-layout node slots,
// addressed by integer index rather than by pointer.
//
// flatrb is a red-black tree whose parent/left/right links are indices into
// its own backing slice instead of heap pointers. The contiguous layout
// makes the whole tree a flat byte image that can be written out and later
// adopted in place (SetBacking), and it gives cache-friendly O(n) unordered
// scans alongside the usual O(log n) ordered operations.
//
// Three index widths are supported through a single generic type,
// Tree[I, K, V], with I constrained to uint16, uint32 or uint64. Tree16,
// Tree32 and Tree64 name the three instantiations. The width bounds both
// the maximum element count and the per-node footprint; TransformWidth
// rehomes a tree's contents into a container of a different width.
//
// flatrb is not safe for concurrent use. A Tree is an exclusively-owned
// resource; callers needing concurrent access must synchronize externally.
package flatrb
