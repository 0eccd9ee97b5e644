package flatrb

import "cmp"

// color is a node's red-black coloring. It is stored as a 32-bit field
// regardless of index width, matching the fixed-width color field the
// wire layout uses for every index width.
type color int32

const (
	red   color = 0
	black color = 1
)

// slot is one node record in the backing slice: the fixed per-node layout
// of §3 (parent/left/right links, color, key, value). A slot at position
// i < liveCount is live and every field is meaningful; a slot at
// liveCount <= i < capacity is reserved and only key/value are held at
// their zero value.
type slot[I Index, K cmp.Ordered, V any] struct {
	parent, left, right I
	color               color
	key                 K
	value               V
}

func (s *slot[I, K, V]) clear() {
	var zk K
	var zv V
	s.parent, s.left, s.right = nilIndex[I](), nilIndex[I](), nilIndex[I]()
	s.color = red
	s.key, s.value = zk, zv
}

// header holds the structural fields that apply to the tree as a whole,
// independent of any single slot: live count, root, capacity and the
// index width the tree was built with.
type header[I Index] struct {
	liveCount  I
	rootIndex  I
	capacity   I
	indexWidth uint8
}

func widthOf[I Index]() uint8 {
	var z I
	switch any(z).(type) {
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		panic("flatrb: unsupported index type")
	}
}
