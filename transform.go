package flatrb

import "cmp"

// Transform rehomes src's contents into t (§4.7). Both trees share index
// width I, so every link index is copied unchanged; TransformWidth is the
// cross-width path. No rebalancing is needed: the source's shape and
// colors are already valid red-black state, so the rehoming is a pure
// copy. t is grown first if its capacity is smaller than src's live count.
func (t *Tree[I, K, V]) Transform(src *Tree[I, K, V]) error {
	return transformInto(t, src)
}

// TransformWidth builds a new tree of index width IDst from src (index
// width ISrc), with capacity at least capacity (clamped, as New does).
// This is the cross-width path of §4.7; Transform itself only covers the
// same-width case since a Go method cannot introduce a second index-width
// type parameter beyond its receiver's.
func TransformWidth[ISrc, IDst Index, K cmp.Ordered, V any](src *Tree[ISrc, K, V], capacity int) (*Tree[IDst, K, V], error) {
	dst := New[IDst, K, V](capacity)
	if err := transformInto(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

func transformInto[ISrc, IDst Index, K cmp.Ordered, V any](dst *Tree[IDst, K, V], src *Tree[ISrc, K, V]) error {
	if uint64(src.hdr.liveCount) > uint64(maxCount[IDst]()) {
		return newError("Transform", CapacityExceeded)
	}
	need := int(src.hdr.liveCount)
	if need > dst.Cap() {
		if err := dst.reallocate("Transform", IDst(need)); err != nil {
			return err
		}
	}

	n := src.hdr.liveCount
	for i := ISrc(0); i < n; i++ {
		s := &src.slots[i]
		d := &dst.slots[i]
		d.parent = translateIndex[ISrc, IDst](s.parent)
		d.left = translateIndex[ISrc, IDst](s.left)
		d.right = translateIndex[ISrc, IDst](s.right)
		d.color = s.color
		d.key = s.key
		d.value = cloneValue(s.value)
	}
	for i := IDst(n); i < dst.hdr.capacity; i++ {
		dst.slots[i].clear()
	}
	dst.hdr.liveCount = IDst(n)
	dst.hdr.rootIndex = translateIndex[ISrc, IDst](src.hdr.rootIndex)
	return nil
}

func translateIndex[ISrc, IDst Index](i ISrc) IDst {
	if i == nilIndex[ISrc]() {
		return nilIndex[IDst]()
	}
	return IDst(i)
}

// Copy returns an independent tree with identical structure and contents.
// Values implementing Cloner[V] are deep-cloned rather than shallow
// copied.
func (t *Tree[I, K, V]) Copy() (*Tree[I, K, V], error) {
	dst := New[I, K, V](t.Cap())
	if err := dst.Transform(t); err != nil {
		return nil, err
	}
	return dst, nil
}
