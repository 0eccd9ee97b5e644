package flatrb

// Insert adds key/value to the tree. If key is already present, its value
// is overwritten and neither structure nor color is touched. Returns
// CapacityExceeded if a new slot is needed and the tree is already at the
// width's MAX_COUNT.
func (t *Tree[I, K, V]) Insert(key K, value V) error {
	nilI := nilIndex[I]()

	if t.hdr.liveCount == 0 {
		if err := t.ensureRoom("Insert"); err != nil {
			return err
		}
		i := t.newSlot(nilI, key, value)
		t.slots[i].color = black
		t.hdr.rootIndex = i
		return nil
	}

	cur := t.hdr.rootIndex
	for {
		n := &t.slots[cur]
		switch {
		case key < n.key:
			if n.left == nilI {
				if err := t.ensureRoom("Insert"); err != nil {
					return err
				}
				i := t.newSlot(cur, key, value)
				t.slots[cur].left = i
				t.insertFixup(i)
				return nil
			}
			cur = n.left
		case key > n.key:
			if n.right == nilI {
				if err := t.ensureRoom("Insert"); err != nil {
					return err
				}
				i := t.newSlot(cur, key, value)
				t.slots[cur].right = i
				t.insertFixup(i)
				return nil
			}
			cur = n.right
		default:
			n.value = value
			return nil
		}
	}
}

// newSlot appends a new Red slot at position liveCount and returns its
// index. Caller must have already called ensureRoom.
func (t *Tree[I, K, V]) newSlot(parent I, key K, value V) I {
	i := t.hdr.liveCount
	s := &t.slots[i]
	s.parent, s.left, s.right = parent, nilIndex[I](), nilIndex[I]()
	s.color = red
	s.key, s.value = key, value
	t.hdr.liveCount++
	return i
}

// insertFixup restores the red-black invariants after a new Red leaf z
// was linked in. It is the classical recolor/rotate loop of §4.3.
func (t *Tree[I, K, V]) insertFixup(z I) {
	nilI := nilIndex[I]()
	for {
		p := t.slots[z].parent
		if p == nilI || t.colorOf(p) == black {
			break
		}
		g := t.slots[p].parent
		if g == nilI {
			break
		}
		gn := &t.slots[g]
		if gn.left == p {
			u := gn.right
			if t.colorOf(u) == red {
				t.setColor(p, black)
				t.setColor(u, black)
				t.setColor(g, red)
				z = g
				continue
			}
			if t.slots[p].right == z { // LR
				t.rotateLeft(p)
				z, p = p, z
			}
			// LL
			t.setColor(p, black)
			t.setColor(g, red)
			t.rotateRight(g)
			break
		}
		// symmetric: p is g's right child
		u := gn.left
		if t.colorOf(u) == red {
			t.setColor(p, black)
			t.setColor(u, black)
			t.setColor(g, red)
			z = g
			continue
		}
		if t.slots[p].left == z { // RL
			t.rotateRight(p)
			z, p = p, z
		}
		// RR
		t.setColor(p, black)
		t.setColor(g, red)
		t.rotateLeft(g)
		break
	}
	t.setColor(t.hdr.rootIndex, black)
}

// Entry returns a mutable pointer to the value bound to key, inserting a
// zero-valued slot if key is absent. Fails with CapacityExceeded if
// insertion is needed and no slot is available.
func (t *Tree[I, K, V]) Entry(key K) (*V, error) {
	if i := t.findIndex(key); i != nilIndex[I]() {
		return &t.slots[i].value, nil
	}
	var zero V
	if err := t.Insert(key, zero); err != nil {
		return nil, err
	}
	return &t.slots[t.findIndex(key)].value, nil
}

// findIndex is Search's BST descent, returning the slot index instead of
// the value.
func (t *Tree[I, K, V]) findIndex(key K) I {
	nilI := nilIndex[I]()
	i := t.hdr.rootIndex
	for i != nilI {
		n := &t.slots[i]
		switch {
		case key < n.key:
			i = n.left
		case key > n.key:
			i = n.right
		default:
			return i
		}
	}
	return nilI
}
