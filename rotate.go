package flatrb

// rotateLeft performs a standard left rotation around x, rewriting the
// parent/child links touched by the rotation and root_index if x was the
// root. Used by both insert and delete fixup.
func (t *Tree[I, K, V]) rotateLeft(x I) {
	nilI := nilIndex[I]()
	xn := &t.slots[x]
	y := xn.right
	yn := &t.slots[y]

	xn.right = yn.left
	if yn.left != nilI {
		t.slots[yn.left].parent = x
	}
	yn.parent = xn.parent
	if xn.parent == nilI {
		t.hdr.rootIndex = y
	} else {
		p := &t.slots[xn.parent]
		if p.left == x {
			p.left = y
		} else {
			p.right = y
		}
	}
	yn.left = x
	xn.parent = y
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree[I, K, V]) rotateRight(x I) {
	nilI := nilIndex[I]()
	xn := &t.slots[x]
	y := xn.left
	yn := &t.slots[y]

	xn.left = yn.right
	if yn.right != nilI {
		t.slots[yn.right].parent = x
	}
	yn.parent = xn.parent
	if xn.parent == nilI {
		t.hdr.rootIndex = y
	} else {
		p := &t.slots[xn.parent]
		if p.right == x {
			p.right = y
		} else {
			p.left = y
		}
	}
	yn.right = x
	xn.parent = y
}

func (t *Tree[I, K, V]) colorOf(i I) color {
	if i == nilIndex[I]() {
		return black
	}
	return t.slots[i].color
}

func (t *Tree[I, K, V]) setColor(i I, c color) {
	if i == nilIndex[I]() {
		return
	}
	t.slots[i].color = c
}
