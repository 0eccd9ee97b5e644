package flatrb

// Delete removes key if present and returns whether it was found. On a
// two-child node the in-order successor's key/value are substituted in
// and the delete is redirected to the successor's (at-most-one-child)
// slot, per §4.4.
func (t *Tree[I, K, V]) Delete(key K) bool {
	nilI := nilIndex[I]()
	d := t.findIndex(key)
	if d == nilI {
		return false
	}

	if t.slots[d].left != nilI && t.slots[d].right != nilI {
		s := t.minIndex(t.slots[d].right)
		t.slots[d].key = t.slots[s].key
		t.slots[d].value = t.slots[s].value
		d = s
	}

	var child I
	if t.slots[d].left != nilI {
		child = t.slots[d].left
	} else {
		child = t.slots[d].right
	}

	p := t.slots[d].parent
	onLeft := false
	if p != nilI {
		onLeft = t.slots[p].left == d
	}
	if child != nilI {
		t.slots[child].parent = p
	}
	if p == nilI {
		t.hdr.rootIndex = child
	} else if onLeft {
		t.slots[p].left = child
	} else {
		t.slots[p].right = child
	}
	removedColor := t.slots[d].color

	x, xParent := child, p
	t.compact(d, &x, &xParent)

	if removedColor == black {
		t.deleteFixup(x, xParent, onLeft)
	}
	return true
}

// compact frees slot "freed" by moving the current last live slot into it
// (unless it already is the last slot) and decrementing liveCount. cells
// are addresses of local index variables the caller still holds live
// (entry points into the about-to-run fixup); any cell whose value equals
// the moved slot's old index is rewritten to its new index, the "indirect
// slot" mechanism of §4.4 point 3.
func (t *Tree[I, K, V]) compact(freed I, cells ...*I) {
	last := t.hdr.liveCount - 1
	if freed != last {
		t.moveSlot(last, freed, cells)
	}
	t.slots[last].clear()
	t.hdr.liveCount = last
}

// moveSlot relocates the live slot at "from" to "to", rewriting its
// parent's child link (or rootIndex) and its children's parent links, then
// correcting any of cells that referenced "from".
func (t *Tree[I, K, V]) moveSlot(from, to I, cells []*I) {
	nilI := nilIndex[I]()
	s := t.slots[from]
	if s.parent == nilI {
		t.hdr.rootIndex = to
	} else {
		p := &t.slots[s.parent]
		if p.left == from {
			p.left = to
		} else {
			p.right = to
		}
	}
	if s.left != nilI {
		t.slots[s.left].parent = to
	}
	if s.right != nilI {
		t.slots[s.right].parent = to
	}
	t.slots[to] = s
	for _, c := range cells {
		if c != nil && *c == from {
			*c = to
		}
	}
}

// deleteFixup restores the red-black invariants after a Black node was
// spliced out, leaving a double-black at x (possibly NIL) under xParent.
// onLeft records which side of xParent the hole sits on, needed because x
// itself carries no parent link when it is NIL.
func (t *Tree[I, K, V]) deleteFixup(x, xParent I, onLeft bool) {
	nilI := nilIndex[I]()
	for x != t.hdr.rootIndex && t.colorOf(x) == black {
		if xParent == nilI {
			break
		}
		if onLeft {
			w := t.slots[xParent].right
			if t.colorOf(w) == red {
				t.setColor(w, black)
				t.setColor(xParent, red)
				t.rotateLeft(xParent)
				w = t.slots[xParent].right
			}
			if t.colorOf(t.slots[w].left) == black && t.colorOf(t.slots[w].right) == black {
				t.setColor(w, red)
				x = xParent
				xParent = t.slots[x].parent
				if xParent != nilI {
					onLeft = t.slots[xParent].left == x
				}
				continue
			}
			if t.colorOf(t.slots[w].right) == black {
				t.setColor(t.slots[w].left, black)
				t.setColor(w, red)
				t.rotateRight(w)
				w = t.slots[xParent].right
			}
			t.setColor(w, t.colorOf(xParent))
			t.setColor(xParent, black)
			t.setColor(t.slots[w].right, black)
			t.rotateLeft(xParent)
			x = t.hdr.rootIndex
			break
		}

		w := t.slots[xParent].left
		if t.colorOf(w) == red {
			t.setColor(w, black)
			t.setColor(xParent, red)
			t.rotateRight(xParent)
			w = t.slots[xParent].left
		}
		if t.colorOf(t.slots[w].right) == black && t.colorOf(t.slots[w].left) == black {
			t.setColor(w, red)
			x = xParent
			xParent = t.slots[x].parent
			if xParent != nilI {
				onLeft = t.slots[xParent].left == x
			}
			continue
		}
		if t.colorOf(t.slots[w].left) == black {
			t.setColor(t.slots[w].right, black)
			t.setColor(w, red)
			t.rotateLeft(w)
			w = t.slots[xParent].left
		}
		t.setColor(w, t.colorOf(xParent))
		t.setColor(xParent, black)
		t.setColor(t.slots[w].left, black)
		t.rotateRight(xParent)
		x = t.hdr.rootIndex
		break
	}
	t.setColor(x, black)
}
