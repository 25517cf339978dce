package rbtree

func (t *Tree[E]) minimum(n *Node[E]) *Node[E] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Delete removes z from the tree. z must be Present. Unlike the classic
// CLRS/teacher "copy the successor's value into z, discard the successor
// node" shortcut, this splices the successor node itself into z's old
// structural position and leaves z fully detached: the node identity the
// caller asked to remove is the one that actually becomes absent, which is
// what list.ID's removal-tolerance contract requires (a caller holding a
// handle to the in-order successor must not have that handle silently
// invalidated by someone else's delete).
func (t *Tree[E]) Delete(z *Node[E]) {
	preIndex := z.nodesBeforeLive()

	var x, xParent *Node[E]
	y := z
	yOrigColor := y.color

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		t.transplant(z, x)
		t.fixSizesFrom(xParent)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		t.transplant(z, x)
		t.fixSizesFrom(xParent)
	default:
		y = t.minimum(z.right)
		yOrigColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, x)
			t.fixSizesFrom(xParent)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
		y.recomputeSize()
		if xParent == y {
			xParent = y
		}
		t.fixSizesFrom(y.parent)
	}

	if yOrigColor == Black {
		t.deleteFixup(x, xParent)
	}
	if t.root != nil {
		t.root.color = Black
	}

	// Adjacency unlink: splice z out, but leave z.prev/z.next pointing at
	// its former neighbors so a caller mid-traversal at z can still take
	// one more step.
	if z.prev != nil {
		z.prev.next = z.next
	}
	if z.next != nil {
		z.next.prev = z.prev
	}
	if t.first == z {
		t.first = z.next
	}
	if t.last == z {
		t.last = z.prev
	}

	z.parent, z.left, z.right = nil, nil, nil

	newStamp := t.Locker.Bump()
	z.cachedIndex = preIndex
	z.cachedStamp = newStamp
}

func (t *Tree[E]) deleteFixup(x, xParent *Node[E]) {
	for x != t.root && isBlack(x) {
		if x == xParent.left {
			w := xParent.right
			if isRed(w) {
				w.color = Black
				xParent.color = Red
				t.rotateLeft(xParent)
				w = xParent.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = Red
				x = xParent
				xParent = x.parent
			} else {
				if isBlack(w.right) {
					if w.left != nil {
						w.left.color = Black
					}
					w.color = Red
					t.rotateRight(w)
					w = xParent.right
				}
				w.color = xParent.color
				xParent.color = Black
				if w.right != nil {
					w.right.color = Black
				}
				t.rotateLeft(xParent)
				x = t.root
				xParent = nil
			}
		} else {
			w := xParent.left
			if isRed(w) {
				w.color = Black
				xParent.color = Red
				t.rotateRight(xParent)
				w = xParent.left
			}
			if isBlack(w.right) && isBlack(w.left) {
				w.color = Red
				x = xParent
				xParent = x.parent
			} else {
				if isBlack(w.left) {
					if w.right != nil {
						w.right.color = Black
					}
					w.color = Red
					t.rotateLeft(w)
					w = xParent.left
				}
				w.color = xParent.color
				xParent.color = Black
				if w.left != nil {
					w.left.color = Black
				}
				t.rotateRight(xParent)
				x = t.root
				xParent = nil
			}
		}
	}
	if x != nil {
		x.color = Black
	}
}

// Clear detaches every node, resetting the tree to empty with a single
// stamp bump.
func (t *Tree[E]) Clear() {
	var detach func(n *Node[E])
	detach = func(n *Node[E]) {
		if n == nil {
			return
		}
		detach(n.left)
		detach(n.right)
		n.parent, n.left, n.right = nil, nil, nil
	}
	detach(t.root)
	t.root, t.first, t.last = nil, nil, nil
	t.Locker.Bump()
}
