package rbtree

import "errors"

// ErrTreeMismatch is returned when an operation is asked to compare or
// otherwise relate two nodes that do not belong to the same tree.
var ErrTreeMismatch = errors.New("ortree: nodes belong to different trees")

// ErrCanceled names a traversal abandoned because its cancel predicate
// reported true. The cancelable traversals in this package do not return
// it; they report cancellation through their (-1, false) or nil results.
var ErrCanceled = errors.New("ortree: traversal canceled")

// nodesBeforeLive computes n's 0-based in-order rank without consulting or
// writing the index cache; used internally where the cache would be
// immediately invalidated anyway (e.g. mid-delete, before the node is
// detached).
func (n *Node[E]) nodesBeforeLive() int {
	count := sizeOf(n.left)
	for cur := n; cur.parent != nil; cur = cur.parent {
		if cur == cur.parent.right {
			count += sizeOf(cur.parent.left) + 1
		}
	}
	return count
}

// NodesBefore returns the number of nodes ordered strictly before n (n's
// 0-based rank). It consults the index cache first; on a miss it ascends
// the tree accumulating left-subtree sizes, then writes the result back
// into the cache tagged with the current stamp. cancel, if non-nil, is
// polled during the ascent and causes an early return of (-1, false); the
// caller (an optimistic reader) should treat that as "retry under a real
// lock", not as a real answer.
func (n *Node[E]) NodesBefore(cancel func() bool) (int, bool) {
	stamp := n.tree.Stamp()
	if n.cachedStamp == stamp {
		return n.cachedIndex, true
	}
	if !n.Present() {
		// Absent and the cache is stale relative to the current stamp: the
		// tree has structurally changed since this node was removed, so
		// there is no longer a meaningful rank to report.
		return -1, false
	}
	count := sizeOf(n.left)
	for cur := n; cur.parent != nil; cur = cur.parent {
		if cancel != nil && cancel() {
			return -1, false
		}
		if cur == cur.parent.right {
			count += sizeOf(cur.parent.left) + 1
		}
	}
	if cancel != nil && cancel() {
		return -1, false
	}
	n.cachedIndex = count
	n.cachedStamp = stamp
	return count, true
}

// Index is a convenience wrapper over NodesBefore with no cancellation.
func (n *Node[E]) Index() int {
	i, _ := n.NodesBefore(nil)
	return i
}

// NodesAfter returns the count of nodes ordered strictly after n, computed
// as tree_size - nodes_before - (present ? 1 : 0), matching the source
// behavior of deriving it from nodes_before rather than a separate ascent.
func (n *Node[E]) NodesAfter(cancel func() bool) (int, bool) {
	before, ok := n.NodesBefore(cancel)
	if !ok {
		return -1, false
	}
	total := sizeOf(n.tree.root)
	present := 0
	if n.Present() {
		present = 1
	}
	return total - before - present, true
}

// GetByIndex descends from n (treated as the root of a subtree) to the node
// at 0-based rank i within that subtree. ok is false if i is out of range
// or cancel fired mid-descent.
func (n *Node[E]) GetByIndex(i int, cancel func() bool) (node *Node[E], ok bool) {
	cur := n
	passed := 0
	for cur != nil {
		if cancel != nil && cancel() {
			return nil, false
		}
		left := sizeOf(cur.left)
		switch {
		case i < passed+left:
			cur = cur.left
		case i == passed+left:
			return cur, true
		default:
			passed += left + 1
			cur = cur.right
		}
	}
	return nil, false
}

// Terminal descends all the way to the left (left==true) or right
// (left==false) from n, returning the extreme node of n's subtree.
func (n *Node[E]) Terminal(left bool, cancel func() bool) *Node[E] {
	cur := n
	for {
		if cancel != nil && cancel() {
			return nil
		}
		var next *Node[E]
		if left {
			next = cur.left
		} else {
			next = cur.right
		}
		if next == nil {
			return cur
		}
		cur = next
	}
}

// Closest returns n's adjacency-chain predecessor (left==true) or successor
// (left==false). O(1).
func (n *Node[E]) Closest(left bool) *Node[E] {
	if left {
		return n.prev
	}
	return n.next
}

// Compare orders two present nodes of the same tree without computing
// either's absolute index: it walks a's ancestor chain once (recording,
// for each ancestor, which child leads toward a), then walks upward from b
// until it meets that chain, determining the relative order from which
// side each node approaches their common ancestor.
func Compare[E any](a, b *Node[E]) (int, error) {
	if a.tree != b.tree {
		return 0, ErrTreeMismatch
	}
	if a == b {
		return 0, nil
	}
	sideTowardA := make(map[*Node[E]]bool, 8)
	for n := a; n.parent != nil; n = n.parent {
		sideTowardA[n.parent] = n.parent.left == n
	}
	if side, ok := sideTowardA[b]; ok {
		// b is a proper ancestor of a.
		if side {
			return -1, nil
		}
		return 1, nil
	}
	for m := b; m.parent != nil; m = m.parent {
		p := m.parent
		bSide := p.left == m
		if p == a {
			// a is a proper ancestor of b.
			if bSide {
				return 1, nil
			}
			return -1, nil
		}
		if aSide, ok := sideTowardA[p]; ok {
			if aSide {
				return -1, nil
			}
			return 1, nil
		}
	}
	return 0, ErrTreeMismatch
}

// SplitBetween returns a node whose in-order position lies strictly between
// a and b (in either order), for use as a parallel-split pivot. It returns
// nil if a and b are adjacent or equal. The pivot is chosen near the
// midpoint of the index range so repeated splitting produces roughly
// balanced halves, computed via two rank lookups and one select rather than
// a bespoke tree descent.
func SplitBetween[E any](a, b *Node[E]) (*Node[E], error) {
	cmp, err := Compare(a, b)
	if err != nil {
		return nil, err
	}
	if cmp == 0 {
		return nil, nil
	}
	lo, hi := a, b
	if cmp > 0 {
		lo, hi = b, a
	}
	loIdx, _ := lo.NodesBefore(nil)
	hiIdx, _ := hi.NodesBefore(nil)
	if hiIdx-loIdx <= 1 {
		return nil, nil
	}
	mid := loIdx + (hiIdx-loIdx)/2
	node, ok := lo.tree.root.GetByIndex(mid, nil)
	if !ok {
		return nil, nil
	}
	return node, nil
}

// FindClosest performs a binary descent from the tree root, guided by cmp,
// returning an exact match when cmp reports 0. When no exact match exists,
// it returns the closest candidate on the configured side (preferLesser
// chooses "closest value less than the probe" vs "closest value greater
// than the probe"); when strict is true, a candidate is only ever kept if
// it is on that side, so a miss returns nil instead of falling back to the
// nearest node on the wrong side.
func (t *Tree[E]) FindClosest(cmp SearchComparator[E], preferLesser, strict bool, cancel func() bool) *Node[E] {
	var best *Node[E]
	bestOnSide := false
	cur := t.root
	for cur != nil {
		if cancel != nil && cancel() {
			return nil
		}
		c := cmp(cur.Value)
		switch {
		case c == 0:
			return cur
		case c < 0:
			onSide := !preferLesser
			if onSide {
				best, bestOnSide = cur, true
			} else if !strict && !bestOnSide {
				best, bestOnSide = cur, false
			}
			cur = cur.left
		default:
			onSide := preferLesser
			if onSide {
				best, bestOnSide = cur, true
			} else if !strict && !bestOnSide {
				best, bestOnSide = cur, false
			}
			cur = cur.right
		}
	}
	if strict && !bestOnSide {
		return nil
	}
	return best
}
