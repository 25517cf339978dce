package rbtree

import (
	"fmt"
	"strings"

	"github.com/ortreego/ortree/lock"
)

// Comparator orders two values, returning <0, 0, >0 the same way
// strings.Compare or slices.Compare do. Only the comparator-driven
// operations (InsertSorted, CheckConsistency, Repair) take one; the plain
// adjacency insert used by list and sortedlist does not.
type Comparator[E any] func(a, b E) int

// SearchComparator compares a probe value (held by the closure) against a
// candidate node value, with the same sign convention as Comparator: <0
// means the probe sorts before candidate, >0 means after.
type SearchComparator[E any] func(candidate E) int

// Tree is an order-statistic red-black tree: besides the usual BST
// ordering and red-black balance, every node knows its subtree size (for
// O(log n) rank/select) and its adjacency neighbors (for O(1)
// predecessor/successor). A Tree owns no comparator of its own; ordering
// is supplied per-call by whoever is inserting (list does unordered
// adjacency inserts; sortedlist supplies a Comparator).
type Tree[E any] struct {
	Locker lock.Locker

	root  *Node[E]
	first *Node[E]
	last  *Node[E]
}

// New returns an empty tree guarded by the given locker.
func New[E any](locker lock.Locker) *Tree[E] {
	if locker == nil {
		locker = lock.NewStampedLocker()
	}
	return &Tree[E]{Locker: locker}
}

// Root, First, Last are O(1) accessors. All three are nil iff the tree is
// empty; that is the invariant the rest of this package leans on.
func (t *Tree[E]) Root() *Node[E]  { return t.root }
func (t *Tree[E]) First() *Node[E] { return t.first }
func (t *Tree[E]) Last() *Node[E]  { return t.last }

// Size returns the total number of nodes in the tree, O(1).
func (t *Tree[E]) Size() int { return sizeOf(t.root) }

// Stamp returns the tree's current structure stamp.
func (t *Tree[E]) Stamp() uint64 { return t.Locker.Stamp() }

// NewNode allocates a fresh, unattached node bound to this tree. It must be
// attached via Add (or become the sole node of an empty tree via
// AttachRoot) before it is Present.
func (t *Tree[E]) NewNode(value E) *Node[E] {
	return &Node[E]{tree: t, color: Red, Value: value}
}

// setRootPointer performs the plain pointer update implied by a rotation or
// splice touching the root, without the stamp/first/last bookkeeping that
// the public notion of "replacing the root" carries at the container level.
func (t *Tree[E]) setRootPointer(n *Node[E]) {
	t.root = n
	if n != nil {
		n.parent = nil
	}
}

// transplant replaces the subtree rooted at u with the subtree rooted at v,
// fixing up u's parent's child pointer (or the tree root) and v's parent
// pointer. It does not touch sizes, colors or adjacency; callers are
// responsible for those.
func (t *Tree[E]) transplant(u, v *Node[E]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func (t *Tree[E]) rotateLeft(x *Node[E]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.setRootPointer(y)
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
	x.recomputeSize()
	y.recomputeSize()
}

func (t *Tree[E]) rotateRight(x *Node[E]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.setRootPointer(y)
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
	x.recomputeSize()
	y.recomputeSize()
}

// fixSizesFrom recomputes size bottom-up starting at n (inclusive) and
// walking to the root via parent links. Used after any structural change
// whose affected nodes all lie on a single root path above the lowest
// touched node.
func (t *Tree[E]) fixSizesFrom(n *Node[E]) {
	for n != nil {
		n.recomputeSize()
		n = n.parent
	}
}

// String renders the tree using the same connector-drawing style the
// teacher repo uses for diagnostics, rotated 90 degrees (right subtree on
// top) so deep trees still read top-to-bottom reasonably.
func (t *Tree[E]) String() string {
	if t.root == nil {
		return "(empty)\n"
	}
	var b strings.Builder
	var walk func(n *Node[E], prefix string, connector string)
	walk = func(n *Node[E], prefix, connector string) {
		if n == nil {
			return
		}
		if n.right != nil {
			childPrefix := prefix + connectorVertical
			if connector == connectorRight || connector == "" {
				childPrefix = prefix + connectorSpace
			}
			walk(n.right, childPrefix, connectorLeft)
		}
		fmt.Fprintf(&b, "%s%s%s\n", prefix, connector, n)
		if n.left != nil {
			childPrefix := prefix + connectorSpace
			if connector == connectorLeft {
				childPrefix = prefix + connectorVertical
			}
			walk(n.left, childPrefix, connectorRight)
		}
	}
	walk(t.root, "", "")
	return b.String()
}

const (
	connectorLeft      = " ╭── "
	connectorRight     = " ╰── "
	connectorVertical  = " │   "
	connectorSpace     = "     "
)
