// Package rbtree implements the order-statistic red-black tree that backs
// every ortree container. It merges what the upstream gotrees split across
// two packages (a plain bst.Tree plus an rbtree.Tree wrapper carrying only
// color) into one: size, adjacency and the index cache are core to every
// node here, not a generic metadata slot, because the containers built on
// top (list, sortedlist, ordermap) need rank queries on every tree they
// touch, not just some of them.
package rbtree

import "fmt"

// Color is the red/black tag carried by every node.
type Color bool

const (
	Red   Color = false
	Black Color = true
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node is one vertex of the tree. This package hands out *Node values
// (Root, First, Last, InsertSorted, ...) to the sibling container packages;
// list.ID wraps one to give list callers a handle that tolerates the node's
// own removal (see Node.Present).
type Node[E any] struct {
	tree   *Tree[E]
	color  Color
	parent *Node[E]
	left   *Node[E]
	right  *Node[E]

	// prev/next form the adjacency chain: the doubly linked in-order
	// traversal kept alongside the tree structure so predecessor/successor
	// is O(1) and survives a single node's removal.
	prev *Node[E]
	next *Node[E]

	// size is the number of nodes in the subtree rooted at this node,
	// including itself.
	size int

	// cachedIndex/cachedStamp implement the index cache: cachedIndex is
	// only trustworthy while cachedStamp equals the tree's current
	// structure stamp. The same field pair also records "index at
	// deletion" for a removed node; Delete writes cachedIndex/cachedStamp
	// as its very last act, so the same validity rule
	// (cachedStamp == tree.Stamp()) governs both a live node's memoized
	// rank and a removed node's as-of-deletion rank, and naturally goes
	// stale the moment any further structural mutation happens.
	cachedIndex int
	cachedStamp uint64

	Value E
}

// Tree returns the tree this node belongs to (even after removal).
func (n *Node[E]) Tree() *Tree[E] { return n.tree }

// Present reports whether n is still attached to its tree: it is the root,
// or it has a non-nil parent. A removed node fails both checks, since
// Delete clears its parent/left/right links as its last structural act.
func (n *Node[E]) Present() bool {
	return n.parent != nil || n == n.tree.root
}

// Color returns the node's current color.
func (n *Node[E]) Color() Color { return n.color }

// Parent, Left, Right expose the raw tree structure for callers that need
// to walk it directly (diagnostics, custom traversals).
func (n *Node[E]) Parent() *Node[E] { return n.parent }
func (n *Node[E]) Left() *Node[E]   { return n.left }
func (n *Node[E]) Right() *Node[E]  { return n.right }

// Size returns the size of the subtree rooted at n. Meaningless once n has
// been removed.
func (n *Node[E]) Size() int { return n.size }

// Prev and Next return the node's adjacency-chain neighbors. These remain
// valid to call even after n has been removed, as long as the neighbors
// themselves are still present; that is the entire point of keeping the
// chain instead of only the tree shape.
func (n *Node[E]) Prev() *Node[E] { return n.prev }
func (n *Node[E]) Next() *Node[E] { return n.next }

func isRed[E any](n *Node[E]) bool   { return n != nil && n.color == Red }
func isBlack[E any](n *Node[E]) bool { return n == nil || n.color == Black }

func sizeOf[E any](n *Node[E]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *Node[E]) recomputeSize() {
	n.size = 1 + sizeOf(n.left) + sizeOf(n.right)
}

// String renders a single node as "value [color]", used by Tree.String's
// tree drawing.
func (n *Node[E]) String() string {
	return fmt.Sprintf("%v [%s]", n.Value, n.color)
}
