package list

import "github.com/ortreego/ortree/rbtree"

// ID is an opaque, comparable handle tied one-to-one with a node. Equality
// is node identity (ID values compare equal with == exactly when they wrap
// the same node), matching the element-identifier contract: two IDs
// obtained from the same Add call are equal, two IDs from different
// insertions are never equal even if the values they carry compare equal.
//
// An ID remains usable for Present, Value and (bounded) ordering after its
// node has been removed, per the tree's removal-tolerance rule: operations
// that need the node's position succeed as long as the list has not
// structurally mutated again since the removal.
type ID[E any] struct {
	node *rbtree.Node[E]
}

// zero reports whether id was never assigned a node (the Go zero value of
// ID, as opposed to a handle to a genuinely removed node).
func (id ID[E]) zero() bool { return id.node == nil }

// Zero reports whether id is the Go zero value of ID (never assigned a
// node), as opposed to a handle to a node that was later removed.
// Exported for sibling packages (sortedlist, ordermap) built directly on
// list's tree.
func (id ID[E]) Zero() bool { return id.zero() }

// NodeOf exposes id's underlying node to sibling packages built directly
// on top of List's tree (sortedlist's comparator-driven Add, ordermap's
// entry adapter). Not part of the public contract for ordinary callers.
func NodeOf[E any](id ID[E]) *rbtree.Node[E] { return id.node }

// FromNode wraps a raw tree node into an ID, for sibling packages that
// insert directly through rbtree (sortedlist's comparator-driven Add)
// instead of going through List.Add.
func FromNode[E any](n *rbtree.Node[E]) ID[E] { return ID[E]{node: n} }

// Present reports whether the identified node is still attached to its
// list. A zero-value ID is never present.
func (id ID[E]) Present() bool {
	return !id.zero() && id.node.Present()
}

// Value returns the value currently held at id's node. Reading the value of
// a removed node returns whatever value it held at removal; this is not an
// error, since value storage is not part of the structural invariants.
func (id ID[E]) Value() E {
	var zero E
	if id.zero() {
		return zero
	}
	return id.node.Value
}

// Compare orders two IDs by tree position. If either side has been
// removed, a conservative ordering is derived from its index at deletion;
// if a removed node's cache has since gone stale (the tree mutated further
// after the removal), Compare returns ErrNotFound. Comparing IDs from
// different lists returns ErrTreeMismatch.
func Compare[E any](a, b ID[E]) (int, error) {
	if a.zero() || b.zero() {
		return 0, ErrNotFound
	}
	if a.node.Tree() != b.node.Tree() {
		return 0, ErrTreeMismatch
	}
	if a.node == b.node {
		return 0, nil
	}
	if a.node.Present() && b.node.Present() {
		return rbtree.Compare(a.node, b.node)
	}
	ai, ok := a.node.NodesBefore(nil)
	if !ok {
		return 0, ErrNotFound
	}
	bi, ok := b.node.NodesBefore(nil)
	if !ok {
		return 0, ErrNotFound
	}
	switch {
	case ai < bi:
		return -1, nil
	case ai > bi:
		return 1, nil
	default:
		return 0, nil
	}
}
