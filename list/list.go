// Package list implements the indexed list facade (L3): a mutable,
// insertion-ordered sequence backed by rbtree.Tree, exposing stable element
// identifiers and optimistic-read navigation instead of raw node pointers.
package list

import (
	"fmt"
	"iter"

	"github.com/google/uuid"

	"github.com/ortreego/ortree/rbtree"
)

// List is an indexed, insertion-ordered sequence. Unlike sortedlist, List
// has no comparator: callers place values explicitly, by position relative
// to an existing element or at either terminal.
type List[E any] struct {
	tree     *rbtree.Tree[E]
	identity uuid.UUID
}

// New returns an empty list configured by opts.
func New[E any](opts ...Option[E]) *List[E] {
	o := defaultOptions[E]()
	for _, opt := range opts {
		opt(&o)
	}
	l := &List[E]{
		tree:     rbtree.New[E](o.locker),
		identity: o.identity,
	}
	for _, v := range o.initialValues {
		l.Add(v, nil, nil, false)
	}
	return l
}

// Identity returns the opaque tag this list was constructed or defaulted
// with. The list stores it for callers and does not use it itself.
func (l *List[E]) Identity() uuid.UUID { return l.identity }

// Tree exposes the underlying rbtree.Tree to other ortree packages
// (sortedlist, ordermap) that build on top of List. Not part of the public
// contract for ordinary callers.
func (l *List[E]) Tree() *rbtree.Tree[E] { return l.tree }

func (l *List[E]) checkOwnership(id ID[E]) error {
	if id.zero() {
		return ErrNotFound
	}
	if id.node.Tree() != l.tree {
		return ErrTreeMismatch
	}
	return nil
}

// Size returns the number of elements currently in the list, O(1).
func (l *List[E]) Size() int {
	acq := l.tree.Locker.Lock(false, "list.Size")
	defer acq.Release()
	return l.tree.Size()
}

// ElementAt returns the element at the given 0-based index.
func (l *List[E]) ElementAt(index int) (ID[E], error) {
	result, _ := l.tree.Locker.DoOptimistically(func(cancel func() bool) (any, bool) {
		root := l.tree.Root()
		if root == nil {
			return nil, true
		}
		n, ok := root.GetByIndex(index, cancel)
		if !ok && cancel() {
			return nil, false
		}
		return n, true
	})
	n, _ := result.(*rbtree.Node[E])
	if n == nil {
		return ID[E]{}, fmt.Errorf("%w: index %d", ErrOutOfRange, index)
	}
	return ID[E]{node: n}, nil
}

// Adjacent returns the neighboring element id (next if next is true,
// otherwise previous), or a zero ID and false at the ends. It tolerates a
// removed anchor per the removal-tolerance rule.
func (l *List[E]) Adjacent(id ID[E], next bool) (ID[E], bool) {
	if id.zero() {
		return ID[E]{}, false
	}
	neighbor := id.node.Closest(!next)
	if neighbor == nil {
		return ID[E]{}, false
	}
	return ID[E]{node: neighbor}, true
}

// Terminal returns the first (first=true) or last element, or a zero ID and
// false if the list is empty. O(1).
func (l *List[E]) Terminal(first bool) (ID[E], bool) {
	acq := l.tree.Locker.Lock(false, "list.Terminal")
	defer acq.Release()
	var n *rbtree.Node[E]
	if first {
		n = l.tree.First()
	} else {
		n = l.tree.Last()
	}
	if n == nil {
		return ID[E]{}, false
	}
	return ID[E]{node: n}, true
}

// ElementsBefore returns the number of elements ordered strictly before id.
func (l *List[E]) ElementsBefore(id ID[E]) (int, error) {
	if err := l.checkOwnership(id); err != nil {
		return 0, err
	}
	result, ok := l.tree.Locker.DoOptimistically(func(cancel func() bool) (any, bool) {
		n, ok := id.node.NodesBefore(cancel)
		return n, ok
	})
	if !ok {
		return 0, ErrNotFound
	}
	return result.(int), nil
}

// ElementsAfter returns the number of elements ordered strictly after id.
func (l *List[E]) ElementsAfter(id ID[E]) (int, error) {
	if err := l.checkOwnership(id); err != nil {
		return 0, err
	}
	result, ok := l.tree.Locker.DoOptimistically(func(cancel func() bool) (any, bool) {
		n, ok := id.node.NodesAfter(cancel)
		return n, ok
	})
	if !ok {
		return 0, ErrNotFound
	}
	return result.(int), nil
}

// Add inserts value, positioned adjacent to after (on its right) when after
// is given and present, adjacent to before (on its left) when before is
// given and present and after was not, or else at the terminal named by
// preferFirst (prepended when true, appended when false). An empty list
// installs the value as its sole root element regardless of the other
// arguments.
func (l *List[E]) Add(value E, after, before *ID[E], preferFirst bool) (ID[E], error) {
	acq := l.tree.Locker.Lock(true, "list.Add")
	defer acq.Release()

	if after != nil && !after.zero() {
		if err := l.checkOwnership(*after); err != nil {
			return ID[E]{}, err
		}
		if after.node.Present() {
			n := l.tree.NewNode(value)
			after.node.Add(n, false)
			return ID[E]{node: n}, nil
		}
	}
	if before != nil && !before.zero() {
		if err := l.checkOwnership(*before); err != nil {
			return ID[E]{}, err
		}
		if before.node.Present() {
			n := l.tree.NewNode(value)
			before.node.Add(n, true)
			return ID[E]{node: n}, nil
		}
	}
	if l.tree.Root() == nil {
		n := l.tree.NewNode(value)
		l.tree.AttachRoot(n)
		return ID[E]{node: n}, nil
	}
	n := l.tree.NewNode(value)
	if preferFirst {
		l.tree.First().Add(n, true)
	} else {
		l.tree.Last().Add(n, false)
	}
	return ID[E]{node: n}, nil
}

// Remove deletes id's element from the list.
func (l *List[E]) Remove(id ID[E]) error {
	if err := l.checkOwnership(id); err != nil {
		return err
	}
	acq := l.tree.Locker.Lock(true, "list.Remove")
	defer acq.Release()
	if !id.node.Present() {
		return ErrAlreadyRemoved
	}
	l.tree.Delete(id.node)
	return nil
}

// Set replaces the value at id in place; it does not touch tree structure
// and does not bump the structure stamp (value updates are not structural,
// per the concurrency model).
func (l *List[E]) Set(id ID[E], newValue E) error {
	if err := l.checkOwnership(id); err != nil {
		return err
	}
	if !id.node.Present() {
		return ErrAlreadyRemoved
	}
	id.node.Value = newValue
	return nil
}

// SplitBetween returns an element id strictly between a and b in order, or
// a zero ID and false if they are equal or adjacent.
func (l *List[E]) SplitBetween(a, b ID[E]) (ID[E], bool, error) {
	if err := l.checkOwnership(a); err != nil {
		return ID[E]{}, false, err
	}
	if err := l.checkOwnership(b); err != nil {
		return ID[E]{}, false, err
	}
	acq := l.tree.Locker.Lock(false, "list.SplitBetween")
	defer acq.Release()
	n, err := rbtree.SplitBetween(a.node, b.node)
	if err != nil {
		return ID[E]{}, false, err
	}
	if n == nil {
		return ID[E]{}, false, nil
	}
	return ID[E]{node: n}, true, nil
}

// Clear removes every element, resetting the list to empty with a single
// stamp bump.
func (l *List[E]) Clear() {
	acq := l.tree.Locker.Lock(true, "list.Clear")
	defer acq.Release()
	l.tree.Clear()
}

// All returns a forward range-over-func iterator over the list's current
// values, built on the adjacency chain. It does not itself detect
// concurrent modification; use a Spliterator for that.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := l.tree.First(); n != nil; n = n.Next() {
			if !yield(n.Value) {
				return
			}
		}
	}
}
