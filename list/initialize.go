package list

import (
	"iter"

	"github.com/ortreego/ortree/rbtree"
)

// Source is anything Initialize can bulk-load values from, in iteration
// order. List itself satisfies Source, which is what makes the fast path
// below reachable when copying one list into another.
type Source[E any] interface {
	All() iter.Seq[E]
}

// treeSource is the unexported fast-path interface: anything exposing its
// own backing rbtree.Tree can be structurally cloned instead of replayed
// value by value. List implements it via its existing (exported) Tree
// method, so Initialize(dst, srcList, nil) always takes this path.
type treeSource[E any] interface {
	Tree() *rbtree.Tree[E]
}

// Initialize bulk-populates the empty list l from source, applying mapFn
// to each value when mapFn is non-nil. When mapFn is nil and source
// exposes its own backing tree, Initialize copies that tree's topology and
// colors directly (see rbtree.Tree.CloneFrom) rather than reinserting one
// value at a time; otherwise it appends source's values in order via Add.
// It panics if l is not empty, the same contract AttachRoot and CloneFrom
// already enforce at the tree layer.
func Initialize[E any](l *List[E], source Source[E], mapFn func(E) E) error {
	if l.tree.Root() != nil {
		panic("ortree: Initialize called on a non-empty list")
	}
	if mapFn == nil {
		if ts, ok := source.(treeSource[E]); ok {
			l.tree.CloneFrom(ts.Tree())
			return nil
		}
	}
	for v := range source.All() {
		if mapFn != nil {
			v = mapFn(v)
		}
		if _, err := l.Add(v, nil, nil, false); err != nil {
			return err
		}
	}
	return nil
}
