package list

import "github.com/ortreego/ortree/rbtree"

// Spliterator is a mutable, bounded cursor over a List that tolerates
// arbitrary external structural changes except removal of the node it is
// currently positioned at; that specific case surfaces
// ErrConcurrentModification on the next TryAdvance, rather than silently
// resuming from some other position. TrySplit divides its range for
// parallel traversal; the plain All iterators do not use it.
type Spliterator[E any] struct {
	list    *List[E]
	cursor  *rbtree.Node[E]
	started bool
	left    *rbtree.Node[E] // inclusive lower bound; nil = unbounded (tree's first)
	right   *rbtree.Node[E] // exclusive upper bound; nil = unbounded (past tree's last)
}

// NewSpliterator returns a spliterator over the whole list.
func (l *List[E]) NewSpliterator() *Spliterator[E] {
	return &Spliterator[E]{list: l}
}

func (s *Spliterator[E]) inBounds(n *rbtree.Node[E]) bool {
	if s.left != nil {
		if c, err := rbtree.Compare(n, s.left); err != nil || c < 0 {
			return false
		}
	}
	if s.right != nil {
		if c, err := rbtree.Compare(n, s.right); err != nil || c >= 0 {
			return false
		}
	}
	return true
}

func (s *Spliterator[E]) boundedStart() *rbtree.Node[E] {
	if s.left != nil {
		return s.left
	}
	return s.list.tree.First()
}

func (s *Spliterator[E]) boundedEnd() *rbtree.Node[E] {
	if s.right != nil {
		return s.right.Prev()
	}
	return s.list.tree.Last()
}

// TryAdvance moves the cursor one step in the given direction and reports
// the value found there. ok is false at the relevant bound (no error); err
// is ErrConcurrentModification if the cursor's node was removed by another
// goroutine since the last successful advance.
func (s *Spliterator[E]) TryAdvance(forward bool) (value E, ok bool, err error) {
	var zero E
	acq := s.list.tree.Locker.Lock(false, "spliterator.TryAdvance")
	defer acq.Release()

	if s.cursor == nil {
		if s.started {
			return zero, false, nil
		}
		var start *rbtree.Node[E]
		if forward {
			start = s.boundedStart()
		} else {
			start = s.boundedEnd()
		}
		s.started = true
		if start == nil || !s.inBounds(start) {
			return zero, false, nil
		}
		s.cursor = start
		return start.Value, true, nil
	}

	if !s.cursor.Present() {
		return zero, false, ErrConcurrentModification
	}

	next := s.cursor.Closest(!forward)
	if next == nil || !s.inBounds(next) {
		return zero, false, nil
	}
	s.cursor = next
	return next.Value, true, nil
}

// TrySplit carves off the far half of the spliterator's remaining range as
// a new, independent sibling spliterator, shrinking the receiver to the
// near half. It returns (nil, nil) when the range cannot be split further
// (fewer than two elements apart). Intended to be called before iteration
// begins, the same way a fork-join task splits its work up front.
func (s *Spliterator[E]) TrySplit() (*Spliterator[E], error) {
	acq := s.list.tree.Locker.Lock(false, "spliterator.TrySplit")
	defer acq.Release()

	left := s.left
	if left == nil {
		left = s.list.tree.First()
	}
	right := s.right
	if right == nil {
		right = s.list.tree.Last()
	}
	if left == nil || right == nil || left == right {
		return nil, nil
	}
	mid, err := rbtree.SplitBetween(left, right)
	if err != nil {
		return nil, err
	}
	if mid == nil {
		return nil, nil
	}
	sibling := &Spliterator[E]{list: s.list, left: mid, right: s.right}
	s.right = mid
	s.cursor = nil
	s.started = false
	return sibling, nil
}

// EstimateSize reports the number of elements remaining in the
// spliterator's bounds, computed from each bound's index-before rather
// than by counting, so it stays O(log n).
func (s *Spliterator[E]) EstimateSize() int {
	acq := s.list.tree.Locker.Lock(false, "spliterator.EstimateSize")
	defer acq.Release()

	total := s.list.tree.Size()
	if total == 0 {
		return 0
	}
	leftIdx := 0
	if s.left != nil {
		if i, ok := s.left.NodesBefore(nil); ok {
			leftIdx = i
		}
	}
	rightIdx := total
	if s.right != nil {
		if i, ok := s.right.NodesBefore(nil); ok {
			rightIdx = i
		}
	}
	if rightIdx < leftIdx {
		return 0
	}
	return rightIdx - leftIdx
}
