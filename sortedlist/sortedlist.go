package sortedlist

import (
	"github.com/google/uuid"

	"github.com/ortreego/ortree/list"
	"github.com/ortreego/ortree/rbtree"
)

// Comparator is rbtree's comparator, reused unchanged: a sorted container
// owns no ordering logic of its own beyond what the tree already takes.
type Comparator[E any] = rbtree.Comparator[E]

// SearchFilter selects how Search treats a non-exact match relative to the
// probe.
type SearchFilter int

const (
	LessStrict SearchFilter = iota
	LessOrEqual
	Exact
	GreaterOrEqual
	GreaterStrict
)

// SortedList is a list.List kept in comparator order. Constructed with
// WithDistinct(true) it rejects duplicates and behaves as a sorted set.
type SortedList[E any] struct {
	inner    *list.List[E]
	cmp      Comparator[E]
	distinct bool
}

// New returns an empty sorted list ordered by cmp.
func New[E any](cmp Comparator[E], opts ...Option[E]) *SortedList[E] {
	o := defaultOptions[E]()
	for _, opt := range opts {
		opt(&o)
	}
	sl := &SortedList[E]{
		inner:    list.New[E](list.WithLocker[E](o.locker), list.WithIdentity[E](o.identity)),
		cmp:      cmp,
		distinct: o.distinct,
	}
	for _, v := range o.initialValues {
		sl.Add(v, nil, nil, true)
	}
	return sl
}

// NewSet returns a sorted list constructed with duplicate rejection always
// on, overriding any WithDistinct(false) passed in opts.
func NewSet[E any](cmp Comparator[E], opts ...Option[E]) *SortedList[E] {
	return New[E](cmp, append(append([]Option[E]{}, opts...), WithDistinct[E](true))...)
}

func (s *SortedList[E]) Identity() uuid.UUID { return s.inner.Identity() }

// Distinct reports whether this list rejects duplicate-comparing values.
func (s *SortedList[E]) Distinct() bool { return s.distinct }

// List exposes the underlying indexed list, for callers that want its
// positional operations (ElementAt, Adjacent, spliterators) directly.
func (s *SortedList[E]) List() *list.List[E] { return s.inner }

func (s *SortedList[E]) tree() *rbtree.Tree[E] { return s.inner.Tree() }

func (s *SortedList[E]) Size() int { return s.inner.Size() }

// IndexFor returns the 0-based index of a node matching cmp (the first
// match met while descending from the root, which among duplicates is not
// necessarily the lowest-indexed one), or
// −(i+1) where i is the index value would be inserted at to keep the list
// sorted. It bounds-checks against the current first/last before
// descending the tree.
func (s *SortedList[E]) IndexFor(cmp rbtree.SearchComparator[E]) int {
	t := s.tree()
	acq := t.Locker.Lock(false, "sortedlist.IndexFor")
	defer acq.Release()

	root := t.Root()
	if root == nil {
		return -1
	}
	if c := cmp(t.Last().Value); c > 0 {
		return -(t.Size() + 1)
	}
	if c := cmp(t.First().Value); c < 0 {
		return -1
	}
	passed := 0
	cur := root
	for cur != nil {
		c := cmp(cur.Value)
		left := cur.Left()
		leftSize := 0
		if left != nil {
			leftSize = left.Size()
		}
		switch {
		case c == 0:
			return passed + leftSize
		case c < 0:
			cur = left
		default:
			passed += leftSize + 1
			cur = cur.Right()
		}
	}
	return -(passed + 1)
}

// Search applies filter to find_closest's result: exact matches short-
// circuit every filter; LessStrict/GreaterStrict step off an exact match
// to the true neighbor; Exact rejects anything but an exact match.
func (s *SortedList[E]) Search(cmp rbtree.SearchComparator[E], filter SearchFilter) (list.ID[E], bool) {
	t := s.tree()
	preferLesser := filter == LessStrict || filter == LessOrEqual || filter == Exact
	result, _ := t.Locker.DoOptimistically(func(cancel func() bool) (any, bool) {
		n := t.FindClosest(cmp, preferLesser, true, cancel)
		return n, true
	})
	n, _ := result.(*rbtree.Node[E])
	if n == nil {
		return list.ID[E]{}, false
	}
	exact := cmp(n.Value) == 0
	switch filter {
	case Exact:
		if !exact {
			return list.ID[E]{}, false
		}
	case LessStrict:
		if exact {
			n = n.Prev()
		}
	case GreaterStrict:
		if exact {
			n = n.Next()
		}
	}
	if n == nil {
		return list.ID[E]{}, false
	}
	return list.FromNode(n), true
}

func (s *SortedList[E]) nodeOf(id list.ID[E]) (*rbtree.Node[E], error) {
	if id.Zero() {
		return nil, list.ErrNotFound
	}
	n := list.NodeOf(id)
	if n.Tree() != s.tree() {
		return nil, list.ErrTreeMismatch
	}
	return n, nil
}

func walkEqualRun[E any](n *rbtree.Node[E], cmp Comparator[E], value E, forward bool) *rbtree.Node[E] {
	cur := n
	for {
		next := cur.Closest(!forward)
		if next == nil || cmp(next.Value, value) != 0 {
			return cur
		}
		cur = next
	}
}

// checkHintSide validates the after_id (forward=true) or before_id
// (forward=false) position hint against value, returning the node to
// physically attach next to, or an error if the hint conflicts with
// comparator order.
func (s *SortedList[E]) checkHintSide(anchor *rbtree.Node[E], value E, forward bool) (*rbtree.Node[E], bool, error) {
	c := s.cmp(value, anchor.Value)
	if forward && c < 0 || !forward && c > 0 {
		return nil, false, ErrIllegalPosition
	}
	if c == 0 {
		if s.distinct {
			return nil, false, nil
		}
		return anchor, true, nil
	}
	neighbor := anchor.Closest(!forward)
	if neighbor != nil {
		nc := s.cmp(value, neighbor.Value)
		if forward && nc > 0 || !forward && nc < 0 {
			return nil, false, ErrIllegalPosition
		}
		if nc == 0 && s.distinct {
			return nil, false, ErrIllegalPosition
		}
	}
	return anchor, true, nil
}

// Add inserts value in comparator order. after/before, when given, hint at a
// specific adjacency slot (validated against cmp, not just obeyed); a hint
// whose element has been removed yields ErrAlreadyRemoved. Without a hint
// the general comparator search picks the spot,
// walking any equal run to its preferred end when non-distinct. inserted
// is false (with a zero ID and no error) exactly when distinct rejected an
// equal value already present.
func (s *SortedList[E]) Add(value E, after, before *list.ID[E], preferFirst bool) (id list.ID[E], inserted bool, err error) {
	acq := s.tree().Locker.Lock(true, "sortedlist.Add")
	defer acq.Release()
	return s.addLocked(value, after, before, preferFirst)
}

// addLocked is Add's body, factored out so Move can delete-then-reinsert
// under a single held write lock instead of releasing and reacquiring it.
func (s *SortedList[E]) addLocked(value E, after, before *list.ID[E], preferFirst bool) (id list.ID[E], inserted bool, err error) {
	t := s.tree()

	if after != nil && !after.Zero() {
		anchor, err2 := s.nodeOf(*after)
		if err2 != nil {
			return list.ID[E]{}, false, err2
		}
		if !anchor.Present() {
			return list.ID[E]{}, false, list.ErrAlreadyRemoved
		}
		attachTo, ok, err2 := s.checkHintSide(anchor, value, true)
		if err2 != nil {
			return list.ID[E]{}, false, err2
		}
		if !ok {
			return list.ID[E]{}, false, nil
		}
		z := t.NewNode(value)
		attachTo.Add(z, false)
		return list.FromNode(z), true, nil
	}
	if before != nil && !before.Zero() {
		anchor, err2 := s.nodeOf(*before)
		if err2 != nil {
			return list.ID[E]{}, false, err2
		}
		if !anchor.Present() {
			return list.ID[E]{}, false, list.ErrAlreadyRemoved
		}
		attachTo, ok, err2 := s.checkHintSide(anchor, value, false)
		if err2 != nil {
			return list.ID[E]{}, false, err2
		}
		if !ok {
			return list.ID[E]{}, false, nil
		}
		z := t.NewNode(value)
		attachTo.Add(z, true)
		return list.FromNode(z), true, nil
	}

	if t.Root() == nil {
		z := t.NewNode(value)
		t.AttachRoot(z)
		return list.FromNode(z), true, nil
	}

	found := t.FindClosest(func(candidate E) int { return s.cmp(value, candidate) }, true, false, nil)
	c := s.cmp(value, found.Value)
	switch {
	case c == 0:
		if s.distinct {
			return list.ID[E]{}, false, nil
		}
		var landing *rbtree.Node[E]
		z := t.NewNode(value)
		if preferFirst {
			landing = walkEqualRun(found, s.cmp, value, false)
			landing.Add(z, true)
		} else {
			landing = walkEqualRun(found, s.cmp, value, true)
			landing.Add(z, false)
		}
		return list.FromNode(z), true, nil
	case c < 0:
		z := t.NewNode(value)
		found.Add(z, true)
		return list.FromNode(z), true, nil
	default:
		z := t.NewNode(value)
		found.Add(z, false)
		return list.FromNode(z), true, nil
	}
}

// positionSatisfies reports whether n already sits immediately after
// after's node (when given) and immediately before before's node (when
// given), making Move's removal+reinsert unnecessary.
func (s *SortedList[E]) positionSatisfies(n *rbtree.Node[E], after, before *list.ID[E]) bool {
	if after != nil && !after.Zero() {
		a := list.NodeOf(*after)
		if n.Prev() != a {
			return false
		}
	}
	if before != nil && !before.Zero() {
		b := list.NodeOf(*before)
		if n.Next() != b {
			return false
		}
	}
	return after != nil || before != nil
}

// Move repositions id relative to after/before the same way Add does,
// but as a no-op when the current adjacency already satisfies the given
// bounds.
func (s *SortedList[E]) Move(id list.ID[E], after, before *list.ID[E], preferFirst bool) error {
	t := s.tree()
	acq := t.Locker.Lock(true, "sortedlist.Move")
	defer acq.Release()

	n, err := s.nodeOf(id)
	if err != nil {
		return err
	}
	if !n.Present() {
		return list.ErrAlreadyRemoved
	}
	if s.positionSatisfies(n, after, before) {
		return nil
	}
	value := n.Value
	t.Delete(n)
	_, _, err = s.addLocked(value, after, before, preferFirst)
	return err
}

func (s *SortedList[E]) Remove(id list.ID[E]) error { return s.inner.Remove(id) }

func (s *SortedList[E]) Clear() { s.inner.Clear() }

// Repair re-sorts any nodes whose value was mutated externally after
// insertion, preserving node identity for everything that doesn't collide
// with an existing equal value in distinct mode.
func (s *SortedList[E]) Repair(listener RepairListener[E]) int {
	t := s.tree()
	acq := t.Locker.Lock(true, "sortedlist.Repair")
	defer acq.Release()
	var inner rbtree.RepairListener[E]
	if listener != nil {
		inner = &repairAdapter[E]{listener: listener}
	}
	return t.Repair(s.cmp, s.distinct, inner)
}

// RepairListener is sortedlist's id-level view of rbtree.RepairListener:
// callbacks receive list.ID[E] handles rather than raw nodes.
type RepairListener[E any] interface {
	Removed(id list.ID[E])
	Transferred(id list.ID[E])
	Disposed(id list.ID[E])
}

type repairAdapter[E any] struct {
	listener RepairListener[E]
}

func (a *repairAdapter[E]) Removed(n *rbtree.Node[E])     { a.listener.Removed(list.FromNode(n)) }
func (a *repairAdapter[E]) Transferred(n *rbtree.Node[E]) { a.listener.Transferred(list.FromNode(n)) }
func (a *repairAdapter[E]) Disposed(n *rbtree.Node[E])    { a.listener.Disposed(list.FromNode(n)) }
