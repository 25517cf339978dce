package list

import "iter"

// ReversedList is a reversing view over a List: every side-sensitive
// operation is restated in terms of the inner list with "forward" and
// "backward" swapped, rather than maintaining a second tree. index maps to
// size-1-index, Adjacent(next) maps to inner Adjacent(!next), and so on,
// per the reversed-view design note.
type ReversedList[E any] struct {
	inner *List[E]
}

// Reverse returns a reversing view over l. Mutations through the view are
// mutations of l; there is exactly one underlying tree.
func (l *List[E]) Reverse() *ReversedList[E] {
	return &ReversedList[E]{inner: l}
}

// Unreverse returns the list r was built from.
func (r *ReversedList[E]) Unreverse() *List[E] { return r.inner }

func (r *ReversedList[E]) Size() int { return r.inner.Size() }

func (r *ReversedList[E]) ElementAt(index int) (ID[E], error) {
	size := r.inner.Size()
	return r.inner.ElementAt(size - 1 - index)
}

func (r *ReversedList[E]) Adjacent(id ID[E], next bool) (ID[E], bool) {
	return r.inner.Adjacent(id, !next)
}

func (r *ReversedList[E]) Terminal(first bool) (ID[E], bool) {
	return r.inner.Terminal(!first)
}

func (r *ReversedList[E]) ElementsBefore(id ID[E]) (int, error) {
	return r.inner.ElementsAfter(id)
}

func (r *ReversedList[E]) ElementsAfter(id ID[E]) (int, error) {
	return r.inner.ElementsBefore(id)
}

// Add places value relative to after/before the same way List.Add does,
// but "after" and "before" are swapped and preferFirst is negated, since
// this view's left is the inner list's right.
func (r *ReversedList[E]) Add(value E, after, before *ID[E], preferFirst bool) (ID[E], error) {
	return r.inner.Add(value, before, after, !preferFirst)
}

func (r *ReversedList[E]) Remove(id ID[E]) error { return r.inner.Remove(id) }

func (r *ReversedList[E]) Set(id ID[E], newValue E) error { return r.inner.Set(id, newValue) }

// SplitBetween is symmetric under reversal (betweenness doesn't depend on
// direction), so it passes straight through.
func (r *ReversedList[E]) SplitBetween(a, b ID[E]) (ID[E], bool, error) {
	return r.inner.SplitBetween(a, b)
}

func (r *ReversedList[E]) Clear() { r.inner.Clear() }

// All iterates from the inner list's last element to its first.
func (r *ReversedList[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := r.inner.tree.Last(); n != nil; n = n.Prev() {
			if !yield(n.Value) {
				return
			}
		}
	}
}
