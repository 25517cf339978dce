package sortedlist

import (
	"iter"

	"github.com/ortreego/ortree/list"
)

// ReversedSortedList is a reversing view over a SortedList, following the
// same side-flip design list.ReversedList uses: no second tree, every
// positional query restated with forward/backward swapped.
type ReversedSortedList[E any] struct {
	inner *SortedList[E]
}

// Reverse returns a reversing view over s.
func (s *SortedList[E]) Reverse() *ReversedSortedList[E] {
	return &ReversedSortedList[E]{inner: s}
}

func (r *ReversedSortedList[E]) Unreverse() *SortedList[E] { return r.inner }

func (r *ReversedSortedList[E]) Size() int { return r.inner.Size() }

// All iterates from largest to smallest.
func (r *ReversedSortedList[E]) All() iter.Seq[E] {
	return r.inner.List().Reverse().All()
}

func (r *ReversedSortedList[E]) ElementAt(index int) (list.ID[E], error) {
	return r.inner.List().Reverse().ElementAt(index)
}
