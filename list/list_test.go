package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ortreego/ortree/list"
)

// TestIndexedListBasicOrder covers scenario S1: append three values in
// order and check size, positional lookup, rank, and the terminals.
func TestIndexedListBasicOrder(t *testing.T) {
	l := list.New[int]()

	_, err := l.Add(10, nil, nil, false)
	require.NoError(t, err)
	id20, err := l.Add(20, nil, nil, false)
	require.NoError(t, err)
	_, err = l.Add(30, nil, nil, false)
	require.NoError(t, err)

	assert.Equal(t, 3, l.Size())

	e0, err := l.ElementAt(0)
	require.NoError(t, err)
	assert.Equal(t, 10, e0.Value())

	e1, err := l.ElementAt(1)
	require.NoError(t, err)
	assert.Equal(t, 20, e1.Value())

	e2, err := l.ElementAt(2)
	require.NoError(t, err)
	assert.Equal(t, 30, e2.Value())

	before, err := l.ElementsBefore(id20)
	require.NoError(t, err)
	assert.Equal(t, 1, before)

	first, ok := l.Terminal(true)
	require.True(t, ok)
	assert.Equal(t, 10, first.Value())

	last, ok := l.Terminal(false)
	require.True(t, ok)
	assert.Equal(t, 30, last.Value())
}

// TestInsertBeforeInIndexedList covers scenario S2: inserting 15 before the
// id of 20 splices it into the adjacency sequence at index 1.
func TestInsertBeforeInIndexedList(t *testing.T) {
	l := list.New[int]()
	l.Add(10, nil, nil, false)
	id20, err := l.Add(20, nil, nil, false)
	require.NoError(t, err)
	l.Add(30, nil, nil, false)

	id15, err := l.Add(15, nil, &id20, false)
	require.NoError(t, err)

	var got []int
	for v := range l.All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{10, 15, 20, 30}, got)

	idx, err := l.ElementsBefore(id15)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestAdjacentAndRemove(t *testing.T) {
	l := list.New[int]()
	ids := make([]list.ID[int], 0, 5)
	for _, v := range []int{1, 2, 3, 4, 5} {
		id, err := l.Add(v, nil, nil, false)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	next, ok := l.Adjacent(ids[1], true)
	require.True(t, ok)
	assert.Equal(t, 3, next.Value())

	prev, ok := l.Adjacent(ids[1], false)
	require.True(t, ok)
	assert.Equal(t, 1, prev.Value())

	require.NoError(t, l.Remove(ids[2]))
	assert.Equal(t, 4, l.Size())
	assert.ErrorIs(t, l.Remove(ids[2]), list.ErrAlreadyRemoved)

	after, ok := l.Adjacent(ids[1], true)
	require.True(t, ok)
	assert.Equal(t, 4, after.Value())
}

func TestSplitBetweenFindsMiddle(t *testing.T) {
	l := list.New[int]()
	var ids []list.ID[int]
	for i := 1; i <= 1024; i++ {
		id, err := l.Add(i, nil, nil, false)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	mid, found, err := l.SplitBetween(ids[0], ids[len(ids)-1])
	require.NoError(t, err)
	require.True(t, found)

	before, err := l.ElementsBefore(mid)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, before, 400)
	assert.LessOrEqual(t, before, 624)
}

// TestSpliteratorSplitCoversWholeRange covers scenario S5's spliterator
// half: after one split, the two halves' sizes sum to the total and their
// concatenated values reproduce the original order.
func TestSpliteratorSplitCoversWholeRange(t *testing.T) {
	l := list.New[int]()
	for i := 1; i <= 1024; i++ {
		_, err := l.Add(i, nil, nil, false)
		require.NoError(t, err)
	}

	s := l.NewSpliterator()
	sibling, err := s.TrySplit()
	require.NoError(t, err)
	require.NotNil(t, sibling)

	assert.Equal(t, 1024, s.EstimateSize()+sibling.EstimateSize())

	var got []int
	for {
		v, ok, err := s.TryAdvance(true)
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, v)
	}
	for {
		v, ok, err := sibling.TryAdvance(true)
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, v)
	}

	want := make([]int, 1024)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, got)
}

func TestSpliteratorConcurrentModificationOnAnchorRemoval(t *testing.T) {
	l := list.New[int]()
	id1, _ := l.Add(1, nil, nil, false)
	l.Add(2, nil, nil, false)

	s := l.NewSpliterator()
	v, ok, err := s.TryAdvance(true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	require.NoError(t, l.Remove(id1))

	_, _, err = s.TryAdvance(true)
	assert.ErrorIs(t, err, list.ErrConcurrentModification)
}

func TestReversedListFlipsOrderAndSides(t *testing.T) {
	l := list.New[int]()
	for _, v := range []int{1, 2, 3} {
		l.Add(v, nil, nil, false)
	}
	r := l.Reverse()

	assert.Equal(t, 3, r.Size())

	e0, err := r.ElementAt(0)
	require.NoError(t, err)
	assert.Equal(t, 3, e0.Value())

	var got []int
	for v := range r.All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)

	first, ok := r.Terminal(true)
	require.True(t, ok)
	assert.Equal(t, 3, first.Value())
}

func TestInitializeFastPathClonesTopology(t *testing.T) {
	src := list.New[int]()
	for i := 1; i <= 20; i++ {
		src.Add(i, nil, nil, false)
	}

	dst := list.New[int]()
	require.NoError(t, list.Initialize[int](dst, src, nil))

	assert.Equal(t, src.Size(), dst.Size())
	var got []int
	for v := range dst.All() {
		got = append(got, v)
	}
	want := make([]int, 20)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, got)
}

func TestInitializeFallbackPathAppliesMap(t *testing.T) {
	src := list.New[int]()
	for i := 1; i <= 5; i++ {
		src.Add(i, nil, nil, false)
	}

	dst := list.New[int]()
	require.NoError(t, list.Initialize[int](dst, src, func(v int) int { return v * 10 }))

	var got []int
	for v := range dst.All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{10, 20, 30, 40, 50}, got)
}
