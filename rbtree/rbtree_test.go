package rbtree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ortreego/ortree/rbtree"
)

func intCmp(a, b int) int { return a - b }

func TestInsertSortedMaintainsConsistency(t *testing.T) {
	tr := rbtree.New[int](nil)
	values := rand.New(rand.NewSource(1)).Perm(500)
	for _, v := range values {
		_, inserted := tr.InsertSorted(v, intCmp, false)
		require.True(t, inserted)
		require.NoError(t, tr.CheckConsistency(intCmp))
	}
	assert.Equal(t, 500, tr.Size())
	assert.Equal(t, 0, tr.First().Value)
	assert.Equal(t, 499, tr.Last().Value)
}

func TestInsertSortedDistinctRejectsDuplicates(t *testing.T) {
	tr := rbtree.New[int](nil)
	_, inserted := tr.InsertSorted(5, intCmp, true)
	require.True(t, inserted)
	node, inserted := tr.InsertSorted(5, intCmp, true)
	assert.False(t, inserted)
	assert.Equal(t, 5, node.Value)
	assert.Equal(t, 1, tr.Size())
}

func TestInsertSortedNonDistinctKeepsDuplicates(t *testing.T) {
	tr := rbtree.New[int](nil)
	for i := 0; i < 5; i++ {
		tr.InsertSorted(7, intCmp, false)
	}
	require.NoError(t, tr.CheckConsistency(intCmp))
	assert.Equal(t, 5, tr.Size())
}

func TestDeleteComprehensive(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		tr := rbtree.New[int](nil)
		var nodes []*rbtree.Node[int]
		for i := 0; i < 200; i++ {
			v := rng.Int()
			n, _ := tr.InsertSorted(v, intCmp, false)
			nodes = append(nodes, n)
			require.NoError(t, tr.CheckConsistency(intCmp))
		}
		rng.Shuffle(len(nodes), func(i, j int) { nodes[i], nodes[j] = nodes[j], nodes[i] })
		for _, n := range nodes {
			tr.Delete(n)
			require.NoError(t, tr.CheckConsistency(intCmp))
			assert.False(t, n.Present())
		}
		assert.Equal(t, 0, tr.Size())
		assert.Nil(t, tr.Root())
		assert.Nil(t, tr.First())
		assert.Nil(t, tr.Last())
	}
}

func TestNodesBeforeAndGetByIndexRoundTrip(t *testing.T) {
	tr := rbtree.New[int](nil)
	for i := 0; i < 300; i++ {
		tr.InsertSorted(i, intCmp, false)
	}
	for i := 0; i < 300; i++ {
		n, ok := tr.Root().GetByIndex(i, nil)
		require.True(t, ok)
		assert.Equal(t, i, n.Value)
		idx, ok := n.NodesBefore(nil)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
	_, ok := tr.Root().GetByIndex(300, nil)
	assert.False(t, ok)
}

func TestRemovedNodeRetainsIndexAtDeletionStamp(t *testing.T) {
	tr := rbtree.New[int](nil)
	var target *rbtree.Node[int]
	for i := 0; i < 10; i++ {
		n, _ := tr.InsertSorted(i, intCmp, false)
		if i == 4 {
			target = n
		}
	}
	stampBefore := tr.Stamp()
	tr.Delete(target)
	assert.False(t, target.Present())
	assert.NotEqual(t, stampBefore, tr.Stamp())
	idx, ok := target.NodesBefore(nil)
	require.True(t, ok)
	assert.Equal(t, 4, idx)
}

func TestCompareOrdersArbitraryPairs(t *testing.T) {
	tr := rbtree.New[int](nil)
	nodes := make(map[int]*rbtree.Node[int])
	for i := 0; i < 64; i++ {
		n, _ := tr.InsertSorted(i, intCmp, false)
		nodes[i] = n
	}
	for i := 0; i < 64; i++ {
		for j := 0; j < 64; j++ {
			c, err := rbtree.Compare(nodes[i], nodes[j])
			require.NoError(t, err)
			switch {
			case i < j:
				assert.Equal(t, -1, c)
			case i > j:
				assert.Equal(t, 1, c)
			default:
				assert.Equal(t, 0, c)
			}
		}
	}
}

func TestCompareAcrossDifferentTreesErrors(t *testing.T) {
	t1 := rbtree.New[int](nil)
	t2 := rbtree.New[int](nil)
	a, _ := t1.InsertSorted(1, intCmp, false)
	b, _ := t2.InsertSorted(1, intCmp, false)
	_, err := rbtree.Compare(a, b)
	assert.ErrorIs(t, err, rbtree.ErrTreeMismatch)
}

func TestSplitBetweenFindsMidpoint(t *testing.T) {
	tr := rbtree.New[int](nil)
	var first, last *rbtree.Node[int]
	for i := 0; i < 1024; i++ {
		n, _ := tr.InsertSorted(i, intCmp, false)
		if i == 0 {
			first = n
		}
		if i == 1023 {
			last = n
		}
	}
	mid, err := rbtree.SplitBetween(first, last)
	require.NoError(t, err)
	require.NotNil(t, mid)
	idx, _ := mid.NodesBefore(nil)
	assert.InDelta(t, 512, idx, 256)
}

func TestSplitBetweenAdjacentReturnsNil(t *testing.T) {
	tr := rbtree.New[int](nil)
	a, _ := tr.InsertSorted(1, intCmp, false)
	b, _ := tr.InsertSorted(2, intCmp, false)
	mid, err := rbtree.SplitBetween(a, b)
	require.NoError(t, err)
	assert.Nil(t, mid)
}

func TestFindClosestStrictAndNonStrict(t *testing.T) {
	tr := rbtree.New[int](nil)
	for _, v := range []int{10, 20, 30, 40} {
		tr.InsertSorted(v, intCmp, false)
	}
	probe := func(target int) rbtree.SearchComparator[int] {
		return func(candidate int) int { return target - candidate }
	}
	exact := tr.FindClosest(probe(20), true, true, nil)
	require.NotNil(t, exact)
	assert.Equal(t, 20, exact.Value)

	lessStrict := tr.FindClosest(probe(20), true, true, nil)
	assert.Equal(t, 20, lessStrict.Value) // exact match still short-circuits

	betweenLess := tr.FindClosest(probe(25), true, true, nil)
	require.NotNil(t, betweenLess)
	assert.Equal(t, 20, betweenLess.Value)

	betweenGreater := tr.FindClosest(probe(25), false, true, nil)
	require.NotNil(t, betweenGreater)
	assert.Equal(t, 30, betweenGreater.Value)

	belowAllStrict := tr.FindClosest(probe(5), true, true, nil)
	assert.Nil(t, belowAllStrict)

	belowAllNonStrict := tr.FindClosest(probe(5), true, false, nil)
	require.NotNil(t, belowAllNonStrict)
}

func TestRepairReordersMutatedValue(t *testing.T) {
	tr := rbtree.New[int](nil)
	for _, v := range []int{1, 2, 3, 4, 5} {
		tr.InsertSorted(v, intCmp, false)
	}
	n3, ok := tr.Root().GetByIndex(2, nil)
	require.True(t, ok)
	require.Equal(t, 3, n3.Value)
	n3.Value = 100 // external mutation invalidates order

	listener := &recordingListener{}
	moved := tr.Repair(intCmp, false, listener)
	assert.Equal(t, 1, moved)
	require.NoError(t, tr.CheckConsistency(intCmp))

	var got []int
	for n := tr.First(); n != nil; n = n.Next() {
		got = append(got, n.Value)
	}
	assert.Equal(t, []int{1, 2, 4, 5, 100}, got)
	assert.True(t, n3.Present())
	assert.Len(t, listener.removed, 1)
	assert.Len(t, listener.transferred, 1)
}

type recordingListener struct {
	removed     []*rbtree.Node[int]
	transferred []*rbtree.Node[int]
	disposed    []*rbtree.Node[int]
}

func (l *recordingListener) Removed(n *rbtree.Node[int])     { l.removed = append(l.removed, n) }
func (l *recordingListener) Transferred(n *rbtree.Node[int]) { l.transferred = append(l.transferred, n) }
func (l *recordingListener) Disposed(n *rbtree.Node[int])    { l.disposed = append(l.disposed, n) }

func FuzzInsertDelete(f *testing.F) {
	f.Add(uint8(3), uint8(7), uint8(1))
	f.Fuzz(func(t *testing.T, a, b, c uint8) {
		tr := rbtree.New[int](nil)
		n := int(a)%64 + 1
		var held []*rbtree.Node[int]
		for i := 0; i < n; i++ {
			v := int(a) + i*int(b+1)
			node, _ := tr.InsertSorted(v, intCmp, false)
			held = append(held, node)
		}
		if err := tr.CheckConsistency(intCmp); err != nil {
			t.Fatal(err)
		}
		if len(held) > 0 {
			victim := held[int(c)%len(held)]
			tr.Delete(victim)
			if err := tr.CheckConsistency(intCmp); err != nil {
				t.Fatal(err)
			}
		}
	})
}
