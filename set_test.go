package kaos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newSetOf(keys ...int) *Set[int] {
	s := NewSet[int](WithOrder(4))
	s.AddAll(keys...)
	return s
}

func TestSetBasics(t *testing.T) {
	s := NewSet[int](WithOrder(5))
	require.Equal(t, 3, s.AddAll(3, 1, 2, 2))
	require.Equal(t, 3, s.Len())
	require.True(t, s.Contains(2))
	require.False(t, s.Contains(4))
	require.Equal(t, []int{1, 2, 3}, s.ToSlice())

	require.True(t, s.Remove(2))
	require.False(t, s.Remove(2))
	require.Equal(t, []int{1, 3}, s.ToSlice())

	min, err := s.Min()
	require.NoError(t, err)
	require.Equal(t, 1, min)
	max, err := s.Max()
	require.NoError(t, err)
	require.Equal(t, 3, max)

	s.Clear()
	require.Equal(t, 0, s.Len())
	_, err = s.First()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = s.Last()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestSetAddRemoveLaws(t *testing.T) {
	s := newSetOf(10, 20, 30)

	// Adding then removing an absent key restores the set.
	before := s.ToSlice()
	require.True(t, s.Add(25))
	require.GreaterOrEqual(t, s.IndexOf(25), 0)
	require.True(t, s.Remove(25))
	require.Equal(t, before, s.ToSlice())

	// At(IndexOf(k)) == k for every member.
	for _, k := range before {
		i := s.IndexOf(k)
		require.GreaterOrEqual(t, i, 0)
		got, err := s.At(i)
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
}

func TestSetRemoveWhere(t *testing.T) {
	s := newSetOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	require.Equal(t, 5, s.RemoveWhere(func(k int) bool { return k%2 == 0 }))
	require.Equal(t, []int{1, 3, 5, 7, 9}, s.ToSlice())
	require.NoError(t, s.Check())
}

func TestSetAtOrZero(t *testing.T) {
	s := newSetOf(7)
	k, err := s.AtOrZero(0)
	require.NoError(t, err)
	require.Equal(t, 7, k)
	k, err = s.AtOrZero(5)
	require.NoError(t, err)
	require.Zero(t, k)
	_, err = s.AtOrZero(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestSetMutatingAlgebra(t *testing.T) {
	s := newSetOf(1, 2, 3, 4)
	s.UnionWith(newSetOf(3, 4, 5, 6))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, s.ToSlice())

	s.IntersectWith(newSetOf(2, 4, 6, 8))
	require.Equal(t, []int{2, 4, 6}, s.ToSlice())

	s.ExceptWith(newSetOf(4))
	require.Equal(t, []int{2, 6}, s.ToSlice())

	s.SymmetricExceptWith(newSetOf(6, 7))
	require.Equal(t, []int{2, 7}, s.ToSlice())

	s.ExceptWith(s)
	require.Equal(t, 0, s.Len())
	require.NoError(t, s.Check())
}

func TestSetStreamingAlgebra(t *testing.T) {
	a := newSetOf(1, 3, 5, 7)
	b := newSetOf(3, 4, 5, 6)

	collect := func(seq func(func(int) bool)) (got []int) {
		for k := range seq {
			got = append(got, k)
		}
		return got
	}

	require.Equal(t, []int{1, 3, 4, 5, 6, 7}, collect(a.Union(b)))
	require.Equal(t, []int{3, 5}, collect(a.Intersect(b)))
	require.Equal(t, []int{1, 7}, collect(a.Except(b)))

	require.True(t, a.Overlaps(b))
	require.False(t, a.Overlaps(newSetOf(2, 4)))

	require.True(t, newSetOf(3, 5).IsSubsetOf(a))
	require.False(t, a.IsSubsetOf(b))
	require.True(t, a.IsSupersetOf(newSetOf(1, 7)))
	require.True(t, a.SetEquals(newSetOf(7, 5, 3, 1)))
	require.False(t, a.SetEquals(b))
}

func TestSetDescendingComparer(t *testing.T) {
	s := NewSetFunc(Descending(Ordered[int]()), WithOrder(4))
	s.AddAll(1, 5, 3)
	require.Equal(t, []int{5, 3, 1}, s.ToSlice())
	first, err := s.First()
	require.NoError(t, err)
	require.Equal(t, 5, first)
}
