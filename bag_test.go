package kaos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBagDuplicates(t *testing.T) {
	b := NewBag[int](WithOrder(5))
	b.AddAll(3, 1, 3, 2, 3, 1)
	require.Equal(t, 6, b.Len())
	require.Equal(t, []int{1, 1, 2, 3, 3, 3}, b.ToSlice())
	require.Equal(t, 3, b.GetCount(3))
	require.Equal(t, 2, b.GetCount(1))
	require.Equal(t, 0, b.GetCount(9))
	require.Equal(t, 3, b.DistinctCount())

	// getCount grows by one per insert.
	b.Add(3)
	require.Equal(t, 4, b.GetCount(3))
	require.NoError(t, b.Check())
}

func TestBagAddCount(t *testing.T) {
	b := NewBag[int](WithOrder(4))
	require.NoError(t, b.AddCount(7, 5))
	require.Equal(t, 5, b.GetCount(7))
	require.NoError(t, b.AddCount(7, 0))
	require.Equal(t, 5, b.GetCount(7))
	require.ErrorIs(t, b.AddCount(7, -1), ErrOutOfRange)
	require.Equal(t, 5, b.Len())
}

func TestBagRemoveCount(t *testing.T) {
	b := NewBag[int](WithOrder(4))
	b.AddAll(4, 4, 4, 4, 2)

	removed, err := b.RemoveCount(4, 3)
	require.NoError(t, err)
	require.Equal(t, 3, removed)
	require.Equal(t, 1, b.GetCount(4))

	removed, err = b.RemoveCount(4, 10)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	_, err = b.RemoveCount(4, -2)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Equal(t, []int{2}, b.ToSlice())
}

func TestBagContainsAll(t *testing.T) {
	b := NewBag[int](WithOrder(5))
	b.AddAll(1, 1, 2, 3, 3, 3)

	sub := NewBag[int](WithOrder(5))
	sub.AddAll(1, 3, 3)
	require.True(t, b.ContainsAll(sub))
	require.True(t, b.ContainsAll(b))

	sub.Add(3)
	sub.Add(3)
	require.False(t, b.ContainsAll(sub), "multiplicity matters")

	other := NewBag[int](WithOrder(5))
	other.Add(9)
	require.False(t, b.ContainsAll(other))
}

func TestBagIndexOfRuns(t *testing.T) {
	b := NewBag[int](WithOrder(4))
	b.AddAll(5, 5, 5, 10, 10, 20)
	require.Equal(t, 0, b.IndexOf(5))
	require.Equal(t, 3, b.IndexOf(10))
	require.Equal(t, 5, b.IndexOf(20))
	require.Equal(t, ^3, b.IndexOf(7))
	require.Equal(t, ^6, b.IndexOf(99))
}

func TestBagDistinctSeq(t *testing.T) {
	b := NewBag[int](WithOrder(4))
	b.AddAll(2, 2, 2, 4, 6, 6)
	var got []int
	for k := range b.Distinct() {
		got = append(got, k)
	}
	require.Equal(t, []int{2, 4, 6}, got)
}

func TestBagRemoveLowestFirst(t *testing.T) {
	// All copies compare equal; Remove must take the first of the run
	// so ranks shift predictably.
	b := NewBag[int](WithOrder(4))
	b.AddAll(1, 2, 2, 2, 3)
	require.Equal(t, 1, b.IndexOf(2))
	require.True(t, b.Remove(2))
	require.Equal(t, 1, b.IndexOf(2))
	require.Equal(t, 2, b.GetCount(2))
	require.NoError(t, b.Check())
}
