package kaos

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/alex4998/KaosCollections/btree"
)

// Bag is a sorted multiset: duplicate keys are allowed and keep their
// insertion order within a run of equals.
type Bag[K any] struct {
	tree    *btree.Tree[K, struct{}]
	compare Compare[K]
}

// NewBag returns an empty Bag ordered by the natural comparer.
func NewBag[K constraints.Ordered](opts ...Option) *Bag[K] {
	return NewBagFunc(Ordered[K](), opts...)
}

// NewBagFunc returns an empty Bag ordered by compare.
func NewBagFunc[K any](compare Compare[K], opts ...Option) *Bag[K] {
	o := buildOptions(opts)
	return &Bag[K]{tree: btree.New[K, struct{}](compare, o.order), compare: compare}
}

// Len returns the number of elements, duplicates included.
func (b *Bag[K]) Len() int {
	return b.tree.Count()
}

// Add inserts key, after any existing equals.
func (b *Bag[K]) Add(key K) {
	b.tree.Add(key, struct{}{})
}

// AddAll inserts every key.
func (b *Bag[K]) AddAll(keys ...K) {
	for _, key := range keys {
		b.Add(key)
	}
}

// AddCount inserts n copies of key. A negative n is an error.
func (b *Bag[K]) AddCount(key K, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: count %d", ErrOutOfRange, n)
	}
	for ; n > 0; n-- {
		b.Add(key)
	}
	return nil
}

// Remove deletes the first of the equal run and reports whether any
// equal key was present.
func (b *Bag[K]) Remove(key K) bool {
	return b.tree.Remove(key)
}

// RemoveCount deletes up to n occurrences of key, lowest first, and
// returns how many went. A negative n is an error.
func (b *Bag[K]) RemoveCount(key K, n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: count %d", ErrOutOfRange, n)
	}
	removed := 0
	for removed < n && b.tree.Remove(key) {
		removed++
	}
	return removed, nil
}

// RemoveAt deletes the element at the given rank.
func (b *Bag[K]) RemoveAt(index int) error {
	return b.tree.RemoveAt(index)
}

// RemoveWhere deletes every occurrence the predicate matches and
// returns how many went.
func (b *Bag[K]) RemoveWhere(match func(K) bool) int {
	return b.tree.RemoveWhere(func(key K, _ struct{}) bool {
		return match(key)
	})
}

// Contains reports whether any equal key is present.
func (b *Bag[K]) Contains(key K) bool {
	return b.tree.Contains(key)
}

// ContainsAll reports whether b holds every key of other with at least
// the same multiplicity.
func (b *Bag[K]) ContainsAll(other *Bag[K]) bool {
	if other == b {
		return true
	}
	for key := range other.tree.Distinct() {
		if b.GetCount(key) < other.GetCount(key) {
			return false
		}
	}
	return true
}

// GetCount returns the multiplicity of key.
func (b *Bag[K]) GetCount(key K) int {
	return b.tree.GetCount(key)
}

// DistinctCount returns the number of distinct keys.
func (b *Bag[K]) DistinctCount() int {
	return b.tree.DistinctCount()
}

// IndexOf returns the rank of the first of the equal run, or the
// bitwise complement of the insertion rank.
func (b *Bag[K]) IndexOf(key K) int {
	return b.tree.IndexOfFirst(key)
}

// At returns the element at the given rank.
func (b *Bag[K]) At(index int) (K, error) {
	key, _, err := b.tree.At(index)
	return key, err
}

// AtOrZero returns the element at the given rank, or the zero key past
// the end. A negative index is still an error.
func (b *Bag[K]) AtOrZero(index int) (K, error) {
	key, _, err := b.tree.AtOrZero(index)
	return key, err
}

// First returns the smallest element; ErrEmpty when the bag is empty.
func (b *Bag[K]) First() (K, error) {
	key, _, err := b.tree.First()
	return key, err
}

// Last returns the largest element; ErrEmpty when the bag is empty.
func (b *Bag[K]) Last() (K, error) {
	key, _, err := b.tree.Last()
	return key, err
}

// Min is First under its order-statistics name.
func (b *Bag[K]) Min() (K, error) { return b.First() }

// Max is Last under its order-statistics name.
func (b *Bag[K]) Max() (K, error) { return b.Last() }

// CopyTo copies every element into dst in sorted order starting at
// offset at, bounds-checked.
func (b *Bag[K]) CopyTo(dst []K, at int) error {
	return b.tree.CopyKeys(dst, at)
}

// ToSlice returns the elements as a fresh sorted slice.
func (b *Bag[K]) ToSlice() []K {
	dst := make([]K, b.Len())
	b.tree.CopyKeys(dst, 0)
	return dst
}

// Clear resets the bag to empty.
func (b *Bag[K]) Clear() {
	b.tree.Clear()
}

// All ranges over the elements in sorted order.
func (b *Bag[K]) All() iter.Seq[K] {
	return keysOnly(b.tree.All())
}

// Reverse ranges over the elements in descending order.
func (b *Bag[K]) Reverse() iter.Seq[K] {
	return keysOnly(b.tree.Reverse())
}

// Distinct ranges over the distinct keys in O(d log n).
func (b *Bag[K]) Distinct() iter.Seq[K] {
	return keysOnly(b.tree.Distinct())
}

// Between ranges over the elements with lo <= key <= hi.
func (b *Bag[K]) Between(lo, hi K) iter.Seq[K] {
	return keysOnly(b.tree.Between(lo, hi))
}

// From ranges over the elements with key >= lo.
func (b *Bag[K]) From(lo K) iter.Seq[K] {
	return keysOnly(b.tree.From(lo))
}

// Iter returns an explicit forward enumerator.
func (b *Bag[K]) Iter() *btree.Enumerator[K, struct{}] {
	return b.tree.Iter()
}

// IterReverse returns an explicit reverse enumerator.
func (b *Bag[K]) IterReverse() *btree.Enumerator[K, struct{}] {
	return b.tree.IterReverse()
}

// Stats reports the shape of the backing tree.
func (b *Bag[K]) Stats() btree.Stats {
	return b.tree.Stats()
}

// Check verifies every structural invariant of the backing tree.
// Diagnostic; visits every node.
func (b *Bag[K]) Check() error {
	return b.tree.Check()
}
