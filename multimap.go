package kaos

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/alex4998/KaosCollections/btree"
)

// MultiMap is a sorted dictionary that allows duplicate keys, each with
// its own value. Entries with equal keys keep their insertion order.
type MultiMap[K, V any] struct {
	tree    *btree.Tree[K, V]
	compare Compare[K]
}

// NewMultiMap returns an empty MultiMap ordered by the natural key
// comparer.
func NewMultiMap[K constraints.Ordered, V any](opts ...Option) *MultiMap[K, V] {
	return NewMultiMapFunc[K, V](Ordered[K](), opts...)
}

// NewMultiMapFunc returns an empty MultiMap ordered by compare.
func NewMultiMapFunc[K, V any](compare Compare[K], opts ...Option) *MultiMap[K, V] {
	o := buildOptions(opts)
	return &MultiMap[K, V]{tree: btree.New[K, V](compare, o.order), compare: compare}
}

// Len returns the number of entries, duplicate keys included.
func (m *MultiMap[K, V]) Len() int {
	return m.tree.Count()
}

// Add inserts the entry, after any existing entries with an equal key.
func (m *MultiMap[K, V]) Add(key K, val V) {
	m.tree.Add(key, val)
}

// Remove deletes the first entry of the equal run and reports whether
// any equal key was present.
func (m *MultiMap[K, V]) Remove(key K) bool {
	return m.tree.Remove(key)
}

// RemoveAll deletes every entry with an equal key and returns how many
// went.
func (m *MultiMap[K, V]) RemoveAll(key K) int {
	removed := 0
	for m.tree.Remove(key) {
		removed++
	}
	return removed
}

// RemoveAt deletes the entry at the given rank.
func (m *MultiMap[K, V]) RemoveAt(index int) error {
	return m.tree.RemoveAt(index)
}

// RemoveWhere deletes every entry the predicate matches and returns how
// many went.
func (m *MultiMap[K, V]) RemoveWhere(match func(K, V) bool) int {
	return m.tree.RemoveWhere(match)
}

// ContainsKey reports whether any entry with an equal key is present.
func (m *MultiMap[K, V]) ContainsKey(key K) bool {
	return m.tree.Contains(key)
}

// GetCount returns the number of entries with an equal key.
func (m *MultiMap[K, V]) GetCount(key K) int {
	return m.tree.GetCount(key)
}

// DistinctCount returns the number of distinct keys.
func (m *MultiMap[K, V]) DistinctCount() int {
	return m.tree.DistinctCount()
}

// IndexOf returns the rank of the first entry of the equal run, or the
// bitwise complement of the insertion rank.
func (m *MultiMap[K, V]) IndexOf(key K) int {
	return m.tree.IndexOfFirst(key)
}

// At returns the entry at the given rank.
func (m *MultiMap[K, V]) At(index int) (K, V, error) {
	return m.tree.At(index)
}

// AtOrZero returns the entry at the given rank, or zero values past the
// end. A negative index is still an error.
func (m *MultiMap[K, V]) AtOrZero(index int) (K, V, error) {
	return m.tree.AtOrZero(index)
}

// First returns the entry with the smallest key; ErrEmpty when empty.
func (m *MultiMap[K, V]) First() (K, V, error) {
	return m.tree.First()
}

// Last returns the entry with the largest key; ErrEmpty when empty.
func (m *MultiMap[K, V]) Last() (K, V, error) {
	return m.tree.Last()
}

// ValuesOf ranges over the values of every entry with an equal key, in
// insertion order.
func (m *MultiMap[K, V]) ValuesOf(key K) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, val := range m.tree.Between(key, key) {
			if !yield(val) {
				return
			}
		}
	}
}

// CopyTo copies every entry into dst in key order starting at offset
// at, bounds-checked.
func (m *MultiMap[K, V]) CopyTo(dst []Entry[K, V], at int) error {
	return copyEntries(m.tree, dst, at)
}

// ToSlice returns the entries as a fresh slice in key order.
func (m *MultiMap[K, V]) ToSlice() []Entry[K, V] {
	dst := make([]Entry[K, V], m.Len())
	copyEntries(m.tree, dst, 0)
	return dst
}

// Clear resets the multimap to empty.
func (m *MultiMap[K, V]) Clear() {
	m.tree.Clear()
}

// All ranges over the entries in key order.
func (m *MultiMap[K, V]) All() iter.Seq2[K, V] {
	return m.tree.All()
}

// Reverse ranges over the entries in descending key order.
func (m *MultiMap[K, V]) Reverse() iter.Seq2[K, V] {
	return m.tree.Reverse()
}

// Distinct ranges over the first entry of every equal run.
func (m *MultiMap[K, V]) Distinct() iter.Seq2[K, V] {
	return m.tree.Distinct()
}

// Between ranges over the entries with lo <= key <= hi.
func (m *MultiMap[K, V]) Between(lo, hi K) iter.Seq2[K, V] {
	return m.tree.Between(lo, hi)
}

// From ranges over the entries with key >= lo.
func (m *MultiMap[K, V]) From(lo K) iter.Seq2[K, V] {
	return m.tree.From(lo)
}

// Iter returns an explicit forward enumerator.
func (m *MultiMap[K, V]) Iter() *btree.Enumerator[K, V] {
	return m.tree.Iter()
}

// IterReverse returns an explicit reverse enumerator.
func (m *MultiMap[K, V]) IterReverse() *btree.Enumerator[K, V] {
	return m.tree.IterReverse()
}

// Keys returns a read-only positional view of the keys.
func (m *MultiMap[K, V]) Keys() KeysView[K, V] {
	return KeysView[K, V]{tree: m.tree}
}

// Values returns a read-only positional view of the values, in key
// order.
func (m *MultiMap[K, V]) Values() ValuesView[K, V] {
	return ValuesView[K, V]{tree: m.tree}
}

// Stats reports the shape of the backing tree.
func (m *MultiMap[K, V]) Stats() btree.Stats {
	return m.tree.Stats()
}

// Check verifies every structural invariant of the backing tree.
// Diagnostic; visits every node.
func (m *MultiMap[K, V]) Check() error {
	return m.tree.Check()
}
