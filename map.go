package kaos

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/alex4998/KaosCollections/btree"
)

// Entry pairs a key with its value for copy-out operations.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is a sorted dictionary with unique keys.
type Map[K, V any] struct {
	tree    *btree.Tree[K, V]
	compare Compare[K]
}

// NewMap returns an empty Map ordered by the natural key comparer.
func NewMap[K constraints.Ordered, V any](opts ...Option) *Map[K, V] {
	return NewMapFunc[K, V](Ordered[K](), opts...)
}

// NewMapFunc returns an empty Map ordered by compare.
func NewMapFunc[K, V any](compare Compare[K], opts ...Option) *Map[K, V] {
	o := buildOptions(opts)
	return &Map[K, V]{tree: btree.New[K, V](compare, o.order), compare: compare}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Count()
}

// Add inserts the entry and reports whether the key was absent; on a
// duplicate key the map is untouched.
func (m *Map[K, V]) Add(key K, val V) bool {
	return m.tree.AddUnique(key, val)
}

// Set inserts the entry or overwrites the value of an existing key.
// Reports whether the key was absent.
func (m *Map[K, V]) Set(key K, val V) bool {
	return m.tree.Put(key, val)
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

// Remove deletes the entry for key and reports whether it was present.
func (m *Map[K, V]) Remove(key K) bool {
	return m.tree.RemoveUnique(key)
}

// RemoveAt deletes the entry at the given rank.
func (m *Map[K, V]) RemoveAt(index int) error {
	return m.tree.RemoveAt(index)
}

// RemoveWhere deletes every entry the predicate matches and returns how
// many went.
func (m *Map[K, V]) RemoveWhere(match func(K, V) bool) int {
	return m.tree.RemoveWhere(match)
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.tree.Contains(key)
}

// IndexOf returns the rank of key, or the bitwise complement of the
// rank it would be inserted at.
func (m *Map[K, V]) IndexOf(key K) int {
	return m.tree.IndexOf(key)
}

// At returns the entry at the given rank.
func (m *Map[K, V]) At(index int) (K, V, error) {
	return m.tree.At(index)
}

// AtOrZero returns the entry at the given rank, or zero values past the
// end. A negative index is still an error.
func (m *Map[K, V]) AtOrZero(index int) (K, V, error) {
	return m.tree.AtOrZero(index)
}

// First returns the entry with the smallest key; ErrEmpty when the map
// is empty.
func (m *Map[K, V]) First() (K, V, error) {
	return m.tree.First()
}

// Last returns the entry with the largest key; ErrEmpty when the map is
// empty.
func (m *Map[K, V]) Last() (K, V, error) {
	return m.tree.Last()
}

// CopyTo copies every entry into dst in key order starting at offset
// at, bounds-checked.
func (m *Map[K, V]) CopyTo(dst []Entry[K, V], at int) error {
	return copyEntries(m.tree, dst, at)
}

// ToSlice returns the entries as a fresh slice in key order.
func (m *Map[K, V]) ToSlice() []Entry[K, V] {
	dst := make([]Entry[K, V], m.Len())
	copyEntries(m.tree, dst, 0)
	return dst
}

// Clear resets the map to empty.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// All ranges over the entries in key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.tree.All()
}

// Reverse ranges over the entries in descending key order.
func (m *Map[K, V]) Reverse() iter.Seq2[K, V] {
	return m.tree.Reverse()
}

// Between ranges over the entries with lo <= key <= hi.
func (m *Map[K, V]) Between(lo, hi K) iter.Seq2[K, V] {
	return m.tree.Between(lo, hi)
}

// From ranges over the entries with key >= lo.
func (m *Map[K, V]) From(lo K) iter.Seq2[K, V] {
	return m.tree.From(lo)
}

// Iter returns an explicit forward enumerator.
func (m *Map[K, V]) Iter() *btree.Enumerator[K, V] {
	return m.tree.Iter()
}

// IterReverse returns an explicit reverse enumerator.
func (m *Map[K, V]) IterReverse() *btree.Enumerator[K, V] {
	return m.tree.IterReverse()
}

// Keys returns a read-only positional view of the keys.
func (m *Map[K, V]) Keys() KeysView[K, V] {
	return KeysView[K, V]{tree: m.tree}
}

// Values returns a read-only positional view of the values, in key
// order.
func (m *Map[K, V]) Values() ValuesView[K, V] {
	return ValuesView[K, V]{tree: m.tree}
}

// Stats reports the shape of the backing tree.
func (m *Map[K, V]) Stats() btree.Stats {
	return m.tree.Stats()
}

// Check verifies every structural invariant of the backing tree.
// Diagnostic; visits every node.
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}

func copyEntries[K, V any](t *btree.Tree[K, V], dst []Entry[K, V], at int) error {
	if at < 0 || at > len(dst) {
		return fmt.Errorf("%w: offset %d", ErrOutOfRange, at)
	}
	if len(dst)-at < t.Count() {
		return fmt.Errorf("%w: destination holds %d past offset, need %d", ErrOutOfRange, len(dst)-at, t.Count())
	}
	for key, val := range t.All() {
		dst[at] = Entry[K, V]{Key: key, Value: val}
		at++
	}
	return nil
}
