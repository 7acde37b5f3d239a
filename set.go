package kaos

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/alex4998/KaosCollections/btree"
	"github.com/alex4998/KaosCollections/iterator"
)

// Set is a sorted collection of unique keys.
type Set[K any] struct {
	tree    *btree.Tree[K, struct{}]
	compare Compare[K]
}

// NewSet returns an empty Set ordered by the natural comparer.
func NewSet[K constraints.Ordered](opts ...Option) *Set[K] {
	return NewSetFunc(Ordered[K](), opts...)
}

// NewSetFunc returns an empty Set ordered by compare.
func NewSetFunc[K any](compare Compare[K], opts ...Option) *Set[K] {
	o := buildOptions(opts)
	return &Set[K]{tree: btree.New[K, struct{}](compare, o.order), compare: compare}
}

// Len returns the number of keys.
func (s *Set[K]) Len() int {
	return s.tree.Count()
}

// Add inserts key and reports whether it was absent.
func (s *Set[K]) Add(key K) bool {
	return s.tree.AddUnique(key, struct{}{})
}

// AddAll inserts every key and returns how many were absent.
func (s *Set[K]) AddAll(keys ...K) (added int) {
	for _, key := range keys {
		if s.Add(key) {
			added++
		}
	}
	return added
}

// Remove deletes key and reports whether it was present.
func (s *Set[K]) Remove(key K) bool {
	return s.tree.RemoveUnique(key)
}

// RemoveAt deletes the key at the given rank.
func (s *Set[K]) RemoveAt(index int) error {
	return s.tree.RemoveAt(index)
}

// RemoveWhere deletes every key the predicate matches and returns how
// many went.
func (s *Set[K]) RemoveWhere(match func(K) bool) int {
	return s.tree.RemoveWhere(func(key K, _ struct{}) bool {
		return match(key)
	})
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

// IndexOf returns the rank of key, or the bitwise complement of the
// rank it would be inserted at.
func (s *Set[K]) IndexOf(key K) int {
	return s.tree.IndexOf(key)
}

// At returns the key at the given rank.
func (s *Set[K]) At(index int) (K, error) {
	key, _, err := s.tree.At(index)
	return key, err
}

// AtOrZero returns the key at the given rank, or the zero key past the
// end. A negative index is still an error.
func (s *Set[K]) AtOrZero(index int) (K, error) {
	key, _, err := s.tree.AtOrZero(index)
	return key, err
}

// First returns the smallest key; ErrEmpty when the set is empty.
func (s *Set[K]) First() (K, error) {
	key, _, err := s.tree.First()
	return key, err
}

// Last returns the largest key; ErrEmpty when the set is empty.
func (s *Set[K]) Last() (K, error) {
	key, _, err := s.tree.Last()
	return key, err
}

// Min is First under its order-statistics name.
func (s *Set[K]) Min() (K, error) { return s.First() }

// Max is Last under its order-statistics name.
func (s *Set[K]) Max() (K, error) { return s.Last() }

// CopyTo copies every key into dst in sorted order starting at offset
// at, bounds-checked.
func (s *Set[K]) CopyTo(dst []K, at int) error {
	return s.tree.CopyKeys(dst, at)
}

// ToSlice returns the keys as a fresh sorted slice.
func (s *Set[K]) ToSlice() []K {
	dst := make([]K, s.Len())
	s.tree.CopyKeys(dst, 0)
	return dst
}

// Clear resets the set to empty.
func (s *Set[K]) Clear() {
	s.tree.Clear()
}

// All ranges over the keys in sorted order.
func (s *Set[K]) All() iter.Seq[K] {
	return keysOnly(s.tree.All())
}

// Reverse ranges over the keys in descending order.
func (s *Set[K]) Reverse() iter.Seq[K] {
	return keysOnly(s.tree.Reverse())
}

// Between ranges over the keys with lo <= key <= hi.
func (s *Set[K]) Between(lo, hi K) iter.Seq[K] {
	return keysOnly(s.tree.Between(lo, hi))
}

// From ranges over the keys with key >= lo.
func (s *Set[K]) From(lo K) iter.Seq[K] {
	return keysOnly(s.tree.From(lo))
}

// Iter returns an explicit forward enumerator.
func (s *Set[K]) Iter() *btree.Enumerator[K, struct{}] {
	return s.tree.Iter()
}

// IterReverse returns an explicit reverse enumerator.
func (s *Set[K]) IterReverse() *btree.Enumerator[K, struct{}] {
	return s.tree.IterReverse()
}

// Stats reports the shape of the backing tree.
func (s *Set[K]) Stats() btree.Stats {
	return s.tree.Stats()
}

// Check verifies every structural invariant of the backing tree.
// Diagnostic; visits every node.
func (s *Set[K]) Check() error {
	return s.tree.Check()
}

// Set algebra. The mutating forms edit the receiver in place; the
// streaming forms and predicates leave both sets untouched and run in
// one merged pass. Both sets must share one ordering.

// UnionWith adds every key of other.
func (s *Set[K]) UnionWith(other *Set[K]) {
	if other == s {
		return
	}
	for key := range other.All() {
		s.Add(key)
	}
}

// IntersectWith drops every key absent from other.
func (s *Set[K]) IntersectWith(other *Set[K]) {
	if other == s {
		return
	}
	s.RemoveWhere(func(key K) bool {
		return !other.Contains(key)
	})
}

// ExceptWith drops every key present in other.
func (s *Set[K]) ExceptWith(other *Set[K]) {
	if other == s {
		s.Clear()
		return
	}
	for key := range other.All() {
		s.Remove(key)
	}
}

// SymmetricExceptWith keeps the keys present in exactly one of the two
// sets.
func (s *Set[K]) SymmetricExceptWith(other *Set[K]) {
	if other == s {
		s.Clear()
		return
	}
	for key := range other.All() {
		if !s.Remove(key) {
			s.Add(key)
		}
	}
}

// Union streams the merged keys of both sets in sorted order. The
// cursors are taken per iteration, so the sequence is re-rangeable.
func (s *Set[K]) Union(other *Set[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		iterator.Union(s.cursor(), other.cursor(), s.compare)(yield)
	}
}

// Intersect streams the keys present in both sets.
func (s *Set[K]) Intersect(other *Set[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		iterator.Intersect(s.cursor(), other.cursor(), s.compare)(yield)
	}
}

// Except streams the keys of s absent from other.
func (s *Set[K]) Except(other *Set[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		iterator.Except(s.cursor(), other.cursor(), s.compare)(yield)
	}
}

// Overlaps reports whether the sets share a key.
func (s *Set[K]) Overlaps(other *Set[K]) bool {
	return iterator.Overlaps(s.cursor(), other.cursor(), s.compare)
}

// IsSubsetOf reports whether every key of s is in other.
func (s *Set[K]) IsSubsetOf(other *Set[K]) bool {
	return iterator.Subset(s.cursor(), other.cursor(), s.compare)
}

// IsSupersetOf reports whether every key of other is in s.
func (s *Set[K]) IsSupersetOf(other *Set[K]) bool {
	return iterator.Subset(other.cursor(), s.cursor(), s.compare)
}

// SetEquals reports whether both sets hold exactly the same keys.
func (s *Set[K]) SetEquals(other *Set[K]) bool {
	return iterator.Equal(s.cursor(), other.cursor(), s.compare)
}

func (s *Set[K]) cursor() iterator.Cursor[K] {
	return enumCursor[K, struct{}]{s.tree.Iter()}
}

// enumCursor adapts a tree enumerator to the iterator package. A stale
// enumerator surfaces as a panic, matching the range-loop walkers.
type enumCursor[K, V any] struct {
	e *btree.Enumerator[K, V]
}

func (c enumCursor[K, V]) MoveNext() bool {
	if c.e.MoveNext() {
		return true
	}
	if err := c.e.Err(); err != nil {
		panic(err)
	}
	return false
}

func (c enumCursor[K, V]) Item() K {
	return c.e.Key()
}

func keysOnly[K, V any](seq iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range seq {
			if !yield(key) {
				return
			}
		}
	}
}
