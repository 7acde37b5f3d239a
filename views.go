package kaos

import (
	"iter"

	"github.com/alex4998/KaosCollections/btree"
)

// KeysView is a read-only positional view of a dictionary's keys in
// sorted order. It reads through to the backing tree; it holds no
// snapshot.
type KeysView[K, V any] struct {
	tree *btree.Tree[K, V]
}

// Len returns the number of keys.
func (v KeysView[K, V]) Len() int {
	return v.tree.Count()
}

// At returns the key at the given rank.
func (v KeysView[K, V]) At(index int) (K, error) {
	key, _, err := v.tree.At(index)
	return key, err
}

// CopyTo copies every key into dst starting at offset at.
func (v KeysView[K, V]) CopyTo(dst []K, at int) error {
	return v.tree.CopyKeys(dst, at)
}

// All ranges over the keys in sorted order.
func (v KeysView[K, V]) All() iter.Seq[K] {
	return keysOnly(v.tree.All())
}

// ValuesView is a read-only positional view of a dictionary's values in
// key order.
type ValuesView[K, V any] struct {
	tree *btree.Tree[K, V]
}

// Len returns the number of values.
func (v ValuesView[K, V]) Len() int {
	return v.tree.Count()
}

// At returns the value at the given rank.
func (v ValuesView[K, V]) At(index int) (V, error) {
	_, val, err := v.tree.At(index)
	return val, err
}

// CopyTo copies every value into dst starting at offset at.
func (v ValuesView[K, V]) CopyTo(dst []V, at int) error {
	return v.tree.CopyValues(dst, at)
}

// All ranges over the values in key order.
func (v ValuesView[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, val := range v.tree.All() {
			if !yield(val) {
				return
			}
		}
	}
}
