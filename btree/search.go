// Copyright 2026 alex4998
// SPDX-License-Identifier: Apache-2.0

package btree

import (
	"fmt"
	"iter"
)

// Contains reports whether an element with an equal key exists.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.seekKey(key, seekMatch).found
}

// Get returns the value stored for key. With duplicate keys it reads an
// arbitrary element of the run; use range scans to see them all.
func (t *Tree[K, V]) Get(key K) (val V, ok bool) {
	v := t.seekKey(key, seekMatch)
	if !v.found {
		return
	}
	leaf, i := v.top()
	return leaf.vals[i], true
}

// IndexOf returns the rank of the element equal to key in a unique-key
// tree, or the bitwise complement of the rank it would be inserted at.
func (t *Tree[K, V]) IndexOf(key K) int {
	v := t.seekKey(key, seekMatch)
	r := v.rank()
	if !v.found {
		return ^r
	}
	return r
}

// IndexOfFirst is IndexOf for duplicate-key trees: the rank of the
// first element of the equal run, or the complement of the insertion
// rank.
func (t *Tree[K, V]) IndexOfFirst(key K) int {
	v := t.seekLowerEdge(key)
	r := v.rank()
	if !v.found {
		return ^r
	}
	return r
}

// lowerRank and upperRank bracket the run of keys equal to key.
func (t *Tree[K, V]) lowerRank(key K) int {
	return t.seekLowerEdge(key).rank()
}

func (t *Tree[K, V]) upperRank(key K) int {
	return t.seekKey(key, seekUpper).rank()
}

// GetCount returns the number of elements with an equal key, through
// two descents.
func (t *Tree[K, V]) GetCount(key K) int {
	return t.upperRank(key) - t.lowerRank(key)
}

// DistinctCount returns the number of distinct keys in O(d log n).
func (t *Tree[K, V]) DistinctCount() (d int) {
	for leaf, i := t.leftmost, 0; leaf != nil; {
		if i >= len(leaf.keys) {
			leaf, i = leaf.right, 0
			continue
		}
		d++
		next := t.upperRank(leaf.keys[i])
		if next >= t.Count() {
			break
		}
		leaf, i = t.seekIndex(next).top()
	}
	return d
}

// At returns the element at the given rank.
func (t *Tree[K, V]) At(index int) (key K, val V, err error) {
	if index < 0 || index >= t.Count() {
		err = fmt.Errorf("%w: index %d, count %d", ErrOutOfRange, index, t.Count())
		return
	}
	leaf, i := t.seekIndex(index).top()
	return leaf.keys[i], leaf.vals[i], nil
}

// AtOrZero returns the element at the given rank, or zero values past
// the end. A negative index is still an error.
func (t *Tree[K, V]) AtOrZero(index int) (key K, val V, err error) {
	if index < 0 {
		err = fmt.Errorf("%w: index %d", ErrOutOfRange, index)
		return
	}
	if index >= t.Count() {
		return
	}
	leaf, i := t.seekIndex(index).top()
	return leaf.keys[i], leaf.vals[i], nil
}

// CopyKeys copies every key into dst starting at offset at.
func (t *Tree[K, V]) CopyKeys(dst []K, at int) error {
	if err := t.checkCopy(len(dst), at); err != nil {
		return err
	}
	for leaf := t.leftmost; leaf != nil; leaf = leaf.right {
		at += copy(dst[at:], leaf.keys)
	}
	return nil
}

// CopyValues copies every value into dst starting at offset at.
func (t *Tree[K, V]) CopyValues(dst []V, at int) error {
	if err := t.checkCopy(len(dst), at); err != nil {
		return err
	}
	for leaf := t.leftmost; leaf != nil; leaf = leaf.right {
		at += copy(dst[at:], leaf.vals)
	}
	return nil
}

func (t *Tree[K, V]) checkCopy(dstLen, at int) error {
	if at < 0 || at > dstLen {
		return fmt.Errorf("%w: offset %d", ErrOutOfRange, at)
	}
	if dstLen-at < t.Count() {
		return fmt.Errorf("%w: destination holds %d past offset, need %d", ErrOutOfRange, dstLen-at, t.Count())
	}
	return nil
}

// All walks the leaf list in sorted order. The walk panics with
// ErrStale if the tree is mutated while it runs, the same way the
// runtime treats a map written during iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stage := t.stage
		for leaf := t.leftmost; leaf != nil; leaf = leaf.right {
			for i := 0; i < len(leaf.keys); i++ {
				if !yield(leaf.keys[i], leaf.vals[i]) {
					return
				}
				if t.stage != stage {
					panic(ErrStale)
				}
			}
		}
	}
}

// Reverse walks the leaf list backward from the tail.
func (t *Tree[K, V]) Reverse() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stage := t.stage
		for leaf := t.rightmost; leaf != nil; leaf = leaf.left {
			for i := len(leaf.keys) - 1; i >= 0; i-- {
				if !yield(leaf.keys[i], leaf.vals[i]) {
					return
				}
				if t.stage != stage {
					panic(ErrStale)
				}
			}
		}
	}
}

// Between yields the elements with lo <= key <= hi.
func (t *Tree[K, V]) Between(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stage := t.stage
		leaf, i := t.seekLowerEdge(lo).top()
		for leaf != nil {
			for ; i < len(leaf.keys); i++ {
				if t.compare(leaf.keys[i], hi) > 0 {
					return
				}
				if !yield(leaf.keys[i], leaf.vals[i]) {
					return
				}
				if t.stage != stage {
					panic(ErrStale)
				}
			}
			leaf, i = leaf.right, 0
		}
	}
}

// From yields the elements with key >= lo.
func (t *Tree[K, V]) From(lo K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stage := t.stage
		leaf, i := t.seekLowerEdge(lo).top()
		for leaf != nil {
			for ; i < len(leaf.keys); i++ {
				if !yield(leaf.keys[i], leaf.vals[i]) {
					return
				}
				if t.stage != stage {
					panic(ErrStale)
				}
			}
			leaf, i = leaf.right, 0
		}
	}
}

// Distinct yields the first element of every equal run, jumping past
// each run by rank (an upper-bound descent, then an index descent).
func (t *Tree[K, V]) Distinct() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stage := t.stage
		if t.Count() == 0 {
			return
		}
		key, val, _ := t.First()
		for {
			if !yield(key, val) {
				return
			}
			if t.stage != stage {
				panic(ErrStale)
			}
			next := t.upperRank(key)
			if next >= t.Count() {
				return
			}
			leaf, i := t.seekIndex(next).top()
			key, val = leaf.keys[i], leaf.vals[i]
		}
	}
}
