// Copyright 2026 alex4998
// SPDX-License-Identifier: Apache-2.0

package btree

type enumState int8

const (
	stateRewound enumState = iota
	stateActive
	stateConsumed
)

// Enumerator is a single-pass cursor over the leaf list, forward or
// reverse. It freezes the tree's stage at construction: once the tree
// mutates, the next MoveNext returns false and Err reports ErrStale.
//
// Before the first successful MoveNext and after the last, Current
// returns zero values.
type Enumerator[K, V any] struct {
	tree    *Tree[K, V]
	leaf    *node[K, V]
	index   int
	stage   uint64
	state   enumState
	reverse bool
	err     error
}

// Iter returns a forward enumerator positioned before the first
// element.
func (t *Tree[K, V]) Iter() *Enumerator[K, V] {
	return &Enumerator[K, V]{tree: t, stage: t.stage}
}

// IterReverse returns an enumerator positioned before the last element,
// walking toward the first.
func (t *Tree[K, V]) IterReverse() *Enumerator[K, V] {
	return &Enumerator[K, V]{tree: t, stage: t.stage, reverse: true}
}

// MoveNext advances to the next element. It returns false at the end of
// the data and keeps returning false afterward, or when the tree has
// mutated since the enumerator was built; Err tells the cases apart.
func (e *Enumerator[K, V]) MoveNext() bool {
	if e.err != nil {
		return false
	}
	if e.stage != e.tree.stage {
		e.err = ErrStale
		e.state = stateConsumed
		e.leaf = nil
		return false
	}
	switch e.state {
	case stateRewound:
		if e.reverse {
			e.leaf = e.tree.rightmost
			e.index = len(e.leaf.keys) - 1
		} else {
			e.leaf = e.tree.leftmost
			e.index = 0
		}
		if e.index < 0 || e.index >= len(e.leaf.keys) {
			e.state = stateConsumed
			e.leaf = nil
			return false
		}
		e.state = stateActive
		return true
	case stateActive:
		if e.reverse {
			e.index--
			if e.index < 0 {
				e.leaf = e.leaf.left
				if e.leaf == nil {
					e.state = stateConsumed
					return false
				}
				e.index = len(e.leaf.keys) - 1
			}
		} else {
			e.index++
			if e.index >= len(e.leaf.keys) {
				e.leaf = e.leaf.right
				if e.leaf == nil {
					e.state = stateConsumed
					return false
				}
				e.index = 0
			}
		}
		return true
	default:
		return false
	}
}

// Current returns the element under the cursor, or zero values when the
// enumerator is rewound or consumed.
func (e *Enumerator[K, V]) Current() (key K, val V) {
	if e.state != stateActive {
		return
	}
	return e.leaf.keys[e.index], e.leaf.vals[e.index]
}

// Key returns the key under the cursor.
func (e *Enumerator[K, V]) Key() K {
	key, _ := e.Current()
	return key
}

// Value returns the value under the cursor.
func (e *Enumerator[K, V]) Value() V {
	_, val := e.Current()
	return val
}

// Reset rewinds the enumerator to replay from the start. The frozen
// stage is kept: an enumerator invalidated by a mutation stays
// invalidated.
func (e *Enumerator[K, V]) Reset() {
	e.state = stateRewound
	e.leaf = nil
	e.index = 0
	e.err = nil
}

// Err returns ErrStale when the tree mutated under the enumerator, nil
// after ordinary end of data.
func (e *Enumerator[K, V]) Err() error {
	return e.err
}
