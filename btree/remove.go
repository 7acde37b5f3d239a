// Copyright 2026 alex4998
// SPDX-License-Identifier: Apache-2.0

package btree

import "slices"

// Remove deletes one element with an equal key, the first of a run when
// keys repeat. Reports false when no equal key exists.
func (t *Tree[K, V]) Remove(key K) bool {
	v := t.seekLowerEdge(key)
	if !v.found {
		return false
	}
	t.removeAtVector(v)
	return true
}

// RemoveUnique deletes the element with an equal key in a unique-key
// tree.
func (t *Tree[K, V]) RemoveUnique(key K) bool {
	v := t.seekKey(key, seekMatch)
	if !v.found {
		return false
	}
	t.removeAtVector(v)
	return true
}

// RemoveAt deletes the element at the given rank.
func (t *Tree[K, V]) RemoveAt(index int) error {
	if index < 0 || index >= t.Count() {
		return ErrOutOfRange
	}
	t.removeAtVector(t.seekIndex(index))
	return nil
}

// RemoveWhere deletes every element the predicate matches and returns
// how many went. Matches are collected first, then removed by rank from
// the back so earlier ranks stay valid.
func (t *Tree[K, V]) RemoveWhere(match func(K, V) bool) int {
	var ranks []int
	rank := 0
	for leaf := t.leftmost; leaf != nil; leaf = leaf.right {
		for i := range leaf.keys {
			if match(leaf.keys[i], leaf.vals[i]) {
				ranks = append(ranks, rank)
			}
			rank++
		}
	}
	for i := len(ranks) - 1; i >= 0; i-- {
		t.removeAtVector(t.seekIndex(ranks[i]))
	}
	return len(ranks)
}

// removeAtVector deletes the element at the vector's leaf slot and
// restores every invariant before returning: ancestor weights, the
// pivot anchor when the leaf's first key went, and the fill invariant
// through rotate or coalesce with the right sibling.
func (t *Tree[K, V]) removeAtVector(v *vector[K, V]) {
	t.stage++
	leaf, i := v.top()
	leaf.removeAt(i)
	v.updateWeight(-1)
	if i == 0 && len(leaf.keys) > 0 {
		v.setPivot(leaf.keys[0])
	}

	if len(leaf.keys) == 0 {
		if v.leftSibling() == nil {
			// The leftmost leaf may sit empty: alone it is the whole
			// tree, otherwise the underflow path below refills it.
			if leaf.right == nil {
				return
			}
		} else {
			t.unlinkLeaf(leaf)
			v.demote()
			return
		}
	}

	if len(leaf.keys) >= (t.order+2)/2 {
		return
	}
	right := leaf.right
	if right == nil {
		// Rightmost leaf is exempt from the fill invariant.
		return
	}

	if len(leaf.keys)+len(right.keys) > t.order-1 {
		// Rotate: shift keys from the right sibling until this leaf
		// holds half of the pair.
		shift := (len(leaf.keys)+len(right.keys)+2)/2 - len(leaf.keys)
		leaf.keys = append(leaf.keys, right.keys[:shift]...)
		leaf.vals = append(leaf.vals, right.vals[:shift]...)
		right.keys = slices.Delete(right.keys, 0, shift)
		right.vals = slices.Delete(right.vals, 0, shift)
		v.traverseRight()
		v.setPivot(right.keys[0])
		v.tiltLeft(shift)
		return
	}

	// Coalesce: absorb the right sibling entirely, then demote it out
	// of its ancestors.
	moved := len(right.keys)
	leaf.keys = append(leaf.keys, right.keys...)
	leaf.vals = append(leaf.vals, right.vals...)
	v.traverseRight()
	t.unlinkLeaf(right)
	v.tiltLeft(moved)
	v.demote()
}
