// Package kaos provides four sorted-collection flavors built on one
// in-memory, order-statistics B+ tree: Set (unique keys), Bag (sorted
// multiset, stable among equal keys), Map (unique-key dictionary) and
// MultiMap (duplicate-key dictionary).
//
// Every flavor offers O(log n) membership, insertion, deletion and
// positional access (At, IndexOf), O(1) Len, and ordered forward,
// reverse and range iteration over the tree's linked leaves.
//
// Collections are not safe for concurrent use; see the btree package
// for the single-writer discipline and the SyncRoot token.
package kaos

import (
	"golang.org/x/exp/constraints"

	"github.com/alex4998/KaosCollections/btree"
)

// Compare orders keys; see btree.Compare.
type Compare[K any] = btree.Compare[K]

// Ordered returns the natural comparer for any ordered primitive type.
func Ordered[K constraints.Ordered]() Compare[K] {
	return func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// Descending inverts a comparer.
func Descending[K any](compare Compare[K]) Compare[K] {
	return func(a, b K) int {
		return compare(b, a)
	}
}

type options struct {
	order int
}

// Option configures a collection at construction.
type Option func(*options)

// WithOrder sets the tree's branching factor, within
// [btree.MinOrder, btree.MaxOrder]. The default is btree.DefaultOrder.
func WithOrder(order int) Option {
	return func(o *options) {
		o.order = order
	}
}

func buildOptions(opts []Option) options {
	o := options{order: btree.DefaultOrder}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
