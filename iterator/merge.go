package iterator

import "iter"

// Union merges two sorted streams, yielding each distinct element once.
func Union[E any](a, b Cursor[E], compare func(E, E) int) iter.Seq[E] {
	return func(yield func(E) bool) {
		aOK, bOK := a.MoveNext(), b.MoveNext()
		for aOK && bOK {
			switch c := compare(a.Item(), b.Item()); {
			case c < 0:
				if !yield(a.Item()) {
					return
				}
				aOK = a.MoveNext()
			case c > 0:
				if !yield(b.Item()) {
					return
				}
				bOK = b.MoveNext()
			default:
				if !yield(a.Item()) {
					return
				}
				aOK, bOK = a.MoveNext(), b.MoveNext()
			}
		}
		for ; aOK; aOK = a.MoveNext() {
			if !yield(a.Item()) {
				return
			}
		}
		for ; bOK; bOK = b.MoveNext() {
			if !yield(b.Item()) {
				return
			}
		}
	}
}

// Intersect yields the elements present in both sorted streams.
func Intersect[E any](a, b Cursor[E], compare func(E, E) int) iter.Seq[E] {
	return func(yield func(E) bool) {
		aOK, bOK := a.MoveNext(), b.MoveNext()
		for aOK && bOK {
			switch c := compare(a.Item(), b.Item()); {
			case c < 0:
				aOK = a.MoveNext()
			case c > 0:
				bOK = b.MoveNext()
			default:
				if !yield(a.Item()) {
					return
				}
				aOK, bOK = a.MoveNext(), b.MoveNext()
			}
		}
	}
}

// Except yields the elements of a absent from b.
func Except[E any](a, b Cursor[E], compare func(E, E) int) iter.Seq[E] {
	return func(yield func(E) bool) {
		aOK, bOK := a.MoveNext(), b.MoveNext()
		for aOK {
			if !bOK || compare(a.Item(), b.Item()) < 0 {
				if !yield(a.Item()) {
					return
				}
				aOK = a.MoveNext()
				continue
			}
			if c := compare(a.Item(), b.Item()); c == 0 {
				aOK, bOK = a.MoveNext(), b.MoveNext()
			} else {
				bOK = b.MoveNext()
			}
		}
	}
}

// SymmetricDiff yields the elements present in exactly one stream.
func SymmetricDiff[E any](a, b Cursor[E], compare func(E, E) int) iter.Seq[E] {
	return func(yield func(E) bool) {
		aOK, bOK := a.MoveNext(), b.MoveNext()
		for aOK && bOK {
			switch c := compare(a.Item(), b.Item()); {
			case c < 0:
				if !yield(a.Item()) {
					return
				}
				aOK = a.MoveNext()
			case c > 0:
				if !yield(b.Item()) {
					return
				}
				bOK = b.MoveNext()
			default:
				aOK, bOK = a.MoveNext(), b.MoveNext()
			}
		}
		for ; aOK; aOK = a.MoveNext() {
			if !yield(a.Item()) {
				return
			}
		}
		for ; bOK; bOK = b.MoveNext() {
			if !yield(b.Item()) {
				return
			}
		}
	}
}

// Subset reports whether every element of a appears in b. Runs in one
// pass over both streams.
func Subset[E any](a, b Cursor[E], compare func(E, E) int) bool {
	aOK, bOK := a.MoveNext(), b.MoveNext()
	for aOK {
		if !bOK {
			return false
		}
		switch c := compare(a.Item(), b.Item()); {
		case c < 0:
			return false
		case c > 0:
			bOK = b.MoveNext()
		default:
			aOK, bOK = a.MoveNext(), b.MoveNext()
		}
	}
	return true
}

// Equal reports whether both streams hold exactly the same elements.
func Equal[E any](a, b Cursor[E], compare func(E, E) int) bool {
	aOK, bOK := a.MoveNext(), b.MoveNext()
	for aOK && bOK {
		if compare(a.Item(), b.Item()) != 0 {
			return false
		}
		aOK, bOK = a.MoveNext(), b.MoveNext()
	}
	return aOK == bOK
}

// Overlaps reports whether the streams share at least one element.
func Overlaps[E any](a, b Cursor[E], compare func(E, E) int) bool {
	aOK, bOK := a.MoveNext(), b.MoveNext()
	for aOK && bOK {
		switch c := compare(a.Item(), b.Item()); {
		case c < 0:
			aOK = a.MoveNext()
		case c > 0:
			bOK = b.MoveNext()
		default:
			return true
		}
	}
	return false
}
