/*
Package Sets implements ordered multisets.

# Ordering
Elements are sorted by a strict less-than function; a and b are equal when neither is less than the other.
Equal elements are kept in insertion order, so iterating a MultiSet of records ordered by one field
visits records with the same field in the order they were inserted.

# Iterators
Positions are Trees.RBIter values. Erasing an element only invalidates iterators to that element.

# Usage
A MultiSet isn't safe for concurrent use. Its zero value is meaningless, use one of the constructors.
*/
package Sets

import "iter"

// SortedBag is the read side of an ordered multiset.
type SortedBag[T any] interface {
	Size() uint
	Empty() bool
	Contains(T) bool
	Count(T) uint
	All() iter.Seq[T]
	Backward() iter.Seq[T]
}

var _ SortedBag[int] = (*MultiSet[int])(nil)
