package Trees

// RBIter is a bidirectional position in a RBTree. End points to the sentinel of the tree; the zero value
// is also treated as End. Iterators are comparable, but only iterators obtained from the tree compare
// equal to its End.
// Value must not be called on End.
type RBIter[T any] struct {
	n *rbNode[T]
	t *RBTree[T]
}

// IsEnd reports whether it is past the last element.
func (it RBIter[T]) IsEnd() bool {
	return it.t == nil || it.n == it.t.nilPtr
}

// Value at it. Values can't be modified in place since that could break the ordering.
func (it RBIter[T]) Value() T {
	return it.n.v
}

// Next is the position after it. Next of End is End.
// Time: amortized O(1), worst O(log n).
func (it RBIter[T]) Next() RBIter[T] {
	if it.IsEnd() {
		return it
	}
	return RBIter[T]{it.t.next(it.n), it.t}
}

// Prev is the position before it. Prev of End is the last element, and Prev of the first element is End.
// Time: amortized O(1), worst O(log n).
func (it RBIter[T]) Prev() RBIter[T] {
	if it.t == nil {
		return it
	}
	if it.n == it.t.nilPtr {
		return RBIter[T]{it.t.maxNode(it.t.root), it.t}
	}
	return RBIter[T]{it.t.prev(it.n), it.t}
}
