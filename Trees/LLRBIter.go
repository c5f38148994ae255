package Trees

// LLRBIter is a bidirectional position in a LLRB. The zero value and End point past the last element.
// Iterators are comparable: two iterators are equal when they point to the same position of the same tree.
// Key, Value and SetValue must not be called on End.
type LLRBIter[K, V any] struct {
	n *llrbNode[K, V]
	t *LLRB[K, V]
}

// IsEnd reports whether it is past the last element.
func (it LLRBIter[K, V]) IsEnd() bool {
	return it.n == nil
}

// Key at it.
func (it LLRBIter[K, V]) Key() K {
	return it.n.key
}

// Value at it.
func (it LLRBIter[K, V]) Value() V {
	return it.n.val
}

// SetValue at it. The key, and therefore the position, can't be changed.
func (it LLRBIter[K, V]) SetValue(v V) {
	it.n.val = v
}

// ValuePtr returns the address of the value at it, valid until the element or its predecessor is erased.
func (it LLRBIter[K, V]) ValuePtr() *V {
	return &it.n.val
}

// Next is the position after it. Next of End is End.
// Time: amortized O(1), worst O(log n).
func (it LLRBIter[K, V]) Next() LLRBIter[K, V] {
	if it.n == nil {
		return it
	}
	return LLRBIter[K, V]{it.n.next(), it.t}
}

// Prev is the position before it. Prev of End is the last element, and Prev of the first element is End.
// Time: amortized O(1), worst O(log n).
func (it LLRBIter[K, V]) Prev() LLRBIter[K, V] {
	if it.n == nil {
		if it.t == nil || it.t.root == nil {
			return it
		}
		return LLRBIter[K, V]{it.t.root.max(), it.t}
	}
	return LLRBIter[K, V]{it.n.prev(), it.t}
}
