package Trees

import (
	Go_Containers "github.com/g-m-twostay/go-containers"
)

// A node in the LLRB. nil children mean absent, the root has a nil parent.
type llrbNode[K, V any] struct {
	key     K
	val     V
	l, r, p *llrbNode[K, V]
	red     bool
}

func (n *llrbNode[K, V]) isRed() bool {
	return n != nil && n.red
}

// detach clears the links of a node that's no longer in the tree, so stale iterators run into the end.
func (n *llrbNode[K, V]) detach() {
	n.l, n.r, n.p = nil, nil, nil
}

func (n *llrbNode[K, V]) min() *llrbNode[K, V] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func (n *llrbNode[K, V]) max() *llrbNode[K, V] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// next is the in-order successor, nil if n is the maximum.
func (n *llrbNode[K, V]) next() *llrbNode[K, V] {
	if n.r != nil {
		return n.r.min()
	}
	p := n.p
	for p != nil && n == p.r {
		n, p = p, p.p
	}
	return p
}

// prev is the in-order predecessor, nil if n is the minimum.
func (n *llrbNode[K, V]) prev() *llrbNode[K, V] {
	if n.l != nil {
		return n.l.max()
	}
	p := n.p
	for p != nil && n == p.l {
		n, p = p, p.p
	}
	return p
}

// clone the subtree rooting at n recursively, colors are preserved.
func (n *llrbNode[K, V]) clone(p *llrbNode[K, V]) *llrbNode[K, V] {
	if n == nil {
		return nil
	}
	c := &llrbNode[K, V]{key: n.key, val: n.val, p: p, red: n.red}
	c.l, c.r = n.l.clone(c), n.r.clone(c)
	return c
}

// LLRB is a left leaning red-black tree holding unique keys, each associated with a value.
// Red links only ever lean left, so the tree is equivalent to a 2-3 tree and its height is
// at most 2*log2(n+1).
// All keys are compared with the single LessFunc given to NewLLRB; keys a and b are the same key
// if neither is less than the other.
// Insert and Erase are recursive with depth O(log n); other receivers are iterative unless noted.
// The zero value is meaningless, use NewLLRB.
type LLRB[K, V any] struct {
	root *llrbNode[K, V]
	size uint
	less Go_Containers.LessFunc[K]
}

// NewLLRB returns an empty LLRB ordered by less.
func NewLLRB[K, V any](less Go_Containers.LessFunc[K]) *LLRB[K, V] {
	return &LLRB[K, V]{less: less}
}

// Size [OrderedTree.Size]
// Time: O(1)
func (u *LLRB[K, V]) Size() uint {
	return u.size
}

// MaxSize [OrderedTree.MaxSize]
func (u *LLRB[K, V]) MaxSize() uint {
	return Go_Containers.MaxLenOf[llrbNode[K, V]]()
}

// Less returns the ordering of u.
func (u *LLRB[K, V]) Less() Go_Containers.LessFunc[K] {
	return u.less
}

// Clear [OrderedTree.Clear]
func (u *LLRB[K, V]) Clear() {
	u.root, u.size = nil, 0
}

// Clone returns a deep copy of u with the same shape and colors. Recursive.
// Time: O(n)
func (u *LLRB[K, V]) Clone() *LLRB[K, V] {
	return &LLRB[K, V]{root: u.root.clone(nil), size: u.size, less: u.less}
}

// rotateLeft turns (h a (x b c)) into (x (h a b) c). x takes the color of h and h becomes red.
// The parent's child slot isn't touched, the caller stores the returned node.
func (u *LLRB[K, V]) rotateLeft(h *llrbNode[K, V]) *llrbNode[K, V] {
	x := h.r
	h.r = x.l
	if h.r != nil {
		h.r.p = h
	}
	x.l, x.p, h.p = h, h.p, x
	x.red, h.red = h.red, true
	return x
}

// rotateRight turns (h (x a b) c) into (x a (h b c)).
func (u *LLRB[K, V]) rotateRight(h *llrbNode[K, V]) *llrbNode[K, V] {
	x := h.l
	h.l = x.r
	if h.l != nil {
		h.l.p = h
	}
	x.r, x.p, h.p = h, h.p, x
	x.red, h.red = h.red, true
	return x
}

// flipColors of h and both its children, both children must exist.
func (u *LLRB[K, V]) flipColors(h *llrbNode[K, V]) {
	h.red = !h.red
	h.l.red = !h.l.red
	h.r.red = !h.r.red
}

// balance restores the left leaning property at h. The order of the 3 steps matters.
func (u *LLRB[K, V]) balance(h *llrbNode[K, V]) *llrbNode[K, V] {
	if h.r.isRed() && !h.l.isRed() {
		h = u.rotateLeft(h)
	}
	if h.l.isRed() && h.l.l.isRed() {
		h = u.rotateRight(h)
	}
	if h.l.isRed() && h.r.isRed() {
		u.flipColors(h)
	}
	return h
}

// moveRedLeft makes h.l or one of its children red, assuming h is red and both h.l and h.l.l are black.
func (u *LLRB[K, V]) moveRedLeft(h *llrbNode[K, V]) *llrbNode[K, V] {
	u.flipColors(h)
	if h.r.l.isRed() {
		h.r = u.rotateRight(h.r)
		h = u.rotateLeft(h)
		u.flipColors(h)
	}
	return h
}

// moveRedRight makes h.r or one of its children red, assuming h is red and both h.r and h.r.l are black.
func (u *LLRB[K, V]) moveRedRight(h *llrbNode[K, V]) *llrbNode[K, V] {
	u.flipColors(h)
	if h.l.l.isRed() {
		h = u.rotateRight(h)
		u.flipColors(h)
	}
	return h
}

// insert k to the subtree rooting at h recursively. p is the parent of h. Returns the new root of
// the subtree, the node holding k, and whether a new node was created.
func (u *LLRB[K, V]) insert(h, p *llrbNode[K, V], k K, v V) (root, at *llrbNode[K, V], inserted bool) {
	if h == nil {
		at = &llrbNode[K, V]{key: k, val: v, p: p, red: true}
		return at, at, true
	}
	if u.less(k, h.key) {
		h.l, at, inserted = u.insert(h.l, h, k, v)
	} else if u.less(h.key, k) {
		h.r, at, inserted = u.insert(h.r, h, k, v)
	} else {
		return h, h, false
	}
	return u.balance(h), at, inserted
}

// Insert k with value v. If k already exists, the existing value is left untouched and false is returned.
// The returned iterator points to the element with key k in both cases. Recursive.
// Time: O(log n)
func (u *LLRB[K, V]) Insert(k K, v V) (LLRBIter[K, V], bool) {
	var at *llrbNode[K, V]
	var inserted bool
	u.root, at, inserted = u.insert(u.root, nil, k, v)
	u.root.red = false
	if inserted {
		u.size++
	}
	return LLRBIter[K, V]{at, u}, inserted
}

// eraseMin removes the minimum of the subtree rooting at h recursively and returns the new root.
func (u *LLRB[K, V]) eraseMin(h *llrbNode[K, V]) *llrbNode[K, V] {
	if h.l == nil {
		h.detach()
		return nil
	}
	if !h.l.isRed() && !h.l.l.isRed() {
		h = u.moveRedLeft(h)
	}
	h.l = u.eraseMin(h.l)
	return u.balance(h)
}

// erase k from the subtree rooting at h recursively and returns the new root. k must be in the subtree.
// A node with a right child takes the key and value of its successor, and the successor's node is removed instead.
func (u *LLRB[K, V]) erase(h *llrbNode[K, V], k K) *llrbNode[K, V] {
	if u.less(k, h.key) {
		if !h.l.isRed() && !h.l.l.isRed() {
			h = u.moveRedLeft(h)
		}
		h.l = u.erase(h.l, k)
	} else {
		if h.l.isRed() {
			h = u.rotateRight(h)
		}
		if !u.less(h.key, k) && !u.less(k, h.key) && h.r == nil {
			h.detach()
			return nil
		}
		if !h.r.isRed() && !h.r.l.isRed() {
			h = u.moveRedRight(h)
		}
		if !u.less(h.key, k) && !u.less(k, h.key) {
			m := h.r.min()
			h.key, h.val = m.key, m.val
			h.r = u.eraseMin(h.r)
		} else {
			h.r = u.erase(h.r, k)
		}
	}
	return u.balance(h)
}

// owns reports whether n is linked into u.
func (u *LLRB[K, V]) owns(n *llrbNode[K, V]) bool {
	for n != nil && n.p != nil {
		n = n.p
	}
	return n != nil && n == u.root
}

// Erase the element at it. Erasing End, an iterator of another tree, or an already erased element does nothing.
// Besides it, iterators pointing to the in-order successor of it are also invalidated, as the successor's
// key and value move into the node of it. Recursive.
// Time: O(log n)
func (u *LLRB[K, V]) Erase(it LLRBIter[K, V]) {
	if it.t != u || !u.owns(it.n) {
		return
	}
	if !u.root.l.isRed() && !u.root.r.isRed() {
		u.root.red = true
	}
	if u.root = u.erase(u.root, it.n.key); u.root != nil {
		u.root.red = false
	}
	u.size--
}

func (u *LLRB[K, V]) find(k K) *llrbNode[K, V] {
	for cur := u.root; cur != nil; {
		if u.less(k, cur.key) {
			cur = cur.l
		} else if u.less(cur.key, k) {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Find the element with key k, End if there is none.
// Time: O(log n)
func (u *LLRB[K, V]) Find(k K) LLRBIter[K, V] {
	return LLRBIter[K, V]{u.find(k), u}
}

// LowerBound is the first element whose key isn't less than k.
// Time: O(log n)
func (u *LLRB[K, V]) LowerBound(k K) LLRBIter[K, V] {
	var res *llrbNode[K, V]
	for cur := u.root; cur != nil; {
		if u.less(cur.key, k) {
			cur = cur.r
		} else {
			res, cur = cur, cur.l
		}
	}
	return LLRBIter[K, V]{res, u}
}

// UpperBound is the first element whose key is greater than k.
// Time: O(log n)
func (u *LLRB[K, V]) UpperBound(k K) LLRBIter[K, V] {
	var res *llrbNode[K, V]
	for cur := u.root; cur != nil; {
		if u.less(k, cur.key) {
			res, cur = cur, cur.l
		} else {
			cur = cur.r
		}
	}
	return LLRBIter[K, V]{res, u}
}

// Begin is the element with the smallest key, End if u is empty.
// Time: O(log n)
func (u *LLRB[K, V]) Begin() LLRBIter[K, V] {
	if u.root == nil {
		return u.End()
	}
	return LLRBIter[K, V]{u.root.min(), u}
}

// End is the position after the last element.
func (u *LLRB[K, V]) End() LLRBIter[K, V] {
	return LLRBIter[K, V]{nil, u}
}

func (u *LLRB[K, V]) minDepth(c *llrbNode[K, V], cd uint) uint {
	if c == nil {
		return cd
	}
	return min(u.minDepth(c.l, cd+1), u.minDepth(c.r, cd+1))
}

// MinDepth [OrderedTree.MinDepth]. Recursive.
func (u *LLRB[K, V]) MinDepth() uint {
	return u.minDepth(u.root, 0)
}

func (u *LLRB[K, V]) maxDepth(c *llrbNode[K, V], cd uint) uint {
	if c == nil {
		return cd
	}
	return max(u.maxDepth(c.l, cd+1), u.maxDepth(c.r, cd+1))
}

// MaxDepth [OrderedTree.MaxDepth]. Recursive.
func (u *LLRB[K, V]) MaxDepth() uint {
	return u.maxDepth(u.root, 0)
}

// check the subtree rooting at x recursively. Returns its size and black height, ok is false on the first violation.
func (u *LLRB[K, V]) check(x *llrbNode[K, V]) (sz uint, bh int, ok bool) {
	if x == nil {
		return 0, 0, true
	}
	if l := x.l; l != nil && (l.p != x || !u.less(l.key, x.key)) {
		return
	}
	if r := x.r; r != nil && (r.p != x || !u.less(x.key, r.key)) {
		return
	}
	if x.r.isRed() || x.red && x.l.isRed() {
		return
	}
	lsz, lbh, lok := u.check(x.l)
	rsz, rbh, rok := u.check(x.r)
	if !lok || !rok || lbh != rbh {
		return
	}
	if !x.red {
		lbh++
	}
	return lsz + rsz + 1, lbh, true
}

// Corrupt [OrderedTree.Corrupt]. Besides the local properties, it also walks the whole tree with
// iterators to make sure the keys are strictly increasing. Recursive.
// Time: O(n)
func (u *LLRB[K, V]) Corrupt() bool {
	if u.root == nil {
		return u.size != 0
	}
	if u.root.red || u.root.p != nil {
		return true
	}
	if sz, _, ok := u.check(u.root); !ok || sz != u.size {
		return true
	}
	var walked uint = 1
	for prev, cur := u.Begin(), u.Begin().Next(); !cur.IsEnd(); prev, cur = cur, cur.Next() {
		if !u.less(prev.Key(), cur.Key()) {
			return true
		}
		walked++
	}
	return walked != u.size
}
