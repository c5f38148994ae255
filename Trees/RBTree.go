package Trees

import (
	Go_Containers "github.com/g-m-twostay/go-containers"
)

type color bool

const (
	red   color = true
	black color = false
)

// A node in the RBTree.
// count is the number of equal values the node stands for. Every Insert creates its own node, so it's
// always 1 for now; Count still sums it instead of counting nodes.
type rbNode[T any] struct {
	v       T
	l, r, p *rbNode[T]
	c       color
	count   uint
}

// RBTree is a red-black tree that allows repeated values. Equal values are kept contiguous in
// insertion order, a later insertion goes to the right of the earlier ones.
// Instead of nil, every absent child and the parent of the root is nilPtr, a black sentinel whose
// links initially point to itself. nilPtr is compared by identity and is also what End points to.
// The zero value is meaningless, use NewRBTree.
type RBTree[T any] struct {
	root   *rbNode[T]
	nilPtr *rbNode[T]
	size   uint
	less   Go_Containers.LessFunc[T]
}

// NewRBTree returns an empty RBTree ordered by less.
func NewRBTree[T any](less Go_Containers.LessFunc[T]) *RBTree[T] {
	z := &rbNode[T]{c: black}
	z.l, z.r, z.p = z, z, z
	return &RBTree[T]{root: z, nilPtr: z, less: less}
}

// Size [OrderedTree.Size]
// Time: O(1)
func (u *RBTree[T]) Size() uint {
	return u.size
}

// MaxSize [OrderedTree.MaxSize]
func (u *RBTree[T]) MaxSize() uint {
	return Go_Containers.MaxLenOf[rbNode[T]]()
}

// Less returns the ordering of u.
func (u *RBTree[T]) Less() Go_Containers.LessFunc[T] {
	return u.less
}

// Clear [OrderedTree.Clear]
func (u *RBTree[T]) Clear() {
	u.root, u.size = u.nilPtr, 0
}

func (u *RBTree[T]) cloneNode(n, p, z *rbNode[T]) *rbNode[T] {
	if n == u.nilPtr {
		return z
	}
	c := &rbNode[T]{v: n.v, p: p, c: n.c, count: n.count}
	c.l, c.r = u.cloneNode(n.l, c, z), u.cloneNode(n.r, c, z)
	return c
}

// Clone returns a deep copy of u with its own sentinel, keeping the shape, colors and counts. Recursive.
// Time: O(n)
func (u *RBTree[T]) Clone() *RBTree[T] {
	c := NewRBTree[T](u.less)
	c.root, c.size = u.cloneNode(u.root, c.nilPtr, c.nilPtr), u.size
	return c
}

func (u *RBTree[T]) minNode(n *rbNode[T]) *rbNode[T] {
	if n == u.nilPtr {
		return n
	}
	for n.l != u.nilPtr {
		n = n.l
	}
	return n
}

func (u *RBTree[T]) maxNode(n *rbNode[T]) *rbNode[T] {
	if n == u.nilPtr {
		return n
	}
	for n.r != u.nilPtr {
		n = n.r
	}
	return n
}

// next is the in-order successor of n, nilPtr if n is the maximum.
func (u *RBTree[T]) next(n *rbNode[T]) *rbNode[T] {
	if n.r != u.nilPtr {
		return u.minNode(n.r)
	}
	p := n.p
	for p != u.nilPtr && n == p.r {
		n, p = p, p.p
	}
	return p
}

// prev is the in-order predecessor of n, nilPtr if n is the minimum.
func (u *RBTree[T]) prev(n *rbNode[T]) *rbNode[T] {
	if n.l != u.nilPtr {
		return u.maxNode(n.l)
	}
	p := n.p
	for p != u.nilPtr && n == p.l {
		n, p = p, p.p
	}
	return p
}

func (u *RBTree[T]) rotateLeft(x *rbNode[T]) {
	y := x.r
	x.r = y.l
	if y.l != u.nilPtr {
		y.l.p = x
	}
	y.p = x.p
	if x.p == u.nilPtr {
		u.root = y
	} else if x == x.p.l {
		x.p.l = y
	} else {
		x.p.r = y
	}
	y.l = x
	x.p = y
}

func (u *RBTree[T]) rotateRight(y *rbNode[T]) {
	x := y.l
	y.l = x.r
	if x.r != u.nilPtr {
		x.r.p = y
	}
	x.p = y.p
	if y.p == u.nilPtr {
		u.root = x
	} else if y == y.p.r {
		y.p.r = x
	} else {
		y.p.l = x
	}
	x.r = y
	y.p = x
}

// insertFixup restores the red-black properties after z was attached as a red leaf.
func (u *RBTree[T]) insertFixup(z *rbNode[T]) {
	for z.p.c == red {
		if gp := z.p.p; z.p == gp.l {
			if y := gp.r; y.c == red {
				z.p.c, y.c, gp.c = black, black, red
				z = gp
			} else {
				if z == z.p.r {
					z = z.p
					u.rotateLeft(z)
				}
				z.p.c, z.p.p.c = black, red
				u.rotateRight(z.p.p)
			}
		} else {
			if y := gp.l; y.c == red {
				z.p.c, y.c, gp.c = black, black, red
				z = gp
			} else {
				if z == z.p.l {
					z = z.p
					u.rotateRight(z)
				}
				z.p.c, z.p.p.c = black, red
				u.rotateLeft(z.p.p)
			}
		}
	}
	u.root.c = black
}

// Insert v, which is placed after all values equal to it. Always succeeds.
// Time: O(log n)
func (u *RBTree[T]) Insert(v T) RBIter[T] {
	y, x := u.nilPtr, u.root
	for x != u.nilPtr {
		y = x
		if u.less(v, x.v) {
			x = x.l
		} else {
			x = x.r
		}
	}
	z := &rbNode[T]{v: v, l: u.nilPtr, r: u.nilPtr, p: y, c: red, count: 1}
	if y == u.nilPtr {
		u.root = z
	} else if u.less(v, y.v) {
		y.l = z
	} else {
		y.r = z
	}
	u.insertFixup(z)
	u.size++
	return RBIter[T]{z, u}
}

// transplant replaces the subtree rooting at a with the one rooting at b. b.p is written even if b is nilPtr.
func (u *RBTree[T]) transplant(a, b *rbNode[T]) {
	if a.p == u.nilPtr {
		u.root = b
	} else if a == a.p.l {
		a.p.l = b
	} else {
		a.p.r = b
	}
	b.p = a.p
}

// eraseFixup restores the black height after a black node was unlinked above x.
func (u *RBTree[T]) eraseFixup(x *rbNode[T]) {
	for x != u.root && x.c == black {
		if x == x.p.l {
			w := x.p.r
			if w.c == red {
				w.c, x.p.c = black, red
				u.rotateLeft(x.p)
				w = x.p.r
			}
			if w.l.c == black && w.r.c == black {
				w.c = red
				x = x.p
			} else {
				if w.r.c == black {
					w.l.c, w.c = black, red
					u.rotateRight(w)
					w = x.p.r
				}
				w.c, x.p.c, w.r.c = x.p.c, black, black
				u.rotateLeft(x.p)
				x = u.root
			}
		} else {
			w := x.p.l
			if w.c == red {
				w.c, x.p.c = black, red
				u.rotateRight(x.p)
				w = x.p.l
			}
			if w.r.c == black && w.l.c == black {
				w.c = red
				x = x.p
			} else {
				if w.l.c == black {
					w.r.c, w.c = black, red
					u.rotateLeft(w)
					w = x.p.l
				}
				w.c, x.p.c, w.l.c = x.p.c, black, black
				u.rotateRight(x.p)
				x = u.root
			}
		}
	}
	x.c = black
}

// owns reports whether n is linked into u.
func (u *RBTree[T]) owns(n *rbNode[T]) bool {
	if n == nil || n == u.nilPtr {
		return false
	}
	for n.p != u.nilPtr {
		n = n.p
	}
	return n == u.root
}

// Erase the element at it. Erasing End, an iterator of another tree, or an already erased element does nothing.
// A node with 2 children is replaced by its successor node, so only iterators to it are invalidated.
// Time: O(log n)
func (u *RBTree[T]) Erase(it RBIter[T]) {
	z := it.n
	if it.t != u || !u.owns(z) {
		return
	}
	y, yc := z, z.c
	var x *rbNode[T]
	if z.l == u.nilPtr {
		x = z.r
		u.transplant(z, z.r)
	} else if z.r == u.nilPtr {
		x = z.l
		u.transplant(z, z.l)
	} else {
		y = u.minNode(z.r)
		yc, x = y.c, y.r
		if y.p == z {
			x.p = y
		} else {
			u.transplant(y, y.r)
			y.r = z.r
			y.r.p = y
		}
		u.transplant(z, y)
		y.l = z.l
		y.l.p = y
		y.c = z.c
	}
	if yc == black {
		u.eraseFixup(x)
	}
	u.nilPtr.p = u.nilPtr
	z.l, z.r, z.p = u.nilPtr, u.nilPtr, u.nilPtr
	u.size--
}

func (u *RBTree[T]) lowerBound(k T) *rbNode[T] {
	res := u.nilPtr
	for cur := u.root; cur != u.nilPtr; {
		if u.less(cur.v, k) {
			cur = cur.r
		} else {
			res, cur = cur, cur.l
		}
	}
	return res
}

func (u *RBTree[T]) upperBound(k T) *rbNode[T] {
	res := u.nilPtr
	for cur := u.root; cur != u.nilPtr; {
		if u.less(k, cur.v) {
			res, cur = cur, cur.l
		} else {
			cur = cur.r
		}
	}
	return res
}

// LowerBound is the first element not less than k.
// Time: O(log n)
func (u *RBTree[T]) LowerBound(k T) RBIter[T] {
	return RBIter[T]{u.lowerBound(k), u}
}

// UpperBound is the first element greater than k.
// Time: O(log n)
func (u *RBTree[T]) UpperBound(k T) RBIter[T] {
	return RBIter[T]{u.upperBound(k), u}
}

// EqualRange is [LowerBound(k), UpperBound(k)), the span of all elements equal to k.
// Time: O(log n)
func (u *RBTree[T]) EqualRange(k T) (RBIter[T], RBIter[T]) {
	return u.LowerBound(k), u.UpperBound(k)
}

// Find the first element equal to k, End if there is none.
// Time: O(log n)
func (u *RBTree[T]) Find(k T) RBIter[T] {
	if n := u.lowerBound(k); n != u.nilPtr && !u.less(k, n.v) {
		return RBIter[T]{n, u}
	}
	return u.End()
}

// Count the elements equal to k.
// Time: O(log n + Count(k))
func (u *RBTree[T]) Count(k T) (c uint) {
	for n := u.lowerBound(k); n != u.nilPtr && !u.less(k, n.v); n = u.next(n) {
		c += n.count
	}
	return
}

// Begin is the smallest element, End if u is empty.
// Time: O(log n)
func (u *RBTree[T]) Begin() RBIter[T] {
	return RBIter[T]{u.minNode(u.root), u}
}

// End is the position after the last element.
func (u *RBTree[T]) End() RBIter[T] {
	return RBIter[T]{u.nilPtr, u}
}

func (u *RBTree[T]) minDepth(c *rbNode[T], cd uint) uint {
	if c == u.nilPtr {
		return cd
	}
	return min(u.minDepth(c.l, cd+1), u.minDepth(c.r, cd+1))
}

// MinDepth [OrderedTree.MinDepth]. Recursive.
func (u *RBTree[T]) MinDepth() uint {
	return u.minDepth(u.root, 0)
}

func (u *RBTree[T]) maxDepth(c *rbNode[T], cd uint) uint {
	if c == u.nilPtr {
		return cd
	}
	return max(u.maxDepth(c.l, cd+1), u.maxDepth(c.r, cd+1))
}

// MaxDepth [OrderedTree.MaxDepth]. Recursive.
func (u *RBTree[T]) MaxDepth() uint {
	return u.maxDepth(u.root, 0)
}

// check the subtree rooting at x recursively. Returns its size and black height, ok is false on the first violation.
func (u *RBTree[T]) check(x *rbNode[T]) (sz uint, bh int, ok bool) {
	if x == u.nilPtr {
		return 0, 1, true
	}
	if l := x.l; l != u.nilPtr && (l.p != x || u.less(x.v, l.v)) {
		return
	}
	if r := x.r; r != u.nilPtr && (r.p != x || u.less(r.v, x.v)) {
		return
	}
	if x.c == red && (x.l.c == red || x.r.c == red) {
		return
	}
	if x.count == 0 {
		return
	}
	lsz, lbh, lok := u.check(x.l)
	rsz, rbh, rok := u.check(x.r)
	if !lok || !rok || lbh != rbh {
		return
	}
	if x.c == black {
		lbh++
	}
	return lsz + rsz + 1, lbh, true
}

// Corrupt [OrderedTree.Corrupt]. Also checks the sentinel and walks the whole tree with iterators
// to make sure the values never decrease. Recursive.
// Time: O(n)
func (u *RBTree[T]) Corrupt() bool {
	if z := u.nilPtr; z.c != black || z.l != z || z.r != z || z.p != z {
		return true
	}
	if u.root == u.nilPtr {
		return u.size != 0
	}
	if u.root.c != black || u.root.p != u.nilPtr {
		return true
	}
	if sz, _, ok := u.check(u.root); !ok || sz != u.size {
		return true
	}
	var walked uint = 1
	for prev, cur := u.Begin(), u.Begin().Next(); !cur.IsEnd(); prev, cur = cur, cur.Next() {
		if u.less(cur.Value(), prev.Value()) {
			return true
		}
		walked++
	}
	return walked != u.size
}
