package Trees

import (
	"fmt"

	"github.com/xlab/treeprint"
)

const emptyDump = "<empty>"

func (c color) String() string {
	if c == red {
		return "R"
	}
	return "B"
}

// dump adds the children of n to br. A missing child is shown as "·" only when its sibling exists.
func (n *llrbNode[K, V]) dump(br treeprint.Tree) {
	if n.l == nil && n.r == nil {
		return
	}
	for _, c := range [2]*llrbNode[K, V]{n.l, n.r} {
		if c == nil {
			br.AddNode("·")
		} else if c.l == nil && c.r == nil {
			br.AddMetaNode(color(c.red), fmt.Sprintf("%v: %v", c.key, c.val))
		} else {
			c.dump(br.AddMetaBranch(color(c.red), fmt.Sprintf("%v: %v", c.key, c.val)))
		}
	}
}

// Dump [OrderedTree.Dump]. Each node is printed as "[color]  key: value", left child first. Recursive.
func (u *LLRB[K, V]) Dump() string {
	if u.root == nil {
		return treeprint.NewWithRoot(emptyDump).String()
	}
	tr := treeprint.NewWithRoot(fmt.Sprintf("[%v]  %v: %v", color(u.root.red), u.root.key, u.root.val))
	u.root.dump(tr)
	return tr.String()
}

func (u *RBTree[T]) dump(n *rbNode[T], br treeprint.Tree) {
	if n.l == u.nilPtr && n.r == u.nilPtr {
		return
	}
	for _, c := range [2]*rbNode[T]{n.l, n.r} {
		if c == u.nilPtr {
			br.AddNode("·")
		} else if c.l == u.nilPtr && c.r == u.nilPtr {
			br.AddMetaNode(c.c, fmt.Sprint(c.v))
		} else {
			u.dump(c, br.AddMetaBranch(c.c, fmt.Sprint(c.v)))
		}
	}
}

// Dump [OrderedTree.Dump]. Each node is printed as "[color]  value", left child first, the sentinel as "·". Recursive.
func (u *RBTree[T]) Dump() string {
	if u.root == u.nilPtr {
		return treeprint.NewWithRoot(emptyDump).String()
	}
	tr := treeprint.NewWithRoot(fmt.Sprintf("[%v]  %v", u.root.c, u.root.v))
	u.dump(u.root, tr)
	return tr.String()
}
