/*
Package Trees implements the balanced binary search trees backing the ordered containers.

# Disciplines
Two independent balancing disciplines are offered, they share no node types and no rebalancing code:
  - LLRB is a left leaning red-black tree without a sentinel. Keys are unique. Insertion and deletion
    rebalance on the return path of a single recursive descent using rotateLeft, rotateRight and flipColors.
  - RBTree is a classic red-black tree with a per-tree sentinel acting as every leaf and as the parent
    of the root. Values may repeat. Insertion and deletion rebalance bottom-up after the plain BST operation.

# Iterators
Iterators are small comparable values that refer to a node and its tree. They stay valid across insertions
and across erasure of unrelated elements. Using an iterator after its element was erased is a precondition
violation; the trees detach erased nodes so such an iterator tends to end early, but the result is undefined.

None of the types here are safe for concurrent use.
*/
package Trees

// OrderedTree represents the behaviors shared by LLRB and RBTree, both of which are ordered
// search trees of O(log n) height.
// Receivers named like the Tree interfaces of other packages follow the same conventions, depth
// related receivers are recursive and meant for tests and diagnostics.
type OrderedTree interface {
	//Size of the tree.
	Size() uint
	//MaxSize is the theoretical upper bound of Size given the address space.
	MaxSize() uint
	//Clear removes all elements. O(1), nodes are left to the garbage collector.
	Clear()
	//MinDepth is the depth of the shallowest leaf, 0 for an empty tree.
	MinDepth() uint
	//MaxDepth is the depth of the deepest leaf, 0 for an empty tree.
	MaxDepth() uint
	//Corrupt returns whether the tree violates ordering, linking or the balancing properties
	//of that specific implementation. It should never return true for any sequence of valid operations.
	Corrupt() bool
	//Dump renders the shape of the tree for debugging.
	Dump() string
}

var (
	_ OrderedTree = (*LLRB[int, int])(nil)
	_ OrderedTree = (*RBTree[int])(nil)
)
