/*
Package Maps implements ordered maps with unique keys.

# Ordering
TreeMap keeps its keys sorted by a strict less-than function; keys a and b are the same key when neither
is less than the other. New uses the natural ordering of constraints.Ordered types, NewFunc accepts any
ordering.

# Iterators
Positions are Trees.LLRBIter values. Erasing an element invalidates iterators to it and to its in-order
successor; every other iterator stays valid across all operations, including Swap.

# Usage
A TreeMap isn't safe for concurrent use. Its zero value is meaningless, use one of the constructors.
*/
package Maps

import (
	"fmt"
	"iter"
	"strings"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Trees"
	"golang.org/x/exp/constraints"
)

// TreeMap is a map from unique keys to values, backed by a left leaning red-black tree.
type TreeMap[K, V any] struct {
	t *Trees.LLRB[K, V]
}

// Iter is a position in a TreeMap.
type Iter[K, V any] = Trees.LLRBIter[K, V]

// InsertResult is the outcome of inserting one pair.
type InsertResult[K, V any] struct {
	It       Iter[K, V]
	Inserted bool
}

// New returns an empty TreeMap ordered by the natural ordering of K.
func New[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return NewFunc[K, V](Go_Containers.Less[K]())
}

// NewFunc returns an empty TreeMap ordered by less.
func NewFunc[K, V any](less Go_Containers.LessFunc[K]) *TreeMap[K, V] {
	return &TreeMap[K, V]{Trees.NewLLRB[K, V](less)}
}

// From builds a TreeMap of the natural ordering from pairs. If a key repeats, the first pair wins.
func From[K constraints.Ordered, V any](pairs ...Go_Containers.Pair[K, V]) *TreeMap[K, V] {
	return FromFunc(Go_Containers.Less[K](), pairs...)
}

// FromFunc is From with an arbitrary ordering.
func FromFunc[K, V any](less Go_Containers.LessFunc[K], pairs ...Go_Containers.Pair[K, V]) *TreeMap[K, V] {
	m := NewFunc[K, V](less)
	for _, p := range pairs {
		m.t.Insert(p.Key, p.Value)
	}
	return m
}

// Clone returns a deep copy of m.
// Time: O(n)
func (m *TreeMap[K, V]) Clone() *TreeMap[K, V] {
	return &TreeMap[K, V]{m.t.Clone()}
}

// Move transfers all elements of m to a new TreeMap in O(1). m is left empty and reusable, iterators
// of m now belong to the returned TreeMap.
func (m *TreeMap[K, V]) Move() *TreeMap[K, V] {
	n := &TreeMap[K, V]{m.t}
	m.t = Trees.NewLLRB[K, V](n.t.Less())
	return n
}

// Empty reports whether m has no elements.
func (m *TreeMap[K, V]) Empty() bool {
	return m.t.Size() == 0
}

// Size is the number of elements.
func (m *TreeMap[K, V]) Size() uint {
	return m.t.Size()
}

// MaxSize is the largest number of elements m could hold given the address space.
func (m *TreeMap[K, V]) MaxSize() uint {
	return m.t.MaxSize()
}

// Find the element with key k, End if there is none.
func (m *TreeMap[K, V]) Find(k K) Iter[K, V] {
	return m.t.Find(k)
}

// Contains reports whether key k exists.
func (m *TreeMap[K, V]) Contains(k K) bool {
	return !m.t.Find(k).IsEnd()
}

// LowerBound is the first element whose key isn't less than k.
func (m *TreeMap[K, V]) LowerBound(k K) Iter[K, V] {
	return m.t.LowerBound(k)
}

// UpperBound is the first element whose key is greater than k.
func (m *TreeMap[K, V]) UpperBound(k K) Iter[K, V] {
	return m.t.UpperBound(k)
}

// At returns the value of key k, or a *KeyNotFoundError if k doesn't exist.
func (m *TreeMap[K, V]) At(k K) (V, error) {
	if it := m.t.Find(k); !it.IsEnd() {
		return it.Value(), nil
	}
	return *new(V), &KeyNotFoundError[K]{k}
}

// Index returns the address of the value of key k, inserting the zero value first if k doesn't exist.
// The address is valid until k or the key before it is erased.
func (m *TreeMap[K, V]) Index(k K) *V {
	it, _ := m.t.Insert(k, *new(V))
	return it.ValuePtr()
}

// Insert k with value v if k doesn't exist. Otherwise nothing is changed and false is returned.
// The iterator points to the element with key k in both cases.
func (m *TreeMap[K, V]) Insert(k K, v V) (Iter[K, V], bool) {
	return m.t.Insert(k, v)
}

// InsertPair is Insert(p.Key, p.Value).
func (m *TreeMap[K, V]) InsertPair(p Go_Containers.Pair[K, V]) (Iter[K, V], bool) {
	return m.t.Insert(p.Key, p.Value)
}

// InsertOrAssign inserts k with value v, or assigns v to the existing key k. Returns true if k was inserted.
func (m *TreeMap[K, V]) InsertOrAssign(k K, v V) (Iter[K, V], bool) {
	it, inserted := m.t.Insert(k, v)
	if !inserted {
		it.SetValue(v)
	}
	return it, inserted
}

// InsertMany inserts the pairs in order, reporting the result of each.
func (m *TreeMap[K, V]) InsertMany(pairs ...Go_Containers.Pair[K, V]) []InsertResult[K, V] {
	res := make([]InsertResult[K, V], len(pairs))
	for i, p := range pairs {
		res[i].It, res[i].Inserted = m.t.Insert(p.Key, p.Value)
	}
	return res
}

// Erase the element at it. Erasing End, a position of another map, or an erased element does nothing.
func (m *TreeMap[K, V]) Erase(it Iter[K, V]) {
	m.t.Erase(it)
}

// Delete key k, returning whether it existed.
func (m *TreeMap[K, V]) Delete(k K) bool {
	if it := m.t.Find(k); !it.IsEnd() {
		m.t.Erase(it)
		return true
	}
	return false
}

// Clear removes all elements.
func (m *TreeMap[K, V]) Clear() {
	m.t.Clear()
}

// Swap the contents of m and other in O(1). Iterators follow their elements.
func (m *TreeMap[K, V]) Swap(other *TreeMap[K, V]) {
	m.t, other.t = other.t, m.t
}

// Merge moves every element of other whose key doesn't exist in m into m. Elements with colliding keys
// stay in other.
// Time: O(k log n) where k=other.Size().
func (m *TreeMap[K, V]) Merge(other *TreeMap[K, V]) {
	if m == other {
		return
	}
	var moved []K
	for it := other.t.Begin(); !it.IsEnd(); it = it.Next() {
		if _, inserted := m.t.Insert(it.Key(), it.Value()); inserted {
			moved = append(moved, it.Key())
		}
	}
	for _, k := range moved {
		other.t.Erase(other.t.Find(k))
	}
}

// Begin is the element with the smallest key, End if m is empty.
func (m *TreeMap[K, V]) Begin() Iter[K, V] {
	return m.t.Begin()
}

// End is the position after the last element.
func (m *TreeMap[K, V]) End() Iter[K, V] {
	return m.t.End()
}

// All yields the elements in ascending key order. m must not be modified during the iteration.
func (m *TreeMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.t.Begin(); !it.IsEnd(); it = it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Backward yields the elements in descending key order. m must not be modified during the iteration.
func (m *TreeMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.t.End().Prev(); !it.IsEnd(); it = it.Prev() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys yields the keys in ascending order.
func (m *TreeMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// String formats m like fmt formats a Go map: map[k1:v1 k2:v2].
func (m *TreeMap[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte(']')
	return b.String()
}

// Dump renders the underlying tree, see Trees.LLRB.Dump.
func (m *TreeMap[K, V]) Dump() string {
	return m.t.Dump()
}
