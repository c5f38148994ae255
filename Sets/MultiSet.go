package Sets

import (
	"fmt"
	"iter"
	"strings"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Trees"
	"golang.org/x/exp/constraints"
)

// MultiSet is a sorted collection that allows duplicates, backed by a red-black tree with a sentinel.
type MultiSet[T any] struct {
	t *Trees.RBTree[T]
}

// Iter is a position in a MultiSet.
type Iter[T any] = Trees.RBIter[T]

// New returns an empty MultiSet ordered by the natural ordering of T.
func New[T constraints.Ordered]() *MultiSet[T] {
	return NewFunc[T](Go_Containers.Less[T]())
}

// NewFunc returns an empty MultiSet ordered by less.
func NewFunc[T any](less Go_Containers.LessFunc[T]) *MultiSet[T] {
	return &MultiSet[T]{Trees.NewRBTree[T](less)}
}

// From builds a MultiSet of the natural ordering holding every element of vs.
func From[T constraints.Ordered](vs ...T) *MultiSet[T] {
	return FromFunc(Go_Containers.Less[T](), vs...)
}

// FromFunc is From with an arbitrary ordering.
func FromFunc[T any](less Go_Containers.LessFunc[T], vs ...T) *MultiSet[T] {
	s := NewFunc[T](less)
	for _, v := range vs {
		s.t.Insert(v)
	}
	return s
}

// Clone returns a deep copy of s.
// Time: O(n)
func (s *MultiSet[T]) Clone() *MultiSet[T] {
	return &MultiSet[T]{s.t.Clone()}
}

// Move transfers all elements of s to a new MultiSet in O(1). s is left empty and reusable.
func (s *MultiSet[T]) Move() *MultiSet[T] {
	n := &MultiSet[T]{s.t}
	s.t = Trees.NewRBTree[T](n.t.Less())
	return n
}

func (s *MultiSet[T]) Empty() bool {
	return s.t.Size() == 0
}

func (s *MultiSet[T]) Size() uint {
	return s.t.Size()
}

func (s *MultiSet[T]) MaxSize() uint {
	return s.t.MaxSize()
}

// Find the first element equal to v, End if there is none.
func (s *MultiSet[T]) Find(v T) Iter[T] {
	return s.t.Find(v)
}

func (s *MultiSet[T]) Contains(v T) bool {
	return !s.t.Find(v).IsEnd()
}

// Count the elements equal to v.
// Time: O(log n + k) where k is the result.
func (s *MultiSet[T]) Count(v T) uint {
	return s.t.Count(v)
}

// LowerBound is the first element not less than v.
func (s *MultiSet[T]) LowerBound(v T) Iter[T] {
	return s.t.LowerBound(v)
}

// UpperBound is the first element greater than v.
func (s *MultiSet[T]) UpperBound(v T) Iter[T] {
	return s.t.UpperBound(v)
}

// EqualRange is [LowerBound(v), UpperBound(v)).
func (s *MultiSet[T]) EqualRange(v T) (Iter[T], Iter[T]) {
	return s.t.EqualRange(v)
}

// Insert v after all elements equal to it. Always succeeds.
func (s *MultiSet[T]) Insert(v T) Iter[T] {
	return s.t.Insert(v)
}

// InsertMany inserts vs in order and returns the position of each.
func (s *MultiSet[T]) InsertMany(vs ...T) []Iter[T] {
	its := make([]Iter[T], len(vs))
	for i, v := range vs {
		its[i] = s.t.Insert(v)
	}
	return its
}

// Erase the element at it. Erasing End, a position of another set, or an erased element does nothing.
func (s *MultiSet[T]) Erase(it Iter[T]) {
	s.t.Erase(it)
}

// EraseAll removes every element equal to v and returns how many there were.
func (s *MultiSet[T]) EraseAll(v T) uint {
	var n uint
	for lo, hi := s.t.EqualRange(v); lo != hi; n++ {
		next := lo.Next()
		s.t.Erase(lo)
		lo = next
	}
	return n
}

func (s *MultiSet[T]) Clear() {
	s.t.Clear()
}

// Swap the contents of s and other in O(1). Iterators follow their elements.
func (s *MultiSet[T]) Swap(other *MultiSet[T]) {
	s.t, other.t = other.t, s.t
}

// Merge moves every element of other into s, leaving other empty. Equal elements from other come after
// the ones already in s.
// Time: O(k log(n+k)) where k=other.Size().
func (s *MultiSet[T]) Merge(other *MultiSet[T]) {
	if s == other {
		return
	}
	for it := other.t.Begin(); !it.IsEnd(); it = it.Next() {
		s.t.Insert(it.Value())
	}
	other.t.Clear()
}

// Begin is the smallest element, End if s is empty.
func (s *MultiSet[T]) Begin() Iter[T] {
	return s.t.Begin()
}

// End is the position after the last element.
func (s *MultiSet[T]) End() Iter[T] {
	return s.t.End()
}

// All yields the elements in ascending order. s must not be modified during the iteration.
func (s *MultiSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := s.t.Begin(); !it.IsEnd(); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward yields the elements in descending order.
func (s *MultiSet[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := s.t.End().Prev(); !it.IsEnd(); it = it.Prev() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// String formats s like fmt formats a slice: [v1 v2 v2].
func (s *MultiSet[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for it := s.t.Begin(); !it.IsEnd(); it = it.Next() {
		fmt.Fprint(&b, it.Value())
		if !it.Next().IsEnd() {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Dump renders the underlying tree, see Trees.RBTree.Dump.
func (s *MultiSet[T]) Dump() string {
	return s.t.Dump()
}
