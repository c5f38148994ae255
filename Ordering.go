package Go_Containers

import "golang.org/x/exp/constraints"

// LessFunc is the strict weak ordering every container here is built on.
// Two values a and b are considered equal when neither less(a, b) nor less(b, a).
type LessFunc[T any] func(a, b T) bool

// Less returns the LessFunc of the natural ordering of T.
func Less[T constraints.Ordered]() LessFunc[T] {
	return func(a, b T) bool {
		return a < b
	}
}

// Equal reports whether a and b are equivalent under less.
func Equal[T any](less LessFunc[T], a, b T) bool {
	return !less(a, b) && !less(b, a)
}

// Pair is a key value pair, used for constructing and bulk inserting maps.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// MakePair is a shorthand for the struct literal.
func MakePair[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{k, v}
}
