package Go_Containers

import (
	"math"
	"unsafe"
)

// MaxLen is the largest number of objects of size elemSize that can live in the address space
// at once. Zero sized objects are treated as 1 byte.
func MaxLen(elemSize uintptr) uint {
	if elemSize == 0 {
		elemSize = 1
	}
	return uint(math.MaxInt) / uint(elemSize)
}

// MaxLenOf is MaxLen(unsafe.Sizeof(T)).
func MaxLenOf[T any]() uint {
	return MaxLen(unsafe.Sizeof(*new(T)))
}
