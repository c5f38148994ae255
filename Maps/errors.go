package Maps

import "fmt"

// KeyNotFoundError is returned by TreeMap.At when the key doesn't exist.
type KeyNotFoundError[K any] struct {
	Key K
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("key not found: %v", e.Key)
}
