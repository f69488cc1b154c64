package monad

import "iter"

// Variant is implemented by every value that may or may not carry a payload
type Variant interface {
	// IsSome returns true for Some and Right
	IsSome() bool
	// Payload returns the carried value and whether it is present
	Payload() (any, bool)
}

// Iterable is the capability a payload declares to be flattened by InnerIt
type Iterable[V any] interface {
	// All returns a restartable sequence over the elements
	All() iter.Seq[V]
}

