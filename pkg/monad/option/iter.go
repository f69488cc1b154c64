package option

import (
	"iter"

	"github.com/ib-77/maybe/pkg/monad"
)

// All returns a sequence yielding the payload of a Some once and nothing for
// None. Every call builds a new sequence, so it can be ranged over again.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

// InnerIt exposes the sequence of an iterable payload. The payload counts as
// iterable when it implements monad.Iterable[V], is an iter.Seq[V] (or the
// equivalent func type) or a []V. Anything else, and None, yields nothing.
// Strings and maps are not iterable here: wrap them with slices.Values,
// maps.Keys or a type implementing monad.Iterable[V] instead.
func InnerIt[V, T any](o Option[T]) iter.Seq[V] {
	if !o.some {
		return empty[V]
	}
	return innerOf[V](o.value)
}

// Flatten is InnerIt for payloads known at compile time to be iterable
func Flatten[V any, T monad.Iterable[V]](o Option[T]) iter.Seq[V] {
	if !o.some {
		return empty[V]
	}
	return o.value.All()
}

func innerOf[V any](payload any) iter.Seq[V] {
	switch p := payload.(type) {
	case monad.Iterable[V]:
		return p.All()
	case iter.Seq[V]:
		return p
	case func(func(V) bool):
		return p
	case []V:
		return func(yield func(V) bool) {
			for _, v := range p {
				if !yield(v) {
					return
				}
			}
		}
	default:
		return empty[V]
	}
}

func empty[V any](func(V) bool) {}
