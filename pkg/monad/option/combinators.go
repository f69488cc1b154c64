package option

import (
	"iter"

	"github.com/ib-77/maybe/pkg/monad"
	"github.com/ib-77/maybe/pkg/monad/tuple"
)

// All returns Some of every payload in order when every option is Some and
// None as soon as one of them is None.
func All[T any](options ...Option[T]) Option[[]T] {
	values := make([]T, 0, len(options))
	for _, o := range options {
		if !o.some {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// All2 is All for two options of different types
func All2[A, B any](a Option[A], b Option[B]) Option[tuple.Pair[A, B]] {
	if !a.some || !b.some {
		return None[tuple.Pair[A, B]]()
	}
	return Some(tuple.NewPair(a.value, b.value))
}

// All3 is All for three options of different types
func All3[A, B, C any](a Option[A], b Option[B], c Option[C]) Option[tuple.Triple[A, B, C]] {
	if !a.some || !b.some || !c.some {
		return None[tuple.Triple[A, B, C]]()
	}
	return Some(tuple.NewTriple(a.value, b.value, c.value))
}

// AllAny is All over variants of mixed payload types
func AllAny(variants ...monad.Variant) Option[[]any] {
	values := make([]any, 0, len(variants))
	for _, v := range variants {
		if monad.IsNil(v) {
			return None[[]any]()
		}
		p, ok := v.Payload()
		if !ok {
			return None[[]any]()
		}
		values = append(values, p)
	}
	return Some(values)
}

// Somes returns the payloads of the Some entries in order
func Somes[T any](options []Option[T]) []T {
	values := make([]T, 0, len(options))
	for _, o := range options {
		if o.some {
			values = append(values, o.value)
		}
	}
	return values
}

// SomesSeq is Somes over a sequence
func SomesSeq[T any](options iter.Seq[Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range options {
			if o.some && !yield(o.value) {
				return
			}
		}
	}
}

// IsSome reports whether x is a Some (or a Right)
func IsSome(x any) bool {
	v, ok := x.(monad.Variant)
	if !ok || monad.IsNil(v) {
		return false
	}
	return v.IsSome()
}

// FromRaw lifts a value that may be absent. nil, an empty string, an empty
// slice or array and NaN become None; every other value, 0 and false
// included, becomes Some.
func FromRaw[T any](x T) Option[T] {
	if monad.IsAbsent(x) {
		return None[T]()
	}
	return Some(x)
}
