package option

import "fmt"

// Option holds zero or one value. The zero Option is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Of returns None without arguments and Some of the first argument otherwise
func Of[T any](values ...T) Option[T] {
	if len(values) == 0 {
		return None[T]()
	}
	return Some(values[0])
}

// FromPtr returns None for a nil pointer and Some of the pointee otherwise
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromPair lifts a comma-ok result
func FromPair[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) Payload() (any, bool) {
	if !o.some {
		return nil, false
	}
	return o.value, true
}

// Get returns the payload and true, or the zero value and false on None
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the payload on Some, ignoring any fallback. On None it
// returns the first fallback, or the zero value when none is given.
func (o Option[T]) Unwrap(fallback ...T) T {
	if o.some {
		return o.value
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	var zero T
	return zero
}

// Catch runs fn only on None and wraps its result into Some
func (o Option[T]) Catch(fn func() T) Option[T] {
	if o.some {
		return o
	}
	return Some(fn())
}

// OrElse runs fn only on None and returns its Option as is
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// Filter keeps a Some whose payload satisfies predicate. The predicate is
// never called on None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if !o.some {
		return o
	}
	if predicate(o.value) {
		return Some(o.value)
	}
	return None[T]()
}

// Tee runs fn on the payload of a Some and returns the option unchanged
func (o Option[T]) Tee(fn func(T)) Option[T] {
	if o.some {
		fn(o.value)
	}
	return o
}

func (o Option[T]) ToSlice() []T {
	if o.some {
		return []T{o.value}
	}
	return []T{}
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
