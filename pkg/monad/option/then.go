package option

import (
	"github.com/ib-77/maybe/pkg/monad"
	"github.com/ib-77/maybe/pkg/monad/future"
)

// Then applies fn to the payload of a Some and wraps the result. On None fn
// is not called.
func Then[T, R any](o Option[T], fn func(T) R) Option[R] {
	if !o.some {
		return None[R]()
	}
	return Some(fn(o.value))
}

// Switch applies fn to the payload of a Some and returns its Option directly
func Switch[T, R any](o Option[T], fn func(T) Option[R]) Option[R] {
	if !o.some {
		return None[R]()
	}
	return fn(o.value)
}

// ThenFuture applies fn to the payload of a Some and hands back its future.
// On None fn is not called and the returned future is rejected with
// monad.ErrNone.
func ThenFuture[T, R any](o Option[T], fn func(T) *future.Future[R]) *future.Future[R] {
	if !o.some {
		return future.Reject[R](monad.ErrNone)
	}
	return fn(o.value)
}

// CatchFuture is the asynchronous Catch: a Some resolves immediately, a None
// continues with the future returned by fn.
func CatchFuture[T any](o Option[T], fn func() *future.Future[T]) *future.Future[T] {
	if o.some {
		return future.Resolve(o.value)
	}
	return fn()
}

// Finally collapses the option into a value
func Finally[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}
