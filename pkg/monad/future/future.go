package future

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/maybe/pkg/monad/core"
)

// Future represents a value that becomes available later
type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
	value     T
	err       error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// Go runs fn on a new goroutine and settles with its outcome
func Go[T any](fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		defer close(f.done)
		f.value, f.err = fn()
	}()
	return f
}

// GoContext is Go with a context handed to fn
func GoContext[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		defer close(f.done)
		f.value, f.err = fn(ctx)
	}()
	return f
}

// Resolve creates a future already settled with value
func Resolve[T any](value T) *Future[T] {
	f := newFuture[T]()
	f.value = value
	close(f.done)
	return f
}

// Reject creates a future already settled with err
func Reject[T any](err error) *Future[T] {
	f := newFuture[T]()
	f.err = err
	close(f.done)
	return f
}

func (f *Future[T]) Id() uuid.UUID {
	return f.id
}

func (f *Future[T]) CreatedAt() time.Time {
	return f.createdAt
}

// Done returns a channel closed once the future settles
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the future settles
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.value, f.err
}

// Await blocks until the future settles or ctx ends
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		if f.err != nil {
			core.LoggerFrom(ctx).DebugContext(ctx, "future rejected",
				"id", f.id, "age", time.Since(f.createdAt), "error", f.err)
		}
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		core.LoggerFrom(ctx).DebugContext(ctx, "future await cancelled", "id", f.id, "error", ctx.Err())
		return zero, ctx.Err()
	}
}

// Map transforms the settled value. Errors pass through untouched.
func Map[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return Go(func() (U, error) {
		v, err := f.Wait()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v), nil
	})
}

// FlatMap continues with the future returned by fn
func FlatMap[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	return Go(func() (U, error) {
		v, err := f.Wait()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v).Wait()
	})
}
