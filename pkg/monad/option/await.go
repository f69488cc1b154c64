package option

import (
	"context"

	"github.com/ib-77/maybe/pkg/monad"
	"github.com/ib-77/maybe/pkg/monad/core"
	"github.com/ib-77/maybe/pkg/monad/future"
)

// Await returns the payload of a Some at once. A None settles according to
// the context's await policy: monad.ErrNone by default, or ctx.Err() once
// the context ends under core.BlockEmpty. A context that can never end
// rejects even under core.BlockEmpty.
func (o Option[T]) Await(ctx context.Context) (T, error) {
	return core.Settle(ctx, o.value, o.some, monad.ErrNone)
}

// Future turns the option into a future settled the same way as Await
func (o Option[T]) Future(ctx context.Context) *future.Future[T] {
	if o.some {
		return future.Resolve(o.value)
	}
	if core.BlocksOnEmpty(ctx) {
		return future.GoContext(ctx, o.Await)
	}
	return future.Reject[T](monad.ErrNone)
}

// Chan delivers the payload of a Some once and closes. For None the channel
// is already closed.
func (o Option[T]) Chan(ctx context.Context) <-chan T {
	if !o.some {
		return core.Closed[T]()
	}
	return core.ToChan(ctx, o.value)
}
