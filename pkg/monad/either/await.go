package either

import (
	"context"

	"github.com/ib-77/maybe/pkg/monad"
	"github.com/ib-77/maybe/pkg/monad/core"
	"github.com/ib-77/maybe/pkg/monad/future"
)

// Await returns the payload of a Right at once. A Left settles with a
// *monad.LeftError by default, or ctx.Err() once the context ends under
// core.BlockEmpty. A context that can never end rejects even under
// core.BlockEmpty.
func (e Either[L, R]) Await(ctx context.Context) (R, error) {
	var missing error
	if !e.isRight {
		missing = &monad.LeftError{Value: e.left}
	}
	return core.Settle(ctx, e.right, e.isRight, missing)
}

// Future turns the value into a future settled the same way as Await
func (e Either[L, R]) Future(ctx context.Context) *future.Future[R] {
	if e.isRight {
		return future.Resolve(e.right)
	}
	if core.BlocksOnEmpty(ctx) {
		return future.GoContext(ctx, e.Await)
	}
	return future.Reject[R](&monad.LeftError{Value: e.left})
}

// Chan delivers the payload of a Right once and closes. For a Left the
// channel is already closed.
func (e Either[L, R]) Chan(ctx context.Context) <-chan R {
	if !e.isRight {
		return core.Closed[R]()
	}
	return core.ToChan(ctx, e.right)
}
