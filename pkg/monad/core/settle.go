package core

import "context"

// BlocksOnEmpty reports whether awaiting a missing value should wait: the
// policy is BlockEmpty and ctx can actually end. A context that is never
// done falls back to RejectEmpty.
func BlocksOnEmpty(ctx context.Context) bool {
	return GetAwaitPolicy(ctx, RejectEmpty) == BlockEmpty && ctx.Done() != nil
}

// Settle resolves an awaited value. A present value is returned as is. A
// missing one either fails with the given error (RejectEmpty) or waits for
// the context to end (BlockEmpty) and reports ctx.Err().
func Settle[T any](ctx context.Context, v T, ok bool, missing error) (T, error) {
	if ok {
		return v, nil
	}

	var zero T
	if BlocksOnEmpty(ctx) {
		<-ctx.Done()
		return zero, ctx.Err()
	}
	return zero, missing
}
