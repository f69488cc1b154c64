// Package either provides Either[L, R]: a Right holding a success payload or
// a Left holding a failure payload.
//
// The success channel chains exactly like option: Then wraps a plain result,
// Switch returns an Either result as is and ThenFuture hands back a future.
// A Left skips all of them and passes through retyped.
//
// The failure channel has its own operations:
// - Catch/OrElse: recover a Left, receiving its payload
// - MapLeft: transform the failure payload
// - Filter: turn a Right that fails a predicate into a Left
// - UnwrapError/GetError: read the failure payload
//
// Helpers carried over from railway-style pipelines: Try (call a function
// returning (T, error)), ValidateAll (accumulate failures), Tee, Finally,
// Swap and conversions to and from option.Option.
//
// A Right iterates as one element and a Left as none. Awaiting a Left
// settles with a *monad.LeftError unless core.BlockEmpty is set.
package either
