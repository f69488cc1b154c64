// Package option provides Option[T], a value that is either Some(v) or None.
//
// Chaining follows one rule for every step: the function runs only on Some,
// a plain result is wrapped back into Some, an Option result is returned as
// is (one level of flattening) and a future result is handed back directly.
// The rule is split across three functions:
// - Then: plain result, wrapped into Some
// - Switch: Option result, returned as is
// - ThenFuture: future result, returned as is
//
// Same-type steps are methods: Catch/OrElse recover a None, Filter drops a
// Some that fails a predicate, Tee runs side effects. Unwrap, Get and
// Finally collapse the value.
//
// An Option is a finite, restartable sequence of zero or one element (All),
// can expose its payload's own sequence (InnerIt, Flatten), and can be
// awaited (Await, Chan, Future). Awaiting None never hangs by default: it
// settles with monad.ErrNone unless core.BlockEmpty is set on the context.
//
// The combinators All, All2, All3, AllAny, Somes and IsSome work over
// several options at once; FromRaw lifts a possibly absent raw value.
package option
