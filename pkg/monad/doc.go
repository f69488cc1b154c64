// Package monad holds what the option and either packages share: the Variant
// and Iterable contracts, the errors produced when an empty or failed value
// is awaited, and the absence rules used to lift raw values.
//
// The value types themselves live in subpackages:
// - option: Some/None with Then, Switch, Catch, Filter, iteration and await
// - either: Left/Right with the same chain plus MapLeft and failure accessors
// - future: single-value futures the chains bridge into
// - core: await policy, context options and channel helpers
// - tuple: typed tuples returned by option.All2/All3
package monad
