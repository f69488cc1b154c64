// Package future provides the single-value futures that option and either
// bridge into when a chained function runs asynchronously.
//
// A Future settles exactly once, either with a value or with an error:
// - Go/GoContext: run a function on its own goroutine
// - Resolve/Reject: build an already settled future
// - Wait/Await: block until settled (Await also honours the context)
// - Map/FlatMap: continue the computation after settlement
//
// Each future carries an ID and a creation time so rejections can be traced
// in logs.
package future
