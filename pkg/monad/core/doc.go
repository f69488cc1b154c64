// Package core contains the plumbing shared by option and either: the await
// policy and logger carried through context, settlement of awaited values,
// and channel helpers used to bridge a single value onto a channel.
package core
