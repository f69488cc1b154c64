package either

import (
	"iter"

	"github.com/ib-77/maybe/pkg/monad/option"
)

// All yields the payload of a Right once and nothing for a Left
func (e Either[L, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		if e.isRight {
			yield(e.right)
		}
	}
}

// InnerIt exposes the sequence of an iterable success payload, following the
// same capability rules as option.InnerIt. A Left yields nothing.
func InnerIt[V, L, R any](e Either[L, R]) iter.Seq[V] {
	return option.InnerIt[V](ToOption(e))
}
