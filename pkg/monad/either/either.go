package either

import (
	"fmt"

	"github.com/ib-77/maybe/pkg/monad"
)

// Either holds a failure payload (Left) or a success payload (Right)
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// FromPair lifts a (value, error) result
func FromPair[R any](value R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](value)
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsSome is IsRight, so an Either can stand in wherever a Variant is expected
func (e Either[L, R]) IsSome() bool {
	return e.isRight
}

func (e Either[L, R]) Payload() (any, bool) {
	if !e.isRight {
		return nil, false
	}
	return e.right, true
}

// Get returns the success payload and true, or the zero value and false
func (e Either[L, R]) Get() (R, bool) {
	return e.right, e.isRight
}

// GetError returns the failure payload and true, or the zero value and false
func (e Either[L, R]) GetError() (L, bool) {
	return e.left, !e.isRight
}

// Unwrap returns the success payload of a Right, ignoring any fallback. On a
// Left it returns the first fallback, or the zero value.
func (e Either[L, R]) Unwrap(fallback ...R) R {
	if e.isRight {
		return e.right
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	var zero R
	return zero
}

// UnwrapError returns the failure payload of a Left, ignoring any fallback.
// On a Right it returns the first fallback, or the zero value.
func (e Either[L, R]) UnwrapError(fallback ...L) L {
	if !e.isRight {
		return e.left
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	var zero L
	return zero
}

// Catch runs fn with the failure payload of a Left and wraps the result
// into a Right. A Right passes through and fn is not called.
func (e Either[L, R]) Catch(fn func(L) R) Either[L, R] {
	if e.isRight {
		return e
	}
	return Right[L](fn(e.left))
}

// OrElse runs fn with the failure payload of a Left and returns its Either
func (e Either[L, R]) OrElse(fn func(L) Either[L, R]) Either[L, R] {
	if e.isRight {
		return e
	}
	return fn(e.left)
}

// Filter keeps a Right whose payload satisfies predicate, otherwise it
// becomes Left(onFailure). Without onFailure the failure payload is
// monad.ErrPredicateFailed when L can hold an error, its message when L is a
// string, and the zero L otherwise, so for any other L pass onFailure. A
// Left passes through and the predicate is not called.
func (e Either[L, R]) Filter(predicate func(R) bool, onFailure ...L) Either[L, R] {
	if !e.isRight {
		return e
	}
	if predicate(e.right) {
		return e
	}
	if len(onFailure) > 0 {
		return Left[L, R](onFailure[0])
	}
	return Left[L, R](predicateFailure[L]())
}

func predicateFailure[L any]() L {
	if l, ok := any(monad.ErrPredicateFailed).(L); ok {
		return l
	}
	if l, ok := any(monad.ErrPredicateFailed.Error()).(L); ok {
		return l
	}
	var zero L
	return zero
}

// Tee runs fn on the payload of a Right and returns the value unchanged
func (e Either[L, R]) Tee(fn func(R)) Either[L, R] {
	if e.isRight {
		fn(e.right)
	}
	return e
}

func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

func (e Either[L, R]) ToSlice() []R {
	if e.isRight {
		return []R{e.right}
	}
	return []R{}
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
