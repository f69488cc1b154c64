package either

import (
	"errors"

	"github.com/ib-77/maybe/pkg/monad"
	"github.com/ib-77/maybe/pkg/monad/future"
	"github.com/ib-77/maybe/pkg/monad/option"
)

// Then applies fn to the payload of a Right and wraps the result. A Left
// passes through retyped and fn is not called.
func Then[L, R, T any](e Either[L, R], fn func(R) T) Either[L, T] {
	if !e.isRight {
		return Left[L, T](e.left)
	}
	return Right[L](fn(e.right))
}

// Switch applies fn to the payload of a Right and returns its Either directly
func Switch[L, R, T any](e Either[L, R], fn func(R) Either[L, T]) Either[L, T] {
	if !e.isRight {
		return Left[L, T](e.left)
	}
	return fn(e.right)
}

// ThenFuture applies fn to the payload of a Right and hands back its future.
// On a Left fn is not called and the future is rejected with a
// *monad.LeftError carrying the failure payload.
func ThenFuture[L, R, T any](e Either[L, R], fn func(R) *future.Future[T]) *future.Future[T] {
	if !e.isRight {
		return future.Reject[T](&monad.LeftError{Value: e.left})
	}
	return fn(e.right)
}

// CatchFuture is the asynchronous Catch: a Right resolves immediately, a Left
// continues with the future fn returns for its failure payload.
func CatchFuture[L, R any](e Either[L, R], fn func(L) *future.Future[R]) *future.Future[R] {
	if e.isRight {
		return future.Resolve(e.right)
	}
	return fn(e.left)
}

// MapLeft transforms the failure payload of a Left. A Right passes through.
func MapLeft[L, R, T any](e Either[L, R], fn func(L) T) Either[T, R] {
	if e.isRight {
		return Right[T](e.right)
	}
	return Left[T, R](fn(e.left))
}

// Finally collapses the value through one of two handlers
func Finally[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Try calls fn on the payload of a Right and turns a returned error into a Left
func Try[R, T any](e Either[error, R], fn func(R) (T, error)) Either[error, T] {
	if !e.isRight {
		return Left[error, T](e.left)
	}

	out, err := fn(e.right)
	if err != nil {
		return Left[error, T](err)
	}
	return Right[error](out)
}

// ValidateAll runs every validator against the payload of a Right. Failures
// are joined into one error; with breakOnError the first failure stops the
// run.
func ValidateAll[R any](e Either[error, R], breakOnError bool, validators ...func(R) error) Either[error, R] {
	if !e.isRight || len(validators) == 0 {
		return e
	}

	var err error
	for _, validate := range validators {
		verr := validate(e.right)
		if verr == nil {
			continue
		}

		errs := monad.GetErrors(err)
		errs = append(errs, verr)
		err = errors.Join(errs...)

		if breakOnError {
			break
		}
	}

	if monad.IsNil(err) {
		return e
	}
	return Left[error, R](err)
}

// ToOption keeps the success payload and drops the failure
func ToOption[L, R any](e Either[L, R]) option.Option[R] {
	return option.FromPair(e.right, e.isRight)
}

// FromOption returns Right for Some and Left(left) for None
func FromOption[L, R any](o option.Option[R], left L) Either[L, R] {
	if v, ok := o.Get(); ok {
		return Right[L](v)
	}
	return Left[L, R](left)
}
