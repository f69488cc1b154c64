package monad

import (
	"errors"
	"fmt"
)

var (
	// ErrNone is returned when a None is awaited
	ErrNone = errors.New("monad: awaited None")
	// ErrPredicateFailed is the default failure of a rejected Either filter
	ErrPredicateFailed = errors.New("Either predicate returned false")
)

// LeftError is returned when a Left is awaited. It carries the failure payload.
type LeftError struct {
	Value any
}

func (e *LeftError) Error() string {
	return fmt.Sprintf("monad: awaited Left(%v)", e.Value)
}

// Unwrap exposes the payload when it is itself an error
func (e *LeftError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
