// Package tuple provides the typed tuples produced by option.All2 and option.All3.
package tuple

import "fmt"

// Pair is a 2-tuple
type Pair[A, B any] struct {
	First  A
	Second B
}

func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Slice returns the elements in positional order
func (p Pair[A, B]) Slice() []any {
	return []any{p.First, p.Second}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Triple is a 3-tuple
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func NewTriple[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{First: first, Second: second, Third: third}
}

func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}

// Slice returns the elements in positional order
func (t Triple[A, B, C]) Slice() []any {
	return []any{t.First, t.Second, t.Third}
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}
