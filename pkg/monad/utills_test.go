package monad

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var s []int
	var f func()
	var e error

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil(f))
	assert.True(t, IsNil(e))

	n := 0
	assert.False(t, IsNil(&n))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]int{}))
}

func TestIsAbsent(t *testing.T) {
	t.Parallel()

	absent := []any{nil, "", []int{}, []string(nil), [0]int{}, math.NaN(), float32(math.NaN())}
	for _, v := range absent {
		assert.Truef(t, IsAbsent(v), "expected %#v to be absent", v)
	}

	present := []any{0, false, "a", []int{0}, 0.0, struct{}{}, map[string]int{}}
	for _, v := range present {
		assert.Falsef(t, IsAbsent(v), "expected %#v to be present", v)
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))

	single := errors.New("single")
	assert.Equal(t, []error{single}, GetErrors(single))

	a, b := errors.New("a"), errors.New("b")
	joined := errors.Join(a, b)
	assert.Equal(t, []error{a, b}, GetErrors(joined))
}

func TestLeftError(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	err := &LeftError{Value: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "monad: awaited Left(cause)", err.Error())

	plain := &LeftError{Value: "e"}
	assert.Nil(t, plain.Unwrap())
	assert.Equal(t, "monad: awaited Left(e)", plain.Error())
}
