package option

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/maybe/pkg/monad"
	"github.com/ib-77/maybe/pkg/monad/tuple"
)

type fakeVariant struct {
	v  any
	ok bool
}

func (f fakeVariant) IsSome() bool         { return f.ok }
func (f fakeVariant) Payload() (any, bool) { return f.v, f.ok }

func TestAll(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2, 3}, All(Some(1), Some(2), Some(3)).Unwrap())
	assert.True(t, All(Some(1), None[int](), Some(3)).IsNone())

	empty := All[int]()
	require.True(t, empty.IsSome())
	assert.Empty(t, empty.Unwrap())
}

func TestAll2And3_PreserveTypes(t *testing.T) {
	t.Parallel()

	p := All2(Some(1), Some("a")).Unwrap()
	assert.Equal(t, tuple.NewPair(1, "a"), p)
	assert.True(t, All2(Some(1), None[string]()).IsNone())

	tr, ok := All3(Some(1), Some("a"), Some(true)).Get()
	require.True(t, ok)
	assert.Equal(t, []any{1, "a", true}, tr.Slice())
	assert.True(t, All3(None[int](), Some("a"), Some(true)).IsNone())
}

func TestAllAny_Heterogeneous(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{1, "a", true}, AllAny(Some(1), Some("a"), Some(true)).Unwrap())
	assert.True(t, AllAny(Some(1), None[string](), Some(true)).IsNone())
	assert.True(t, AllAny(Some(1), nil).IsNone())
	assert.Equal(t, []any{"x"}, AllAny(fakeVariant{v: "x", ok: true}).Unwrap())
}

func TestSomes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 3}, Somes([]Option[int]{Some(1), None[int](), Some(3)}))
	assert.Empty(t, Somes([]Option[int]{None[int]()}))
	assert.Empty(t, Somes[int](nil))
}

func TestSomesSeq(t *testing.T) {
	t.Parallel()

	seq := slices.Values([]Option[string]{None[string](), Some("a"), Some("b"), None[string]()})
	assert.Equal(t, []string{"a", "b"}, slices.Collect(SomesSeq(seq)))

	for v := range SomesSeq(seq) {
		assert.Equal(t, "a", v)
		break
	}
}

func TestIsSome(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSome(Some(1)))
	assert.False(t, IsSome(None[int]()))
	assert.False(t, IsSome(1))
	assert.False(t, IsSome(nil))
	assert.True(t, IsSome(fakeVariant{ok: true}))

	var v monad.Variant = Some(0)
	assert.True(t, IsSome(v))
}

func TestFromRaw(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	var nilAny any

	assert.True(t, FromRaw(nilAny).IsNone())
	assert.True(t, FromRaw(nilPtr).IsNone())
	assert.True(t, FromRaw("").IsNone())
	assert.True(t, FromRaw([]int{}).IsNone())
	assert.True(t, FromRaw(math.NaN()).IsNone())

	assert.Equal(t, 0, FromRaw(0).Unwrap(-1))
	assert.True(t, FromRaw(0).IsSome())
	assert.True(t, FromRaw(false).IsSome())
	assert.Equal(t, "a", FromRaw("a").Unwrap())
	assert.True(t, FromRaw(any(0.5)).IsSome())
}
