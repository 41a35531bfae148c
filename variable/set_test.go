package variable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-causalid/causalid/variable"
)

func TestSet_EmptyIsZeroValue(t *testing.T) {
	var z variable.Set
	assert.True(t, z.IsEmpty())
	assert.Equal(t, 0, z.Len())
	assert.True(t, z.Equal(variable.Empty()))
}

func TestSet_OfDeduplicatesByName(t *testing.T) {
	x := variable.MustNew("X")
	s := variable.Of(x, x, variable.MustNew("Y"))
	assert.Equal(t, 2, s.Len())
}

func TestSet_Slice_IsSortedByName(t *testing.T) {
	y, x, z := variable.MustNew("Y"), variable.MustNew("X"), variable.MustNew("Z")
	s := variable.Of(y, x, z)
	names := s.Slice()
	assert.Equal(t, []variable.Variable{x, y, z}, names)
}

func TestSet_UnionIntersectMinus(t *testing.T) {
	x, y, z := variable.MustNew("X"), variable.MustNew("Y"), variable.MustNew("Z")
	a := variable.Of(x, y)
	b := variable.Of(y, z)

	assert.True(t, a.Union(b).Equal(variable.Of(x, y, z)))
	assert.True(t, a.Intersect(b).Equal(variable.Of(y)))
	assert.True(t, a.Minus(b).Equal(variable.Of(x)))
	assert.True(t, b.Minus(a).Equal(variable.Of(z)))
}

func TestSet_IntersectsAndSubsetOf(t *testing.T) {
	x, y, z := variable.MustNew("X"), variable.MustNew("Y"), variable.MustNew("Z")
	a := variable.Of(x, y)
	b := variable.Of(y, z)
	c := variable.Of(x)

	assert.True(t, a.Intersects(b))
	assert.False(t, c.Intersects(variable.Of(y, z)))
	assert.True(t, c.SubsetOf(a))
	assert.False(t, a.SubsetOf(c))
	assert.True(t, variable.Empty().SubsetOf(a))
}

func TestSet_Add(t *testing.T) {
	x, y := variable.MustNew("X"), variable.MustNew("Y")
	s := variable.Of(x).Add(y).Add(x)
	assert.True(t, s.Equal(variable.Of(x, y)))
}

func TestSet_Contains(t *testing.T) {
	x, y := variable.MustNew("X"), variable.MustNew("Y")
	s := variable.Of(x)
	assert.True(t, s.Contains(x))
	assert.False(t, s.Contains(y))
	assert.False(t, variable.Empty().Contains(x))
}

func TestSet_Each_VisitsInSortedOrder(t *testing.T) {
	y, x := variable.MustNew("Y"), variable.MustNew("X")
	s := variable.Of(y, x)
	var seen []string
	s.Each(func(v variable.Variable) { seen = append(seen, v.Name()) })
	assert.Equal(t, []string{"X", "Y"}, seen)
}

func TestSet_String(t *testing.T) {
	y, x := variable.MustNew("Y"), variable.MustNew("X")
	assert.Equal(t, "X,Y", variable.Of(y, x).String())
	assert.Equal(t, "", variable.Empty().String())
}

// Hash is order-independent: two Sets built from the same elements in a
// different construction order must hash equal, since Equal must be a
// congruence with Hash.
func TestSet_Hash_IsOrderIndependent(t *testing.T) {
	x, y, z := variable.MustNew("X"), variable.MustNew("Y"), variable.MustNew("Z")
	a := variable.Of(x, y, z)
	b := variable.Of(z, y, x)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestSet_Equal_IsSymmetricAndReflexive(t *testing.T) {
	x, y := variable.MustNew("X"), variable.MustNew("Y")
	a := variable.Of(x, y)
	b := variable.Of(y, x)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(variable.Of(x)))
}
