package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/variable"
)

// TestEqual_CongruenceUnderNormalization checks spec.md §8's "Equality is
// a congruence under these normalizations": building structurally
// equivalent expressions through different paths (nested vs. flat
// products, different construction order) must still compare equal.
func TestEqual_CongruenceUnderNormalization(t *testing.T) {
	x, y, z := variable.MustNew("X"), variable.MustNew("Y"), variable.MustNew("Z")
	px := expr.MustNewP(variable.Of(x), variable.Empty(), variable.Empty())
	py := expr.MustNewP(variable.Of(y), variable.Empty(), variable.Empty())
	pz := expr.MustNewP(variable.Of(z), variable.Empty(), variable.Empty())

	a := expr.NewProduct(px, expr.NewProduct(py, pz))
	b := expr.NewProduct(pz, py, px)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestEqual_PackageHelperHandlesNil(t *testing.T) {
	p := expr.MustNewP(variable.Of(variable.MustNew("Y")), variable.Empty(), variable.Empty())
	assert.True(t, expr.Equal(nil, nil))
	assert.False(t, expr.Equal(p, nil))
	assert.False(t, expr.Equal(nil, p))
	assert.True(t, expr.Equal(p, p))
}

// TestHatFreeLaw_PreservedIffOperandsAre exercises spec.md §8's "Hat-
// freeness is preserved by Product, Quotient, Marginalization iff
// preserved by each operand" across all three composite variants at
// once, including a composite built from other composites.
func TestHatFreeLaw_PreservedIffOperandsAre(t *testing.T) {
	x, y, z := variable.MustNew("X"), variable.MustNew("Y"), variable.MustNew("Z")
	hatFreeY := expr.MustNewP(variable.Of(y), variable.Empty(), variable.Of(z))
	hatFreeZ := expr.MustNewP(variable.Of(z), variable.Empty(), variable.Empty())
	doOnX := expr.MustNewP(variable.Of(y), variable.Of(x), variable.Of(z))

	product := expr.NewProduct(hatFreeY, hatFreeZ)
	quotient := expr.NewQuotient(hatFreeY, hatFreeZ)
	margin := expr.MustNewMarginalization(product, variable.Of(z))
	assert.True(t, product.HatFree())
	assert.True(t, quotient.HatFree())
	assert.True(t, margin.HatFree())

	productWithDo := expr.NewProduct(doOnX, hatFreeZ)
	quotientWithDo := expr.NewQuotient(doOnX, hatFreeZ)
	marginWithDo := expr.MustNewMarginalization(productWithDo, variable.Of(z))
	assert.False(t, productWithDo.HatFree())
	assert.False(t, quotientWithDo.HatFree())
	assert.False(t, marginWithDo.HatFree())

	// A composite nested inside another composite still propagates its
	// do-bearing leaf's non-hat-freeness upward.
	nested := expr.NewProduct(quotientWithDo, hatFreeZ)
	assert.False(t, nested.HatFree())
}
