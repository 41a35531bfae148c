package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// TestJointDistribution_FactorsOverExactlyVTerms checks spec.md §8's
// "joint_distribution() factors over exactly |V| terms whose outcome
// multiset equals V" against a three-variable chain.
func TestJointDistribution_FactorsOverExactlyVTerms(t *testing.T) {
	x, y, z := variable.MustNew("X"), variable.MustNew("Y"), variable.MustNew("Z")
	g, err := graph.New(
		variable.Of(x, y, z),
		[]graph.StructuralEquation{
			{X: variable.Empty(), Y: x},
			{X: variable.Of(x), Y: y},
			{X: variable.Of(y), Y: z},
		},
		variable.Empty(),
	)
	require.NoError(t, err)

	joint := g.JointDistribution()
	product, ok := joint.(expr.Product)
	require.True(t, ok)
	terms := product.Terms()
	require.Len(t, terms, 3)

	outcomes := variable.Empty()
	for _, term := range terms {
		p, ok := term.(expr.P)
		require.True(t, ok)
		assert.Equal(t, 1, p.Y().Len())
		outcomes = outcomes.Union(p.Y())
	}
	assert.True(t, outcomes.Equal(variable.Of(x, y, z)))
	assert.True(t, joint.HatFree())
}

// TestJointDistribution_ParentsMatchStructuralEquations checks that each
// factor conditions on exactly that variable's parent set.
func TestJointDistribution_ParentsMatchStructuralEquations(t *testing.T) {
	x, y := variable.MustNew("X"), variable.MustNew("Y")
	g, err := graph.New(
		variable.Of(x, y),
		[]graph.StructuralEquation{
			{X: variable.Empty(), Y: x},
			{X: variable.Of(x), Y: y},
		},
		variable.Empty(),
	)
	require.NoError(t, err)

	joint := g.JointDistribution()
	product, ok := joint.(expr.Product)
	require.True(t, ok)

	for _, term := range product.Terms() {
		p := term.(expr.P)
		if p.Y().Contains(x) {
			assert.True(t, p.Z().IsEmpty())
		}
		if p.Y().Contains(y) {
			assert.True(t, p.Z().Equal(variable.Of(x)))
		}
	}
}

// TestJointDistribution_SingleVariableCollapsesToOneTerm covers the
// expression-algebra law that a Product of one term returns that term
// directly (spec.md §4.A) applied to the degenerate one-variable graph.
func TestJointDistribution_SingleVariableCollapsesToOneTerm(t *testing.T) {
	x := variable.MustNew("X")
	g, err := graph.New(variable.Of(x), nil, variable.Empty())
	require.NoError(t, err)

	joint := g.JointDistribution()
	p, ok := joint.(expr.P)
	require.True(t, ok)
	assert.True(t, p.Y().Equal(variable.Of(x)))
}
