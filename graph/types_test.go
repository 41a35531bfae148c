package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

func TestNew_RejectsDuplicateOutcome(t *testing.T) {
	x, y := variable.MustNew("X"), variable.MustNew("Y")
	_, err := graph.New(
		variable.Of(x, y),
		[]graph.StructuralEquation{
			{X: variable.Empty(), Y: y},
			{X: variable.Of(x), Y: y},
		},
		variable.Empty(),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrDuplicateOutcome))
}

func TestNew_RejectsUndeclaredOutcome(t *testing.T) {
	x, y := variable.MustNew("X"), variable.MustNew("Y")
	_, err := graph.New(
		variable.Of(x),
		[]graph.StructuralEquation{{X: variable.Of(x), Y: y}},
		variable.Empty(),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrUndeclaredVariable))
}

func TestNew_RejectsUndeclaredParent(t *testing.T) {
	x, y := variable.MustNew("X"), variable.MustNew("Y")
	_, err := graph.New(
		variable.Of(y),
		[]graph.StructuralEquation{{X: variable.Of(x), Y: y}},
		variable.Empty(),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrUndeclaredVariable))
}

func TestNew_RejectsSelfReferentialEquation(t *testing.T) {
	x := variable.MustNew("X")
	_, err := graph.New(
		variable.Of(x),
		[]graph.StructuralEquation{{X: variable.Of(x), Y: x}},
		variable.Empty(),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrSelfReferential))
}

func TestNew_RejectsCyclicEquations(t *testing.T) {
	x, y := variable.MustNew("X"), variable.MustNew("Y")
	_, err := graph.New(
		variable.Of(x, y),
		[]graph.StructuralEquation{
			{X: variable.Of(y), Y: x},
			{X: variable.Of(x), Y: y},
		},
		variable.Empty(),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrCyclic))
}

func TestNew_AcceptsAcyclicEquations(t *testing.T) {
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
	assert.True(t, g.Variables().Equal(variable.Of(x, y, z)))
}

// diamond builds Q -> X -> Y, Q -> R -> Y, Q -> S -> Y, a four-ancestor
// fan-in used by several invariant checks below.
func diamond(t *testing.T) (g *graph.Graph, q, x, y, r, s variable.Variable) {
	t.Helper()
	q, x, y, r, s = variable.MustNew("Q"), variable.MustNew("X"), variable.MustNew("Y"), variable.MustNew("R"), variable.MustNew("S")
	g, err := graph.New(
		variable.Of(q, x, y, r, s),
		[]graph.StructuralEquation{
			{X: variable.Empty(), Y: q},
			{X: variable.Of(q), Y: x},
			{X: variable.Of(q), Y: r},
			{X: variable.Of(q), Y: s},
			{X: variable.Of(x, r, s), Y: y},
		},
		variable.Empty(),
	)
	require.NoError(t, err)
	return g, q, x, y, r, s
}

// TestAncestorsDescendants_Disjoint checks spec.md §8's
// "ancestors(X) ∩ descendants(X) = ∅" for every vertex of an acyclic
// graph (guaranteed by construction: a cycle would be rejected by New).
func TestAncestorsDescendants_Disjoint(t *testing.T) {
	g, q, x, y, r, s := diamond(t)
	for _, v := range []variable.Variable{q, x, y, r, s} {
		vs := variable.Of(v)
		overlap := g.Ancestors(vs).Intersect(g.Descendants(vs))
		assert.True(t, overlap.IsEmpty(), "ancestors/descendants of %s must be disjoint", v)
	}
}

func TestAncestors_ExcludesSelf(t *testing.T) {
	g, q, x, _, _, _ := diamond(t)
	assert.False(t, g.Ancestors(variable.Of(x)).Contains(x))
	assert.True(t, g.Ancestors(variable.Of(x)).Contains(q))
}

func TestDescendants_ExcludesSelf(t *testing.T) {
	g, q, _, y, _, _ := diamond(t)
	assert.False(t, g.Descendants(variable.Of(q)).Contains(q))
	assert.True(t, g.Descendants(variable.Of(q)).Contains(y))
}

// TestParentsOfDescendants_ContainsSelf checks spec.md §8's
// "parents(descendants({v})) ⊇ {v} for every v with any descendants":
// v is always a parent of its own direct child, which belongs to
// descendants(v).
func TestParentsOfDescendants_ContainsSelf(t *testing.T) {
	g, q, x, y, r, s := diamond(t)
	for _, v := range []variable.Variable{q, x, r, s} {
		descendants := g.Descendants(variable.Of(v))
		require.False(t, descendants.IsEmpty(), "%s must have a descendant in this graph", v)
		assert.True(t, g.Parents(descendants).Contains(v), "%s must be a parent of one of its own descendants", v)
	}
	_ = y
}

func TestGraph_ParentsChildrenAccessors(t *testing.T) {
	g, q, x, y, r, s := diamond(t)
	assert.True(t, g.Parents(variable.Of(y)).Equal(variable.Of(x, r, s)))
	assert.True(t, g.Children(variable.Of(q)).Equal(variable.Of(x, r, s)))
	assert.True(t, g.Parents(variable.Of(q)).IsEmpty())
	assert.True(t, g.Children(variable.Of(y)).IsEmpty())
}

func TestGraph_ObservedExcludesLatents(t *testing.T) {
	u, x, y := variable.MustNew("U"), variable.MustNew("X"), variable.MustNew("Y")
	g, err := graph.New(
		variable.Of(u, x, y),
		[]graph.StructuralEquation{
			{X: variable.Empty(), Y: u},
			{X: variable.Of(u), Y: x},
			{X: variable.Of(x, u), Y: y},
		},
		variable.Of(u),
	)
	require.NoError(t, err)

	assert.True(t, g.Observed().Equal(variable.Of(x, y)))
	assert.True(t, g.Latents().Equal(variable.Of(u)))
	assert.False(t, g.Observed().Contains(u))
}

func TestGraph_HasVariable(t *testing.T) {
	g, q, _, _, _, _ := diamond(t)
	assert.True(t, g.HasVariable(q))
	assert.False(t, g.HasVariable(variable.MustNew("NOTIN")))
}

func TestGraph_EquationsIsACopy(t *testing.T) {
	g, _, _, _, _, _ := diamond(t)
	eqs := g.Equations()
	eqs[0] = graph.StructuralEquation{}
	again := g.Equations()
	assert.NotEqual(t, eqs[0], again[0], "Equations() must return a fresh copy each call")
}
