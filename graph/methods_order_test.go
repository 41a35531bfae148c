package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// TestAdmissibleOrderings_Scenario6 is spec.md §8 scenario 6, taken
// literally: "Topological orderings of Q->X; X->Y; Q->R; Q->S; R->Y;
// S->Y ... all permutations in which Q precedes X and X precedes Y." W
// is declared but carries no edges, so it is free to appear anywhere.
func TestAdmissibleOrderings_Scenario6(t *testing.T) {
	q, x, y, r, s, w := variable.MustNew("Q"), variable.MustNew("X"), variable.MustNew("Y"), variable.MustNew("R"), variable.MustNew("S"), variable.MustNew("W")
	g, err := graph.New(
		variable.Of(q, x, y, r, s, w),
		[]graph.StructuralEquation{
			{X: variable.Empty(), Y: q},
			{X: variable.Empty(), Y: w},
			{X: variable.Of(q), Y: x},
			{X: variable.Of(q), Y: r},
			{X: variable.Of(q), Y: s},
			{X: variable.Of(x, r, s), Y: y},
		},
		variable.Empty(),
	)
	require.NoError(t, err)

	orderings := g.AdmissibleOrderings(variable.Of(x, y, q, w))
	require.Len(t, orderings, 4, "exactly 4 permutations of {Q,X,Y,W} keep Q before X before Y")

	position := func(ordering []variable.Variable, v variable.Variable) int {
		for i, e := range ordering {
			if e.Name() == v.Name() {
				return i
			}
		}
		t.Fatalf("%s missing from ordering", v)
		return -1
	}

	seen := make(map[string]bool)
	for _, ordering := range orderings {
		require.Len(t, ordering, 4)
		assert.Less(t, position(ordering, q), position(ordering, x), "Q must precede X in every admissible ordering")
		assert.Less(t, position(ordering, x), position(ordering, y), "X must precede Y in every admissible ordering")

		key := ""
		for _, v := range ordering {
			key += v.Name()
		}
		assert.False(t, seen[key], "orderings must be distinct, got duplicate %s", key)
		seen[key] = true
	}
	assert.Len(t, seen, 4)
}

func TestAdmissibleOrderings_SingleVariable(t *testing.T) {
	x := variable.MustNew("X")
	g, err := graph.New(variable.Of(x), nil, variable.Empty())
	require.NoError(t, err)

	orderings := g.AdmissibleOrderings(variable.Of(x))
	require.Len(t, orderings, 1)
	assert.True(t, orderings[0][0].Name() == x.Name())
}

func TestAdmissibleOrderings_EmptySetYieldsOneEmptyOrdering(t *testing.T) {
	g, _, _, _, _, _ := diamond(t)
	orderings := g.AdmissibleOrderings(variable.Empty())
	require.Len(t, orderings, 1)
	assert.Empty(t, orderings[0])
}
