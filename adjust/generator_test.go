package adjust_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-causalid/causalid/adjust"
	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// confounded builds U -> X -> Y, U -> Y: the classic single-confounder
// design where {U} is the unique minimal backdoor adjustment set.
func confounded(t *testing.T) (g *graph.Graph, u, x, y variable.Variable) {
	t.Helper()
	u, x, y = variable.MustNew("U"), variable.MustNew("X"), variable.MustNew("Y")
	g, err := graph.New(
		variable.Of(u, x, y),
		[]graph.StructuralEquation{
			{X: variable.Empty(), Y: u},
			{X: variable.Of(u), Y: x},
			{X: variable.Of(x, u), Y: y},
		},
		variable.Empty(),
	)
	require.NoError(t, err)
	return g, u, x, y
}

func TestBackdoorSets_SingleConfounder(t *testing.T) {
	g, u, x, y := confounded(t)
	gen := adjust.BackdoorSets(g, variable.Of(x), variable.Of(y), variable.Empty(), variable.Empty())

	s, ok, err := gen.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, s.Equal(variable.Of(u)))

	_, ok, err = gen.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBackdoorSets_NoBackdoorPaths(t *testing.T) {
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

	gen := adjust.BackdoorSets(g, variable.Of(x), variable.Of(y), variable.Empty(), variable.Empty())
	// No backdoor paths at all means every path in the (empty) collection
	// is trivially blocked; the empty set is the unique sufficient set.
	s, ok, err := gen.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, s.IsEmpty())
}

func TestBackdoorSets_LatentConfounderIsUnusable(t *testing.T) {
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

	gen := adjust.BackdoorSets(g, variable.Of(x), variable.Of(y), variable.Empty(), variable.Of(u))
	_, ok, err := gen.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok, "a latent confounder cannot be adjusted for")
}

func TestMediationSets_SingleMediator(t *testing.T) {
	x, m, y := variable.MustNew("X"), variable.MustNew("M"), variable.MustNew("Y")
	g, err := graph.New(
		variable.Of(x, m, y),
		[]graph.StructuralEquation{
			{X: variable.Empty(), Y: x},
			{X: variable.Of(x), Y: m},
			{X: variable.Of(m), Y: y},
		},
		variable.Empty(),
	)
	require.NoError(t, err)

	gen := adjust.MediationSets(g, variable.Of(x), variable.Of(y), variable.Empty())
	s, ok, err := gen.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, s.Equal(variable.Of(m)))
}
