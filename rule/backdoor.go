package rule

import (
	"context"

	"github.com/go-causalid/causalid/adjust"
	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// BackdoorAdjustment finds a set S sufficient to block every backdoor
// path from x to y given the current conditioning z and latents, and
// rewrites P(Y|do(X),Z) as Σ_S P(Y|X,Z,S)·P(S), per spec.md §4.F. It
// reports ok=false when no sufficient set exists for this (x, y, z)
// triple.
func BackdoorAdjustment(ctx context.Context, g *graph.Graph, p expr.P, latents variable.Set) (expr.Expression, bool, error) {
	x, y, z := p.Do(), p.Y(), p.Z()
	gen := adjust.BackdoorSets(g, x, y, z, latents)

	s, ok, err := gen.Next(ctx)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	pYGivenXZS := expr.MustNewP(y, variable.Empty(), x.Union(z).Union(s))
	if s.IsEmpty() {
		// Σ_∅ P(Y|X,Z,∅)·P(∅) degenerates to the conditional term itself.
		return pYGivenXZS, true, nil
	}

	pS := expr.MustNewP(s, variable.Empty(), variable.Empty())
	product := expr.NewProduct(pYGivenXZS, pS)

	result, err := expr.NewMarginalization(product, s)
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}
