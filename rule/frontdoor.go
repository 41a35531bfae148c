package rule

import (
	"context"

	"github.com/go-causalid/causalid/adjust"
	"github.com/go-causalid/causalid/dsep"
	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// FrontdoorAdjustment searches for a mediation set M satisfying spec.md
// §4.F's three front-door conditions and, if one exists, rewrites
// P(Y|do(X)) as Σ_M [P(M|X)·Σ_X P(Y|X,M)·P(X)]. It reports ok=false
// when no candidate mediation set satisfies all three conditions.
func FrontdoorAdjustment(ctx context.Context, g *graph.Graph, x, y, latents variable.Set) (expr.Expression, bool, error) {
	gen := adjust.MediationSets(g, x, y, latents)

	for {
		m, ok, err := gen.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		if m.IsEmpty() {
			continue
		}
		if !allBlocked(g, dsep.BackdoorPaths(g, x, m), variable.Empty()) {
			continue
		}
		if !allBlocked(g, dsep.BackdoorPaths(g, m, y), x) {
			continue
		}

		pMGivenX := expr.MustNewP(m, variable.Empty(), x)
		pYGivenXM := expr.MustNewP(y, variable.Empty(), x.Union(m))
		pX := expr.MustNewP(x, variable.Empty(), variable.Empty())

		inner, err := expr.NewMarginalization(expr.NewProduct(pYGivenXM, pX), x)
		if err != nil {
			return nil, false, err
		}
		outer, err := expr.NewMarginalization(expr.NewProduct(pMGivenX, inner), m)
		if err != nil {
			return nil, false, err
		}
		return outer, true, nil
	}
}

// allBlocked reports whether every path in paths is closed under
// conditioning set w.
func allBlocked(g *graph.Graph, paths []dsep.Path, w variable.Set) bool {
	for _, p := range paths {
		if p.IsOpen(w, g.Descendants) {
			return false
		}
	}
	return true
}
