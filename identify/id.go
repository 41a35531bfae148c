package identify

import (
	"fmt"

	"github.com/go-causalid/causalid/ccomp"
	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// ID implements the Shpitser-Pearl identification algorithm of spec.md
// §4.G verbatim: given the outcome set y and intervention set x within
// g, it returns either a do-free expression for P(y | do(x)) or a hedge
// witness proving non-identifiability. g's own Latents() supplies the
// latent set L throughout — ID never takes L as a separate argument,
// since every sub-graph it recurses into (via SubGraph/Orphan) is
// itself a *graph.Graph carrying its own latent subset.
func ID(y, x variable.Set, g *graph.Graph) (expr.Expression, *ccomp.Hedge, error) {
	v := g.Observed()

	// Step 1: no intervention left to eliminate.
	if x.IsEmpty() {
		order := topologicalOrder(g, v)
		factor := truncatedFactor(order, v)
		result, err := expr.NewMarginalization(factor, v.Minus(y))
		if err != nil {
			return nil, nil, err
		}
		return result, nil, nil
	}

	// Step 2: restrict to the ancestors of Y when something falls outside them.
	ancestorsOfY := g.Ancestors(y).Union(y)
	if !v.Minus(ancestorsOfY).IsEmpty() {
		restricted := g.SubGraph(ancestorsOfY)
		return ID(y, x.Intersect(ancestorsOfY), restricted)
	}

	// Step 3: any variable not an ancestor of Y once X is cut loose must
	// also be intervened upon.
	gx := g.Orphan(x)
	ancestorsOfYInGx := gx.Ancestors(y).Union(y)
	w := v.Minus(x).Minus(ancestorsOfYInGx)
	if !w.IsEmpty() {
		return ID(y, x.Union(w), g)
	}

	// Step 4: decompose into c-components of the graph restricted to V∖X.
	restricted := g.SubGraph(v.Minus(x))
	components := ccomp.MaximalCComponents(restricted)
	if len(components) > 1 {
		terms := make([]expr.Expression, 0, len(components))
		for _, s := range components {
			term, hedge, err := ID(s, v.Minus(s), g)
			if err != nil {
				return nil, nil, err
			}
			if hedge != nil {
				return nil, hedge, nil
			}
			terms = append(terms, term)
		}
		product := expr.NewProduct(terms...)
		result, err := expr.NewMarginalization(product, v.Minus(y).Minus(x))
		if err != nil {
			return nil, nil, err
		}
		return result, nil, nil
	}

	// Steps 5-7: a single c-component S remains.
	s := components[0]
	fullComponents := ccomp.MaximalCComponents(g)

	if len(fullComponents) == 1 && fullComponents[0].Equal(v) {
		// C(G) has collapsed to a single component spanning the whole
		// observed vertex set: the component enclosing S within C(G) is
		// necessarily V itself, so F and F' both witness the same
		// vertex set (the minimal bow-arc-style hedge).
		hedge := ccomp.BuildHedge(g, y, v, v)
		return nil, &hedge, nil
	}

	for _, sp := range fullComponents {
		if sp.Equal(s) {
			order := topologicalOrder(g, v)
			factor := truncatedFactor(order, s)
			result, err := expr.NewMarginalization(factor, s.Minus(y))
			if err != nil {
				return nil, nil, err
			}
			return result, nil, nil
		}
	}

	for _, sp := range fullComponents {
		if s.SubsetOf(sp) && !s.Equal(sp) {
			return ID(y, x.Intersect(sp), g.SubGraph(sp))
		}
	}

	// Unreachable: a maximal c-component of SubGraph(V∖X) is always
	// contained in exactly one maximal c-component of the full graph.
	return nil, nil, fmt.Errorf("identify: c-component %s has no enclosing component in %s", s, v)
}
